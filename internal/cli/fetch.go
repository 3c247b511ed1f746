package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kash1r/League-Data-Collector/internal/collector"
)

func newFetchCommand(a *app) *cobra.Command {
	var (
		region       string
		count        int
		queue        int
		withTimeline bool
		force        bool
	)

	cmd := &cobra.Command{
		Use:   "fetch <GameName#TagLine>",
		Short: "Fetch a player's recent matches into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			client, err := a.newRiotClient()
			if err != nil {
				return err
			}

			c := collector.New(client, store, a.log)
			summoner, err := c.ResolveRiotID(ctx, args[0], region)
			if err != nil {
				return err
			}

			res, err := c.Collect(ctx, summoner.PUUID, collector.Options{
				Region:       region,
				Count:        count,
				Queue:        queue,
				WithTimeline: withTimeline,
				Force:        force,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Fetched %d matches (%d skipped, %d timelines, %d errors)\n",
				res.MatchesFetched, res.MatchesSkipped, res.TimelinesStored, res.Errors)
			return nil
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", a.cfg.DefaultRegion, "Platform region (na1, euw1, kr, ...)")
	cmd.Flags().IntVarP(&count, "count", "c", 20, "Number of matches to fetch (max 100)")
	cmd.Flags().IntVarP(&queue, "queue", "q", 0, "Queue ID filter (420 = ranked solo, 0 = all)")
	cmd.Flags().BoolVarP(&withTimeline, "timeline", "t", true, "Also fetch match timelines")
	cmd.Flags().BoolVar(&force, "force", false, "Refetch matches that are already stored")

	return cmd
}
