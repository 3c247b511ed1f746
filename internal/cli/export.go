package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/export"
	"github.com/Kash1r/League-Data-Collector/internal/report"
)

func newExportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write stored matches to CSV files",
	}
	cmd.AddCommand(newExportObjectivesCommand(a))
	cmd.AddCommand(newExportMatchesCommand(a))
	return cmd
}

// resolveMatchIDs picks the matches to export: explicit args win, then a
// summoner filter, then the most recent stored matches.
func resolveMatchIDs(ctx context.Context, store *db.DB, args []string, summoner, region string, limit int) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if summoner != "" {
		s, err := store.GetSummonerByName(ctx, summoner, region)
		if err != nil {
			if errors.Is(err, db.ErrNotFound) {
				return nil, fmt.Errorf("no stored summoner named %q in %s", summoner, region)
			}
			return nil, err
		}
		return store.MatchIDsForPUUID(ctx, s.PUUID)
	}
	matches, err := store.RecentMatches(ctx, limit)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.MatchID)
	}
	return ids, nil
}

func newExportObjectivesCommand(a *app) *cobra.Command {
	var (
		outDir   string
		summoner string
		region   string
		limit    int
		interval int
		maxMin   int
	)

	cmd := &cobra.Command{
		Use:   "objectives [matchID...]",
		Short: "Write per-match objectives and gold CSV reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			matchIDs, err := resolveMatchIDs(ctx, store, args, summoner, region, limit)
			if err != nil {
				return err
			}
			if len(matchIDs) == 0 {
				return errors.New("no stored matches to export")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			reporter := report.New(store, a.cfg.TeamSize, a.log)
			exported := 0
			for _, matchID := range matchIDs {
				if err := exportObjectives(ctx, store, reporter, matchID, outDir, interval, maxMin); err != nil {
					a.log.Warn().Err(err).Str("match_id", matchID).Msg("Skipping match")
					continue
				}
				exported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d reports to %s\n", exported, len(matchIDs), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "objective_exports", "Output directory")
	cmd.Flags().StringVarP(&summoner, "summoner", "s", "", "Export matches of this stored summoner")
	cmd.Flags().StringVarP(&region, "region", "r", a.cfg.DefaultRegion, "Region for the summoner lookup")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Recent-match limit when no filter is given")
	cmd.Flags().IntVarP(&interval, "interval", "i", 1, "Minutes between gold samples")
	cmd.Flags().IntVarP(&maxMin, "max", "m", 30, "Last minute to sample")
	return cmd
}

func exportObjectives(ctx context.Context, store *db.DB, reporter *report.Reporter, matchID, outDir string, interval, maxMin int) error {
	match, err := store.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	teams, err := store.GetTeams(ctx, matchID)
	if err != nil {
		return err
	}
	series, err := reporter.LeadSeries(ctx, matchID, interval, maxMin)
	if err != nil {
		return err
	}
	objs, err := reporter.Objectives(ctx, matchID)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, export.ObjectivesFilename(matchID))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteObjectivesCSV(f, match, teams, series, objs)
}

func newExportMatchesCommand(a *app) *cobra.Command {
	var (
		outDir   string
		summoner string
		region   string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "matches [matchID...]",
		Short: "Write per-match summary CSV reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := a.openDB(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			// Remember the tracked player so their row gets highlighted.
			highlightPUUID := ""
			if summoner != "" {
				if s, err := store.GetSummonerByName(ctx, summoner, region); err == nil {
					highlightPUUID = s.PUUID
				}
			}

			matchIDs, err := resolveMatchIDs(ctx, store, args, summoner, region, limit)
			if err != nil {
				return err
			}
			if len(matchIDs) == 0 {
				return errors.New("no stored matches to export")
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}

			exported := 0
			for _, matchID := range matchIDs {
				if err := exportMatch(ctx, store, matchID, outDir, highlightPUUID); err != nil {
					a.log.Warn().Err(err).Str("match_id", matchID).Msg("Skipping match")
					continue
				}
				exported++
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d of %d summaries to %s\n", exported, len(matchIDs), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "match_exports", "Output directory")
	cmd.Flags().StringVarP(&summoner, "summoner", "s", "", "Export matches of this stored summoner")
	cmd.Flags().StringVarP(&region, "region", "r", a.cfg.DefaultRegion, "Region for the summoner lookup")
	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Recent-match limit when no filter is given")
	return cmd
}

func exportMatch(ctx context.Context, store *db.DB, matchID, outDir, highlightPUUID string) error {
	match, err := store.GetMatch(ctx, matchID)
	if err != nil {
		return err
	}
	teams, err := store.GetTeams(ctx, matchID)
	if err != nil {
		return err
	}
	participants, err := store.GetParticipants(ctx, matchID)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, export.MatchFilename(matchID))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return export.WriteMatchCSV(f, match, teams, participants, highlightPUUID)
}
