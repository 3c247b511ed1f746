package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kash1r/League-Data-Collector/internal/export"
	"github.com/Kash1r/League-Data-Collector/internal/report"
	"github.com/Kash1r/League-Data-Collector/internal/timeline"
)

func newReportCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Derive timeline statistics for a stored match",
	}
	cmd.AddCommand(newReportLeadsCommand(a))
	cmd.AddCommand(newReportCheckpointCommand(a))
	cmd.AddCommand(newReportParticipationCommand(a))
	cmd.AddCommand(newReportObjectivesCommand(a))
	return cmd
}

// withReporter opens the DB and hands a ready Reporter to fn.
func (a *app) withReporter(cmd *cobra.Command, fn func(*report.Reporter) error) error {
	store, err := a.openDB(cmd.Context())
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(report.New(store, a.cfg.TeamSize, a.log))
}

func newReportLeadsCommand(a *app) *cobra.Command {
	var (
		interval   int
		maxMinutes int
	)

	cmd := &cobra.Command{
		Use:   "leads <matchID>",
		Short: "Show the gold/XP lead series minute by minute",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReporter(cmd, func(r *report.Reporter) error {
				summary, err := r.LeadSummary(cmd.Context(), args[0], interval, maxMinutes)
				if err != nil {
					return err
				}
				return export.RenderLeadTable(cmd.OutOrStdout(), summary)
			})
		},
	}

	cmd.Flags().IntVarP(&interval, "interval", "i", 1, "Minutes between sampled points")
	cmd.Flags().IntVarP(&maxMinutes, "max", "m", 30, "Last minute to sample")
	return cmd
}

func newReportCheckpointCommand(a *app) *cobra.Command {
	var minute int

	cmd := &cobra.Command{
		Use:   "checkpoint <matchID>",
		Short: "Show the lead at a single minute mark",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReporter(cmd, func(r *report.Reporter) error {
				point, ok, err := r.CheckpointLead(cmd.Context(), args[0], minute)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintf(cmd.OutOrStdout(), "No frame within %ds of minute %d\n",
						timeline.CheckpointTolerance/1000, minute)
					return nil
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Minute %d (frame at %s): gold %+d, XP %+d\n",
					minute, formatClock(point.TimestampMs), point.GoldLead, point.XPLead)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&minute, "minute", "m", 15, "Minute mark to inspect")
	return cmd
}

func newReportParticipationCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "participation <matchID>",
		Short: "Show per-player objective participation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReporter(cmd, func(r *report.Reporter) error {
				rows, err := r.MatchParticipation(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return export.RenderParticipationTable(cmd.OutOrStdout(), rows)
			})
		},
	}
}

func newReportObjectivesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "objectives <matchID>",
		Short: "Show the objective timeline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withReporter(cmd, func(r *report.Reporter) error {
				objs, err := r.Objectives(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return export.RenderObjectivesTable(cmd.OutOrStdout(), objs)
			})
		},
	}
}

// formatClock renders a timeline timestamp as m:ss.
func formatClock(timestampMs int64) string {
	return fmt.Sprintf("%d:%02d", timestampMs/60000, (timestampMs%60000)/1000)
}
