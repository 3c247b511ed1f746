// Package cli defines the leaguedc command tree.
package cli

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Kash1r/League-Data-Collector/internal/config"
	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

// app carries the pieces every subcommand needs.
type app struct {
	cfg *config.Settings
	log zerolog.Logger
}

// NewRootCommand builds the full leaguedc command tree.
func NewRootCommand(cfg *config.Settings, log zerolog.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "leaguedc",
		Short:         "Collect and analyze League of Legends match data",
		Long:          "leaguedc fetches match history from the Riot API, stores it in Postgres, and derives timeline statistics such as gold leads and objective participation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newFetchCommand(a))
	root.AddCommand(newDBCommand(a))
	root.AddCommand(newReportCommand(a))
	root.AddCommand(newExportCommand(a))

	return root
}

// openDB connects using the configured DSN.
func (a *app) openDB(ctx context.Context) (*db.DB, error) {
	return db.New(ctx, a.cfg.DatabaseURL)
}

// newRiotClient builds an API client from the configured key.
func (a *app) newRiotClient() (*riot.Client, error) {
	return riot.NewClient(a.cfg.RiotAPIKey, a.log)
}
