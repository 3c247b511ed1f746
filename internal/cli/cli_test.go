package cli

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kash1r/League-Data-Collector/internal/config"
)

func testRoot() *cobra.Command {
	cfg := &config.Settings{
		RiotAPIKey:    "RGAPI-test",
		DatabaseURL:   "postgres://localhost/test",
		DefaultRegion: "na1",
		TeamSize:      5,
	}
	return NewRootCommand(cfg, zerolog.Nop())
}

func TestCommandTree(t *testing.T) {
	root := testRoot()

	for _, path := range [][]string{
		{"fetch"},
		{"db", "init"},
		{"db", "reset"},
		{"db", "stats"},
		{"report", "leads"},
		{"report", "checkpoint"},
		{"report", "participation"},
		{"report", "objectives"},
		{"export", "objectives"},
		{"export", "matches"},
	} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, "%v", path)
		assert.Equal(t, path[len(path)-1], cmd.Name(), "%v", path)
	}
}

func TestFetchFlagDefaults(t *testing.T) {
	root := testRoot()
	cmd, _, err := root.Find([]string{"fetch"})
	require.NoError(t, err)

	region, err := cmd.Flags().GetString("region")
	require.NoError(t, err)
	assert.Equal(t, "na1", region)

	count, err := cmd.Flags().GetInt("count")
	require.NoError(t, err)
	assert.Equal(t, 20, count)

	withTimeline, err := cmd.Flags().GetBool("timeline")
	require.NoError(t, err)
	assert.True(t, withTimeline)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00", formatClock(0))
	assert.Equal(t, "5:12", formatClock(312000))
	assert.Equal(t, "15:00", formatClock(900000))
	assert.Equal(t, "31:05", formatClock(1865000))
}
