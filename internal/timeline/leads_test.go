package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

func TestLeadSeries(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(0, 100, 100, 100, 100),
		frameAt(60000, 500, 480, 700, 650),
		frameAt(120000, 900, 1000, 1200, 1300),
		// Gap: no frame near minute 3 or 4.
		frameAt(300000, 3000, 2500, 4000, 3800),
	}})
	require.NoError(t, err)

	series := tl.LeadSeries(1, 5)

	assert.Contains(t, series, 1)
	assert.Contains(t, series, 2)
	assert.NotContains(t, series, 3, "no frame within 30s of minute 3")
	assert.NotContains(t, series, 4, "no frame within 30s of minute 4")
	assert.Contains(t, series, 5)

	p1 := series[1]
	assert.Equal(t, 5*(500-480), p1.GoldLead)
	assert.Equal(t, 5*(700-650), p1.XPLead)

	p2 := series[2]
	assert.Equal(t, 5*(900-1000), p2.GoldLead)

	// Blue lead is the negation of the red lead by construction.
	for minute, p := range series {
		assert.Equal(t, p.BlueGold-p.RedGold, p.GoldLead, "minute %d", minute)
		assert.Equal(t, -(p.RedGold - p.BlueGold), p.GoldLead, "minute %d", minute)
	}
}

func TestLeadSeries_IntervalStep(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(0, 0, 0, 0, 0),
		frameAt(120000, 10, 5, 10, 5),
		frameAt(240000, 20, 10, 20, 10),
	}})
	require.NoError(t, err)

	series := tl.LeadSeries(2, 4)
	assert.Len(t, series, 2)
	assert.Contains(t, series, 2)
	assert.Contains(t, series, 4)
}

func TestLeadSeries_InvalidArgs(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{frameAt(0, 0, 0, 0, 0)}})
	require.NoError(t, err)

	assert.Empty(t, tl.LeadSeries(0, 10))
	assert.Empty(t, tl.LeadSeries(1, 0))
}

func TestCheckpointLead(t *testing.T) {
	// Two frames: minute 1 and exactly minute 15. The checkpoint must
	// resolve to the 15-minute frame and report blue +100 gold.
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(60000, 500, 480, 500, 500),
		frameAt(900000, 2500, 2400, 3000, 2900),
	}})
	require.NoError(t, err)

	point, ok := tl.CheckpointLead(15)
	require.True(t, ok)
	assert.Equal(t, int64(900000), point.TimestampMs)
	assert.Equal(t, 5*(2500-2400), point.GoldLead)
	assert.Equal(t, 5*(3000-2900), point.XPLead)
}

func TestCheckpointLead_FrameAfterTargetReportsZero(t *testing.T) {
	// Nearest frame is 16:00 for a 15:00 checkpoint: inside the 90s
	// tolerance but after the target, so leads are zeroed by policy.
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(960000, 2500, 2400, 3000, 2900),
	}})
	require.NoError(t, err)

	point, ok := tl.CheckpointLead(15)
	require.True(t, ok)
	assert.Zero(t, point.GoldLead)
	assert.Zero(t, point.XPLead)
	assert.Equal(t, int64(960000), point.TimestampMs)
}

func TestCheckpointLead_Unavailable(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(60000, 1, 1, 1, 1),
	}})
	require.NoError(t, err)

	_, ok := tl.CheckpointLead(15)
	assert.False(t, ok, "nearest frame is 13 minutes away, beyond the 90s tolerance")
}

func TestSummarize(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(60000, 100, 90, 100, 110),   // gold +50, xp -50
		frameAt(120000, 200, 220, 200, 190), // gold -100, xp +50
		frameAt(180000, 400, 300, 400, 350), // gold +500, xp +250
	}})
	require.NoError(t, err)

	summary := tl.Summarize(1, 3)
	require.Len(t, summary.Series, 3)

	assert.Equal(t, 500, summary.MaxAbsGoldLead)
	assert.InDelta(t, float64(50-100+500)/3, summary.AvgGoldLead, 0.001)
	assert.InDelta(t, 100*2.0/3.0, summary.GoldLeadPercent, 0.001)
	assert.InDelta(t, 100*2.0/3.0, summary.XPLeadPercent, 0.001)

	// No frame near minute 15, so the checkpoint contributes zero.
	assert.Zero(t, summary.GoldLeadAt15)
}

func TestSummarize_EmptySeries(t *testing.T) {
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(0, 100, 90, 100, 90),
	}})
	require.NoError(t, err)

	// Minute 5 onwards has no frames at all.
	summary := tl.Summarize(1, 0)
	assert.Empty(t, summary.Series)
	assert.Zero(t, summary.MaxAbsGoldLead)
	assert.Zero(t, summary.AvgGoldLead)
	assert.Zero(t, summary.GoldLeadPercent)
}
