package timeline

import "github.com/Kash1r/League-Data-Collector/internal/riot"

// TeamTotals holds one team's summed resources at a frame.
type TeamTotals struct {
	Gold int `json:"gold"`
	XP   int `json:"xp"`
}

// TeamTotalsAt sums the participant frames of a frame into blue and red
// totals. The split is purely positional: slot <= TeamSize is blue (100),
// the rest red (200). No per-player team field is consulted. Missing gold
// or XP contributes zero.
func (t *Timeline) TeamTotalsAt(frame *riot.TimelineFrame) (blue, red TeamTotals) {
	if frame == nil {
		return
	}
	for key, pf := range frame.ParticipantFrames {
		slot := slotNumber(key, pf)
		if slot <= 0 {
			continue
		}
		if slot <= t.teamSize {
			blue.Gold += pf.TotalGold
			blue.XP += pf.XP
		} else {
			red.Gold += pf.TotalGold
			red.XP += pf.XP
		}
	}
	return
}

// LeadPoint captures both teams' totals at one resolved minute, with leads
// expressed from the blue side (BlueGoldLead == -red gold lead).
type LeadPoint struct {
	Minute      int   `json:"minute"`
	TimestampMs int64 `json:"timestampMs"`

	BlueGold int `json:"blueGold"`
	RedGold  int `json:"redGold"`
	BlueXP   int `json:"blueXp"`
	RedXP    int `json:"redXp"`

	GoldLead int `json:"goldLead"` // blue minus red
	XPLead   int `json:"xpLead"`   // blue minus red
}

// LeadSeries computes lead points for minutes 1..maxMinutes stepping by
// intervalMinutes. Minutes with no frame inside SeriesTolerance produce no
// entry, so the result is sparse and callers must not assume every minute
// is present.
func (t *Timeline) LeadSeries(intervalMinutes, maxMinutes int) map[int]LeadPoint {
	series := make(map[int]LeadPoint)
	if intervalMinutes <= 0 || maxMinutes <= 0 {
		return series
	}

	for minute := intervalMinutes; minute <= maxMinutes; minute += intervalMinutes {
		frame, ok := t.Resolve(int64(minute)*60000, SeriesTolerance)
		if !ok {
			continue
		}
		series[minute] = t.leadPointAt(minute, frame)
	}
	return series
}

// CheckpointLead resolves the lead at a single minute mark using the wider
// CheckpointTolerance. When the nearest frame lies strictly after the
// target time the leads are reported as zero rather than unavailable;
// this mirrors the checkpoint contract the exports were built around and
// is a deliberate policy, not interpolation.
func (t *Timeline) CheckpointLead(minute int) (LeadPoint, bool) {
	targetMs := int64(minute) * 60000
	frame, ok := t.Resolve(targetMs, CheckpointTolerance)
	if !ok {
		return LeadPoint{}, false
	}

	point := t.leadPointAt(minute, frame)
	if frame.Timestamp > targetMs {
		point.GoldLead = 0
		point.XPLead = 0
	}
	return point, true
}

func (t *Timeline) leadPointAt(minute int, frame *riot.TimelineFrame) LeadPoint {
	blue, red := t.TeamTotalsAt(frame)
	return LeadPoint{
		Minute:      minute,
		TimestampMs: frame.Timestamp,
		BlueGold:    blue.Gold,
		RedGold:     red.Gold,
		BlueXP:      blue.XP,
		RedXP:       red.XP,
		GoldLead:    blue.Gold - red.Gold,
		XPLead:      blue.XP - red.XP,
	}
}

// LeadSummary aggregates a lead series into scalar rollups for the blue
// side. An empty series yields all-zero rollups, never an error.
type LeadSummary struct {
	Series map[int]LeadPoint `json:"series"`

	GoldLeadAt15 int `json:"goldLeadAt15"`
	XPLeadAt15   int `json:"xpLeadAt15"`

	MaxAbsGoldLead int     `json:"maxAbsGoldLead"`
	MaxAbsXPLead   int     `json:"maxAbsXpLead"`
	AvgGoldLead    float64 `json:"avgGoldLead"`
	AvgXPLead      float64 `json:"avgXpLead"`

	// Percent of resolved minutes where the blue side was ahead.
	GoldLeadPercent float64 `json:"goldLeadPercent"`
	XPLeadPercent   float64 `json:"xpLeadPercent"`
}

// Summarize computes the lead series plus its rollups and the 15-minute
// checkpoint in one pass.
func (t *Timeline) Summarize(intervalMinutes, maxMinutes int) LeadSummary {
	summary := LeadSummary{Series: t.LeadSeries(intervalMinutes, maxMinutes)}

	if checkpoint, ok := t.CheckpointLead(15); ok {
		summary.GoldLeadAt15 = checkpoint.GoldLead
		summary.XPLeadAt15 = checkpoint.XPLead
	}

	n := len(summary.Series)
	if n == 0 {
		return summary
	}

	var goldSum, xpSum float64
	var goldAhead, xpAhead int
	for _, p := range summary.Series {
		if abs := absInt(p.GoldLead); abs > summary.MaxAbsGoldLead {
			summary.MaxAbsGoldLead = abs
		}
		if abs := absInt(p.XPLead); abs > summary.MaxAbsXPLead {
			summary.MaxAbsXPLead = abs
		}
		goldSum += float64(p.GoldLead)
		xpSum += float64(p.XPLead)
		if p.GoldLead > 0 {
			goldAhead++
		}
		if p.XPLead > 0 {
			xpAhead++
		}
	}

	summary.AvgGoldLead = goldSum / float64(n)
	summary.AvgXPLead = xpSum / float64(n)
	summary.GoldLeadPercent = 100 * float64(goldAhead) / float64(n)
	summary.XPLeadPercent = 100 * float64(xpAhead) / float64(n)
	return summary
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
