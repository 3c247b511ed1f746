package export

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/report"
	"github.com/Kash1r/League-Data-Collector/internal/timeline"
)

var (
	blueSide = color.New(color.FgBlue, color.Bold)
	redSide  = color.New(color.FgRed, color.Bold)
	evenTint = color.New(color.FgHiBlack)
)

// leadLabel colors a lead value by which side holds it.
func leadLabel(lead int) string {
	switch {
	case lead > 0:
		return blueSide.Sprintf("+%d", lead)
	case lead < 0:
		return redSide.Sprint(lead)
	default:
		return evenTint.Sprint("0")
	}
}

// RenderLeadTable prints the lead series as a minute-by-minute table
// followed by the rollup stats.
func RenderLeadTable(w io.Writer, summary timeline.LeadSummary) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Minute", "Blue Gold", "Red Gold", "Gold Lead", "XP Lead"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	minutes := make([]int, 0, len(summary.Series))
	for minute := range summary.Series {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)

	var data [][]string
	for _, minute := range minutes {
		point := summary.Series[minute]
		data = append(data, []string{
			strconv.Itoa(minute),
			strconv.Itoa(point.BlueGold),
			strconv.Itoa(point.RedGold),
			leadLabel(point.GoldLead),
			leadLabel(point.XPLead),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nGold lead @15: %s  XP lead @15: %s\n",
		leadLabel(summary.GoldLeadAt15), leadLabel(summary.XPLeadAt15))
	fmt.Fprintf(w, "Max swing: %d gold / %d XP  Avg: %.0f gold / %.0f XP\n",
		summary.MaxAbsGoldLead, summary.MaxAbsXPLead, summary.AvgGoldLead, summary.AvgXPLead)
	return nil
}

// RenderParticipationTable prints every player's objective involvement.
func RenderParticipationTable(w io.Writer, rows []report.ParticipantRow) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Player", "Champion", "Dragons", "Barons", "Heralds", "Turrets", "Inhibs", "Secured", "Contested %"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, row := range rows {
		p := row.Participation
		data = append(data, []string{
			playerName(row.Participant),
			row.Participant.ChampionName,
			fmt.Sprintf("%d/%d", p.Dragon.Kills, p.Dragon.Assists),
			fmt.Sprintf("%d/%d", p.Baron.Kills, p.Baron.Assists),
			fmt.Sprintf("%d/%d", p.RiftHerald.Kills, p.RiftHerald.Assists),
			strconv.Itoa(p.Turrets.Kills),
			strconv.Itoa(p.Inhibitors.Kills),
			strconv.Itoa(p.ObjectivesSecured),
			strconv.Itoa(p.ContestedPercent),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// RenderObjectivesTable prints the objective timeline.
func RenderObjectivesTable(w io.Writer, objectives []timeline.ObjectiveRecord) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Time", "Team", "Objective", "Details"})

	var data [][]string
	for _, obj := range objectives {
		team := teamLabel(obj.KillerTeamID)
		switch obj.KillerTeamID {
		case 100:
			team = blueSide.Sprint(team)
		case 200:
			team = redSide.Sprint(team)
		}
		data = append(data, []string{
			formatClock(obj.TimestampMs),
			team,
			ObjectiveName(obj),
			ObjectiveDetails(obj),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// RenderStats prints database row counts.
func RenderStats(w io.Writer, counts db.Counts) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Table", "Rows"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"summoners", strconv.Itoa(counts.Summoners)},
		{"matches", strconv.Itoa(counts.Matches)},
		{"participants", strconv.Itoa(counts.Participants)},
		{"timelines", strconv.Itoa(counts.Timelines)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
