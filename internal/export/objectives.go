// Package export renders stored match data as CSV files and terminal
// tables.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/timeline"
)

// ObjectivesFilename returns the conventional file name for a match's
// objectives report.
func ObjectivesFilename(matchID string) string {
	return fmt.Sprintf("objectives_%s.csv", matchID)
}

// WriteObjectivesCSV writes the objectives-and-gold report for one match:
// a header block, a minute-by-minute gold table, and the objective
// timeline.
func WriteObjectivesCSV(w io.Writer, match *db.Match, teams []db.Team, series map[int]timeline.LeadPoint, objectives []timeline.ObjectiveRecord) error {
	cw := csv.NewWriter(w)

	rows := [][]string{
		{"Match ID:", match.MatchID},
		{"Game Duration:", formatDuration(match.GameDuration)},
		{"Queue:", strconv.Itoa(match.QueueID)},
		{"Game Mode:", match.GameMode},
		{"Winner:", winnerLabel(teams)},
		{""},
		{"Gold Summary (Minute-by-Minute)"},
		{"Minute", "Team 100 Gold", "Team 200 Gold", "Gold Diff (100-200)"},
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	minutes := make([]int, 0, len(series))
	for minute := range series {
		minutes = append(minutes, minute)
	}
	sort.Ints(minutes)
	for _, minute := range minutes {
		point := series[minute]
		if err := cw.Write([]string{
			strconv.Itoa(minute),
			strconv.Itoa(point.BlueGold),
			strconv.Itoa(point.RedGold),
			strconv.Itoa(point.GoldLead),
		}); err != nil {
			return err
		}
	}

	if err := cw.Write([]string{""}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Objective Timeline"}); err != nil {
		return err
	}
	if err := cw.Write([]string{"Time", "Team", "Objective", "Details"}); err != nil {
		return err
	}
	for _, obj := range objectives {
		if err := cw.Write([]string{
			formatClock(obj.TimestampMs),
			teamLabel(obj.KillerTeamID),
			ObjectiveName(obj),
			ObjectiveDetails(obj),
		}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ObjectiveName renders a human-readable name for an objective event.
func ObjectiveName(obj timeline.ObjectiveRecord) string {
	switch obj.Category {
	case timeline.CategoryEliteMonsterKill:
		name := obj.MonsterSubType
		if name == "" {
			name = obj.MonsterType
		}
		if name == "" {
			return "Monster"
		}
		return titleWords(name)
	case timeline.CategoryBuildingKill:
		if obj.BuildingKind == timeline.Tower {
			tower := titleWords(obj.TowerType)
			if tower == "" {
				tower = "Tower"
			}
			if lane := titleWords(obj.LaneType); lane != "" {
				return lane + " " + tower
			}
			return tower
		}
		building := titleWords(obj.BuildingKind.String())
		if lane := titleWords(obj.LaneType); lane != "" {
			return building + " (" + lane + ")"
		}
		return building
	case timeline.CategoryDragonSoulGiven:
		if obj.SoulName != "" {
			return titleWords(obj.SoulName) + " Soul"
		}
		return "Dragon Soul"
	default:
		return titleWords(obj.Category.String())
	}
}

// ObjectiveDetails renders the supporting detail column for an objective
// event.
func ObjectiveDetails(obj timeline.ObjectiveRecord) string {
	var parts []string
	if obj.Category == timeline.CategoryBuildingKill {
		if obj.KillerTeamID == 100 || obj.KillerTeamID == 200 {
			parts = append(parts, fmt.Sprintf("Destroyed by Team %d", obj.KillerTeamID))
		}
		if obj.OwnerTeamID == 100 || obj.OwnerTeamID == 200 {
			parts = append(parts, fmt.Sprintf("Team %d's building", obj.OwnerTeamID))
		}
	}
	if obj.BountyGold > 0 {
		parts = append(parts, fmt.Sprintf("%d gold", obj.BountyGold))
	}
	return strings.Join(parts, "; ")
}

func winnerLabel(teams []db.Team) string {
	for _, team := range teams {
		if team.Win {
			return fmt.Sprintf("Team %d", team.TeamID)
		}
	}
	return "Unknown"
}

func teamLabel(teamID int) string {
	if teamID == 100 || teamID == 200 {
		return fmt.Sprintf("Team %d", teamID)
	}
	return "Neutral"
}

// formatClock renders a timeline timestamp as m:ss.
func formatClock(timestampMs int64) string {
	return fmt.Sprintf("%d:%02d", timestampMs/60000, (timestampMs%60000)/1000)
}

func formatDuration(seconds int) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}

// titleWords turns "BASE_TURRET" into "Base Turret".
func titleWords(s string) string {
	if s == "" {
		return ""
	}
	words := strings.Split(strings.ToLower(strings.ReplaceAll(s, "_", " ")), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
