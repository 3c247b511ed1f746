package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Kash1r/League-Data-Collector/internal/db"
)

// MatchFilename returns the conventional file name for a match summary
// export.
func MatchFilename(matchID string) string {
	return fmt.Sprintf("match_%s.csv", matchID)
}

// WriteMatchCSV writes the full summary for one match: match info, then
// every participant grouped by team with per-player stat blocks.
// highlightPUUID marks the tracked player's row with a star.
func WriteMatchCSV(w io.Writer, match *db.Match, teams []db.Team, participants []db.Participant, highlightPUUID string) error {
	cw := csv.NewWriter(w)

	writeSection := func(header string, rows [][]string) error {
		if err := cw.Write([]string{header}); err != nil {
			return err
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
		return cw.Write([]string{""})
	}

	created := "Unknown"
	if match.GameCreation > 0 {
		created = time.UnixMilli(match.GameCreation).UTC().Format("2006-01-02 15:04")
	}
	if err := writeSection("MATCH INFORMATION", [][]string{
		{"Match ID", match.MatchID},
		{"Game Mode", match.GameMode},
		{"Queue", strconv.Itoa(match.QueueID)},
		{"Date", created},
		{"Duration", formatDuration(match.GameDuration)},
		{"Version", match.GameVersion},
	}); err != nil {
		return err
	}

	byTeam := map[int][]db.Participant{}
	for _, p := range participants {
		byTeam[p.TeamID] = append(byTeam[p.TeamID], p)
	}

	for _, teamID := range []int{100, 200} {
		players := byTeam[teamID]
		if len(players) == 0 {
			continue
		}
		if err := cw.Write([]string{teamHeader(teamID, teams)}); err != nil {
			return err
		}
		if err := cw.Write([]string{""}); err != nil {
			return err
		}
		for _, p := range players {
			if err := writeParticipant(writeSection, match, p, p.PUUID == highlightPUUID); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeParticipant(writeSection func(string, [][]string) error, match *db.Match, p db.Participant, highlight bool) error {
	name := playerName(p)
	if highlight {
		name = "* " + name
	}

	csPerMin := 0.0
	if match.GameDuration > 0 {
		csPerMin = float64(p.CreepScore) / (float64(match.GameDuration) / 60)
	}

	var items []string
	for _, id := range p.Items {
		if itemName := ItemName(id); itemName != "" {
			items = append(items, itemName)
		}
	}
	itemList := "None"
	if len(items) > 0 {
		itemList = strings.Join(items, ", ")
	}

	return writeSection("PARTICIPANT: "+name, [][]string{
		{"Champion", p.ChampionName},
		{"Role", p.TeamPosition},
		{"Level", strconv.Itoa(p.ChampLevel)},
		{"KDA", fmt.Sprintf("%d/%d/%d", p.Kills, p.Deaths, p.Assists)},
		{"CS", fmt.Sprintf("%d (%.1f/min)", p.CreepScore, csPerMin)},
		{"Gold", strconv.Itoa(p.GoldEarned)},
		{"Damage to Champs", strconv.Itoa(p.DamageToChamps)},
		{"Damage Taken", strconv.Itoa(p.DamageTaken)},
		{"Vision Score", strconv.Itoa(p.VisionScore)},
		{"Wards Placed/Killed", fmt.Sprintf("%d/%d", p.WardsPlaced, p.WardsKilled)},
		{"Summoner Spells", SummonerSpellName(p.Summoner1ID) + ", " + SummonerSpellName(p.Summoner2ID)},
		{"Items", itemList},
	})
}

func playerName(p db.Participant) string {
	if p.GameName != "" {
		if p.TagLine != "" {
			return p.GameName + "#" + p.TagLine
		}
		return p.GameName
	}
	return fmt.Sprintf("Participant %d", p.ParticipantID)
}

func teamHeader(teamID int, teams []db.Team) string {
	outcome := "UNKNOWN"
	var stats string
	for _, team := range teams {
		if team.TeamID != teamID {
			continue
		}
		if team.Win {
			outcome = "WIN"
		} else {
			outcome = "LOSS"
		}
		stats = fmt.Sprintf(": Towers: %d | Dragons: %d | Barons: %d | Heralds: %d",
			team.TowerKills, team.DragonKills, team.BaronKills, team.RiftHeraldKills)
		break
	}
	return fmt.Sprintf("TEAM %d (%s)%s", teamID, outcome, stats)
}
