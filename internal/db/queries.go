package db

import (
	"context"
)

// Summoner is a tracked player.
type Summoner struct {
	PUUID         string `json:"puuid"`
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	Region        string `json:"region"`
	SummonerLevel int    `json:"summonerLevel"`
}

// Match is one stored match record.
type Match struct {
	MatchID      string `json:"matchId"`
	PlatformID   string `json:"platformId"`
	GameVersion  string `json:"gameVersion"`
	GameMode     string `json:"gameMode"`
	GameType     string `json:"gameType"`
	MapID        int    `json:"mapId"`
	QueueID      int    `json:"queueId"`
	GameDuration int    `json:"gameDuration"`
	GameCreation int64  `json:"gameCreation"`
}

// Team is one side of a stored match.
type Team struct {
	MatchID         string `json:"matchId"`
	TeamID          int    `json:"teamId"`
	Win             bool   `json:"win"`
	FirstBlood      bool   `json:"firstBlood"`
	FirstTower      bool   `json:"firstTower"`
	FirstBaron      bool   `json:"firstBaron"`
	FirstDragon     bool   `json:"firstDragon"`
	TowerKills      int    `json:"towerKills"`
	InhibitorKills  int    `json:"inhibitorKills"`
	BaronKills      int    `json:"baronKills"`
	DragonKills     int    `json:"dragonKills"`
	RiftHeraldKills int    `json:"riftHeraldKills"`
}

// Participant is a player's row in a stored match.
type Participant struct {
	MatchID        string `json:"matchId"`
	ParticipantID  int    `json:"participantId"`
	PUUID          string `json:"puuid"`
	TeamID         int    `json:"teamId"`
	GameName       string `json:"gameName"`
	TagLine        string `json:"tagLine"`
	ChampionID     int    `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamPosition   string `json:"teamPosition"`
	Win            bool   `json:"win"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	ChampLevel     int    `json:"champLevel"`
	CreepScore     int    `json:"creepScore"`
	GoldEarned     int    `json:"goldEarned"`
	DamageToChamps int    `json:"damageToChampions"`
	DamageTaken    int    `json:"damageTaken"`
	VisionScore    int    `json:"visionScore"`
	WardsPlaced    int    `json:"wardsPlaced"`
	WardsKilled    int    `json:"wardsKilled"`
	Summoner1ID    int    `json:"summoner1Id"`
	Summoner2ID    int    `json:"summoner2Id"`
	Items          [7]int `json:"items"`
}

// UpsertSummoner inserts or refreshes a summoner record.
func (db *DB) UpsertSummoner(ctx context.Context, s *Summoner) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO summoners (puuid, game_name, tag_line, region, summoner_level)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (puuid) DO UPDATE SET
			game_name = EXCLUDED.game_name,
			tag_line = EXCLUDED.tag_line,
			region = EXCLUDED.region,
			summoner_level = EXCLUDED.summoner_level
	`, s.PUUID, s.GameName, s.TagLine, s.Region, s.SummonerLevel)
	return err
}

// GetSummonerByName finds a summoner by game name and region.
func (db *DB) GetSummonerByName(ctx context.Context, gameName, region string) (*Summoner, error) {
	var s Summoner
	err := db.pool.QueryRow(ctx, `
		SELECT puuid, game_name, tag_line, region, summoner_level
		FROM summoners
		WHERE LOWER(game_name) = LOWER($1) AND region = $2
	`, gameName, region).Scan(&s.PUUID, &s.GameName, &s.TagLine, &s.Region, &s.SummonerLevel)
	if err != nil {
		return nil, noRowsAsNotFound(err)
	}
	return &s, nil
}

// InsertMatch inserts a match if it doesn't exist.
func (db *DB) InsertMatch(ctx context.Context, m *Match) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO matches (match_id, platform_id, game_version, game_mode, game_type,
			map_id, queue_id, game_duration, game_creation)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (match_id) DO NOTHING
	`, m.MatchID, m.PlatformID, m.GameVersion, m.GameMode, m.GameType,
		m.MapID, m.QueueID, m.GameDuration, m.GameCreation)
	return err
}

// GetMatch returns one match by ID.
func (db *DB) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	var m Match
	err := db.pool.QueryRow(ctx, `
		SELECT match_id, COALESCE(platform_id, ''), COALESCE(game_version, ''),
			COALESCE(game_mode, ''), COALESCE(game_type, ''), COALESCE(map_id, 0),
			COALESCE(queue_id, 0), game_duration, COALESCE(game_creation, 0)
		FROM matches WHERE match_id = $1
	`, matchID).Scan(&m.MatchID, &m.PlatformID, &m.GameVersion, &m.GameMode, &m.GameType,
		&m.MapID, &m.QueueID, &m.GameDuration, &m.GameCreation)
	if err != nil {
		return nil, noRowsAsNotFound(err)
	}
	return &m, nil
}

// MatchExists checks if a match already exists in the database.
func (db *DB) MatchExists(ctx context.Context, matchID string) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM matches WHERE match_id = $1)
	`, matchID).Scan(&exists)
	return exists, err
}

// InsertTeam inserts a team row, replacing any previous one for the match.
func (db *DB) InsertTeam(ctx context.Context, t *Team) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO teams (match_id, team_id, win, first_blood, first_tower, first_baron,
			first_dragon, tower_kills, inhibitor_kills, baron_kills, dragon_kills, rift_herald_kills)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (match_id, team_id) DO UPDATE SET
			win = EXCLUDED.win,
			tower_kills = EXCLUDED.tower_kills,
			inhibitor_kills = EXCLUDED.inhibitor_kills,
			baron_kills = EXCLUDED.baron_kills,
			dragon_kills = EXCLUDED.dragon_kills,
			rift_herald_kills = EXCLUDED.rift_herald_kills
	`, t.MatchID, t.TeamID, t.Win, t.FirstBlood, t.FirstTower, t.FirstBaron,
		t.FirstDragon, t.TowerKills, t.InhibitorKills, t.BaronKills, t.DragonKills, t.RiftHeraldKills)
	return err
}

// GetTeams returns both team rows for a match.
func (db *DB) GetTeams(ctx context.Context, matchID string) ([]Team, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT match_id, team_id, win,
			COALESCE(first_blood, false), COALESCE(first_tower, false),
			COALESCE(first_baron, false), COALESCE(first_dragon, false),
			COALESCE(tower_kills, 0), COALESCE(inhibitor_kills, 0),
			COALESCE(baron_kills, 0), COALESCE(dragon_kills, 0),
			COALESCE(rift_herald_kills, 0)
		FROM teams WHERE match_id = $1 ORDER BY team_id
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.MatchID, &t.TeamID, &t.Win, &t.FirstBlood, &t.FirstTower,
			&t.FirstBaron, &t.FirstDragon, &t.TowerKills, &t.InhibitorKills,
			&t.BaronKills, &t.DragonKills, &t.RiftHeraldKills); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// InsertParticipant inserts a participant row, replacing any previous one.
func (db *DB) InsertParticipant(ctx context.Context, p *Participant) error {
	_, err := db.pool.Exec(ctx, `
		INSERT INTO participants (match_id, participant_id, puuid, team_id, game_name, tag_line,
			champion_id, champion_name, team_position, win, kills, deaths, assists,
			champ_level, creep_score, gold_earned, damage_to_champions, damage_taken,
			vision_score, wards_placed, wards_killed, summoner1_id, summoner2_id,
			item0, item1, item2, item3, item4, item5, item6)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30)
		ON CONFLICT (match_id, participant_id) DO UPDATE SET
			puuid = EXCLUDED.puuid,
			game_name = EXCLUDED.game_name,
			tag_line = EXCLUDED.tag_line,
			kills = EXCLUDED.kills,
			deaths = EXCLUDED.deaths,
			assists = EXCLUDED.assists,
			champ_level = EXCLUDED.champ_level,
			creep_score = EXCLUDED.creep_score,
			gold_earned = EXCLUDED.gold_earned,
			damage_to_champions = EXCLUDED.damage_to_champions,
			damage_taken = EXCLUDED.damage_taken,
			vision_score = EXCLUDED.vision_score,
			wards_placed = EXCLUDED.wards_placed,
			wards_killed = EXCLUDED.wards_killed
	`, p.MatchID, p.ParticipantID, p.PUUID, p.TeamID, p.GameName, p.TagLine,
		p.ChampionID, p.ChampionName, p.TeamPosition, p.Win, p.Kills, p.Deaths, p.Assists,
		p.ChampLevel, p.CreepScore, p.GoldEarned, p.DamageToChamps, p.DamageTaken,
		p.VisionScore, p.WardsPlaced, p.WardsKilled, p.Summoner1ID, p.Summoner2ID,
		p.Items[0], p.Items[1], p.Items[2], p.Items[3], p.Items[4], p.Items[5], p.Items[6])
	return err
}

// GetParticipants returns all participant rows for a match ordered by slot.
func (db *DB) GetParticipants(ctx context.Context, matchID string) ([]Participant, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT match_id, participant_id, puuid, team_id,
			COALESCE(game_name, ''), COALESCE(tag_line, ''),
			champion_id, COALESCE(champion_name, ''), COALESCE(team_position, ''), win,
			kills, deaths, assists,
			COALESCE(champ_level, 0), COALESCE(creep_score, 0), COALESCE(gold_earned, 0),
			COALESCE(damage_to_champions, 0), COALESCE(damage_taken, 0),
			COALESCE(vision_score, 0), COALESCE(wards_placed, 0), COALESCE(wards_killed, 0),
			COALESCE(summoner1_id, 0), COALESCE(summoner2_id, 0),
			COALESCE(item0, 0), COALESCE(item1, 0), COALESCE(item2, 0),
			COALESCE(item3, 0), COALESCE(item4, 0), COALESCE(item5, 0), COALESCE(item6, 0)
		FROM participants WHERE match_id = $1 ORDER BY participant_id
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.MatchID, &p.ParticipantID, &p.PUUID, &p.TeamID,
			&p.GameName, &p.TagLine, &p.ChampionID, &p.ChampionName, &p.TeamPosition, &p.Win,
			&p.Kills, &p.Deaths, &p.Assists,
			&p.ChampLevel, &p.CreepScore, &p.GoldEarned, &p.DamageToChamps, &p.DamageTaken,
			&p.VisionScore, &p.WardsPlaced, &p.WardsKilled, &p.Summoner1ID, &p.Summoner2ID,
			&p.Items[0], &p.Items[1], &p.Items[2], &p.Items[3], &p.Items[4], &p.Items[5], &p.Items[6]); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, rows.Err()
}

// MatchIDsForPUUID returns the stored match IDs a player appears in, newest first.
func (db *DB) MatchIDsForPUUID(ctx context.Context, puuid string) ([]string, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT p.match_id
		FROM participants p
		JOIN matches m ON m.match_id = p.match_id
		WHERE p.puuid = $1
		ORDER BY m.game_creation DESC
	`, puuid)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// RecentMatches returns the most recent matches.
func (db *DB) RecentMatches(ctx context.Context, limit int) ([]Match, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT match_id, COALESCE(platform_id, ''), COALESCE(game_version, ''),
			COALESCE(game_mode, ''), COALESCE(game_type, ''), COALESCE(map_id, 0),
			COALESCE(queue_id, 0), game_duration, COALESCE(game_creation, 0)
		FROM matches
		ORDER BY game_creation DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []Match
	for rows.Next() {
		var m Match
		if err := rows.Scan(&m.MatchID, &m.PlatformID, &m.GameVersion, &m.GameMode, &m.GameType,
			&m.MapID, &m.QueueID, &m.GameDuration, &m.GameCreation); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// Counts summarizes table sizes for the stats command.
type Counts struct {
	Summoners    int `json:"summoners"`
	Matches      int `json:"matches"`
	Participants int `json:"participants"`
	Timelines    int `json:"timelines"`
}

// GetCounts returns row counts for all primary tables.
func (db *DB) GetCounts(ctx context.Context) (Counts, error) {
	var c Counts
	err := db.pool.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM summoners),
			(SELECT COUNT(*) FROM matches),
			(SELECT COUNT(*) FROM participants),
			(SELECT COUNT(*) FROM timelines)
	`).Scan(&c.Summoners, &c.Matches, &c.Participants, &c.Timelines)
	return c, err
}
