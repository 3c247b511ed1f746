// Package db is the Postgres storage layer for collected match data.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("db: not found")

type DB struct {
	pool *pgxpool.Pool
}

// New creates a new database connection pool and verifies connectivity.
func New(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the database connection pool.
func (db *DB) Close() {
	db.pool.Close()
}

// Pool returns the underlying connection pool for custom queries.
func (db *DB) Pool() *pgxpool.Pool {
	return db.pool
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS summoners (
		puuid          TEXT PRIMARY KEY,
		game_name      TEXT NOT NULL,
		tag_line       TEXT NOT NULL DEFAULT '',
		region         TEXT NOT NULL,
		summoner_level INT  NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS matches (
		match_id      TEXT PRIMARY KEY,
		platform_id   TEXT,
		game_version  TEXT,
		game_mode     TEXT,
		game_type     TEXT,
		map_id        INT,
		queue_id      INT,
		game_duration INT NOT NULL,
		game_creation BIGINT
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		match_id           TEXT NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
		team_id            INT  NOT NULL,
		win                BOOL NOT NULL,
		first_blood        BOOL,
		first_tower        BOOL,
		first_baron        BOOL,
		first_dragon       BOOL,
		tower_kills        INT,
		inhibitor_kills    INT,
		baron_kills        INT,
		dragon_kills       INT,
		rift_herald_kills  INT,
		PRIMARY KEY (match_id, team_id)
	)`,
	`CREATE TABLE IF NOT EXISTS participants (
		match_id       TEXT NOT NULL REFERENCES matches(match_id) ON DELETE CASCADE,
		participant_id INT  NOT NULL,
		puuid          TEXT NOT NULL,
		team_id        INT  NOT NULL,
		game_name      TEXT,
		tag_line       TEXT,
		champion_id    INT  NOT NULL,
		champion_name  TEXT,
		team_position  TEXT,
		win            BOOL NOT NULL,
		kills          INT NOT NULL DEFAULT 0,
		deaths         INT NOT NULL DEFAULT 0,
		assists        INT NOT NULL DEFAULT 0,
		champ_level    INT,
		creep_score    INT,
		gold_earned    INT,
		damage_to_champions INT,
		damage_taken   INT,
		vision_score   INT,
		wards_placed   INT,
		wards_killed   INT,
		summoner1_id   INT,
		summoner2_id   INT,
		item0 INT, item1 INT, item2 INT,
		item3 INT, item4 INT, item5 INT, item6 INT,
		PRIMARY KEY (match_id, participant_id)
	)`,
	`CREATE TABLE IF NOT EXISTS timelines (
		match_id       TEXT PRIMARY KEY REFERENCES matches(match_id) ON DELETE CASCADE,
		frame_interval BIGINT NOT NULL DEFAULT 60000,
		payload        JSONB  NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS ix_participants_puuid ON participants(puuid)`,
	`CREATE INDEX IF NOT EXISTS ix_matches_queue_creation ON matches(queue_id, game_creation)`,
}

// Init creates all tables and indexes if they do not exist.
func (db *DB) Init(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run schema statement: %w", err)
		}
	}
	return nil
}

// Reset drops all tables. Destructive; callers must confirm first.
func (db *DB) Reset(ctx context.Context) error {
	for _, table := range []string{"timelines", "participants", "teams", "matches", "summoners"} {
		if _, err := db.pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			return fmt.Errorf("failed to drop %s: %w", table, err)
		}
	}
	return db.Init(ctx)
}

func noRowsAsNotFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
