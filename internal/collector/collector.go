// Package collector fetches match history from the Riot API and persists
// it through the storage layer.
package collector

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/rs/zerolog"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

const (
	// Bloom filter sizing: matches seen within one process lifetime.
	// False positives only cost a redundant DB existence check.
	bloomCapacity      = 1_000_000
	bloomFalsePositive = 0.01
)

// MatchFetcher is the slice of the Riot client the collector needs.
type MatchFetcher interface {
	GetAccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*riot.AccountResponse, error)
	GetMatchHistory(ctx context.Context, region, puuid string, opts riot.MatchHistoryOptions) ([]string, error)
	GetMatch(ctx context.Context, region, matchID string) (*riot.MatchResponse, error)
	GetTimeline(ctx context.Context, region, matchID string) (*riot.TimelineResponse, error)
}

// Store is the slice of the storage layer the collector needs.
type Store interface {
	UpsertSummoner(ctx context.Context, s *db.Summoner) error
	MatchExists(ctx context.Context, matchID string) (bool, error)
	HasTimeline(ctx context.Context, matchID string) (bool, error)
	InsertMatch(ctx context.Context, m *db.Match) error
	InsertTeam(ctx context.Context, t *db.Team) error
	InsertParticipant(ctx context.Context, p *db.Participant) error
	StoreTimeline(ctx context.Context, matchID string, tl *riot.TimelineResponse) error
}

// Options controls one collection run.
type Options struct {
	Region       string
	Count        int  // matches to fetch, max 100
	Queue        int  // queue ID filter, 0 = all
	WithTimeline bool // also fetch and store timelines
	Force        bool // refetch matches that already exist
}

// Result reports what one collection run did.
type Result struct {
	MatchesFetched  int
	MatchesSkipped  int
	TimelinesStored int
	Errors          int
}

// Collector walks a player's match history and persists it.
type Collector struct {
	client MatchFetcher
	store  Store
	seen   *bloom.BloomFilter
	log    zerolog.Logger
}

// New creates a Collector.
func New(client MatchFetcher, store Store, log zerolog.Logger) *Collector {
	return &Collector{
		client: client,
		store:  store,
		seen:   bloom.NewWithEstimates(bloomCapacity, bloomFalsePositive),
		log:    log.With().Str("component", "collector").Logger(),
	}
}

// ResolveRiotID looks up the account behind "GameName#TagLine" and stores
// the summoner record.
func (c *Collector) ResolveRiotID(ctx context.Context, riotID, region string) (*db.Summoner, error) {
	parts := strings.SplitN(riotID, "#", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid Riot ID %q, expected 'GameName#TagLine'", riotID)
	}
	gameName := strings.TrimSpace(parts[0])
	tagLine := strings.TrimSpace(parts[1])

	account, err := c.client.GetAccountByRiotID(ctx, region, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", riotID, err)
	}

	summoner := &db.Summoner{
		PUUID:    account.PUUID,
		GameName: account.GameName,
		TagLine:  account.TagLine,
		Region:   region,
	}
	if err := c.store.UpsertSummoner(ctx, summoner); err != nil {
		return nil, fmt.Errorf("failed to store summoner: %w", err)
	}

	c.log.Info().Str("riot_id", riotID).Str("puuid", account.PUUID).Msg("Resolved account")
	return summoner, nil
}

// Collect fetches a player's recent matches and stores them. Matches that
// already exist are skipped unless Force is set; individual match failures
// are logged and counted, not fatal.
func (c *Collector) Collect(ctx context.Context, puuid string, opts Options) (Result, error) {
	var res Result

	matchIDs, err := c.client.GetMatchHistory(ctx, opts.Region, puuid, riot.MatchHistoryOptions{
		Count: opts.Count,
		Queue: opts.Queue,
	})
	if err != nil {
		return res, fmt.Errorf("failed to fetch match history: %w", err)
	}
	c.log.Info().Int("count", len(matchIDs)).Str("puuid", puuid).Msg("Fetched match IDs")

	for _, matchID := range matchIDs {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		skip, err := c.shouldSkip(ctx, matchID, opts.Force)
		if err != nil {
			c.log.Error().Err(err).Str("match_id", matchID).Msg("Existence check failed")
			res.Errors++
			continue
		}
		if skip {
			res.MatchesSkipped++
			continue
		}

		if err := c.collectMatch(ctx, matchID, opts); err != nil {
			if errors.Is(err, context.Canceled) {
				return res, err
			}
			c.log.Error().Err(err).Str("match_id", matchID).Msg("Failed to collect match")
			res.Errors++
			continue
		}
		res.MatchesFetched++

		if opts.WithTimeline {
			if err := c.collectTimeline(ctx, matchID, opts); err != nil {
				c.log.Warn().Err(err).Str("match_id", matchID).Msg("Failed to collect timeline")
				res.Errors++
			} else {
				res.TimelinesStored++
			}
		}
	}

	c.log.Info().
		Int("fetched", res.MatchesFetched).
		Int("skipped", res.MatchesSkipped).
		Int("timelines", res.TimelinesStored).
		Int("errors", res.Errors).
		Msg("Collection run finished")
	return res, nil
}

// shouldSkip consults the in-memory bloom filter before the DB so repeat
// encounters of the same match avoid a round trip.
func (c *Collector) shouldSkip(ctx context.Context, matchID string, force bool) (bool, error) {
	if force {
		return false, nil
	}
	if !c.seen.TestString(matchID) {
		c.seen.AddString(matchID)
		exists, err := c.store.MatchExists(ctx, matchID)
		if err != nil {
			return false, err
		}
		return exists, nil
	}
	// Bloom filters can report false positives, so confirm with the DB.
	return c.store.MatchExists(ctx, matchID)
}

func (c *Collector) collectMatch(ctx context.Context, matchID string, opts Options) error {
	match, err := c.client.GetMatch(ctx, opts.Region, matchID)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}

	if err := c.store.InsertMatch(ctx, &db.Match{
		MatchID:      match.Metadata.MatchID,
		PlatformID:   match.Info.PlatformID,
		GameVersion:  match.Info.GameVersion,
		GameMode:     match.Info.GameMode,
		GameType:     match.Info.GameType,
		MapID:        match.Info.MapID,
		QueueID:      match.Info.QueueID,
		GameDuration: match.Info.GameDuration,
		GameCreation: match.Info.GameCreation,
	}); err != nil {
		return fmt.Errorf("store match: %w", err)
	}

	for _, team := range match.Info.Teams {
		row := &db.Team{
			MatchID: match.Metadata.MatchID,
			TeamID:  team.TeamID,
			Win:     team.Win,
		}
		if obj := team.Objectives; obj != nil {
			row.FirstBlood = obj.Champion.First
			row.FirstTower = obj.Tower.First
			row.FirstBaron = obj.Baron.First
			row.FirstDragon = obj.Dragon.First
			row.TowerKills = obj.Tower.Kills
			row.InhibitorKills = obj.Inhibitor.Kills
			row.BaronKills = obj.Baron.Kills
			row.DragonKills = obj.Dragon.Kills
			row.RiftHeraldKills = obj.RiftHerald.Kills
		}
		if err := c.store.InsertTeam(ctx, row); err != nil {
			return fmt.Errorf("store team %d: %w", team.TeamID, err)
		}
	}

	for _, p := range match.Info.Participants {
		if err := c.store.InsertParticipant(ctx, &db.Participant{
			MatchID:        match.Metadata.MatchID,
			ParticipantID:  p.ParticipantID,
			PUUID:          p.PUUID,
			TeamID:         p.TeamID,
			GameName:       p.RiotIdGameName,
			TagLine:        p.RiotIdTagline,
			ChampionID:     p.ChampionID,
			ChampionName:   p.ChampionName,
			TeamPosition:   p.TeamPosition,
			Win:            p.Win,
			Kills:          p.Kills,
			Deaths:         p.Deaths,
			Assists:        p.Assists,
			ChampLevel:     p.ChampLevel,
			CreepScore:     p.TotalMinionsKilled + p.NeutralMinionsKilled,
			GoldEarned:     p.GoldEarned,
			DamageToChamps: p.DamageDealtToChampions,
			DamageTaken:    p.TotalDamageTaken,
			VisionScore:    p.VisionScore,
			WardsPlaced:    p.WardsPlaced,
			WardsKilled:    p.WardsKilled,
			Summoner1ID:    p.Summoner1ID,
			Summoner2ID:    p.Summoner2ID,
			Items:          [7]int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6},
		}); err != nil {
			return fmt.Errorf("store participant %d: %w", p.ParticipantID, err)
		}
	}

	return nil
}

func (c *Collector) collectTimeline(ctx context.Context, matchID string, opts Options) error {
	if !opts.Force {
		has, err := c.store.HasTimeline(ctx, matchID)
		if err != nil {
			return err
		}
		if has {
			return nil
		}
	}

	tl, err := c.client.GetTimeline(ctx, opts.Region, matchID)
	if err != nil {
		return fmt.Errorf("fetch timeline: %w", err)
	}
	return c.store.StoreTimeline(ctx, matchID, tl)
}
