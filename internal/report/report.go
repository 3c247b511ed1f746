// Package report answers timeline questions about stored matches. Derived
// numbers are recomputed from the raw payload on every call rather than
// cached, so a fix to the math never requires a refetch.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/riot"
	"github.com/Kash1r/League-Data-Collector/internal/timeline"
)

// ErrNoTimeline means no timeline payload is stored for the match.
var ErrNoTimeline = errors.New("no timeline stored for match")

// TimelineLoader is the slice of the storage layer the reporter needs.
type TimelineLoader interface {
	LoadTimeline(ctx context.Context, matchID string) (*riot.TimelineResponse, error)
	GetParticipants(ctx context.Context, matchID string) ([]db.Participant, error)
}

// Reporter builds timeline reports for stored matches.
type Reporter struct {
	store    TimelineLoader
	teamSize int
	log      zerolog.Logger
}

// New creates a Reporter. teamSize controls the blue/red participant
// split; pass 0 for the standard five-a-side split.
func New(store TimelineLoader, teamSize int, log zerolog.Logger) *Reporter {
	if teamSize <= 0 {
		teamSize = timeline.DefaultTeamSize
	}
	return &Reporter{
		store:    store,
		teamSize: teamSize,
		log:      log.With().Str("component", "report").Logger(),
	}
}

// load fetches the stored payload and indexes it. A payload with no
// frames yields a nil timeline, not an error; callers report empty
// results for it.
func (r *Reporter) load(ctx context.Context, matchID string) (*timeline.Timeline, error) {
	payload, err := r.store.LoadTimeline(ctx, matchID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNoTimeline, matchID)
		}
		return nil, fmt.Errorf("failed to load timeline for %s: %w", matchID, err)
	}
	tl, err := timeline.NewWithTeamSize(&payload.Info, r.teamSize)
	if err != nil {
		if errors.Is(err, timeline.ErrMalformedTimeline) {
			r.log.Warn().Str("match_id", matchID).Msg("Stored timeline has no frames")
			return nil, nil
		}
		return nil, fmt.Errorf("timeline for %s: %w", matchID, err)
	}
	return tl, nil
}

// LeadSeries returns the per-interval gold/XP leads for a stored match.
func (r *Reporter) LeadSeries(ctx context.Context, matchID string, intervalMinutes, maxMinutes int) (map[int]timeline.LeadPoint, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if tl == nil {
		return map[int]timeline.LeadPoint{}, nil
	}
	return tl.LeadSeries(intervalMinutes, maxMinutes), nil
}

// LeadSummary returns the lead series plus rollup statistics.
func (r *Reporter) LeadSummary(ctx context.Context, matchID string, intervalMinutes, maxMinutes int) (timeline.LeadSummary, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return timeline.LeadSummary{}, err
	}
	if tl == nil {
		return timeline.LeadSummary{Series: map[int]timeline.LeadPoint{}}, nil
	}
	return tl.Summarize(intervalMinutes, maxMinutes), nil
}

// CheckpointLead returns the lead at a single minute mark. ok is false
// when no frame lies within the checkpoint tolerance.
func (r *Reporter) CheckpointLead(ctx context.Context, matchID string, minute int) (timeline.LeadPoint, bool, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return timeline.LeadPoint{}, false, err
	}
	if tl == nil {
		return timeline.LeadPoint{}, false, nil
	}
	point, ok := tl.CheckpointLead(minute)
	return point, ok, nil
}

// Participation returns one participant's objective involvement.
func (r *Reporter) Participation(ctx context.Context, matchID string, participantID int) (timeline.ParticipationSummary, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return timeline.ParticipationSummary{}, err
	}
	if tl == nil {
		return timeline.ParticipationSummary{ParticipantID: participantID}, nil
	}
	return tl.Participation(participantID), nil
}

// MatchParticipation returns objective involvement for every player in
// the match, in participant order.
func (r *Reporter) MatchParticipation(ctx context.Context, matchID string) ([]ParticipantRow, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	players, err := r.store.GetParticipants(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants for %s: %w", matchID, err)
	}

	rows := make([]ParticipantRow, 0, len(players))
	for _, p := range players {
		row := ParticipantRow{Participant: p}
		if tl != nil {
			row.Participation = tl.Participation(p.ParticipantID)
		} else {
			row.Participation = timeline.ParticipationSummary{ParticipantID: p.ParticipantID}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ParticipantRow pairs a stored participant with their derived
// objective statistics.
type ParticipantRow struct {
	Participant   db.Participant
	Participation timeline.ParticipationSummary
}

// Objectives returns the match's objective events in time order.
func (r *Reporter) Objectives(ctx context.Context, matchID string) ([]timeline.ObjectiveRecord, error) {
	tl, err := r.load(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if tl == nil {
		return []timeline.ObjectiveRecord{}, nil
	}
	return tl.Objectives(), nil
}
