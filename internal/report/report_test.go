package report

import (
	"context"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kash1r/League-Data-Collector/internal/db"
	"github.com/Kash1r/League-Data-Collector/internal/riot"
	"github.com/Kash1r/League-Data-Collector/internal/timeline"
)

type fakeLoader struct {
	timelines    map[string]*riot.TimelineResponse
	participants map[string][]db.Participant
}

func (f *fakeLoader) LoadTimeline(_ context.Context, matchID string) (*riot.TimelineResponse, error) {
	tl, ok := f.timelines[matchID]
	if !ok {
		return nil, db.ErrNotFound
	}
	return tl, nil
}

func (f *fakeLoader) GetParticipants(_ context.Context, matchID string) ([]db.Participant, error) {
	return f.participants[matchID], nil
}

func payloadWithFrames(frames ...riot.TimelineFrame) *riot.TimelineResponse {
	tl := &riot.TimelineResponse{}
	tl.Info.FrameInterval = timeline.DefaultFrameInterval
	tl.Info.Frames = frames
	return tl
}

func frameAt(ts int64, goldPer int, events ...riot.TimelineEvent) riot.TimelineFrame {
	frame := riot.TimelineFrame{
		Timestamp:         ts,
		ParticipantFrames: map[string]riot.ParticipantFrame{},
		Events:            events,
	}
	for i := 1; i <= 10; i++ {
		frame.ParticipantFrames[strconv.Itoa(i)] = riot.ParticipantFrame{
			ParticipantID: i,
			TotalGold:     goldPer * i,
			XP:            goldPer * i,
		}
	}
	return frame
}

func TestLeadSeriesFromStoredPayload(t *testing.T) {
	store := &fakeLoader{timelines: map[string]*riot.TimelineResponse{
		"NA1_100": payloadWithFrames(frameAt(0, 0), frameAt(60000, 100)),
	}}
	r := New(store, 0, zerolog.Nop())

	series, err := r.LeadSeries(context.Background(), "NA1_100", 1, 5)
	require.NoError(t, err)

	point, ok := series[1]
	require.True(t, ok)
	// Blue holds slots 1..5, red 6..10, so red leads.
	assert.Equal(t, 100*(1+2+3+4+5), point.BlueGold)
	assert.Equal(t, 100*(6+7+8+9+10), point.RedGold)
	assert.Negative(t, point.GoldLead)
}

func TestCheckpointLeadMissingMatch(t *testing.T) {
	r := New(&fakeLoader{timelines: map[string]*riot.TimelineResponse{}}, 0, zerolog.Nop())

	_, _, err := r.CheckpointLead(context.Background(), "NA1_404", 15)
	require.ErrorIs(t, err, ErrNoTimeline)
}

func TestEmptyPayloadYieldsEmptyResults(t *testing.T) {
	store := &fakeLoader{timelines: map[string]*riot.TimelineResponse{
		"NA1_100": payloadWithFrames(),
	}}
	r := New(store, 0, zerolog.Nop())

	series, err := r.LeadSeries(context.Background(), "NA1_100", 1, 30)
	require.NoError(t, err)
	assert.Empty(t, series)

	_, ok, err := r.CheckpointLead(context.Background(), "NA1_100", 15)
	require.NoError(t, err)
	assert.False(t, ok)

	part, err := r.Participation(context.Background(), "NA1_100", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, part.ParticipantID)
	assert.Zero(t, part.ObjectivesSecured)

	objs, err := r.Objectives(context.Background(), "NA1_100")
	require.NoError(t, err)
	assert.Empty(t, objs)
}

func TestObjectivesFromStoredPayload(t *testing.T) {
	dragonKill := riot.TimelineEvent{
		Type:        "ELITE_MONSTER_KILL",
		Timestamp:   300000,
		KillerID:    4,
		MonsterType: "DRAGON",
	}
	store := &fakeLoader{timelines: map[string]*riot.TimelineResponse{
		"NA1_100": payloadWithFrames(frameAt(0, 0), frameAt(300000, 50, dragonKill)),
	}}
	r := New(store, 0, zerolog.Nop())

	objs, err := r.Objectives(context.Background(), "NA1_100")
	require.NoError(t, err)
	require.Len(t, objs, 1)
	assert.Equal(t, timeline.Dragon, objs[0].MonsterKind)
	assert.Equal(t, 5, objs[0].Minute)
}

func TestMatchParticipation(t *testing.T) {
	dragonKill := riot.TimelineEvent{
		Type:                    "ELITE_MONSTER_KILL",
		Timestamp:               300000,
		KillerID:                4,
		AssistingParticipantIDs: []int{2},
		MonsterType:             "DRAGON",
	}
	store := &fakeLoader{
		timelines: map[string]*riot.TimelineResponse{
			"NA1_100": payloadWithFrames(frameAt(0, 0), frameAt(300000, 50, dragonKill)),
		},
		participants: map[string][]db.Participant{
			"NA1_100": {
				{MatchID: "NA1_100", ParticipantID: 2, ChampionName: "Thresh"},
				{MatchID: "NA1_100", ParticipantID: 4, ChampionName: "LeeSin"},
			},
		},
	}
	r := New(store, 0, zerolog.Nop())

	rows, err := r.MatchParticipation(context.Background(), "NA1_100")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Thresh", rows[0].Participant.ChampionName)
	assert.Equal(t, 1, rows[0].Participation.Dragon.Assists)
	assert.Equal(t, 50, rows[0].Participation.ContestedPercent)

	assert.Equal(t, 1, rows[1].Participation.Dragon.Kills)
	assert.Equal(t, 1, rows[1].Participation.ObjectivesSecured)
	assert.Equal(t, 100, rows[1].Participation.ContestedPercent)
}
