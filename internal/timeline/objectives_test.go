package timeline

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

func TestObjectives(t *testing.T) {
	events := []riot.TimelineEvent{
		{Type: "WARD_PLACED", Timestamp: 30000, CreatorID: 2, WardType: "YELLOW_TRINKET"},
		{Type: "ELITE_MONSTER_KILL", Timestamp: 400000, MonsterType: "DRAGON", MonsterSubType: "FIRE_DRAGON", KillerID: 4, KillerTeamID: 100, Bounty: 25},
		{Type: "BUILDING_KILL", Timestamp: 700000, BuildingType: "TOWER_BUILDING", TowerType: "OUTER_TURRET", LaneType: "MID_LANE", TeamID: 200, KillerTeamID: 100, KillerID: 1, Bounty: 250},
		{Type: "ELITE_MONSTER_KILL", Timestamp: 200000, MonsterType: "HORDE", KillerID: 2}, // not epic, excluded
		{Type: "DRAGON_SOUL_GIVEN", Timestamp: 1500000, Name: "Mountain", TeamID: 100},
		{Type: "ITEM_PURCHASED", Timestamp: 90000, ParticipantID: 1, ItemID: 3006},
		{Type: "BUILDING_KILL", Timestamp: 1600000, BuildingType: "INHIBITOR_BUILDING", LaneType: "TOP_LANE", TeamID: 200, KillerTeamID: 100, KillerID: 5},
	}
	tl, err := New(&riot.TimelineInfo{Frames: []riot.TimelineFrame{
		frameAt(0, 0, 0, 0, 0),
		frameAt(60000, 1, 1, 1, 1, events...),
	}})
	require.NoError(t, err)

	records := tl.Objectives()
	require.Len(t, records, 4)

	// Ascending by timestamp.
	assert.True(t, sort.SliceIsSorted(records, func(i, j int) bool {
		return records[i].TimestampMs < records[j].TimestampMs
	}))

	dragon := records[0]
	assert.Equal(t, CategoryEliteMonsterKill, dragon.Category)
	assert.Equal(t, Dragon, dragon.MonsterKind)
	assert.Equal(t, "FIRE_DRAGON", dragon.MonsterSubType)
	assert.Equal(t, 100, dragon.KillerTeamID)
	assert.Equal(t, 25, dragon.BountyGold)
	assert.Equal(t, 6, dragon.Minute)

	tower := records[1]
	assert.Equal(t, CategoryBuildingKill, tower.Category)
	assert.Equal(t, Tower, tower.BuildingKind)
	assert.Equal(t, "MID_LANE", tower.LaneType)
	assert.Equal(t, 200, tower.OwnerTeamID)
	assert.Equal(t, 100, tower.KillerTeamID)

	soul := records[2]
	assert.Equal(t, CategoryDragonSoulGiven, soul.Category)
	assert.Equal(t, "Mountain", soul.SoulName)
	assert.Equal(t, 100, soul.KillerTeamID)

	inhib := records[3]
	assert.Equal(t, Inhibitor, inhib.BuildingKind)
}

func TestObjectives_WardsAlwaysExcluded(t *testing.T) {
	// A ward event dressed up with objective-looking fields still never
	// appears in the objective timeline.
	ward := riot.TimelineEvent{
		Type:         "WARD_PLACED",
		Timestamp:    120000,
		KillerID:     3,
		KillerTeamID: 100,
		Bounty:       999,
		MonsterType:  "DRAGON",
	}
	tl := timelineWithEvents(t, ward)
	assert.Empty(t, tl.Objectives())
}

func TestObjectives_RoundTripToClassifier(t *testing.T) {
	events := []riot.TimelineEvent{
		{Type: "ELITE_MONSTER_KILL", Timestamp: 111000, MonsterType: "BARON_NASHOR", KillerID: 6},
		{Type: "BUILDING_KILL", Timestamp: 222000, BuildingType: "NEXUS", KillerID: 1},
		{Type: "DRAGON_SOUL_GIVEN", Timestamp: 333000, Name: "Infernal", TeamID: 200},
	}
	tl := timelineWithEvents(t, events...)

	rawByTimestamp := make(map[int64]riot.TimelineEvent)
	for _, ev := range events {
		rawByTimestamp[ev.Timestamp] = ev
	}

	for _, rec := range tl.Objectives() {
		raw, ok := rawByTimestamp[rec.TimestampMs]
		require.True(t, ok, "record timestamp %d must exist in the raw event list", rec.TimestampMs)
		assert.Equal(t, Classify(raw), rec.Category)
	}
}

func TestObjectives_EmptyWhenNoNotableEvents(t *testing.T) {
	tl := timelineWithEvents(t,
		riot.TimelineEvent{Type: "ITEM_PURCHASED", Timestamp: 1000, ParticipantID: 1, ItemID: 1055},
		riot.TimelineEvent{Type: "SKILL_LEVEL_UP", Timestamp: 2000, ParticipantID: 1},
	)
	assert.Empty(t, tl.Objectives())
}
