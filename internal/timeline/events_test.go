package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		eventType string
		want      Category
	}{
		{"CHAMPION_KILL", CategoryChampionKill},
		{"ELITE_MONSTER_KILL", CategoryEliteMonsterKill},
		{"BUILDING_KILL", CategoryBuildingKill},
		{"WARD_PLACED", CategoryWardPlaced},
		{"WARD_KILL", CategoryWardKill},
		{"ITEM_PURCHASED", CategoryItemPurchased},
		{"ITEM_SOLD", CategoryItemSold},
		{"ITEM_DESTROYED", CategoryItemDestroyed},
		{"ITEM_UNDO", CategoryItemUndo},
		{"OBJECTIVE_BOUNTY_PRESTART", CategoryObjectiveBountyPrestart},
		{"OBJECTIVE_BOUNTY_FINISH", CategoryObjectiveBountyFinish},
		{"DRAGON_SOUL_GIVEN", CategoryDragonSoulGiven},
		{"PAUSE_END", CategoryOther},
		{"GAME_END", CategoryOther},
		{"CHAMPION_SPECIAL_KILL", CategoryOther},
		{"SOME_FUTURE_EVENT", CategoryOther},
		{"", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			got := Classify(riot.TimelineEvent{Type: tt.eventType})
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}
}

func TestMonsterKindOf(t *testing.T) {
	tests := []struct {
		name    string
		monster string
		subType string
		want    MonsterKind
		epic    bool
	}{
		{name: "dragon", monster: "DRAGON", want: Dragon, epic: true},
		{name: "elder via subtype", subType: "ELDER_DRAGON", want: Dragon, epic: true},
		{name: "fire drake", monster: "DRAGON", subType: "FIRE_DRAGON", want: Dragon, epic: true},
		{name: "chemtech drake via subtype", subType: "CHEMTECH_DRAGON", want: Dragon, epic: true},
		{name: "herald", monster: "RIFTHERALD", want: RiftHerald, epic: true},
		{name: "baron", monster: "BARON_NASHOR", want: Baron, epic: true},
		{name: "horde", monster: "HORDE", want: OtherMonster, epic: false},
		{name: "unknown", monster: "VOIDGRUB", want: OtherMonster, epic: false},
		{name: "empty", want: OtherMonster, epic: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := riot.TimelineEvent{Type: "ELITE_MONSTER_KILL", MonsterType: tt.monster, MonsterSubType: tt.subType}
			kind := MonsterKindOf(ev)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.epic, kind.Epic())
		})
	}
}

func TestBuildingKindOf(t *testing.T) {
	tests := []struct {
		building string
		want     BuildingKind
		notable  bool
	}{
		{"TOWER_BUILDING", Tower, true},
		{"INHIBITOR_BUILDING", Inhibitor, true},
		{"NEXUS", Nexus, true},
		{"BARRACKS", OtherBuilding, false},
		{"", OtherBuilding, false},
	}

	for _, tt := range tests {
		t.Run(tt.building, func(t *testing.T) {
			ev := riot.TimelineEvent{Type: "BUILDING_KILL", BuildingType: tt.building}
			kind := BuildingKindOf(ev)
			assert.Equal(t, tt.want, kind)
			assert.Equal(t, tt.notable, kind.Notable())
		})
	}
}
