package timeline

import (
	"sort"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

// ObjectiveRecord is one notable objective event with enough structure for
// a downstream formatter to render a description. The extractor never
// formats strings itself.
type ObjectiveRecord struct {
	TimestampMs int64    `json:"timestampMs"`
	Minute      int      `json:"minute"`
	Category    Category `json:"category"`

	// ELITE_MONSTER_KILL
	MonsterKind    MonsterKind `json:"monsterKind,omitempty"`
	MonsterType    string      `json:"monsterType,omitempty"`
	MonsterSubType string      `json:"monsterSubType,omitempty"`

	// BUILDING_KILL
	BuildingKind BuildingKind `json:"buildingKind,omitempty"`
	TowerType    string       `json:"towerType,omitempty"`
	LaneType     string       `json:"laneType,omitempty"`
	OwnerTeamID  int          `json:"ownerTeamId,omitempty"` // team that lost the building

	// DRAGON_SOUL_GIVEN
	SoulName string `json:"soulName,omitempty"`

	KillerTeamID int `json:"killerTeamId,omitempty"` // 0 when neutral or unknown
	KillerID     int `json:"killerId,omitempty"`
	BountyGold   int `json:"bountyGold"`
}

// Objectives extracts the notable objective events of the match in
// ascending timestamp order: epic monster kills, tower/inhibitor/nexus
// kills, and dragon soul grants. Everything else, wards included, is
// filtered out regardless of its other fields.
func (t *Timeline) Objectives() []ObjectiveRecord {
	var records []ObjectiveRecord

	t.eachEvent(func(ev riot.TimelineEvent) {
		switch Classify(ev) {
		case CategoryEliteMonsterKill:
			kind := MonsterKindOf(ev)
			if !kind.Epic() {
				return
			}
			records = append(records, ObjectiveRecord{
				TimestampMs:    ev.Timestamp,
				Minute:         int(ev.Timestamp / 60000),
				Category:       CategoryEliteMonsterKill,
				MonsterKind:    kind,
				MonsterType:    ev.MonsterType,
				MonsterSubType: ev.MonsterSubType,
				KillerTeamID:   ev.KillerTeamID,
				KillerID:       ev.KillerID,
				BountyGold:     ev.Bounty,
			})

		case CategoryBuildingKill:
			kind := BuildingKindOf(ev)
			if !kind.Notable() {
				return
			}
			records = append(records, ObjectiveRecord{
				TimestampMs:  ev.Timestamp,
				Minute:       int(ev.Timestamp / 60000),
				Category:     CategoryBuildingKill,
				BuildingKind: kind,
				TowerType:    ev.TowerType,
				LaneType:     ev.LaneType,
				OwnerTeamID:  ev.TeamID,
				KillerTeamID: ev.KillerTeamID,
				KillerID:     ev.KillerID,
				BountyGold:   ev.Bounty,
			})

		case CategoryDragonSoulGiven:
			records = append(records, ObjectiveRecord{
				TimestampMs:  ev.Timestamp,
				Minute:       int(ev.Timestamp / 60000),
				Category:     CategoryDragonSoulGiven,
				SoulName:     ev.Name,
				KillerTeamID: ev.TeamID,
			})
		}
	})

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TimestampMs < records[j].TimestampMs
	})
	return records
}
