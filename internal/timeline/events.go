package timeline

import "github.com/Kash1r/League-Data-Collector/internal/riot"

// Category is the semantic class of a raw timeline event. Classification
// is total: every type string maps to exactly one category, and anything
// unrecognized becomes CategoryOther so new vendor event types never break
// existing reports.
type Category int

const (
	CategoryOther Category = iota
	CategoryChampionKill
	CategoryEliteMonsterKill
	CategoryBuildingKill
	CategoryWardPlaced
	CategoryWardKill
	CategoryItemPurchased
	CategoryItemSold
	CategoryItemDestroyed
	CategoryItemUndo
	CategoryObjectiveBountyPrestart
	CategoryObjectiveBountyFinish
	CategoryDragonSoulGiven
)

var categoryNames = map[Category]string{
	CategoryOther:                   "OTHER",
	CategoryChampionKill:            "CHAMPION_KILL",
	CategoryEliteMonsterKill:        "ELITE_MONSTER_KILL",
	CategoryBuildingKill:            "BUILDING_KILL",
	CategoryWardPlaced:              "WARD_PLACED",
	CategoryWardKill:                "WARD_KILL",
	CategoryItemPurchased:           "ITEM_PURCHASED",
	CategoryItemSold:                "ITEM_SOLD",
	CategoryItemDestroyed:           "ITEM_DESTROYED",
	CategoryItemUndo:                "ITEM_UNDO",
	CategoryObjectiveBountyPrestart: "OBJECTIVE_BOUNTY_PRESTART",
	CategoryObjectiveBountyFinish:   "OBJECTIVE_BOUNTY_FINISH",
	CategoryDragonSoulGiven:         "DRAGON_SOUL_GIVEN",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "OTHER"
}

var eventCategories = map[string]Category{
	"CHAMPION_KILL":             CategoryChampionKill,
	"ELITE_MONSTER_KILL":        CategoryEliteMonsterKill,
	"BUILDING_KILL":             CategoryBuildingKill,
	"WARD_PLACED":               CategoryWardPlaced,
	"WARD_KILL":                 CategoryWardKill,
	"ITEM_PURCHASED":            CategoryItemPurchased,
	"ITEM_SOLD":                 CategoryItemSold,
	"ITEM_DESTROYED":            CategoryItemDestroyed,
	"ITEM_UNDO":                 CategoryItemUndo,
	"OBJECTIVE_BOUNTY_PRESTART": CategoryObjectiveBountyPrestart,
	"OBJECTIVE_BOUNTY_FINISH":   CategoryObjectiveBountyFinish,
	"DRAGON_SOUL_GIVEN":         CategoryDragonSoulGiven,
}

// Classify tags a raw event with its semantic category.
func Classify(ev riot.TimelineEvent) Category {
	if c, ok := eventCategories[ev.Type]; ok {
		return c
	}
	return CategoryOther
}

// MonsterKind subdivides elite monster kills. Only Dragon, RiftHerald and
// Baron count as epic objectives; everything else is OtherMonster.
type MonsterKind int

const (
	OtherMonster MonsterKind = iota
	Dragon
	RiftHerald
	Baron
)

func (m MonsterKind) String() string {
	switch m {
	case Dragon:
		return "dragon"
	case RiftHerald:
		return "riftHerald"
	case Baron:
		return "baron"
	default:
		return "other"
	}
}

// Epic reports whether the monster is a high-value neutral objective.
func (m MonsterKind) Epic() bool {
	return m == Dragon || m == RiftHerald || m == Baron
}

// Elemental and elder dragon subtypes all count as Dragon.
var dragonSubTypes = map[string]bool{
	"FIRE_DRAGON":     true,
	"WATER_DRAGON":    true,
	"EARTH_DRAGON":    true,
	"AIR_DRAGON":      true,
	"HEXTECH_DRAGON":  true,
	"CHEMTECH_DRAGON": true,
	"ELDER_DRAGON":    true,
}

// MonsterKindOf sub-classifies an ELITE_MONSTER_KILL event by its
// monsterType and monsterSubType fields.
func MonsterKindOf(ev riot.TimelineEvent) MonsterKind {
	switch ev.MonsterType {
	case "DRAGON":
		return Dragon
	case "RIFTHERALD":
		return RiftHerald
	case "BARON_NASHOR":
		return Baron
	}
	if dragonSubTypes[ev.MonsterSubType] {
		return Dragon
	}
	return OtherMonster
}

// BuildingKind subdivides building kills. Only Tower, Inhibitor and Nexus
// are notable for objective reporting.
type BuildingKind int

const (
	OtherBuilding BuildingKind = iota
	Tower
	Inhibitor
	Nexus
)

func (b BuildingKind) String() string {
	switch b {
	case Tower:
		return "turret"
	case Inhibitor:
		return "inhibitor"
	case Nexus:
		return "nexus"
	default:
		return "other"
	}
}

// Notable reports whether the building matters for objective reporting.
func (b BuildingKind) Notable() bool {
	return b == Tower || b == Inhibitor || b == Nexus
}

// BuildingKindOf sub-classifies a BUILDING_KILL event by its buildingType.
func BuildingKindOf(ev riot.TimelineEvent) BuildingKind {
	switch ev.BuildingType {
	case "TOWER_BUILDING":
		return Tower
	case "INHIBITOR_BUILDING":
		return Inhibitor
	case "NEXUS":
		return Nexus
	default:
		return OtherBuilding
	}
}
