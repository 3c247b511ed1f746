package timeline

import (
	"math"

	"github.com/Kash1r/League-Data-Collector/internal/riot"
)

// ObjectiveStats tallies one objective kind for a single participant.
type ObjectiveStats struct {
	Kills   int `json:"kills"`
	Assists int `json:"assists"`
	Damage  int `json:"damage"`

	// FirstBlood marks the participant's first kill of this kind; it is
	// set once and never cleared by later kills. Tracked per queried
	// participant, not globally per match.
	FirstBlood bool `json:"firstBlood"`
}

// ParticipationSummary describes one participant's objective involvement
// across a whole match.
type ParticipationSummary struct {
	ParticipantID int `json:"participantId"`

	Dragon     ObjectiveStats `json:"dragon"`
	Baron      ObjectiveStats `json:"baron"`
	RiftHerald ObjectiveStats `json:"riftHerald"`
	Turrets    ObjectiveStats `json:"turrets"`
	Inhibitors ObjectiveStats `json:"inhibitors"`

	// ObjectivesSecured counts epic kinds where the participant landed at
	// least one kill. ContestedPercent normalizes kill (1.0) and assist
	// (0.5) credit over the epic kinds that occurred at all in the match;
	// always in [0,100], and 0 when no epic monster died.
	ObjectivesSecured int `json:"objectivesSecured"`
	ContestedPercent  int `json:"contestedPercent"`
}

// monsterVictimFloor is the lowest victimId the vendor uses for neutral
// monsters in CHAMPION_KILL damage records.
const monsterVictimFloor = 2400

// Participation tallies kills, assists and objective damage for one
// participant. Everything is recomputed fresh from the frames on each
// call; the totals do not depend on event order except the first-blood
// flags, which follow chronological frame order.
func (t *Timeline) Participation(participantID int) ParticipationSummary {
	summary := ParticipationSummary{ParticipantID: participantID}

	// Damage to epic monsters arrives on CHAMPION_KILL records with a
	// monster victimId, keyed by the same kind taxonomy as the kills.
	damageByKind := make(map[MonsterKind]int)
	occurred := make(map[MonsterKind]bool)

	t.eachEvent(func(ev riot.TimelineEvent) {
		switch Classify(ev) {
		case CategoryChampionKill:
			if ev.VictimID < monsterVictimFloor {
				return
			}
			kind := MonsterKindOf(ev)
			if !kind.Epic() {
				return
			}
			for _, dmg := range ev.VictimDamageReceived {
				if dmg.ParticipantID == participantID {
					damageByKind[kind] += dmg.Total()
				}
			}

		case CategoryEliteMonsterKill:
			kind := MonsterKindOf(ev)
			if !kind.Epic() {
				return
			}
			occurred[kind] = true

			stats := summary.epicStats(kind)
			if ev.KillerID == participantID {
				if stats.Kills == 0 {
					stats.FirstBlood = true
				}
				stats.Kills++
			} else if containsInt(ev.AssistingParticipantIDs, participantID) {
				stats.Assists++
			}

		case CategoryBuildingKill:
			var stats *ObjectiveStats
			switch BuildingKindOf(ev) {
			case Tower:
				stats = &summary.Turrets
			case Inhibitor:
				stats = &summary.Inhibitors
			default:
				return
			}
			if ev.KillerID == participantID {
				stats.Kills++
			} else if containsInt(ev.AssistingParticipantIDs, participantID) {
				stats.Assists++
			}
		}
	})

	summary.Dragon.Damage = damageByKind[Dragon]
	summary.Baron.Damage = damageByKind[Baron]
	summary.RiftHerald.Damage = damageByKind[RiftHerald]

	// Contest credit: full for a kill, half for assists only, normalized
	// over the epic kinds that actually occurred in the match.
	var contested int
	var credit float64
	for _, kind := range []MonsterKind{Dragon, Baron, RiftHerald} {
		if !occurred[kind] {
			continue
		}
		contested++
		stats := summary.epicStats(kind)
		if stats.Kills > 0 {
			credit += 1.0
			summary.ObjectivesSecured++
		} else if stats.Assists > 0 {
			credit += 0.5
		}
	}
	if contested > 0 {
		percent := int(math.Round(100 * credit / float64(contested)))
		if percent > 100 {
			percent = 100
		}
		summary.ContestedPercent = percent
	}

	return summary
}

func (s *ParticipationSummary) epicStats(kind MonsterKind) *ObjectiveStats {
	switch kind {
	case Dragon:
		return &s.Dragon
	case Baron:
		return &s.Baron
	default:
		return &s.RiftHerald
	}
}

func containsInt(haystack []int, needle int) bool {
	for _, v := range haystack {
		if v == needle {
			return true
		}
	}
	return false
}
