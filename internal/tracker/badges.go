package tracker

import (
	"slices"

	"github.com/limbo/tabebui/pkg/entity"
)

const (
	BadgeFirstStep     entity.BadgeID = "first_step"
	BadgeBeefMaster    entity.BadgeID = "beef_master"
	BadgePorkMaster    entity.BadgeID = "pork_master"
	BadgeChickenMaster entity.BadgeID = "chicken_master"
	BadgePartCollector entity.BadgeID = "part_collector"
	BadgePartManiac    entity.BadgeID = "part_maniac"
	BadgeConqueror     entity.BadgeID = "conqueror"
	BadgeStreak3       entity.BadgeID = "streak_3"
	BadgeTodayRecord   entity.BadgeID = "today_record"
	BadgeGourmet       entity.BadgeID = "gourmet"
	BadgeAdventurer    entity.BadgeID = "adventurer"
)

const (
	collectorThreshold   = 10
	maniacThreshold      = 25
	streakBadgeDays      = 3
	gourmetMinRating     = 4
	gourmetRecordsNeeded = 10
)

// BadgeState is the read-only aggregate every badge predicate looks at.
type BadgeState struct {
	Events      []entity.EatingEvent
	Eaten       map[string]entity.Part
	Rates       map[entity.AnimalType]int
	OverallRate int
	StreakDays  int
	Today       string
}

type badgeRule struct {
	badge  entity.Badge
	earned func(BadgeState) bool
}

// Evaluation order is the order of this list.
var badgeRegistry = []badgeRule{
	{entity.Badge{ID: BadgeFirstStep, Name: "First Step", Description: "Record your first meal"}, hasAnyEvent},
	{entity.Badge{ID: BadgeBeefMaster, Name: "Beef Master", Description: "Eat every beef part"}, animalComplete(entity.AnimalBeef)},
	{entity.Badge{ID: BadgePorkMaster, Name: "Pork Master", Description: "Eat every pork part"}, animalComplete(entity.AnimalPork)},
	{entity.Badge{ID: BadgeChickenMaster, Name: "Chicken Master", Description: "Eat every chicken part"}, animalComplete(entity.AnimalChicken)},
	{entity.Badge{ID: BadgePartCollector, Name: "Part Collector", Description: "Eat 10 different parts"}, eatenAtLeast(collectorThreshold)},
	{entity.Badge{ID: BadgePartManiac, Name: "Part Maniac", Description: "Eat 25 different parts"}, eatenAtLeast(maniacThreshold)},
	{entity.Badge{ID: BadgeConqueror, Name: "Conqueror", Description: "Eat every part of every animal"}, allComplete},
	{entity.Badge{ID: BadgeStreak3, Name: "On a Roll", Description: "Record meals 3 days in a row"}, streakAtLeast(streakBadgeDays)},
	{entity.Badge{ID: BadgeTodayRecord, Name: "Today Too", Description: "Record a meal today"}, recordedToday},
	{entity.Badge{ID: BadgeGourmet, Name: "Gourmet", Description: "Rate 10 meals 4 stars or more"}, highlyRatedAtLeast(gourmetMinRating, gourmetRecordsNeeded)},
	{entity.Badge{ID: BadgeAdventurer, Name: "Adventurer", Description: "Eat a rare or legendary part"}, ateRarePart},
}

// Badges returns the badge definitions in evaluation order.
func Badges() []entity.Badge {
	out := make([]entity.Badge, len(badgeRegistry))
	for i, r := range badgeRegistry {
		out[i] = r.badge
	}
	return out
}

func BadgeByID(id entity.BadgeID) (entity.Badge, bool) {
	for _, r := range badgeRegistry {
		if r.badge.ID == id {
			return r.badge, true
		}
	}
	return entity.Badge{}, false
}

func hasAnyEvent(s BadgeState) bool {
	return len(s.Events) > 0
}

func animalComplete(animal entity.AnimalType) func(BadgeState) bool {
	return func(s BadgeState) bool {
		return s.Rates[animal] == 100
	}
}

func eatenAtLeast(n int) func(BadgeState) bool {
	return func(s BadgeState) bool {
		return len(s.Eaten) >= n
	}
}

func allComplete(s BadgeState) bool {
	return s.OverallRate == 100
}

func streakAtLeast(days int) func(BadgeState) bool {
	return func(s BadgeState) bool {
		return s.StreakDays >= days
	}
}

func recordedToday(s BadgeState) bool {
	return slices.ContainsFunc(s.Events, func(e entity.EatingEvent) bool { return e.Date == s.Today })
}

func highlyRatedAtLeast(minRating, n int) func(BadgeState) bool {
	return func(s BadgeState) bool {
		count := 0
		for _, e := range s.Events {
			if e.Rating != nil && *e.Rating >= minRating {
				count++
			}
		}
		return count >= n
	}
}

func ateRarePart(s BadgeState) bool {
	for _, p := range s.Eaten {
		if p.Rarity >= entity.RarityRare {
			return true
		}
	}
	return false
}

// BadgeState snapshots the aggregates badges are evaluated against.
func (t *Tracker) BadgeState() BadgeState {
	eaten := make(map[string]entity.Part, len(t.completed))
	for id := range t.completed {
		if p, ok := t.catalog.Part(id); ok {
			eaten[id] = p
		}
	}
	rates := make(map[entity.AnimalType]int, 3)
	for _, animal := range t.catalog.AnimalTypes() {
		rates[animal] = percent(t.eatenCount(animal), t.catalog.Count(animal))
	}
	return BadgeState{
		Events:      cloneEvents(t.events),
		Eaten:       eaten,
		Rates:       rates,
		OverallRate: t.OverallCompletionRate(),
		StreakDays:  t.StreakDays(),
		Today:       t.Today(),
	}
}

// EvaluateBadges awards every badge whose predicate holds and that was not
// earned before. Earned badges are never revoked.
func (t *Tracker) EvaluateBadges() []entity.BadgeID {
	state := t.BadgeState()
	awarded := make([]entity.BadgeID, 0)
	for _, r := range badgeRegistry {
		if t.HasBadge(r.badge.ID) {
			continue
		}
		if r.earned(state) && t.addBadge(r.badge.ID) {
			awarded = append(awarded, r.badge.ID)
		}
	}
	return awarded
}

func (t *Tracker) HasBadge(id entity.BadgeID) bool {
	_, ok := t.earned[id]
	return ok
}

// EarnedBadges returns badge IDs in the order they were earned.
func (t *Tracker) EarnedBadges() []entity.BadgeID {
	return slices.Clone(t.badges)
}
