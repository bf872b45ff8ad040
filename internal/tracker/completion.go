package tracker

import (
	"github.com/limbo/tabebui/pkg/entity"
)

// percent is floor(part*100/total), 0 for an empty total.
func percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}

func (t *Tracker) eatenCount(animal entity.AnimalType) int {
	parts, err := t.catalog.ListParts(animal)
	if err != nil {
		return 0
	}
	count := 0
	for _, p := range parts {
		if t.IsEaten(p.ID) {
			count++
		}
	}
	return count
}

func (t *Tracker) eatenTotal() int {
	count := 0
	for _, animal := range t.catalog.AnimalTypes() {
		count += t.eatenCount(animal)
	}
	return count
}

func (t *Tracker) CompletionRate(animal entity.AnimalType) (int, error) {
	if _, err := t.catalog.ListParts(animal); err != nil {
		return 0, err
	}
	return percent(t.eatenCount(animal), t.catalog.Count(animal)), nil
}

func (t *Tracker) OverallCompletionRate() int {
	return percent(t.eatenTotal(), t.catalog.Total())
}
