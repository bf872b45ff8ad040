package tracker

import (
	"fmt"
	"sort"
	"time"

	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

const DefaultTopRated = 5

func (t *Tracker) AnimalStats(animal entity.AnimalType) (entity.AnimalStats, error) {
	rate, err := t.CompletionRate(animal)
	if err != nil {
		return entity.AnimalStats{}, err
	}
	total := t.catalog.Count(animal)
	eaten := t.eatenCount(animal)
	return entity.AnimalStats{
		Total:          total,
		Eaten:          eaten,
		Remaining:      total - eaten,
		CompletionRate: rate,
	}, nil
}

func (t *Tracker) OverallStats() entity.OverallStats {
	animals := make(map[entity.AnimalType]entity.AnimalStats, 3)
	for _, animal := range t.catalog.AnimalTypes() {
		// animal types come from the catalog itself
		stats, _ := t.AnimalStats(animal)
		animals[animal] = stats
	}
	total := t.catalog.Total()
	eaten := t.eatenTotal()
	return entity.OverallStats{
		Total:          total,
		Eaten:          eaten,
		Remaining:      total - eaten,
		CompletionRate: t.OverallCompletionRate(),
		Animals:        animals,
	}
}

// RangeStats aggregates events dated within [from, to]. Unrated events count
// as records but not towards averages; an average over nothing is 0.
func (t *Tracker) RangeStats(from, to string, topN int) (entity.PeriodStats, error) {
	if topN < 0 {
		return entity.PeriodStats{}, fmt.Errorf("%w: negative top count %d", errorvalues.ErrInvalidArgument, topN)
	}
	events, err := t.EventsInRange(from, to)
	if err != nil {
		return entity.PeriodStats{}, err
	}
	parts := make(map[string]struct{})
	sum, rated := 0, 0
	for _, e := range events {
		parts[e.PartID] = struct{}{}
		if e.Rating != nil {
			sum += *e.Rating
			rated++
		}
	}
	avg := 0.0
	if rated > 0 {
		avg = float64(sum) / float64(rated)
	}
	return entity.PeriodStats{
		From:            from,
		To:              to,
		RecordCount:     len(events),
		UniquePartCount: len(parts),
		AverageRating:   avg,
		TopRated:        topRatedParts(events, topN),
	}, nil
}

func (t *Tracker) MonthlyStats(year int, month time.Month) (entity.PeriodStats, error) {
	if month < time.January || month > time.December {
		return entity.PeriodStats{}, fmt.Errorf("%w: month %d", errorvalues.ErrInvalidArgument, month)
	}
	from, to := monthBounds(year, month)
	return t.RangeStats(from, to, DefaultTopRated)
}

func topRatedParts(events []entity.EatingEvent, n int) []entity.PartRating {
	type acc struct{ sum, count int }
	byPart := make(map[string]*acc)
	for _, e := range events {
		if e.Rating == nil {
			continue
		}
		a, ok := byPart[e.PartID]
		if !ok {
			a = &acc{}
			byPart[e.PartID] = a
		}
		a.sum += *e.Rating
		a.count++
	}
	out := make([]entity.PartRating, 0, len(byPart))
	for id, a := range byPart {
		out = append(out, entity.PartRating{
			PartID:        id,
			AverageRating: float64(a.sum) / float64(a.count),
			RecordCount:   a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating > out[j].AverageRating
		}
		if out[i].RecordCount != out[j].RecordCount {
			return out[i].RecordCount > out[j].RecordCount
		}
		return out[i].PartID < out[j].PartID
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

func (t *Tracker) Progression() entity.Progression {
	return entity.Progression{
		Level:                 t.level,
		Experience:            t.experience,
		ExperienceToNextLevel: t.ExperienceToNextLevel(),
		CurrentLevelProgress:  t.CurrentLevelProgress(),
		StreakDays:            t.StreakDays(),
		Badges:                t.EarnedBadges(),
	}
}
