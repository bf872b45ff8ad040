package tracker

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

const (
	MinRating = 1
	MaxRating = 5
)

type RecordInput struct {
	PartID     string
	Date       string
	Memo       string
	Rating     *int
	Restaurant string
}

type RecordResult struct {
	Event     entity.EatingEvent
	IsNewPart bool
}

// EventUpdate carries the fields to change; nil fields are left as is.
type EventUpdate struct {
	PartID      *string
	Date        *string
	Memo        *string
	Rating      *int
	ClearRating bool
	Restaurant  *string
}

func (t *Tracker) validateEvent(partID, date string, rating *int) error {
	if _, ok := t.catalog.Part(partID); !ok {
		return fmt.Errorf("%w: %q", errorvalues.ErrPartNotFound, partID)
	}
	d, err := parseDate(date)
	if err != nil {
		return err
	}
	if d.After(t.today()) {
		return fmt.Errorf("%w: date %s is in the future", errorvalues.ErrInvalidArgument, date)
	}
	if rating != nil && (*rating < MinRating || *rating > MaxRating) {
		return fmt.Errorf("%w: rating %d is out of range %d-%d", errorvalues.ErrInvalidArgument, *rating, MinRating, MaxRating)
	}
	return nil
}

// RecordEvent appends an eating event. IsNewPart is true when the part had
// no event before this one.
func (t *Tracker) RecordEvent(in RecordInput) (RecordResult, error) {
	if err := t.validateEvent(in.PartID, in.Date, in.Rating); err != nil {
		return RecordResult{}, err
	}
	event := cloneEvent(entity.EatingEvent{
		ID:         uuid.New(),
		PartID:     in.PartID,
		Date:       in.Date,
		Memo:       in.Memo,
		Rating:     in.Rating,
		Restaurant: in.Restaurant,
		CreatedAt:  t.now().UTC(),
	})
	_, eaten := t.completed[in.PartID]
	t.events = append(t.events, event)
	t.completed[in.PartID] = struct{}{}
	return RecordResult{Event: cloneEvent(event), IsNewPart: !eaten}, nil
}

func (t *Tracker) UpdateEvent(id uuid.UUID, upd EventUpdate) (entity.EatingEvent, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return entity.EatingEvent{}, fmt.Errorf("%w: %s", errorvalues.ErrEventNotFound, id)
	}
	e := cloneEvent(t.events[idx])
	if upd.PartID != nil {
		e.PartID = *upd.PartID
	}
	if upd.Date != nil {
		e.Date = *upd.Date
	}
	if upd.Memo != nil {
		e.Memo = *upd.Memo
	}
	if upd.ClearRating {
		e.Rating = nil
	} else if upd.Rating != nil {
		r := *upd.Rating
		e.Rating = &r
	}
	if upd.Restaurant != nil {
		e.Restaurant = *upd.Restaurant
	}
	if err := t.validateEvent(e.PartID, e.Date, e.Rating); err != nil {
		return entity.EatingEvent{}, err
	}
	t.events[idx] = e
	if upd.PartID != nil {
		t.rebuildCompleted()
	}
	return cloneEvent(e), nil
}

// DeleteEvent removes the event and rebuilds the completion set from the
// remaining log, since another event may still cover the same part.
func (t *Tracker) DeleteEvent(id uuid.UUID) bool {
	idx := t.indexOf(id)
	if idx < 0 {
		return false
	}
	t.events = slices.Delete(t.events, idx, idx+1)
	t.rebuildCompleted()
	return true
}

func (t *Tracker) rebuildCompleted() {
	completed := make(map[string]struct{}, len(t.completed))
	for _, e := range t.events {
		completed[e.PartID] = struct{}{}
	}
	t.completed = completed
}

func (t *Tracker) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(t.events, func(e entity.EatingEvent) bool { return e.ID == id })
}

// Events returns the log in recording order.
func (t *Tracker) Events() []entity.EatingEvent {
	return cloneEvents(t.events)
}

func (t *Tracker) Event(id uuid.UUID) (entity.EatingEvent, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return entity.EatingEvent{}, fmt.Errorf("%w: %s", errorvalues.ErrEventNotFound, id)
	}
	return cloneEvent(t.events[idx]), nil
}

func (t *Tracker) EventsByPart(partID string) []entity.EatingEvent {
	return t.filter(func(e entity.EatingEvent) bool { return e.PartID == partID })
}

// EventsInRange returns events dated within [from, to], both inclusive.
func (t *Tracker) EventsInRange(from, to string) ([]entity.EatingEvent, error) {
	if _, err := parseDate(from); err != nil {
		return nil, err
	}
	if _, err := parseDate(to); err != nil {
		return nil, err
	}
	if from > to {
		return nil, fmt.Errorf("%w: range start %s is after end %s", errorvalues.ErrInvalidArgument, from, to)
	}
	return t.filter(func(e entity.EatingEvent) bool { return e.Date >= from && e.Date <= to }), nil
}

func (t *Tracker) TodayEvents() []entity.EatingEvent {
	today := t.Today()
	return t.filter(func(e entity.EatingEvent) bool { return e.Date == today })
}

func (t *Tracker) ThisMonthEvents() []entity.EatingEvent {
	from, to := monthBounds(t.today().Year(), t.today().Month())
	return t.filter(func(e entity.EatingEvent) bool { return e.Date >= from && e.Date <= to })
}

func (t *Tracker) filter(keep func(entity.EatingEvent) bool) []entity.EatingEvent {
	out := make([]entity.EatingEvent, 0)
	for _, e := range t.events {
		if keep(e) {
			out = append(out, cloneEvent(e))
		}
	}
	return out
}

func (t *Tracker) IsEaten(partID string) bool {
	_, ok := t.completed[partID]
	return ok
}

// CompletedParts returns the completion set sorted by part ID.
func (t *Tracker) CompletedParts() []string {
	out := make([]string, 0, len(t.completed))
	for id := range t.completed {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// RecommendedPart suggests the rarest part not eaten yet. Ties keep
// catalog order. ok is false once everything has been eaten.
func (t *Tracker) RecommendedPart() (part entity.Part, ok bool) {
	for _, p := range t.catalog.AllParts() {
		if t.IsEaten(p.ID) {
			continue
		}
		if !ok || p.Rarity > part.Rarity {
			part, ok = p, true
		}
	}
	return part, ok
}

func monthBounds(year int, month time.Month) (string, string) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return first.Format(entity.DateLayout), last.Format(entity.DateLayout)
}
