// Package tracker implements the per-user progress engine: the eating log,
// the completion set derived from it, experience and levels, badges, streaks
// and statistics.
//
// A Tracker is not safe for concurrent use. Callers serialize access.
package tracker

import (
	"slices"
	"time"

	"github.com/limbo/tabebui/internal/catalog"
	"github.com/limbo/tabebui/pkg/entity"
)

type Tracker struct {
	catalog *catalog.Catalog
	now     func() time.Time
	loc     *time.Location

	events     []entity.EatingEvent
	completed  map[string]struct{}
	experience int
	level      int
	badges     []entity.BadgeID
	earned     map[entity.BadgeID]struct{}
}

type Option func(*Tracker)

// WithClock overrides time.Now, used for "today" and creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithLocation sets the timezone in which calendar days are counted.
func WithLocation(loc *time.Location) Option {
	return func(t *Tracker) {
		if loc != nil {
			t.loc = loc
		}
	}
}

// New returns a tracker with empty state at level 1. A nil catalog means
// the default one.
func New(c *catalog.Catalog, opts ...Option) *Tracker {
	if c == nil {
		c = catalog.Default()
	}
	t := &Tracker{
		catalog:   c,
		now:       time.Now,
		loc:       time.UTC,
		completed: make(map[string]struct{}),
		level:     1,
		earned:    make(map[entity.BadgeID]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromState restores a tracker from a persisted blob. A nil state gives the
// same result as New. The completion set is rebuilt from the events and the
// level from the experience, so a stale cache in the blob is ignored.
func FromState(c *catalog.Catalog, state *entity.ProgressState, opts ...Option) *Tracker {
	t := New(c, opts...)
	if state == nil {
		return t
	}
	t.events = cloneEvents(state.Events)
	t.experience = max(0, state.Experience)
	t.level = levelFor(t.experience)
	for _, b := range state.Badges {
		t.addBadge(b)
	}
	t.rebuildCompleted()
	return t
}

// State returns a deep copy of the state suitable for persisting.
func (t *Tracker) State() *entity.ProgressState {
	return &entity.ProgressState{
		Events:     cloneEvents(t.events),
		Completed:  t.CompletedParts(),
		Experience: t.experience,
		Level:      t.level,
		Badges:     slices.Clone(t.badges),
	}
}

func (t *Tracker) Catalog() *catalog.Catalog {
	return t.catalog
}

// Reset wipes the log, the experience and the badges.
func (t *Tracker) Reset() {
	t.events = nil
	t.completed = make(map[string]struct{})
	t.experience = 0
	t.level = 1
	t.badges = nil
	t.earned = make(map[entity.BadgeID]struct{})
}

func (t *Tracker) addBadge(id entity.BadgeID) bool {
	if _, ok := t.earned[id]; ok {
		return false
	}
	t.earned[id] = struct{}{}
	t.badges = append(t.badges, id)
	return true
}

func cloneEvent(e entity.EatingEvent) entity.EatingEvent {
	if e.Rating != nil {
		r := *e.Rating
		e.Rating = &r
	}
	return e
}

func cloneEvents(events []entity.EatingEvent) []entity.EatingEvent {
	if events == nil {
		return nil
	}
	out := make([]entity.EatingEvent, len(events))
	for i, e := range events {
		out[i] = cloneEvent(e)
	}
	return out
}
