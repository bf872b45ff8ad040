package tracker

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

const SnapshotVersion = "1.0"

func (t *Tracker) Export() entity.Snapshot {
	records := cloneEvents(t.events)
	if records == nil {
		records = []entity.EatingEvent{}
	}
	return entity.Snapshot{
		Version:        SnapshotVersion,
		Records:        &records,
		EatenParts:     t.CompletedParts(),
		UserLevel:      t.level,
		UserExperience: t.experience,
		UserBadges:     t.EarnedBadges(),
		ExportDate:     t.now().UTC().Format(time.RFC3339),
	}
}

// ParseSnapshot decodes an exported file and checks the required fields.
func ParseSnapshot(data []byte) (entity.Snapshot, error) {
	var s entity.Snapshot
	if err := sonic.Unmarshal(data, &s); err != nil {
		return entity.Snapshot{}, fmt.Errorf("%w: %s", errorvalues.ErrInvalidFormat, err.Error())
	}
	if err := checkSnapshot(s); err != nil {
		return entity.Snapshot{}, err
	}
	return s, nil
}

func checkSnapshot(s entity.Snapshot) error {
	if s.Version == "" {
		return fmt.Errorf("%w: missing version", errorvalues.ErrInvalidFormat)
	}
	if s.Records == nil {
		return fmt.Errorf("%w: missing records", errorvalues.ErrInvalidFormat)
	}
	if s.UserExperience < 0 {
		return fmt.Errorf("%w: negative experience", errorvalues.ErrInvalidFormat)
	}
	return nil
}

// Import replaces the whole state with the snapshot. Nothing changes when
// the snapshot is rejected.
func (t *Tracker) Import(s entity.Snapshot) error {
	if err := checkSnapshot(s); err != nil {
		return err
	}
	today := t.today()
	events := make([]entity.EatingEvent, 0, len(*s.Records))
	ids := make(map[uuid.UUID]struct{}, len(*s.Records))
	for i, e := range *s.Records {
		if _, ok := t.catalog.Part(e.PartID); !ok {
			return fmt.Errorf("%w: record %d references unknown part %q", errorvalues.ErrInvalidFormat, i, e.PartID)
		}
		d, err := parseDate(e.Date)
		if err != nil {
			return fmt.Errorf("%w: record %d has malformed date %q", errorvalues.ErrInvalidFormat, i, e.Date)
		}
		if d.After(today) {
			return fmt.Errorf("%w: record %d is dated %s, after today", errorvalues.ErrInvalidFormat, i, e.Date)
		}
		if e.Rating != nil && (*e.Rating < MinRating || *e.Rating > MaxRating) {
			return fmt.Errorf("%w: record %d has rating %d", errorvalues.ErrInvalidFormat, i, *e.Rating)
		}
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}
		if _, dup := ids[e.ID]; dup {
			return fmt.Errorf("%w: duplicate record id %s", errorvalues.ErrInvalidFormat, e.ID)
		}
		ids[e.ID] = struct{}{}
		events = append(events, cloneEvent(e))
	}

	t.Reset()
	t.events = events
	t.experience = s.UserExperience
	t.level = levelFor(t.experience)
	for _, b := range s.UserBadges {
		t.addBadge(b)
	}
	t.rebuildCompleted()
	return nil
}
