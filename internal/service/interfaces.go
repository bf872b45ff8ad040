package service

import (
	"context"

	"github.com/limbo/tabebui/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks github.com/limbo/tabebui/internal/service ConciergeI

// ConciergeI is the external chat collaborator. Reply may return an empty
// History, the caller then builds one itself.
type ConciergeI interface {
	Reply(ctx context.Context, req entity.ChatRequest) (*entity.ChatReply, error)
}

type RecordMealRequest struct {
	PartID string `validate:"required,part_id,max=64"`
	// Empty date means today
	Date       string `validate:"omitempty,calendar_date"`
	Memo       string `validate:"max=500"`
	Rating     *int   `validate:"omitempty,min=1,max=5"`
	Restaurant string `validate:"max=200"`
}

// UpdateMealRequest changes only the non-nil fields. ClearRating drops the
// rating and wins over Rating.
type UpdateMealRequest struct {
	PartID      *string `validate:"omitempty,part_id,max=64"`
	Date        *string `validate:"omitempty,calendar_date"`
	Memo        *string `validate:"omitempty,max=500"`
	Rating      *int    `validate:"omitempty,min=1,max=5"`
	ClearRating bool
	Restaurant  *string `validate:"omitempty,max=200"`
}

// RecordsFilter narrows a records listing. Fields combine with AND, so
// Today together with a From after today lists nothing. The zero value
// lists everything.
type RecordsFilter struct {
	PartID    string `validate:"omitempty,part_id"`
	From      string `validate:"omitempty,calendar_date"`
	To        string `validate:"omitempty,calendar_date"`
	Today     bool
	ThisMonth bool
}

type ChatRequest struct {
	Message string `validate:"required,max=2000"`
	History []entity.ChatMessage
}

// RecordOutcome reports what recording one meal changed.
type RecordOutcome struct {
	Event            entity.EatingEvent `json:"event"`
	IsNewPart        bool               `json:"is_new_part"`
	ExperienceGained int                `json:"experience_gained"`
	Level            int                `json:"level"`
	LevelUp          bool               `json:"level_up"`
	NewBadges        []entity.Badge     `json:"new_badges"`
}

type UpdateOutcome struct {
	Event     entity.EatingEvent `json:"event"`
	NewBadges []entity.Badge     `json:"new_badges"`
}

type ExperienceOutcome struct {
	Action           string         `json:"action"`
	ExperienceGained int            `json:"experience_gained"`
	Level            int            `json:"level"`
	LevelUp          bool           `json:"level_up"`
	NewBadges        []entity.Badge `json:"new_badges"`
}

// BadgeView is a registry badge with the user's earned flag.
type BadgeView struct {
	entity.Badge
	Earned bool `json:"earned"`
}
