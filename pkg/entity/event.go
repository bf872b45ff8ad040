package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-day format used for event dates.
const DateLayout = "2006-01-02"

type EatingEvent struct {
	ID         uuid.UUID `json:"id"`
	PartID     string    `json:"partId"`
	Date       string    `json:"date"`
	Memo       string    `json:"memo,omitempty"`
	Rating     *int      `json:"rating,omitempty"`
	Restaurant string    `json:"restaurant,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}
