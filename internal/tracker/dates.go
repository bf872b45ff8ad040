package tracker

import (
	"fmt"
	"time"

	errorvalues "github.com/limbo/tabebui/internal/error_values"
	"github.com/limbo/tabebui/pkg/entity"
)

// Dates are kept as YYYY-MM-DD strings and parsed as UTC midnights, so
// subtracting two of them always yields whole days.
func parseDate(s string) (time.Time, error) {
	d, err := time.Parse(entity.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed date %q", errorvalues.ErrInvalidArgument, s)
	}
	return d, nil
}

func daysBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}

func (t *Tracker) today() time.Time {
	local := t.now().In(t.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day in the tracker's location.
func (t *Tracker) Today() string {
	return t.today().Format(entity.DateLayout)
}
