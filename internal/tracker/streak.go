package tracker

import (
	"sort"
	"time"
)

// StreakDays counts consecutive days with at least one event, walking back
// from today. A missing today is tolerated once, on the first step only:
// yesterday's run still counts, but any earlier gap ends the streak.
//
// anchor is the first counted day, so the n-th day of a run lies exactly n
// days before it. It only moves when the grace day is used.
func (t *Tracker) StreakDays() int {
	dates := t.distinctDatesDesc()
	if len(dates) == 0 {
		return 0
	}
	streak := 0
	anchor := t.today()
	for _, d := range dates {
		gap := daysBetween(anchor, d)
		switch {
		case gap == streak:
			streak++
		case gap == streak+1 && streak == 0:
			streak++
			anchor = d
		default:
			return streak
		}
	}
	return streak
}

// distinctDatesDesc skips dates after today. Such dates can come from a
// state saved under another timezone.
func (t *Tracker) distinctDatesDesc() []time.Time {
	today := t.today()
	seen := make(map[string]struct{}, len(t.events))
	dates := make([]time.Time, 0, len(t.events))
	for _, e := range t.events {
		if _, ok := seen[e.Date]; ok {
			continue
		}
		seen[e.Date] = struct{}{}
		d, err := parseDate(e.Date)
		if err != nil || d.After(today) {
			continue
		}
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}
