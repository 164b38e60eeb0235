package domain

import (
	"sort"
	"time"
)

// CalendarDay is the occupancy summary of a single day
type CalendarDay struct {
	Date        time.Time
	TotalPeople int
	Themes      []string
	Names       []string
}

// dayAccumulator собирает занятость одного дня
type dayAccumulator struct {
	totalPeople int
	themes      map[string]struct{}
	names       map[string]struct{}
}

// BuildCalendar derives the per-day occupancy view from bookings within
// [from, to]. Each booking contributes its headcount, theme and name to every
// day of its inclusive range, clamped to the window. Days nobody touches are
// omitted. The result is ordered by date ascending; theme and name sets are
// deduplicated and sorted.
//
// The caller is expected to pass only approved bookings; pending and rejected
// ones never occupy the venue.
func BuildCalendar(bookings []*Booking, from, to time.Time) []CalendarDay {
	from = DateOnly(from)
	to = DateOnly(to)

	days := make(map[time.Time]*dayAccumulator)

	for _, b := range bookings {
		current := DateOnly(b.StartDate)
		if current.Before(from) {
			current = from
		}
		last := DateOnly(b.EndDate)
		if last.After(to) {
			last = to
		}

		for !current.After(last) {
			acc, ok := days[current]
			if !ok {
				acc = &dayAccumulator{
					themes: make(map[string]struct{}),
					names:  make(map[string]struct{}),
				}
				days[current] = acc
			}

			acc.totalPeople += b.PeopleCount
			acc.themes[b.Theme] = struct{}{}
			if b.Name != nil {
				acc.names[*b.Name] = struct{}{}
			}

			current = current.AddDate(0, 0, 1)
		}
	}

	result := make([]CalendarDay, 0, len(days))
	for date, acc := range days {
		result = append(result, CalendarDay{
			Date:        date,
			TotalPeople: acc.totalPeople,
			Themes:      sortedKeys(acc.themes),
			Names:       sortedKeys(acc.names),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})

	return result
}

// DateOnly truncates t to midnight UTC, the canonical representation of a calendar day
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
