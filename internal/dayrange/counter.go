// Package dayrange counts the days between two calendar dates, optionally
// restricted to a subset of weekdays.
//
// The range walked is half-open: the start date is always evaluated, the end
// date only when IncludeEndDay is set. A start date after the end date is an
// invalid range and counts as zero; nothing in this package returns an error
// for it.
package dayrange

import "github.com/username/day-range-counter/pkg/dateutil"

const daysPerWeek = 7

// Query is the input of a single count
type Query struct {
	Start          dateutil.Date
	End            dateutil.Date
	Filter         WeekdayFilter
	IncludeAllDays bool // overrides Filter with every weekday
	IncludeEndDay  bool
}

// Valid reports whether the start date is not after the end date
func (q Query) Valid() bool {
	return !q.Start.After(q.End)
}

// Effective returns the weekday filter actually applied
func (q Query) Effective() WeekdayFilter {
	if q.IncludeAllDays {
		return AllDays()
	}
	return q.Filter
}

// Tally is the outcome of a count with a per-weekday breakdown
type Tally struct {
	Total     int
	ByWeekday [7]int
	Valid     bool
}

// Of returns how many counted days fell on the given weekday
func (t Tally) Of(day Weekday) int {
	if !day.Valid() {
		return 0
	}
	return t.ByWeekday[day]
}

// Count returns the number of included days in the query range
func Count(q Query) int {
	return TallyOf(q).Total
}

// TallyOf records every included day of the query range. Whole weeks are
// counted arithmetically, so the cost does not grow with the span.
func TallyOf(q Query) Tally {
	if !q.Valid() {
		return Tally{}
	}

	start, end := q.Start.Normalized(), q.End.Normalized()
	tally := Tally{Valid: true}
	filter := q.Effective()
	add := func(d dateutil.Date) {
		day := WeekdayOf(d.Weekday())
		if filter.Includes(day) {
			tally.Total++
			tally.ByWeekday[day]++
		}
	}

	// [Start, End): every weekday occurs once per whole week
	span := dateutil.DaysBetween(start, end)
	weeks := span / daysPerWeek
	if weeks > 0 {
		for _, day := range filter.Days() {
			tally.Total += weeks
			tally.ByWeekday[day] += weeks
		}
	}
	for d := start.AddDays(weeks * daysPerWeek); d.Before(end); d = d.AddDays(1) {
		add(d)
	}

	// End is never reached above
	if q.IncludeEndDay {
		add(end)
	}

	return tally
}
