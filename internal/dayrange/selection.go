package dayrange

import "github.com/username/day-range-counter/pkg/dateutil"

// Selection is the caller-owned state collected by a form between calculations:
// the per-day toggles plus the two inclusion switches.
// It is not safe for concurrent use; take a Query snapshot before counting.
type Selection struct {
	filter         WeekdayFilter
	includeAllDays bool
	includeEndDay  bool
}

// NewSelection returns the initial form state: every day included, "all days" on, end day off
func NewSelection() *Selection {
	return &Selection{
		filter:         AllDays(),
		includeAllDays: true,
	}
}

// Toggle flips one weekday in the stored filter.
// While IncludeAllDays is on the effective filter stays all-true; the
// toggle becomes visible once the switch is turned off.
func (s *Selection) Toggle(day Weekday) {
	s.filter.Toggle(day)
}

// SetIncludeAll switches "include all days". Enabling it resets every weekday to included.
func (s *Selection) SetIncludeAll(include bool) {
	s.includeAllDays = include
	if include {
		s.filter = AllDays()
	}
}

// SetIncludeEndDay switches whether the end date itself is evaluated
func (s *Selection) SetIncludeEndDay(include bool) {
	s.includeEndDay = include
}

// SetFilter replaces the stored per-day toggles
func (s *Selection) SetFilter(f WeekdayFilter) {
	s.filter = f
}

// Filter returns the stored per-day toggles
func (s *Selection) Filter() WeekdayFilter {
	return s.filter
}

// IncludeAllDays reports whether the "all days" switch is on
func (s *Selection) IncludeAllDays() bool {
	return s.includeAllDays
}

// IncludeEndDay reports whether the end day switch is on
func (s *Selection) IncludeEndDay() bool {
	return s.includeEndDay
}

// Query snapshots the current state into a query over [start, end]
func (s *Selection) Query(start, end dateutil.Date) Query {
	return Query{
		Start:          start,
		End:            end,
		Filter:         s.filter,
		IncludeAllDays: s.includeAllDays,
		IncludeEndDay:  s.includeEndDay,
	}
}
