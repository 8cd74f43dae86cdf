package schedule

import "time"

// ClosedReason says why a salon is closed on a date.
type ClosedReason string

const (
	ClosedHoliday      ClosedReason = "holiday"
	ClosedUnconfigured ClosedReason = "no working hours configured"
	ClosedWeekday      ClosedReason = "weekday is closed"
)

// DaySchedule is the resolved eligibility of one salon calendar date:
// either closed with a reason, or open during the listed sub-intervals
// (break already subtracted).
type DaySchedule struct {
	Date         time.Time
	Open         []Interval
	ClosedReason ClosedReason
}

func (ds DaySchedule) IsOpen() bool {
	return len(ds.Open) > 0
}

// Accommodates reports whether the proposed interval fits entirely inside
// one open sub-interval. This single check enforces both "within working
// hours" and "not during a break".
func (ds DaySchedule) Accommodates(iv Interval) bool {
	for _, open := range ds.Open {
		if open.Contains(iv) {
			return true
		}
	}
	return false
}

// ResolveDay is the single source of truth for day eligibility, consulted
// by both slot listing and booking validation. hours may be nil when no
// row is configured for the weekday; holiday may be nil when none exists
// for the date.
func ResolveDay(date time.Time, hours *DayHours, holiday *Holiday) DaySchedule {
	ds := DaySchedule{Date: truncateToDate(date)}

	if holiday != nil && holiday.Closes(date) {
		ds.ClosedReason = ClosedHoliday
		return ds
	}
	if hours == nil {
		ds.ClosedReason = ClosedUnconfigured
		return ds
	}
	if hours.IsClosed() {
		ds.ClosedReason = ClosedWeekday
		return ds
	}

	open := hours.OpenIntervals(ds.Date)
	if len(open) == 0 {
		// Break spanning the whole day leaves nothing bookable.
		ds.ClosedReason = ClosedWeekday
		return ds
	}
	ds.Open = open
	return ds
}
