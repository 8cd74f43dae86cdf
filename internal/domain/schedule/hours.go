package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidClockTime = errors.New("clock time must be HH:MM within a single day")
	ErrInvalidDayHours  = errors.New("opening time must be before closing time")
	ErrInvalidBreak     = errors.New("break must lie within opening hours")
	ErrHalfConfigured   = errors.New("opening and closing time must be set together")
)

// ClockTime is a time of day in minutes since midnight, timezone-free.
// Working hours are stored per weekday as clock times and anchored to a
// concrete date only when a day schedule is materialized.
type ClockTime int

func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, ErrInvalidClockTime
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClockTime accepts "HH:MM" (seconds tolerated and ignored).
func ParseClockTime(s string) (ClockTime, error) {
	var hour, minute, sec int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hour, &minute, &sec); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
			return 0, ErrInvalidClockTime
		}
	}
	return NewClockTime(hour, minute)
}

func (ct ClockTime) Hour() int   { return int(ct) / 60 }
func (ct ClockTime) Minute() int { return int(ct) % 60 }

func (ct ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", ct.Hour(), ct.Minute())
}

// At anchors the clock time to the given calendar date in the date's location.
func (ct ClockTime) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), ct.Hour(), ct.Minute(), 0, 0, date.Location())
}

// DayHours is the salon-wide working-hour configuration for one weekday.
// A nil open/close pair means the weekday is fully closed.
type DayHours struct {
	weekday    time.Weekday
	open       *ClockTime
	close      *ClockTime
	breakStart *ClockTime
	breakEnd   *ClockTime
}

// NewDayHours validates the configuration invariants: open < close when present,
// break fully inside [open, close) and only present as a pair.
func NewDayHours(weekday time.Weekday, open, close, breakStart, breakEnd *ClockTime) (DayHours, error) {
	if (open == nil) != (close == nil) {
		return DayHours{}, ErrHalfConfigured
	}
	if open == nil {
		if breakStart != nil || breakEnd != nil {
			return DayHours{}, ErrInvalidBreak
		}
		return DayHours{weekday: weekday}, nil
	}
	if *open >= *close {
		return DayHours{}, ErrInvalidDayHours
	}
	if (breakStart == nil) != (breakEnd == nil) {
		return DayHours{}, ErrInvalidBreak
	}
	if breakStart != nil {
		if *breakStart >= *breakEnd || *breakStart < *open || *breakEnd > *close {
			return DayHours{}, ErrInvalidBreak
		}
	}
	return DayHours{
		weekday:    weekday,
		open:       open,
		close:      close,
		breakStart: breakStart,
		breakEnd:   breakEnd,
	}, nil
}

// ClosedDayHours is the explicit "no hours configured" value for a weekday.
func ClosedDayHours(weekday time.Weekday) DayHours {
	return DayHours{weekday: weekday}
}

func (dh DayHours) Weekday() time.Weekday  { return dh.weekday }
func (dh DayHours) Open() *ClockTime       { return dh.open }
func (dh DayHours) Close() *ClockTime      { return dh.close }
func (dh DayHours) BreakStart() *ClockTime { return dh.breakStart }
func (dh DayHours) BreakEnd() *ClockTime   { return dh.breakEnd }

func (dh DayHours) IsClosed() bool {
	return dh.open == nil
}

func (dh DayHours) HasBreak() bool {
	return dh.breakStart != nil
}

// OpenIntervals anchors the weekday configuration to a concrete date and
// returns the open sub-intervals with the break already subtracted.
func (dh DayHours) OpenIntervals(date time.Time) []Interval {
	if dh.IsClosed() {
		return nil
	}
	day := MustInterval(dh.open.At(date), dh.close.At(date))
	if !dh.HasBreak() {
		return []Interval{day}
	}
	return day.Subtract([]Interval{MustInterval(dh.breakStart.At(date), dh.breakEnd.At(date))})
}
