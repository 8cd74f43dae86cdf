package schedule

import "time"

// DefaultSlotStep is the candidate-grid granularity. It is a deployment
// policy (configurable at startup), never a per-request parameter.
const DefaultSlotStep = 30 * time.Minute

// AvailableStarts walks the fixed candidate grid over the open
// sub-intervals of a day and returns every start time where a booking of
// the given duration fits without touching a busy interval. Starts before
// now are skipped, so passing the current time handles the "today"
// case and passing a zero time disables the cutoff.
//
// Results are ascending and duplicate-free by construction: candidates
// are generated on a per-sub-interval grid and sub-intervals never
// overlap.
func AvailableStarts(open []Interval, duration, step time.Duration, busy []Interval, now time.Time) []time.Time {
	if duration <= 0 || step <= 0 {
		return nil
	}

	var starts []time.Time
	for _, window := range open {
		for t := window.Start(); !t.Add(duration).After(window.End()); t = t.Add(step) {
			if t.Before(now) {
				continue
			}
			candidate := Interval{start: t, end: t.Add(duration)}
			if overlapsAny(candidate, busy) {
				continue
			}
			starts = append(starts, t)
		}
	}
	return starts
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if candidate.Overlaps(b) {
			return true
		}
	}
	return false
}
