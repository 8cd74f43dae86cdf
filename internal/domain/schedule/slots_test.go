//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func starts(hm ...[2]int) []time.Time {
	out := make([]time.Time, len(hm))
	for i, v := range hm {
		out[i] = at(v[0], v[1])
	}
	return out
}

func TestAvailableStarts(t *testing.T) {
	open := []schedule.Interval{
		iv(t, 9, 0, 12, 0),
		iv(t, 13, 0, 18, 0),
	}

	t.Run("full grid for an empty day", func(t *testing.T) {
		got := schedule.AvailableStarts(open, 30*time.Minute, 30*time.Minute, nil, time.Time{})

		want := starts(
			[2]int{9, 0}, [2]int{9, 30}, [2]int{10, 0}, [2]int{10, 30}, [2]int{11, 0}, [2]int{11, 30},
			[2]int{13, 0}, [2]int{13, 30}, [2]int{14, 0}, [2]int{14, 30}, [2]int{15, 0}, [2]int{15, 30},
			[2]int{16, 0}, [2]int{16, 30}, [2]int{17, 0}, [2]int{17, 30},
		)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("slot grid mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("last start must leave room for the full duration", func(t *testing.T) {
		got := schedule.AvailableStarts(open, 60*time.Minute, 30*time.Minute, nil, time.Time{})

		// 11:30 would end 12:30, past the morning window; 17:30 would end 18:30.
		assert.NotContains(t, got, at(11, 30))
		assert.NotContains(t, got, at(17, 30))
		assert.Contains(t, got, at(11, 0))
		assert.Contains(t, got, at(17, 0))
	})

	t.Run("booked intervals knock out overlapping candidates", func(t *testing.T) {
		busy := []schedule.Interval{iv(t, 10, 0, 11, 0)}
		got := schedule.AvailableStarts(open, 30*time.Minute, 30*time.Minute, busy, time.Time{})

		assert.NotContains(t, got, at(10, 0))
		assert.NotContains(t, got, at(10, 30))
		// Half-open semantics keep the adjacent slots.
		assert.Contains(t, got, at(9, 30))
		assert.Contains(t, got, at(11, 0))
	})

	t.Run("reservation not aligned with the grid", func(t *testing.T) {
		busy := []schedule.Interval{iv(t, 10, 15, 10, 45)}
		got := schedule.AvailableStarts(open, 30*time.Minute, 30*time.Minute, busy, time.Time{})

		assert.NotContains(t, got, at(10, 0))
		assert.NotContains(t, got, at(10, 30))
		assert.Contains(t, got, at(11, 0))
	})

	t.Run("past starts are excluded for today", func(t *testing.T) {
		now := at(10, 10)
		got := schedule.AvailableStarts(open, 30*time.Minute, 30*time.Minute, nil, now)

		assert.NotContains(t, got, at(9, 30))
		assert.NotContains(t, got, at(10, 0))
		assert.Contains(t, got, at(10, 30))
	})

	t.Run("duration longer than every window", func(t *testing.T) {
		got := schedule.AvailableStarts(open, 6*time.Hour, 30*time.Minute, nil, time.Time{})
		assert.Empty(t, got)
	})

	t.Run("non-positive duration or step", func(t *testing.T) {
		assert.Nil(t, schedule.AvailableStarts(open, 0, 30*time.Minute, nil, time.Time{}))
		assert.Nil(t, schedule.AvailableStarts(open, 30*time.Minute, 0, nil, time.Time{}))
	})

	t.Run("fully booked day", func(t *testing.T) {
		busy := []schedule.Interval{iv(t, 9, 0, 12, 0), iv(t, 13, 0, 18, 0)}
		got := schedule.AvailableStarts(open, 30*time.Minute, 30*time.Minute, busy, time.Time{})
		assert.Empty(t, got)
	})
}
