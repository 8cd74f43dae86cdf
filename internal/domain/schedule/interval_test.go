//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(h, m int) time.Time {
	return time.Date(2026, 9, 14, h, m, 0, 0, time.UTC)
}

func iv(t *testing.T, sh, sm, eh, em int) schedule.Interval {
	t.Helper()
	v, err := schedule.NewInterval(at(sh, sm), at(eh, em))
	require.NoError(t, err)
	return v
}

func TestNewInterval(t *testing.T) {
	t.Run("start must be before end", func(t *testing.T) {
		_, err := schedule.NewInterval(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)

		_, err = schedule.NewInterval(at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidInterval)
	})

	t.Run("valid interval keeps bounds", func(t *testing.T) {
		v, err := schedule.NewInterval(at(9, 0), at(18, 0))
		require.NoError(t, err)
		assert.Equal(t, at(9, 0), v.Start())
		assert.Equal(t, at(18, 0), v.End())
		assert.Equal(t, 9*time.Hour, v.Duration())
	})
}

func TestIntervalOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a    schedule.Interval
		b    schedule.Interval
		want bool
	}{
		{"partial overlap", iv(t, 10, 0, 11, 0), iv(t, 10, 30, 11, 30), true},
		{"b inside a", iv(t, 9, 0, 18, 0), iv(t, 12, 0, 13, 0), true},
		{"identical", iv(t, 10, 0, 11, 0), iv(t, 10, 0, 11, 0), true},
		{"adjacent half-open", iv(t, 10, 0, 11, 0), iv(t, 11, 0, 12, 0), false},
		{"disjoint", iv(t, 9, 0, 10, 0), iv(t, 14, 0, 15, 0), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			// symmetry
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	day := iv(t, 9, 0, 18, 0)

	assert.True(t, day.Contains(iv(t, 9, 0, 18, 0)))
	assert.True(t, day.Contains(iv(t, 9, 0, 9, 30)))
	assert.True(t, day.Contains(iv(t, 17, 30, 18, 0)))
	assert.False(t, day.Contains(iv(t, 8, 30, 9, 30)))
	assert.False(t, day.Contains(iv(t, 17, 30, 18, 30)))
}

func TestIntervalSubtract(t *testing.T) {
	day := iv(t, 9, 0, 18, 0)

	t.Run("no busy intervals", func(t *testing.T) {
		free := day.Subtract(nil)
		require.Len(t, free, 1)
		assert.Equal(t, day, free[0])
	})

	t.Run("single break in the middle", func(t *testing.T) {
		free := day.Subtract([]schedule.Interval{iv(t, 12, 0, 13, 0)})
		require.Len(t, free, 2)
		assert.Equal(t, iv(t, 9, 0, 12, 0), free[0])
		assert.Equal(t, iv(t, 13, 0, 18, 0), free[1])
	})

	t.Run("unsorted overlapping busy intervals", func(t *testing.T) {
		free := day.Subtract([]schedule.Interval{
			iv(t, 14, 0, 15, 0),
			iv(t, 11, 0, 12, 30),
			iv(t, 12, 0, 13, 0),
		})
		require.Len(t, free, 3)
		assert.Equal(t, iv(t, 9, 0, 11, 0), free[0])
		assert.Equal(t, iv(t, 13, 0, 14, 0), free[1])
		assert.Equal(t, iv(t, 15, 0, 18, 0), free[2])
	})

	t.Run("busy covering the leading edge", func(t *testing.T) {
		free := day.Subtract([]schedule.Interval{iv(t, 8, 0, 10, 0)})
		require.Len(t, free, 1)
		assert.Equal(t, iv(t, 10, 0, 18, 0), free[0])
	})

	t.Run("busy covering everything", func(t *testing.T) {
		free := day.Subtract([]schedule.Interval{iv(t, 8, 0, 19, 0)})
		assert.Empty(t, free)
	})

	t.Run("busy outside the interval is ignored", func(t *testing.T) {
		free := day.Subtract([]schedule.Interval{iv(t, 19, 0, 20, 0)})
		require.Len(t, free, 1)
		assert.Equal(t, day, free[0])
	})
}
