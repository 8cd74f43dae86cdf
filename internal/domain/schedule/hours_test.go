//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clock(t *testing.T, h, m int) *schedule.ClockTime {
	t.Helper()
	ct, err := schedule.NewClockTime(h, m)
	require.NoError(t, err)
	return &ct
}

func TestParseClockTime(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "09:00", want: "09:00"},
		{in: "9:30", want: "09:30"},
		{in: "23:59", want: "23:59"},
		{in: "12:00:00", want: "12:00"},
		{in: "24:00", wantErr: true},
		{in: "10:60", wantErr: true},
		{in: "garbage", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			ct, err := schedule.ParseClockTime(tc.in)
			if tc.wantErr {
				assert.ErrorIs(t, err, schedule.ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, ct.String())
		})
	}
}

func TestNewDayHours(t *testing.T) {
	t.Run("closed weekday", func(t *testing.T) {
		dh, err := schedule.NewDayHours(time.Monday, nil, nil, nil, nil)
		require.NoError(t, err)
		assert.True(t, dh.IsClosed())
		assert.Nil(t, dh.OpenIntervals(at(0, 0)))
	})

	t.Run("open without break", func(t *testing.T) {
		dh, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), nil, nil)
		require.NoError(t, err)
		assert.False(t, dh.IsClosed())
		assert.False(t, dh.HasBreak())
	})

	t.Run("open with break", func(t *testing.T) {
		dh, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), clock(t, 12, 0), clock(t, 13, 0))
		require.NoError(t, err)
		assert.True(t, dh.HasBreak())
	})

	t.Run("open without close is rejected", func(t *testing.T) {
		_, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), nil, nil, nil)
		assert.ErrorIs(t, err, schedule.ErrHalfConfigured)
	})

	t.Run("open after close is rejected", func(t *testing.T) {
		_, err := schedule.NewDayHours(time.Monday, clock(t, 18, 0), clock(t, 9, 0), nil, nil)
		assert.ErrorIs(t, err, schedule.ErrInvalidDayHours)
	})

	t.Run("break start without end is rejected", func(t *testing.T) {
		_, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), clock(t, 12, 0), nil)
		assert.ErrorIs(t, err, schedule.ErrInvalidBreak)
	})

	t.Run("break outside opening hours is rejected", func(t *testing.T) {
		_, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), clock(t, 8, 0), clock(t, 10, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidBreak)

		_, err = schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), clock(t, 17, 0), clock(t, 19, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidBreak)
	})

	t.Run("break on a closed day is rejected", func(t *testing.T) {
		_, err := schedule.NewDayHours(time.Monday, nil, nil, clock(t, 12, 0), clock(t, 13, 0))
		assert.ErrorIs(t, err, schedule.ErrInvalidBreak)
	})
}

func TestDayHoursOpenIntervals(t *testing.T) {
	date := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC) // a Monday

	t.Run("break is subtracted", func(t *testing.T) {
		dh, err := schedule.NewDayHours(time.Monday, clock(t, 9, 0), clock(t, 18, 0), clock(t, 12, 0), clock(t, 13, 0))
		require.NoError(t, err)

		open := dh.OpenIntervals(date)
		require.Len(t, open, 2)
		assert.Equal(t, at(9, 0), open[0].Start())
		assert.Equal(t, at(12, 0), open[0].End())
		assert.Equal(t, at(13, 0), open[1].Start())
		assert.Equal(t, at(18, 0), open[1].End())
	})

	t.Run("no break yields one interval", func(t *testing.T) {
		dh, err := schedule.NewDayHours(time.Monday, clock(t, 10, 0), clock(t, 20, 0), nil, nil)
		require.NoError(t, err)

		open := dh.OpenIntervals(date)
		require.Len(t, open, 1)
		assert.Equal(t, at(10, 0), open[0].Start())
		assert.Equal(t, at(20, 0), open[0].End())
	})
}
