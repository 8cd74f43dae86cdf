package queries

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	WeekHours(ctx context.Context, salonID uuid.UUID) ([]WeekdayHoursView, error)
	Holidays(ctx context.Context, salonID uuid.UUID) ([]HolidayView, error)
}

type scheduleQueriesImpl struct {
	schedules ScheduleReadStore
}

func NewScheduleQueries(schedules ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{schedules: schedules}
}

// WeekHours returns all seven weekdays; days without configured hours
// come back with nil open/close so the client can render "closed".
func (q *scheduleQueriesImpl) WeekHours(ctx context.Context, salonID uuid.UUID) ([]WeekdayHoursView, error) {
	configured, err := q.schedules.WeekHours(ctx, salonID)
	if err != nil {
		return nil, err
	}

	byWeekday := make(map[time.Weekday]schedule.DayHours, len(configured))
	for _, dh := range configured {
		byWeekday[dh.Weekday()] = dh
	}

	views := make([]WeekdayHoursView, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		dh, ok := byWeekday[wd]
		if !ok {
			dh = schedule.ClosedDayHours(wd)
		}
		views = append(views, toWeekdayHoursView(dh))
	}
	return views, nil
}

func (q *scheduleQueriesImpl) Holidays(ctx context.Context, salonID uuid.UUID) ([]HolidayView, error) {
	holidays, err := q.schedules.HolidaysBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	views := make([]HolidayView, 0, len(holidays))
	for _, h := range holidays {
		views = append(views, HolidayView{
			ID:       h.ID(),
			Date:     h.Date().Format(dateLayout),
			Name:     h.Name(),
			Type:     string(h.Type()),
			IsActive: h.IsActive(),
		})
	}
	return views, nil
}

func toWeekdayHoursView(dh schedule.DayHours) WeekdayHoursView {
	view := WeekdayHoursView{Weekday: int(dh.Weekday())}
	if dh.IsClosed() {
		return view
	}
	open := dh.Open().String()
	cls := dh.Close().String()
	view.Open = &open
	view.Close = &cls
	if dh.HasBreak() {
		bs := dh.BreakStart().String()
		be := dh.BreakEnd().String()
		view.BreakStart = &bs
		view.BreakEnd = &be
	}
	return view
}
