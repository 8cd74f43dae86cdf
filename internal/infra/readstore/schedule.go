package readstore

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ScheduleReadStore struct {
	db db.DBTX
}

func NewScheduleReadStore(db db.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{db: db}
}

const dayHoursSQL = `
SELECT weekday, open_time, close_time, break_start, break_end
FROM working_hours
WHERE salon_id = $1 AND weekday = $2
`

// DayHours returns nil without error when no row is configured for the
// weekday; callers treat that as a closed day.
func (s *ScheduleReadStore) DayHours(ctx context.Context, salonID uuid.UUID, weekday time.Weekday) (*schedule.DayHours, error) {
	var (
		wd                               int
		openT, closeT, breakSt, breakEnd pgtype.Time
	)
	err := s.db.QueryRow(ctx, dayHoursSQL, salonID, int(weekday)).
		Scan(&wd, &openT, &closeT, &breakSt, &breakEnd)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load working hours", err)
	}

	dh, err := rowToDayHours(wd, openT, closeT, breakSt, breakEnd)
	if err != nil {
		return nil, infra.WrapRepoErr("stored working hours are invalid", err)
	}
	return &dh, nil
}

const weekHoursSQL = `
SELECT weekday, open_time, close_time, break_start, break_end
FROM working_hours
WHERE salon_id = $1
ORDER BY weekday
`

func (s *ScheduleReadStore) WeekHours(ctx context.Context, salonID uuid.UUID) ([]schedule.DayHours, error) {
	rows, err := s.db.Query(ctx, weekHoursSQL, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list working hours", err)
	}
	defer rows.Close()

	var week []schedule.DayHours
	for rows.Next() {
		var (
			wd                               int
			openT, closeT, breakSt, breakEnd pgtype.Time
		)
		if err := rows.Scan(&wd, &openT, &closeT, &breakSt, &breakEnd); err != nil {
			return nil, infra.WrapRepoErr("failed to scan working hours row", err)
		}
		dh, err := rowToDayHours(wd, openT, closeT, breakSt, breakEnd)
		if err != nil {
			return nil, infra.WrapRepoErr("stored working hours are invalid", err)
		}
		week = append(week, dh)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate working hours rows", err)
	}
	return week, nil
}

const holidayOnSQL = `
SELECT id, salon_id, date, name, type, is_active
FROM holidays
WHERE salon_id = $1 AND date = $2 AND is_active
`

func (s *ScheduleReadStore) HolidayOn(ctx context.Context, salonID uuid.UUID, date time.Time) (*schedule.Holiday, error) {
	row := s.db.QueryRow(ctx, holidayOnSQL, salonID, date.Format("2006-01-02"))
	holiday, err := scanHoliday(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to load holiday", err)
	}
	return holiday, nil
}

const holidaysBySalonSQL = `
SELECT id, salon_id, date, name, type, is_active
FROM holidays
WHERE salon_id = $1
ORDER BY date
`

func (s *ScheduleReadStore) HolidaysBySalon(ctx context.Context, salonID uuid.UUID) ([]*schedule.Holiday, error) {
	rows, err := s.db.Query(ctx, holidaysBySalonSQL, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list holidays", err)
	}
	defer rows.Close()

	var holidays []*schedule.Holiday
	for rows.Next() {
		holiday, err := scanHoliday(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan holiday row", err)
		}
		holidays = append(holidays, holiday)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate holiday rows", err)
	}
	return holidays, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHoliday(row rowScanner) (*schedule.Holiday, error) {
	var (
		id, salonID uuid.UUID
		date        time.Time
		name, kind  string
		isActive    bool
	)
	if err := row.Scan(&id, &salonID, &date, &name, &kind, &isActive); err != nil {
		return nil, err
	}
	return schedule.ReconstructHoliday(id, salonID, date, name, schedule.HolidayType(kind), isActive), nil
}

func rowToDayHours(weekday int, open, close, breakStart, breakEnd pgtype.Time) (schedule.DayHours, error) {
	return schedule.NewDayHours(
		time.Weekday(weekday),
		clockFromPgtype(open),
		clockFromPgtype(close),
		clockFromPgtype(breakStart),
		clockFromPgtype(breakEnd),
	)
}

func clockFromPgtype(pt pgtype.Time) *schedule.ClockTime {
	minutes := pgconv.MinutesFromPgtypeTime(pt)
	if minutes == nil {
		return nil
	}
	ct, err := schedule.NewClockTime(*minutes/60, *minutes%60)
	if err != nil {
		return nil
	}
	return &ct
}
