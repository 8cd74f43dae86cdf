package writerepo

import (
	"context"
	"errors"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

const pgErrCodeUniqueViolation = "23505"

type ScheduleRepository struct{}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

const insertWorkingHoursSQL = `
INSERT INTO working_hours (
    salon_id, weekday, open_time, close_time, break_start, break_end
) VALUES ($1, $2, $3, $4, $5, $6)
`

// ReplaceWorkingHours swaps the whole weekly configuration. Delete plus
// reinsert keeps the logic trivial; callers run it inside a transaction.
func (r *ScheduleRepository) ReplaceWorkingHours(ctx context.Context, dbtx db.DBTX, salonID uuid.UUID, week []schedule.DayHours) error {
	if _, err := dbtx.Exec(ctx, `DELETE FROM working_hours WHERE salon_id = $1`, salonID); err != nil {
		return infra.WrapRepoErr("failed to clear working hours", err)
	}
	for _, dh := range week {
		if dh.IsClosed() {
			// Closed weekdays are represented by the absence of a row.
			continue
		}
		_, err := dbtx.Exec(ctx, insertWorkingHoursSQL,
			salonID, int(dh.Weekday()),
			clockToPgtype(dh.Open()), clockToPgtype(dh.Close()),
			clockToPgtype(dh.BreakStart()), clockToPgtype(dh.BreakEnd()),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert working hours", err)
		}
	}
	return nil
}

const createHolidaySQL = `
INSERT INTO holidays (id, salon_id, date, name, type, is_active)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id
`

func (r *ScheduleRepository) CreateHoliday(ctx context.Context, dbtx db.DBTX, holiday *schedule.Holiday) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createHolidaySQL,
		holiday.ID(), holiday.SalonID(), holiday.Date().Format("2006-01-02"),
		holiday.Name(), string(holiday.Type()), holiday.IsActive(),
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("holiday already exists for date", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create holiday", err)
	}
	return id, nil
}

func (r *ScheduleRepository) DeleteHoliday(ctx context.Context, dbtx db.DBTX, salonID, holidayID uuid.UUID) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM holidays WHERE id = $1 AND salon_id = $2`, holidayID, salonID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete holiday", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("holiday not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}

func clockToPgtype(ct *schedule.ClockTime) pgtype.Time {
	if ct == nil {
		return pgconv.MinutesToPgtypeTime(nil)
	}
	minutes := ct.Hour()*60 + ct.Minute()
	return pgconv.MinutesToPgtypeTime(&minutes)
}
