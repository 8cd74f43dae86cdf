package writerepo

import (
	"context"
	"errors"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeExclusionViolation = "23P01"

type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

// LockEmployee takes a transaction-scoped advisory lock keyed on the
// employee id, serializing concurrent bookings for the same employee.
// The lock is released automatically at commit or rollback.
func (r *ReservationRepository) LockEmployee(ctx context.Context, dbtx db.DBTX, employeeID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1::text, 0))`, employeeID)
	if err != nil {
		return infra.WrapRepoErr("failed to lock employee", err)
	}
	return nil
}

const createReservationSQL = `
INSERT INTO reservations (
    id, salon_id, employee_id, service_id,
    client_id, client_name, client_phone,
    start_time, end_time, status, kind
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id
`

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *booking.Reservation) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, createReservationSQL,
		res.ID(), res.SalonID(), res.EmployeeID(), res.ServiceID(),
		res.ClientID(), nullIfEmpty(res.ClientName()), nullIfEmpty(res.ClientPhone()),
		res.Slot().Start(), res.Slot().End(), res.Status().String(), string(res.Kind()),
	).Scan(&id)
	if err != nil {
		if isExclusionViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("reservation slot already taken", err, infra.KindConflict)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return id, nil
}

const updateReservationStatusSQL = `
UPDATE reservations
SET status = $2, updated_at = now()
WHERE id = $1
`

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status booking.Status) error {
	tag, err := dbtx.Exec(ctx, updateReservationStatusSQL, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

const updateReservationSlotSQL = `
UPDATE reservations
SET start_time = $2, end_time = $3, updated_at = now()
WHERE id = $1
`

func (r *ReservationRepository) UpdateSlot(ctx context.Context, dbtx db.DBTX, id uuid.UUID, slot schedule.Interval) error {
	tag, err := dbtx.Exec(ctx, updateReservationSlotSQL, id, slot.Start(), slot.End())
	if err != nil {
		if isExclusionViolation(err) {
			return infra.WrapRepoErr("reservation slot already taken", err, infra.KindConflict)
		}
		return infra.WrapRepoErr("failed to update reservation slot", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func isExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeExclusionViolation
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
