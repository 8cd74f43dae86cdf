package readstore

import (
	"context"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(db db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: db}
}

const busyIntervalsSQL = `
SELECT start_time, end_time
FROM reservations
WHERE employee_id = $1
  AND status IN ('requested', 'confirmed')
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time
`

// BusyIntervals returns the slot-blocking ranges of one employee that
// overlap [from, to). Cancelled and completed rows never block.
func (r *ReservationReadStore) BusyIntervals(ctx context.Context, employeeID uuid.UUID, from, to time.Time) ([]schedule.Interval, error) {
	rows, err := r.db.Query(ctx, busyIntervalsSQL, employeeID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load busy intervals", err)
	}
	defer rows.Close()

	var busy []schedule.Interval
	for rows.Next() {
		var start, end time.Time
		if err := rows.Scan(&start, &end); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy interval row", err)
		}
		busy = append(busy, schedule.MustInterval(start, end))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy interval rows", err)
	}
	return busy, nil
}

const blockingRowsSQL = `
SELECT id, salon_id, employee_id, service_id,
       client_id, COALESCE(client_name, ''), COALESCE(client_phone, ''),
       status, kind, start_time, end_time, created_at, updated_at
FROM reservations
WHERE employee_id = $1
  AND status IN ('requested', 'confirmed')
  AND start_time < $3
  AND end_time > $2
  AND ($4::uuid IS NULL OR id <> $4)
ORDER BY start_time
`

// BlockingRows returns full snapshots of the blocking reservations that
// overlap the interval, optionally excluding one id (for reschedules).
func (r *ReservationReadStore) BlockingRows(ctx context.Context, employeeID uuid.UUID, within schedule.Interval, excludeID *uuid.UUID) ([]shared.ReservationSnapshot, error) {
	rows, err := r.db.Query(ctx, blockingRowsSQL, employeeID, within.Start(), within.End(), excludeID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load blocking reservations", err)
	}
	defer rows.Close()

	var result []shared.ReservationSnapshot
	for rows.Next() {
		var snap shared.ReservationSnapshot
		if err := rows.Scan(
			&snap.ID, &snap.SalonID, &snap.EmployeeID, &snap.ServiceID,
			&snap.ClientID, &snap.ClientName, &snap.ClientPhone,
			&snap.Status, &snap.Kind, &snap.StartTime, &snap.EndTime,
			&snap.CreatedAt, &snap.UpdatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blocking reservation row", err)
		}
		result = append(result, snap)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate blocking reservation rows", err)
	}
	return result, nil
}

const reservationByIDSQL = `
SELECT r.id, r.salon_id, r.employee_id, e.display_name,
       r.service_id, s.name,
       r.client_id, r.client_name, r.client_phone,
       r.start_time, r.end_time, r.status, r.kind,
       r.created_at, r.updated_at
FROM reservations r
JOIN employees e ON e.id = r.employee_id
JOIN services s ON s.id = r.service_id
WHERE r.id = $1
`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	var v queries.ReservationView
	err := r.db.QueryRow(ctx, reservationByIDSQL, id).Scan(
		&v.ID, &v.SalonID, &v.EmployeeID, &v.EmployeeName,
		&v.ServiceID, &v.ServiceName,
		&v.ClientID, &v.ClientName, &v.ClientPhone,
		&v.StartTime, &v.EndTime, &v.Status, &v.Kind,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &v, nil
}

const reservationsBySalonSQL = `
SELECT r.id, r.employee_id, e.display_name, s.name,
       r.start_time, r.end_time, r.status, r.kind
FROM reservations r
JOIN employees e ON e.id = r.employee_id
JOIN services s ON s.id = r.service_id
WHERE r.salon_id = $1
  AND r.start_time < $3
  AND r.end_time > $2
ORDER BY r.start_time
`

func (r *ReservationReadStore) ListBySalon(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, reservationsBySalonSQL, salonID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*queries.ReservationListItem
	for rows.Next() {
		var item queries.ReservationListItem
		if err := rows.Scan(
			&item.ID, &item.EmployeeID, &item.EmployeeName, &item.ServiceName,
			&item.StartTime, &item.EndTime, &item.Status, &item.Kind,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}
