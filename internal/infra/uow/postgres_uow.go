package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/infra/readstore"
	"salon-booking/internal/infra/writerepo"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	// Conflicts are a business outcome, not a transient fault; retrying
	// would just collide with the same reservation again.
	if infra.IsKind(err, infra.KindConflict) {
		return false
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	reservationRepo shared.ReservationRepository
	scheduleRepo    shared.ScheduleRepository
	staffRepo       shared.StaffRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = writerepo.NewReservationRepository()
	}
	return t.reservationRepo
}

func (t *pgTx) Schedule() shared.ScheduleRepository {
	if t.scheduleRepo == nil {
		t.scheduleRepo = writerepo.NewScheduleRepository()
	}
	return t.scheduleRepo
}

func (t *pgTx) Staff() shared.StaffRepository {
	if t.staffRepo == nil {
		t.staffRepo = writerepo.NewStaffRepository()
	}
	return t.staffRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	salonStore       *readstore.SalonReadStore
	scheduleStore    *readstore.ScheduleReadStore
	reservationStore *readstore.ReservationReadStore
}

func (r *commandReads) salons() *readstore.SalonReadStore {
	if r.salonStore == nil {
		r.salonStore = readstore.NewSalonReadStore(r.dbtx)
	}
	return r.salonStore
}

func (r *commandReads) schedules() *readstore.ScheduleReadStore {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.dbtx)
	}
	return r.scheduleStore
}

func (r *commandReads) reservations() *readstore.ReservationReadStore {
	if r.reservationStore == nil {
		r.reservationStore = readstore.NewReservationReadStore(r.dbtx)
	}
	return r.reservationStore
}

func (r *commandReads) ServiceByID(ctx context.Context, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	service, err := r.salons().ServiceByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ServiceSnapshot{
		ID:          service.ID,
		SalonID:     service.SalonID,
		Name:        service.Name,
		DurationMin: service.DurationMin,
		PriceCents:  service.PriceCents,
	}, nil
}

func (r *commandReads) EmployeeByID(ctx context.Context, id uuid.UUID) (*shared.EmployeeSnapshot, error) {
	employee, err := r.salons().EmployeeByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.EmployeeSnapshot{
		ID:                  employee.ID,
		SalonID:             employee.SalonID,
		DisplayName:         employee.DisplayName,
		QualifiedServiceIDs: employee.QualifiedServiceIDs,
	}, nil
}

func (r *commandReads) ReservationByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	view, err := r.reservations().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	snap := &shared.ReservationSnapshot{
		ID:         view.ID,
		SalonID:    view.SalonID,
		EmployeeID: view.EmployeeID,
		ServiceID:  view.ServiceID,
		ClientID:   view.ClientID,
		Status:     view.Status,
		Kind:       view.Kind,
		StartTime:  view.StartTime,
		EndTime:    view.EndTime,
		CreatedAt:  view.CreatedAt,
		UpdatedAt:  view.UpdatedAt,
	}
	if view.ClientName != nil {
		snap.ClientName = *view.ClientName
	}
	if view.ClientPhone != nil {
		snap.ClientPhone = *view.ClientPhone
	}
	return snap, nil
}

func (r *commandReads) DayHours(ctx context.Context, salonID uuid.UUID, weekday time.Weekday) (*schedule.DayHours, error) {
	return r.schedules().DayHours(ctx, salonID, weekday)
}

func (r *commandReads) HolidayOn(ctx context.Context, salonID uuid.UUID, date time.Time) (*schedule.Holiday, error) {
	return r.schedules().HolidayOn(ctx, salonID, date)
}

func (r *commandReads) BlockingReservations(ctx context.Context, employeeID uuid.UUID, within schedule.Interval, excludeID *uuid.UUID) ([]shared.ReservationSnapshot, error) {
	busy, err := r.reservations().BlockingRows(ctx, employeeID, within, excludeID)
	if err != nil {
		return nil, err
	}
	return busy, nil
}
