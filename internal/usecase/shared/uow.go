package shared

import (
	"context"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Schedule() ScheduleRepository
	Staff() StaffRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are the lookups the validators need. When obtained from a
// Tx they run inside that transaction, so the conflict check is covered
// by the per-employee advisory lock.
type CommandReads interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	DayHours(ctx context.Context, salonID uuid.UUID, weekday time.Weekday) (*schedule.DayHours, error)
	HolidayOn(ctx context.Context, salonID uuid.UUID, date time.Time) (*schedule.Holiday, error)
	// BlockingReservations returns the slot-blocking reservations of the
	// employee that overlap the given interval, optionally excluding one
	// reservation id (for reschedules).
	BlockingReservations(ctx context.Context, employeeID uuid.UUID, within schedule.Interval, excludeID *uuid.UUID) ([]ReservationSnapshot, error)
}

type ReservationRepository interface {
	// LockEmployee serializes bookings per employee for the rest of the
	// transaction (advisory lock).
	LockEmployee(ctx context.Context, db db.DBTX, employeeID uuid.UUID) error
	Create(ctx context.Context, db db.DBTX, res *booking.Reservation) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status booking.Status) error
	UpdateSlot(ctx context.Context, db db.DBTX, id uuid.UUID, slot schedule.Interval) error
}

type StaffRepository interface {
	UpdateLastLogin(ctx context.Context, db db.DBTX, accountID uuid.UUID) error
}

type ScheduleRepository interface {
	ReplaceWorkingHours(ctx context.Context, db db.DBTX, salonID uuid.UUID, week []schedule.DayHours) error
	CreateHoliday(ctx context.Context, db db.DBTX, holiday *schedule.Holiday) (uuid.UUID, error)
	DeleteHoliday(ctx context.Context, db db.DBTX, salonID, holidayID uuid.UUID) error
}
