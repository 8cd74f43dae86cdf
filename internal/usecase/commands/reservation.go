package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/schedule"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// ConflictError reports a slot collision with enough detail for the
// handler to surface the conflicting range. It unwraps to the sentinel
// so errors.Is(err, errs.ErrReservationConflict) holds.
type ConflictError struct {
	Requested schedule.Interval
	Existing  schedule.Interval
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("reservation conflict: requested %s overlaps %s", e.Requested, e.Existing)
}

func (e *ConflictError) Unwrap() error {
	return errs.ErrReservationConflict
}

type ReservationCommands interface {
	Create(ctx context.Context, actor shared.Actor, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	Reschedule(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.RescheduleReservationRequest) (*queries.ReservationView, error)
	UpdateStatus(ctx context.Context, actor shared.Actor, id uuid.UUID, req reqdto.UpdateReservationStatusRequest) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
	cache              queries.AvailabilityCache
	clock              clock.Clock
	loc                *time.Location
	cfg                config.BookingConfig
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	cache queries.AvailabilityCache,
	clk clock.Clock,
	loc *time.Location,
	cfg config.BookingConfig,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
		cache:              cache,
		clock:              clk,
		loc:                loc,
		cfg:                cfg,
	}
}

func (c *reservationCommandsImpl) Create(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.CreateReservationRequest,
) (*queries.ReservationView, error) {
	reads := c.uow.CommandReads()

	service, err := reads.ServiceByID(ctx, req.ServiceID)
	if err != nil {
		return nil, mapLookupErr(err, errs.ErrServiceNotFound)
	}
	employee, err := reads.EmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, mapLookupErr(err, errs.ErrEmployeeNotFound)
	}
	// Tenancy: staff only book inside their own salon.
	if service.SalonID != actor.SalonID || employee.SalonID != actor.SalonID {
		return nil, errs.ErrServiceNotFound
	}
	if !employee.CanPerform(service.ID, c.cfg.AllowUnqualifiedEmployees) {
		return nil, errs.ErrEmployeeNotQualified
	}

	res, err := booking.NewReservation(
		&booking.Services{Clock: c.clock},
		booking.ServiceSpec{ID: service.ID, SalonID: service.SalonID, DurationMin: service.DurationMin},
		booking.EmployeeSpec{ID: employee.ID, SalonID: employee.SalonID},
		req.ClientInfo(),
		req.StartTime.In(c.loc),
		req.BookingKind(),
	)
	if err != nil {
		return nil, mapDomainErr(err)
	}

	var createdID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Reservations().LockEmployee(ctx, tx.DB(), res.EmployeeID()); err != nil {
			return err
		}
		if err := c.validateSlot(ctx, tx.Reads(), res.SalonID(), res.EmployeeID(), res.Slot(), nil); err != nil {
			return err
		}
		id, err := tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				// Lost the race despite the lock (e.g. direct SQL writes);
				// the exclusion constraint is the final arbiter.
				return &ConflictError{Requested: res.Slot(), Existing: res.Slot()}
			}
			return errs.Wrap(err, "failed to create reservation")
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidateAvailability(ctx, actor.SalonID)
	return c.reservationQueries.GetByID(ctx, actor.SalonID, createdID)
}

func (c *reservationCommandsImpl) Reschedule(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	req reqdto.RescheduleReservationRequest,
) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadOwned(ctx, tx.Reads(), actor, id)
		if err != nil {
			return err
		}
		if err := tx.Reservations().LockEmployee(ctx, tx.DB(), res.EmployeeID()); err != nil {
			return err
		}
		if err := res.Reschedule(&booking.Services{Clock: c.clock}, req.StartTime.In(c.loc)); err != nil {
			return mapDomainErr(err)
		}
		excludeID := res.ID()
		if err := c.validateSlot(ctx, tx.Reads(), res.SalonID(), res.EmployeeID(), res.Slot(), &excludeID); err != nil {
			return err
		}
		if err := tx.Reservations().UpdateSlot(ctx, tx.DB(), res.ID(), res.Slot()); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return &ConflictError{Requested: res.Slot(), Existing: res.Slot()}
			}
			return errs.Wrap(err, "failed to move reservation")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.invalidateAvailability(ctx, actor.SalonID)
	return c.reservationQueries.GetByID(ctx, actor.SalonID, id)
}

func (c *reservationCommandsImpl) UpdateStatus(
	ctx context.Context,
	actor shared.Actor,
	id uuid.UUID,
	req reqdto.UpdateReservationStatusRequest,
) (*queries.ReservationView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := c.loadOwned(ctx, tx.Reads(), actor, id)
		if err != nil {
			return err
		}
		if err := res.TransitionTo(req.BookingStatus()); err != nil {
			return mapDomainErr(err)
		}
		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), res.ID(), res.Status()); err != nil {
			return errs.Wrap(err, "failed to update reservation status")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Cancellation frees the slot, so cached days are stale either way.
	c.invalidateAvailability(ctx, actor.SalonID)
	return c.reservationQueries.GetByID(ctx, actor.SalonID, id)
}

// validateSlot runs the calendar and conflict checks inside the caller's
// transaction, after the per-employee lock is held.
func (c *reservationCommandsImpl) validateSlot(
	ctx context.Context,
	reads shared.CommandReads,
	salonID, employeeID uuid.UUID,
	slot schedule.Interval,
	excludeID *uuid.UUID,
) error {
	date := slot.Start().In(c.loc)

	holiday, err := reads.HolidayOn(ctx, salonID, date)
	if err != nil {
		return errs.Wrap(err, "failed to load holiday")
	}
	hours, err := reads.DayHours(ctx, salonID, date.Weekday())
	if err != nil {
		return errs.Wrap(err, "failed to load working hours")
	}

	day := schedule.ResolveDay(date, hours, holiday)
	if !day.IsOpen() {
		return errs.ErrClosedDay
	}
	if !day.Accommodates(slot) {
		if hours != nil && hours.HasBreak() && fitsSpan(hours, date, slot) {
			return errs.ErrDuringBreak
		}
		return errs.ErrOutsideWorkingHours
	}

	blocking, err := reads.BlockingReservations(ctx, employeeID, slot, excludeID)
	if err != nil {
		return errs.Wrap(err, "failed to load overlapping reservations")
	}
	if len(blocking) > 0 {
		existing := schedule.MustInterval(blocking[0].StartTime, blocking[0].EndTime)
		return &ConflictError{Requested: slot, Existing: existing}
	}
	return nil
}

func (c *reservationCommandsImpl) loadOwned(
	ctx context.Context,
	reads shared.CommandReads,
	actor shared.Actor,
	id uuid.UUID,
) (*booking.Reservation, error) {
	snap, err := reads.ReservationByID(ctx, id)
	if err != nil {
		return nil, mapLookupErr(err, errs.ErrReservationNotFound)
	}
	if snap.SalonID != actor.SalonID {
		return nil, errs.ErrReservationNotFound
	}
	slot, err := schedule.NewInterval(snap.StartTime.In(c.loc), snap.EndTime.In(c.loc))
	if err != nil {
		return nil, errs.Wrap(err, "stored reservation has an invalid time range")
	}
	return booking.ReconstructReservation(
		snap.ID, snap.SalonID, snap.EmployeeID, snap.ServiceID,
		snap.ClientID, snap.ClientName, snap.ClientPhone,
		slot,
		booking.Status(snap.Status), booking.Kind(snap.Kind),
		snap.CreatedAt, snap.UpdatedAt,
	), nil
}

// fitsSpan checks the gross open-to-close span, ignoring the break, to
// tell "during break" apart from "outside working hours".
func fitsSpan(hours *schedule.DayHours, date time.Time, slot schedule.Interval) bool {
	if hours == nil || hours.IsClosed() {
		return false
	}
	span := schedule.MustInterval(hours.Open().At(date), hours.Close().At(date))
	return span.Contains(slot)
}

func (c *reservationCommandsImpl) invalidateAvailability(ctx context.Context, salonID uuid.UUID) {
	if err := c.cache.InvalidateSalon(ctx, salonID); err != nil {
		slog.Warn("availability cache invalidation failed", "salon_id", salonID, "error", err)
	}
}

func mapLookupErr(err error, notFound error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return notFound
	}
	return errs.Wrap(err, "lookup failed")
}

func mapDomainErr(err error) error {
	switch {
	case errs.IsAny(err, booking.ErrPastStartTime):
		return errs.ErrPastStartTime
	case errs.IsAny(err, booking.ErrInvalidDuration):
		return errs.ErrInvalidDuration
	case errs.IsAny(err, booking.ErrCrossSalonReference):
		return errs.ErrCrossSalonReference
	case errs.IsAny(err, booking.ErrInvalidTransition, booking.ErrInvalidStatus):
		return errs.ErrInvalidStatusTransition
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
