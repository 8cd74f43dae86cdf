package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/schedule"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrHolidayNotFound = errs.New("holiday not found")

type ScheduleCommands interface {
	ReplaceWorkingHours(ctx context.Context, actor shared.Actor, req reqdto.ReplaceWorkingHoursRequest) ([]queries.WeekdayHoursView, error)
	AddHoliday(ctx context.Context, actor shared.Actor, req reqdto.CreateHolidayRequest) (*queries.HolidayView, error)
	RemoveHoliday(ctx context.Context, actor shared.Actor, holidayID uuid.UUID) error
}

type scheduleCommandsImpl struct {
	uow             shared.UnitOfWork
	scheduleQueries queries.ScheduleQueries
	cache           queries.AvailabilityCache
}

func NewScheduleCommands(
	uow shared.UnitOfWork,
	scheduleQueries queries.ScheduleQueries,
	cache queries.AvailabilityCache,
) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:             uow,
		scheduleQueries: scheduleQueries,
		cache:           cache,
	}
}

// ReplaceWorkingHours swaps the whole weekly configuration in one
// transaction. Existing reservations are untouched; days removed from
// the configuration simply stop offering new slots.
func (s *scheduleCommandsImpl) ReplaceWorkingHours(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.ReplaceWorkingHoursRequest,
) ([]queries.WeekdayHoursView, error) {
	week, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Schedule().ReplaceWorkingHours(ctx, tx.DB(), actor.SalonID, week)
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to replace working hours")
	}

	s.invalidateAvailability(ctx, actor.SalonID)
	return s.scheduleQueries.WeekHours(ctx, actor.SalonID)
}

func (s *scheduleCommandsImpl) AddHoliday(
	ctx context.Context,
	actor shared.Actor,
	req reqdto.CreateHolidayRequest,
) (*queries.HolidayView, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	holiday, err := schedule.NewHoliday(actor.SalonID, date, req.Name, req.HolidayType())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var createdID uuid.UUID
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Schedule().CreateHoliday(ctx, tx.DB(), holiday)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				// Same date added twice is idempotent enough to report as-is.
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			return errs.Wrap(err, "failed to create holiday")
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateAvailability(ctx, actor.SalonID)
	return &queries.HolidayView{
		ID:       createdID,
		Date:     holiday.Date().Format("2006-01-02"),
		Name:     holiday.Name(),
		Type:     string(holiday.Type()),
		IsActive: holiday.IsActive(),
	}, nil
}

func (s *scheduleCommandsImpl) RemoveHoliday(ctx context.Context, actor shared.Actor, holidayID uuid.UUID) error {
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Schedule().DeleteHoliday(ctx, tx.DB(), actor.SalonID, holidayID)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrHolidayNotFound
		}
		return errs.Wrap(err, "failed to delete holiday")
	}

	s.invalidateAvailability(ctx, actor.SalonID)
	return nil
}

func (s *scheduleCommandsImpl) invalidateAvailability(ctx context.Context, salonID uuid.UUID) {
	if err := s.cache.InvalidateSalon(ctx, salonID); err != nil {
		slog.Warn("availability cache invalidation failed", "salon_id", salonID, "error", err)
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
