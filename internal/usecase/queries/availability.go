package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// SalonReadStore resolves services and employees of a salon.
type SalonReadStore interface {
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	EmployeeByID(ctx context.Context, id uuid.UUID) (*EmployeeView, error)
	EmployeesBySalon(ctx context.Context, salonID uuid.UUID) ([]*EmployeeView, error)
}

// ScheduleReadStore loads the calendar rules. A nil result without error
// means "not configured" (no weekday row, no holiday on that date).
type ScheduleReadStore interface {
	DayHours(ctx context.Context, salonID uuid.UUID, weekday time.Weekday) (*schedule.DayHours, error)
	HolidayOn(ctx context.Context, salonID uuid.UUID, date time.Time) (*schedule.Holiday, error)
	WeekHours(ctx context.Context, salonID uuid.UUID) ([]schedule.DayHours, error)
	HolidaysBySalon(ctx context.Context, salonID uuid.UUID) ([]*schedule.Holiday, error)
}

// ReservationReadStore exposes the booked intervals that block slots.
type ReservationReadStore interface {
	BusyIntervals(ctx context.Context, employeeID uuid.UUID, dayStart, dayEnd time.Time) ([]schedule.Interval, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
}

// AvailabilityCache is the short-TTL day cache. Misses and cache errors
// are equivalent; the source of truth is always recomputed on miss.
type AvailabilityCache interface {
	GetDay(ctx context.Context, salonID, serviceID uuid.UUID, employeeID *uuid.UUID, date string) (*DayAvailabilityView, bool)
	SetDay(ctx context.Context, view *DayAvailabilityView)
	InvalidateSalon(ctx context.Context, salonID uuid.UUID) error
}

type AvailabilityQueries interface {
	ListSlots(ctx context.Context, salonID, serviceID uuid.UUID, date time.Time, employeeID *uuid.UUID) (*DayAvailabilityView, error)
	FindNearest(ctx context.Context, salonID, serviceID uuid.UUID, employeeID *uuid.UUID, from time.Time, horizonDays int) (*NearestSlotView, error)
}

type availabilityQueriesImpl struct {
	salons       SalonReadStore
	schedules    ScheduleReadStore
	reservations ReservationReadStore
	cache        AvailabilityCache
	clock        clock.Clock
	loc          *time.Location
	cfg          config.BookingConfig
}

func NewAvailabilityQueries(
	salons SalonReadStore,
	schedules ScheduleReadStore,
	reservations ReservationReadStore,
	cache AvailabilityCache,
	clk clock.Clock,
	loc *time.Location,
	cfg config.BookingConfig,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		salons:       salons,
		schedules:    schedules,
		reservations: reservations,
		cache:        cache,
		clock:        clk,
		loc:          loc,
		cfg:          cfg,
	}
}

func (q *availabilityQueriesImpl) ListSlots(
	ctx context.Context,
	salonID, serviceID uuid.UUID,
	date time.Time,
	employeeID *uuid.UUID,
) (*DayAvailabilityView, error) {
	date = q.midnight(date)
	dateStr := date.Format(dateLayout)

	if cached, ok := q.cache.GetDay(ctx, salonID, serviceID, employeeID, dateStr); ok {
		return cached, nil
	}

	service, err := q.salons.ServiceByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if service.SalonID != salonID {
		return nil, errs.ErrServiceNotFound
	}

	candidates, err := q.candidateEmployees(ctx, salonID, service, employeeID)
	if err != nil {
		return nil, err
	}

	view := &DayAvailabilityView{
		SalonID:    salonID,
		ServiceID:  serviceID,
		EmployeeID: employeeID,
		Date:       dateStr,
		Slots:      []string{},
	}

	day, err := q.resolveDay(ctx, salonID, date)
	if err != nil {
		return nil, err
	}
	if !day.IsOpen() {
		q.cache.SetDay(ctx, view)
		return view, nil
	}

	duration := time.Duration(service.DurationMin) * time.Minute
	now := q.clock.Now().In(q.loc)

	// Union over candidates: a slot is offered when at least one
	// qualified employee is free.
	union := make(map[time.Time]struct{})
	for _, emp := range candidates {
		busy, err := q.reservations.BusyIntervals(ctx, emp.ID, date, date.AddDate(0, 0, 1))
		if err != nil {
			return nil, err
		}
		for _, start := range schedule.AvailableStarts(day.Open, duration, q.cfg.SlotStep(), busy, now) {
			union[start] = struct{}{}
		}
	}

	starts := make([]time.Time, 0, len(union))
	for start := range union {
		starts = append(starts, start)
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].Before(starts[j]) })
	for _, start := range starts {
		view.Slots = append(view.Slots, start.Format("15:04"))
	}

	q.cache.SetDay(ctx, view)
	return view, nil
}

func (q *availabilityQueriesImpl) FindNearest(
	ctx context.Context,
	salonID, serviceID uuid.UUID,
	employeeID *uuid.UUID,
	from time.Time,
	horizonDays int,
) (*NearestSlotView, error) {
	if horizonDays <= 0 {
		horizonDays = q.cfg.HorizonDaysDefault
	}
	if horizonDays > q.cfg.HorizonDaysMax {
		horizonDays = q.cfg.HorizonDaysMax
	}

	from = q.midnight(from)
	today := clock.Today(q.clock, q.loc)
	if from.Before(today) {
		from = today
	}

	for i := 0; i < horizonDays; i++ {
		date := from.AddDate(0, 0, i)
		view, err := q.ListSlots(ctx, salonID, serviceID, date, employeeID)
		if err != nil {
			return nil, err
		}
		if len(view.Slots) > 0 {
			return &NearestSlotView{
				Date:  view.Date,
				Slot:  view.Slots[0],
				Slots: view.Slots,
			}, nil
		}
	}

	slog.Info("availability horizon exhausted",
		"salon_id", salonID, "service_id", serviceID, "horizon_days", horizonDays)
	return nil, errs.ErrNoSlotsInHorizon
}

func (q *availabilityQueriesImpl) candidateEmployees(
	ctx context.Context,
	salonID uuid.UUID,
	service *ServiceView,
	employeeID *uuid.UUID,
) ([]*EmployeeView, error) {
	allow := q.cfg.AllowUnqualifiedEmployees

	if employeeID != nil {
		emp, err := q.salons.EmployeeByID(ctx, *employeeID)
		if err != nil {
			return nil, err
		}
		if emp.SalonID != salonID {
			return nil, errs.ErrEmployeeNotFound
		}
		if !emp.CanPerform(service.ID, allow) {
			// A named but unqualified employee simply has no slots.
			return nil, nil
		}
		return []*EmployeeView{emp}, nil
	}

	all, err := q.salons.EmployeesBySalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	qualified := make([]*EmployeeView, 0, len(all))
	for _, emp := range all {
		if emp.CanPerform(service.ID, allow) {
			qualified = append(qualified, emp)
		}
	}
	return qualified, nil
}

func (q *availabilityQueriesImpl) resolveDay(ctx context.Context, salonID uuid.UUID, date time.Time) (schedule.DaySchedule, error) {
	holiday, err := q.schedules.HolidayOn(ctx, salonID, date)
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	hours, err := q.schedules.DayHours(ctx, salonID, date.Weekday())
	if err != nil {
		return schedule.DaySchedule{}, err
	}
	return schedule.ResolveDay(date, hours, holiday), nil
}

func (q *availabilityQueriesImpl) midnight(t time.Time) time.Time {
	t = t.In(q.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, q.loc)
}
