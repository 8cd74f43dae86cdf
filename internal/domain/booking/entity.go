package booking

import (
	"errors"
	"strings"
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrInvalidDuration     = errors.New("service duration must be positive")
	ErrPastStartTime       = errors.New("start time cannot be in the past")
	ErrMissingClient       = errors.New("reservation needs a client reference or a manual client name")
	ErrInvalidStatus       = errors.New("invalid reservation status")
	ErrInvalidTransition   = errors.New("invalid reservation status transition")
	ErrCrossSalonReference = errors.New("employee and service belong to different salons")
)

// ServiceSpec is the slice of a salon service the entity needs: who owns
// it and how long one appointment takes.
type ServiceSpec struct {
	ID          uuid.UUID
	SalonID     uuid.UUID
	DurationMin int
}

// EmployeeSpec identifies the employee performing the service.
type EmployeeSpec struct {
	ID      uuid.UUID
	SalonID uuid.UUID
}

// ClientInfo carries either a registered client id (online bookings) or
// free-text contact details (manual bookings entered by staff).
type ClientInfo struct {
	ClientID *uuid.UUID
	Name     string
	Phone    string
}

type Services struct {
	Clock clock.Clock
}

// Reservation is one booked interval for one employee. The end time is
// always derived from the service duration at creation time and frozen
// afterwards; callers never supply it.
type Reservation struct {
	id          uuid.UUID
	salonID     uuid.UUID
	employeeID  uuid.UUID
	serviceID   uuid.UUID
	clientID    *uuid.UUID
	clientName  string
	clientPhone string
	slot        schedule.Interval
	status      Status
	kind        Kind
	createdAt   time.Time
	updatedAt   time.Time
}

func NewReservation(
	svcs *Services,
	service ServiceSpec,
	employee EmployeeSpec,
	client ClientInfo,
	start time.Time,
	kind Kind,
) (*Reservation, error) {
	if service.SalonID != employee.SalonID {
		return nil, ErrCrossSalonReference
	}
	if service.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if !kind.IsValid() {
		return nil, errors.New("invalid reservation kind: " + string(kind))
	}
	if client.ClientID == nil && strings.TrimSpace(client.Name) == "" {
		return nil, ErrMissingClient
	}
	if start.Before(svcs.Clock.Now()) {
		return nil, ErrPastStartTime
	}

	slot, err := schedule.NewInterval(start, start.Add(time.Duration(service.DurationMin)*time.Minute))
	if err != nil {
		return nil, err
	}

	status := StatusRequested
	if kind == KindManual {
		// Staff-entered bookings skip the request step.
		status = StatusConfirmed
	}

	return &Reservation{
		id:          uuid.New(),
		salonID:     service.SalonID,
		employeeID:  employee.ID,
		serviceID:   service.ID,
		clientID:    client.ClientID,
		clientName:  strings.TrimSpace(client.Name),
		clientPhone: strings.TrimSpace(client.Phone),
		slot:        slot,
		status:      status,
		kind:        kind,
	}, nil
}

func ReconstructReservation(
	id, salonID, employeeID, serviceID uuid.UUID,
	clientID *uuid.UUID,
	clientName, clientPhone string,
	slot schedule.Interval,
	status Status,
	kind Kind,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		salonID:     salonID,
		employeeID:  employeeID,
		serviceID:   serviceID,
		clientID:    clientID,
		clientName:  clientName,
		clientPhone: clientPhone,
		slot:        slot,
		status:      status,
		kind:        kind,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) SalonID() uuid.UUID      { return r.salonID }
func (r *Reservation) EmployeeID() uuid.UUID   { return r.employeeID }
func (r *Reservation) ServiceID() uuid.UUID    { return r.serviceID }
func (r *Reservation) ClientID() *uuid.UUID    { return r.clientID }
func (r *Reservation) ClientName() string      { return r.clientName }
func (r *Reservation) ClientPhone() string     { return r.clientPhone }
func (r *Reservation) Slot() schedule.Interval { return r.slot }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) Kind() Kind              { return r.kind }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reservation) BlocksSlot() bool {
	return r.status.BlocksSlot()
}

// TransitionTo enforces the reservation lifecycle:
// requested -> confirmed -> completed, and requested|confirmed -> cancelled.
// Terminal states never change again.
func (r *Reservation) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !canTransition(r.status, next) {
		return ErrInvalidTransition
	}
	r.status = next
	return nil
}

func (r *Reservation) Confirm() error  { return r.TransitionTo(StatusConfirmed) }
func (r *Reservation) Complete() error { return r.TransitionTo(StatusCompleted) }
func (r *Reservation) Cancel() error   { return r.TransitionTo(StatusCancelled) }

// Reschedule moves the slot to a new start, keeping the frozen duration.
// Only slot-blocking reservations can move.
func (r *Reservation) Reschedule(svcs *Services, start time.Time) error {
	if !r.BlocksSlot() {
		return ErrInvalidTransition
	}
	if start.Before(svcs.Clock.Now()) {
		return ErrPastStartTime
	}
	slot, err := schedule.NewInterval(start, start.Add(r.slot.Duration()))
	if err != nil {
		return err
	}
	r.slot = slot
	return nil
}

func canTransition(from, to Status) bool {
	switch from {
	case StatusRequested:
		return to == StatusConfirmed || to == StatusCancelled
	case StatusConfirmed:
		return to == StatusCompleted || to == StatusCancelled
	default:
		return false
	}
}
