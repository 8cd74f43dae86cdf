//go:build unit || e2e

package builder

import (
	"time"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"
	"salon-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	SalonID      uuid.UUID
	EmployeeID   uuid.UUID
	EmployeeName string
	ServiceID    uuid.UUID
	ServiceName  string
	ClientID     *uuid.UUID
	ClientName   string
	ClientPhone  string
	StartTime    time.Time
	DurationMin  int
	Status       string
	Kind         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	clientID := uuid.New()
	return &ReservationBuilder{
		SalonID:      uuid.New(),
		EmployeeID:   uuid.New(),
		EmployeeName: "Aiko Tanaka",
		ServiceID:    uuid.New(),
		ServiceName:  "Cut & Blow Dry",
		ClientID:     &clientID,
		ClientName:   "Haru Sato",
		ClientPhone:  "+81-90-0000-0000",
		StartTime:    time.Date(now.Year()+1, time.March, 10, 10, 0, 0, 0, time.UTC),
		DurationMin:  60,
		Status:       "requested",
		Kind:         "online",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Build methods

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	name := r.ClientName
	phone := r.ClientPhone
	return reqdto.CreateReservationRequest{
		ServiceID:   r.ServiceID,
		EmployeeID:  r.EmployeeID,
		StartTime:   r.StartTime,
		Kind:        r.Kind,
		ClientID:    r.ClientID,
		ClientName:  &name,
		ClientPhone: &phone,
	}
}

func (r *ReservationBuilder) BuildRescheduleRequestDTO() reqdto.RescheduleReservationRequest {
	return reqdto.RescheduleReservationRequest{
		StartTime: r.StartTime.Add(24 * time.Hour),
	}
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	name := r.ClientName
	phone := r.ClientPhone
	return &queries.ReservationView{
		ID:           uuid.New(),
		SalonID:      r.SalonID,
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		ServiceID:    r.ServiceID,
		ServiceName:  r.ServiceName,
		ClientID:     r.ClientID,
		ClientName:   &name,
		ClientPhone:  &phone,
		StartTime:    r.StartTime,
		EndTime:      r.StartTime.Add(time.Duration(r.DurationMin) * time.Minute),
		Status:       r.Status,
		Kind:         r.Kind,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildListItem() *queries.ReservationListItem {
	return &queries.ReservationListItem{
		ID:           uuid.New(),
		EmployeeID:   r.EmployeeID,
		EmployeeName: r.EmployeeName,
		ServiceName:  r.ServiceName,
		StartTime:    r.StartTime,
		EndTime:      r.StartTime.Add(time.Duration(r.DurationMin) * time.Minute),
		Status:       r.Status,
		Kind:         r.Kind,
	}
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:          uuid.New(),
		SalonID:     r.SalonID,
		EmployeeID:  r.EmployeeID,
		ServiceID:   r.ServiceID,
		ClientID:    r.ClientID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Status:      r.Status,
		Kind:        r.Kind,
		StartTime:   r.StartTime,
		EndTime:     r.StartTime.Add(time.Duration(r.DurationMin) * time.Minute),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildServiceView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          r.ServiceID,
		SalonID:     r.SalonID,
		Name:        r.ServiceName,
		DurationMin: r.DurationMin,
		PriceCents:  5500,
	}
}

func (r *ReservationBuilder) BuildEmployeeView() *queries.EmployeeView {
	return &queries.EmployeeView{
		ID:                  r.EmployeeID,
		SalonID:             r.SalonID,
		DisplayName:         r.EmployeeName,
		QualifiedServiceIDs: []uuid.UUID{r.ServiceID},
	}
}

// Fluent builder methods

func (r *ReservationBuilder) WithSalonID(salonID uuid.UUID) *ReservationBuilder {
	r.SalonID = salonID
	return r
}

func (r *ReservationBuilder) WithEmployeeID(employeeID uuid.UUID) *ReservationBuilder {
	r.EmployeeID = employeeID
	return r
}

func (r *ReservationBuilder) WithServiceID(serviceID uuid.UUID) *ReservationBuilder {
	r.ServiceID = serviceID
	return r
}

func (r *ReservationBuilder) WithStartTime(start time.Time) *ReservationBuilder {
	r.StartTime = start
	return r
}

func (r *ReservationBuilder) WithDurationMin(minutes int) *ReservationBuilder {
	r.DurationMin = minutes
	return r
}

func (r *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	r.Status = status
	return r
}

func (r *ReservationBuilder) WithKind(kind string) *ReservationBuilder {
	r.Kind = kind
	return r
}

func (r *ReservationBuilder) WithWalkIn() *ReservationBuilder {
	r.ClientID = nil
	r.Kind = "manual"
	return r
}
