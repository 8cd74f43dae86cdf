package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// DayAvailabilityView is the listing result for one salon/service/date.
// Slots are "HH:MM" start times in the salon timezone, ascending. An
// empty Slots list is the regular answer for closed or fully booked
// days, never an error.
type DayAvailabilityView struct {
	SalonID    uuid.UUID  `json:"salon_id"`
	ServiceID  uuid.UUID  `json:"service_id"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
	Date       string     `json:"date"`
	Slots      []string   `json:"slots"`
}

type NearestSlotView struct {
	Date  string   `json:"date"`
	Slot  string   `json:"slot"`
	Slots []string `json:"slots"`
}

type ReservationView struct {
	ID           uuid.UUID  `json:"id"`
	SalonID      uuid.UUID  `json:"salon_id"`
	EmployeeID   uuid.UUID  `json:"employee_id"`
	EmployeeName string     `json:"employee_name"`
	ServiceID    uuid.UUID  `json:"service_id"`
	ServiceName  string     `json:"service_name"`
	ClientID     *uuid.UUID `json:"client_id,omitempty"`
	ClientName   *string    `json:"client_name,omitempty"`
	ClientPhone  *string    `json:"client_phone,omitempty"`
	StartTime    time.Time  `json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	Status       string     `json:"status"`
	Kind         string     `json:"kind"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type ReservationListItem struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ServiceName  string    `json:"service_name"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	Kind         string    `json:"kind"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	SalonID     uuid.UUID `json:"salon_id"`
	Name        string    `json:"name"`
	DurationMin int       `json:"duration_min"`
	PriceCents  int64     `json:"price_cents"`
}

type EmployeeView struct {
	ID                  uuid.UUID   `json:"id"`
	SalonID             uuid.UUID   `json:"salon_id"`
	DisplayName         string      `json:"display_name"`
	QualifiedServiceIDs []uuid.UUID `json:"qualified_service_ids"`
}

// CanPerform applies the qualification policy to the read model.
func (e *EmployeeView) CanPerform(serviceID uuid.UUID, allowUnqualified bool) bool {
	if len(e.QualifiedServiceIDs) == 0 {
		return allowUnqualified
	}
	for _, id := range e.QualifiedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

type WeekdayHoursView struct {
	Weekday    int     `json:"weekday"`
	Open       *string `json:"open,omitempty"`
	Close      *string `json:"close,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

type HolidayView struct {
	ID       uuid.UUID `json:"id"`
	Date     string    `json:"date"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	IsActive bool      `json:"is_active"`
}

type AccountView struct {
	ID       uuid.UUID `json:"id"`
	SalonID  uuid.UUID `json:"salon_id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
