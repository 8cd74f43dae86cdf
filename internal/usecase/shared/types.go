package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type ServiceSnapshot struct {
	ID          uuid.UUID
	SalonID     uuid.UUID
	Name        string
	DurationMin int
	PriceCents  int64
}

type EmployeeSnapshot struct {
	ID                  uuid.UUID
	SalonID             uuid.UUID
	DisplayName         string
	QualifiedServiceIDs []uuid.UUID
}

// CanPerform mirrors the domain qualification policy for snapshot data.
func (e EmployeeSnapshot) CanPerform(serviceID uuid.UUID, allowUnqualified bool) bool {
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

// Minimal snapshot for command read operations
type ReservationSnapshot struct {
	ID          uuid.UUID
	SalonID     uuid.UUID
	EmployeeID  uuid.UUID
	ServiceID   uuid.UUID
	ClientID    *uuid.UUID
	ClientName  string
	ClientPhone string
	Status      string
	Kind        string
	StartTime   time.Time
	EndTime     time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
