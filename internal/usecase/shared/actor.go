package shared

import (
	"salon-booking/internal/domain/staff"

	"github.com/google/uuid"
)

// Actor is the authenticated staff identity a command runs as. The salon
// id comes from the token, never from the request body, and scopes every
// read and write to one tenant.
type Actor struct {
	AccountID uuid.UUID
	SalonID   uuid.UUID
	Role      staff.Role
}

func (a Actor) IsOwner() bool {
	return a.Role == staff.RoleOwner
}
