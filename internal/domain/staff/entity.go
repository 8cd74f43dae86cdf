package staff

import (
	"time"

	"github.com/google/uuid"
)

// Account is a staff login for the owner/back-office surface. Account
// management itself is out of scope; this exists so mutating endpoints
// can be gated to the owning salon.
type Account struct {
	id           uuid.UUID
	salonID      uuid.UUID
	email        string
	passwordHash string
	role         Role
	isActive     bool
	lastLogin    *time.Time
}

func ReconstructAccount(id, salonID uuid.UUID, email, passwordHash string, role Role, isActive bool, lastLogin *time.Time) *Account {
	return &Account{
		id:           id,
		salonID:      salonID,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		isActive:     isActive,
		lastLogin:    lastLogin,
	}
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) SalonID() uuid.UUID    { return a.salonID }
func (a *Account) Email() string         { return a.email }
func (a *Account) PasswordHash() string  { return a.passwordHash }
func (a *Account) Role() Role            { return a.role }
func (a *Account) IsActive() bool        { return a.isActive }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }
