//go:build unit || e2e

package builder

import (
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffBuilder struct {
	SalonID      uuid.UUID
	Email        string
	Password     string
	PasswordHash string
	Role         string
	IsActive     bool
}

func NewStaffBuilder() *StaffBuilder {
	return &StaffBuilder{
		SalonID:      uuid.New(),
		Email:        "staff@example.com",
		Password:     "password123",
		PasswordHash: "hashed_password",
		Role:         "staff",
		IsActive:     true,
	}
}

// Build methods

func (s *StaffBuilder) BuildLoginRequestDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    s.Email,
		Password: s.Password,
	}
}

func (s *StaffBuilder) BuildAccountView() *queries.AccountView {
	return &queries.AccountView{
		ID:       uuid.New(),
		SalonID:  s.SalonID,
		Email:    s.Email,
		Role:     s.Role,
		IsActive: s.IsActive,
	}
}

// Fluent builder methods

func (s *StaffBuilder) WithSalonID(salonID uuid.UUID) *StaffBuilder {
	s.SalonID = salonID
	return s
}

func (s *StaffBuilder) WithEmail(email string) *StaffBuilder {
	s.Email = email
	return s
}

func (s *StaffBuilder) WithRole(role string) *StaffBuilder {
	s.Role = role
	return s
}

func (s *StaffBuilder) AsOwner() *StaffBuilder {
	s.Role = "owner"
	return s
}

func (s *StaffBuilder) AsInactive() *StaffBuilder {
	s.IsActive = false
	return s
}
