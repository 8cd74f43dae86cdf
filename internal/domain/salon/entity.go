package salon

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name must not be empty")
	ErrInvalidDuration = errors.New("service duration must be positive")
	ErrNegativePrice   = errors.New("service price cannot be negative")
)

// Salon is the tenant root. Every employee, service, working-hour row,
// holiday and reservation hangs off exactly one salon.
type Salon struct {
	id        uuid.UUID
	name      string
	createdAt time.Time
	updatedAt time.Time
}

func NewSalon(name string) (*Salon, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Salon{id: uuid.New(), name: name}, nil
}

func ReconstructSalon(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Salon {
	return &Salon{id: id, name: name, createdAt: createdAt, updatedAt: updatedAt}
}

func (s *Salon) ID() uuid.UUID        { return s.id }
func (s *Salon) Name() string         { return s.name }
func (s *Salon) CreatedAt() time.Time { return s.createdAt }
func (s *Salon) UpdatedAt() time.Time { return s.updatedAt }

// Employee belongs to one salon. qualifiedServiceIDs is the many-to-many
// "can perform" declaration; an empty set means no declaration was made,
// which the qualification policy may treat as qualified-for-everything.
type Employee struct {
	id                  uuid.UUID
	salonID             uuid.UUID
	displayName         string
	qualifiedServiceIDs []uuid.UUID
}

func NewEmployee(salonID uuid.UUID, displayName string, qualifiedServiceIDs []uuid.UUID) (*Employee, error) {
	if displayName == "" {
		return nil, ErrEmptyName
	}
	return &Employee{
		id:                  uuid.New(),
		salonID:             salonID,
		displayName:         displayName,
		qualifiedServiceIDs: qualifiedServiceIDs,
	}, nil
}

func ReconstructEmployee(id, salonID uuid.UUID, displayName string, qualifiedServiceIDs []uuid.UUID) *Employee {
	return &Employee{
		id:                  id,
		salonID:             salonID,
		displayName:         displayName,
		qualifiedServiceIDs: qualifiedServiceIDs,
	}
}

func (e *Employee) ID() uuid.UUID               { return e.id }
func (e *Employee) SalonID() uuid.UUID          { return e.salonID }
func (e *Employee) DisplayName() string         { return e.displayName }
func (e *Employee) QualifiedServiceIDs() []uuid.UUID { return e.qualifiedServiceIDs }

func (e *Employee) HasDeclaredQualifications() bool {
	return len(e.qualifiedServiceIDs) > 0
}

// CanPerform applies the qualification policy. allowUnqualified preserves
// the legacy permissive default: an employee with zero declared
// qualifications counts as qualified for every service of the salon.
func (e *Employee) CanPerform(serviceID uuid.UUID, allowUnqualified bool) bool {
	if !e.HasDeclaredQualifications() {
		return allowUnqualified
	}
	for _, id := range e.qualifiedServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

// Service belongs to one salon. DurationMin sizes every booking interval
// for the service; it never changes retroactively for existing
// reservations because reservation end times are frozen at creation.
type Service struct {
	id          uuid.UUID
	salonID     uuid.UUID
	name        string
	durationMin int
	priceCents  int64
}

func NewService(salonID uuid.UUID, name string, durationMin int, priceCents int64) (*Service, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if durationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	return &Service{
		id:          uuid.New(),
		salonID:     salonID,
		name:        name,
		durationMin: durationMin,
		priceCents:  priceCents,
	}, nil
}

func ReconstructService(id, salonID uuid.UUID, name string, durationMin int, priceCents int64) *Service {
	return &Service{id: id, salonID: salonID, name: name, durationMin: durationMin, priceCents: priceCents}
}

func (s *Service) ID() uuid.UUID      { return s.id }
func (s *Service) SalonID() uuid.UUID { return s.salonID }
func (s *Service) Name() string       { return s.name }
func (s *Service) DurationMin() int   { return s.durationMin }
func (s *Service) PriceCents() int64  { return s.priceCents }

func (s *Service) Duration() time.Duration {
	return time.Duration(s.durationMin) * time.Minute
}
