package queries

import (
	"context"

	"github.com/google/uuid"
)

// StaffReadStore resolves staff accounts for authentication. FindByEmail
// also returns the stored password hash so the usecase can verify it
// without a second round trip.
type StaffReadStore interface {
	FindByEmail(ctx context.Context, email string) (*AccountView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
}

type StaffQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
}

type staffQueriesImpl struct {
	staff StaffReadStore
}

func NewStaffQueries(staff StaffReadStore) StaffQueries {
	return &staffQueriesImpl{staff: staff}
}

func (q *staffQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	return q.staff.FindByID(ctx, id)
}
