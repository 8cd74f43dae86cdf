package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type StaffReadStore struct {
	db db.DBTX
}

func NewStaffReadStore(db db.DBTX) *StaffReadStore {
	return &StaffReadStore{db: db}
}

const accountByEmailSQL = `
SELECT id, salon_id, email, role, is_active, password_hash
FROM staff_accounts
WHERE email = $1
`

func (s *StaffReadStore) FindByEmail(ctx context.Context, email string) (*queries.AccountView, string, error) {
	var (
		v    queries.AccountView
		hash string
	)
	err := s.db.QueryRow(ctx, accountByEmailSQL, email).
		Scan(&v.ID, &v.SalonID, &v.Email, &v.Role, &v.IsActive, &hash)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err)
	}
	return &v, hash, nil
}

const accountByIDSQL = `
SELECT id, salon_id, email, role, is_active
FROM staff_accounts
WHERE id = $1
`

func (s *StaffReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	var v queries.AccountView
	err := s.db.QueryRow(ctx, accountByIDSQL, id).
		Scan(&v.ID, &v.SalonID, &v.Email, &v.Role, &v.IsActive)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find account by ID", err)
	}
	return &v, nil
}
