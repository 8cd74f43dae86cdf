package writerepo

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"

	"github.com/google/uuid"
)

type StaffRepository struct{}

func NewStaffRepository() *StaffRepository {
	return &StaffRepository{}
}

func (r *StaffRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, accountID uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `UPDATE staff_accounts SET last_login = now() WHERE id = $1`, accountID)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
