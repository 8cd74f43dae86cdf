package readstore

import (
	"context"

	"salon-booking/internal/infra"
	"salon-booking/internal/infra/db"
	"salon-booking/internal/pkg/pgconv"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type SalonReadStore struct {
	db db.DBTX
}

func NewSalonReadStore(db db.DBTX) *SalonReadStore {
	return &SalonReadStore{db: db}
}

const serviceByIDSQL = `
SELECT id, salon_id, name, duration_min, price_cents
FROM services
WHERE id = $1 AND is_active
`

func (s *SalonReadStore) ServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := s.db.QueryRow(ctx, serviceByIDSQL, id).
		Scan(&v.ID, &v.SalonID, &v.Name, &v.DurationMin, &v.PriceCents)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &v, nil
}

const employeeByIDSQL = `
SELECT e.id, e.salon_id, e.display_name,
       COALESCE(array_agg(es.service_id) FILTER (WHERE es.service_id IS NOT NULL), '{}') AS qualified
FROM employees e
LEFT JOIN employee_services es ON es.employee_id = e.id
WHERE e.id = $1 AND e.is_active
GROUP BY e.id
`

func (s *SalonReadStore) EmployeeByID(ctx context.Context, id uuid.UUID) (*queries.EmployeeView, error) {
	var v queries.EmployeeView
	err := s.db.QueryRow(ctx, employeeByIDSQL, id).
		Scan(&v.ID, &v.SalonID, &v.DisplayName, &v.QualifiedServiceIDs)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("employee not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find employee by ID", err)
	}
	return &v, nil
}

const employeesBySalonSQL = `
SELECT e.id, e.salon_id, e.display_name,
       COALESCE(array_agg(es.service_id) FILTER (WHERE es.service_id IS NOT NULL), '{}') AS qualified
FROM employees e
LEFT JOIN employee_services es ON es.employee_id = e.id
WHERE e.salon_id = $1 AND e.is_active
GROUP BY e.id
ORDER BY e.display_name
`

func (s *SalonReadStore) EmployeesBySalon(ctx context.Context, salonID uuid.UUID) ([]*queries.EmployeeView, error) {
	rows, err := s.db.Query(ctx, employeesBySalonSQL, salonID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list employees", err)
	}
	defer rows.Close()

	var result []*queries.EmployeeView
	for rows.Next() {
		var v queries.EmployeeView
		if err := rows.Scan(&v.ID, &v.SalonID, &v.DisplayName, &v.QualifiedServiceIDs); err != nil {
			return nil, infra.WrapRepoErr("failed to scan employee row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate employee rows", err)
	}
	return result, nil
}
