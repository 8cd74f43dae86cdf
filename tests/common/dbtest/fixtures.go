//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func DefaultSalonID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var salonID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM salons WHERE name = 'Default Salon' LIMIT 1").Scan(&salonID)
	require.NoError(t, err)
	return salonID
}

func CreateTestStaff(t *testing.T, db DBLike, salonID uuid.UUID, email, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO staff_accounts (id, salon_id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		accountID, salonID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM staff_accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

func CreateTestSalon(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	salonID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO salons (id, name) VALUES ($1, $2)", salonID, name)
	require.NoError(t, err)

	return salonID
}

func CreateTestService(t *testing.T, db DBLike, salonID uuid.UUID, name string, durationMin int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO services (id, salon_id, name, duration_min, price_cents, is_active) VALUES ($1, $2, $3, $4, 5500, true)",
		serviceID, salonID, name, durationMin)
	require.NoError(t, err)

	return serviceID
}

func CreateTestEmployee(t *testing.T, db DBLike, salonID uuid.UUID, displayName string, serviceIDs ...uuid.UUID) uuid.UUID {
	t.Helper()

	employeeID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO employees (id, salon_id, display_name, is_active) VALUES ($1, $2, $3, true)",
		employeeID, salonID, displayName)
	require.NoError(t, err)

	for _, serviceID := range serviceIDs {
		_, err := db.Exec(ctx,
			"INSERT INTO employee_services (employee_id, service_id) VALUES ($1, $2)",
			employeeID, serviceID)
		require.NoError(t, err)
	}

	return employeeID
}

// SeedWorkingHours opens the salon every day of the week.
func SeedWorkingHours(t *testing.T, db DBLike, salonID uuid.UUID, open, close string) {
	t.Helper()

	ctx := context.Background()
	for weekday := 0; weekday <= 6; weekday++ {
		_, err := db.Exec(ctx,
			"INSERT INTO working_hours (salon_id, weekday, open_time, close_time) VALUES ($1, $2, $3, $4) ON CONFLICT (salon_id, weekday) DO UPDATE SET open_time = $3, close_time = $4",
			salonID, weekday, open, close)
		require.NoError(t, err)
	}
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO salons (id, name) VALUES
		    (gen_random_uuid(), 'Default Salon'),
		    (gen_random_uuid(), 'Other Salon')
		ON CONFLICT DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
