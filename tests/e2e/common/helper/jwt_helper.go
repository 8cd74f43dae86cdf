//go:build e2e

package helper

import (
	"context"
	"net/http"
	"testing"
	"time"

	"salon-booking/internal/domain/staff"
	"salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/jwt"
	"salon-booking/tests/common/helper"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type JWTTestHelper struct {
	pool *pgxpool.Pool
	cfg  config.JWTConfig
}

func NewJWTTestHelper(pool *pgxpool.Pool, cfg config.JWTConfig) *JWTTestHelper {
	return &JWTTestHelper{pool: pool, cfg: cfg}
}

// DBLike is the minimal interface required for test DB operations.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (h *JWTTestHelper) DefaultSalonID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var salonID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM salons WHERE name = 'Default Salon' LIMIT 1").Scan(&salonID)
	require.NoError(t, err)
	return salonID
}

func (h *JWTTestHelper) CreateTestStaff(t *testing.T, email, role string) uuid.UUID {
	// Backward-compatible: uses base pool (committed). Prefer CreateTestStaffWithDB in tests.
	return h.CreateTestStaffWithDB(t, h.pool, email, role)
}

func (h *JWTTestHelper) CreateTestStaffWithDB(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	accountID := uuid.New()
	salonID := h.DefaultSalonID(t, db)

	ctx := context.Background()
	passwordHash := "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."
	tag, err := db.Exec(ctx, "INSERT INTO staff_accounts (id, salon_id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING",
		accountID, salonID, email, passwordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		// Already exists; fetch existing id to keep deterministic behavior
		_ = db.QueryRow(ctx, "SELECT id FROM staff_accounts WHERE email = $1", email).Scan(&accountID)
	}

	return accountID
}

func (h *JWTTestHelper) LoginStaff(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := helper.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Extract access token from cookie instead of JSON response
	cookies := w.Result().Cookies()
	var accessToken string
	for _, cookie := range cookies {
		if cookie.Name == "access_token" {
			accessToken = cookie.Value
			break
		}
	}
	require.NotEmpty(t, accessToken, "Access token not found in cookies")

	return accessToken
}

func (h *JWTTestHelper) CreateAndLogin(t *testing.T, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestStaffWithDB(t, h.pool, email, role)
	return h.LoginStaff(t, router, email, "password123")
}

func (h *JWTTestHelper) CreateAndLoginWithDB(t *testing.T, db DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	h.CreateTestStaffWithDB(t, db, email, role)
	return h.LoginStaff(t, router, email, "password123")
}

func (h *JWTTestHelper) GenerateToken(t *testing.T, accountID, salonID uuid.UUID, role staff.Role) string {
	t.Helper()
	duration, _ := h.cfg.ParseDuration()
	service := jwt.NewService(h.cfg.Secret, duration)
	token, err := service.GenerateToken(accountID, salonID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTTestHelper) CreateExpiredToken(t *testing.T, accountID, salonID uuid.UUID, role staff.Role) string {
	t.Helper()
	service := jwt.NewService(h.cfg.Secret, 1*time.Millisecond)
	token, err := service.GenerateToken(accountID, salonID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
