//go:build unit

package salon_test

import (
	"testing"

	"salon-booking/internal/domain/salon"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeCanPerform(t *testing.T) {
	salonID := uuid.New()
	cut := uuid.New()
	color := uuid.New()

	t.Run("declared qualifications are authoritative", func(t *testing.T) {
		e, err := salon.NewEmployee(salonID, "Aoki", []uuid.UUID{cut})
		require.NoError(t, err)

		assert.True(t, e.CanPerform(cut, true))
		assert.False(t, e.CanPerform(color, true))
		assert.False(t, e.CanPerform(color, false))
	})

	t.Run("no declarations fall back per policy flag", func(t *testing.T) {
		e, err := salon.NewEmployee(salonID, "Sato", nil)
		require.NoError(t, err)

		assert.True(t, e.CanPerform(cut, true))
		assert.False(t, e.CanPerform(cut, false))
	})
}

func TestNewService(t *testing.T) {
	salonID := uuid.New()

	t.Run("valid service", func(t *testing.T) {
		s, err := salon.NewService(salonID, "Cut", 45, 480000)
		require.NoError(t, err)
		assert.Equal(t, 45, s.DurationMin())
	})

	t.Run("non-positive duration is rejected", func(t *testing.T) {
		_, err := salon.NewService(salonID, "Cut", 0, 480000)
		assert.ErrorIs(t, err, salon.ErrInvalidDuration)
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		_, err := salon.NewService(salonID, "Cut", 45, -1)
		assert.ErrorIs(t, err, salon.ErrNegativePrice)
	})
}
