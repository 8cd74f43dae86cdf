package queries

import (
	"context"
	"time"

	"salon-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, actorSalonID, reservationID uuid.UUID) (*ReservationView, error)
	ListBySalon(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error)
}

type reservationQueriesImpl struct {
	reservations ReservationReadStore
}

func NewReservationQueries(reservations ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{reservations: reservations}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, actorSalonID, reservationID uuid.UUID) (*ReservationView, error) {
	view, err := q.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	// Cross-tenant reads look like absence, not denial.
	if view.SalonID != actorSalonID {
		return nil, errs.ErrReservationNotFound
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListBySalon(ctx context.Context, salonID uuid.UUID, from, to time.Time) ([]*ReservationListItem, error) {
	return q.reservations.ListBySalon(ctx, salonID, from, to)
}
