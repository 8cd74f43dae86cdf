package request

import (
	"strings"
	"time"

	"salon-booking/internal/domain/booking"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ServiceID   uuid.UUID  `json:"service_id" binding:"required"`
	EmployeeID  uuid.UUID  `json:"employee_id" binding:"required"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	Kind        string     `json:"kind" binding:"required,oneof=online manual"`
	ClientID    *uuid.UUID `json:"client_id,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientPhone *string    `json:"client_phone,omitempty"`
}

func (r CreateReservationRequest) BookingKind() booking.Kind {
	return booking.Kind(r.Kind)
}

func (r CreateReservationRequest) ClientInfo() booking.ClientInfo {
	info := booking.ClientInfo{ClientID: r.ClientID}
	if r.ClientName != nil {
		info.Name = strings.TrimSpace(*r.ClientName)
	}
	if r.ClientPhone != nil {
		info.Phone = strings.TrimSpace(*r.ClientPhone)
	}
	return info
}

type RescheduleReservationRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=confirmed cancelled completed"`
}

func (r UpdateReservationStatusRequest) BookingStatus() booking.Status {
	return booking.Status(r.Status)
}
