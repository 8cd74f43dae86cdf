package response

import (
	"time"

	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID           uuid.UUID  `json:"id"`
	SalonID      uuid.UUID  `json:"salonId"`
	EmployeeID   uuid.UUID  `json:"employeeId"`
	EmployeeName string     `json:"employeeName"`
	ServiceID    uuid.UUID  `json:"serviceId"`
	ServiceName  string     `json:"serviceName"`
	ClientID     *uuid.UUID `json:"clientId,omitempty"`
	ClientName   *string    `json:"clientName,omitempty"`
	ClientPhone  *string    `json:"clientPhone,omitempty"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	Status       string     `json:"status"`
	Kind         string     `json:"kind"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID           uuid.UUID `json:"id"`
	EmployeeID   uuid.UUID `json:"employeeId"`
	EmployeeName string    `json:"employeeName"`
	ServiceName  string    `json:"serviceName"`
	StartTime    time.Time `json:"startTime"`
	EndTime      time.Time `json:"endTime"`
	Status       string    `json:"status"`
	Kind         string    `json:"kind"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:           rm.ID,
		SalonID:      rm.SalonID,
		EmployeeID:   rm.EmployeeID,
		EmployeeName: rm.EmployeeName,
		ServiceID:    rm.ServiceID,
		ServiceName:  rm.ServiceName,
		ClientID:     rm.ClientID,
		ClientName:   rm.ClientName,
		ClientPhone:  rm.ClientPhone,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		Kind:         rm.Kind,
		CreatedAt:    rm.CreatedAt,
		UpdatedAt:    rm.UpdatedAt,
	}
}

func FromReservationListItem(rm *queries.ReservationListItem) *ReservationListResponse {
	return &ReservationListResponse{
		ID:           rm.ID,
		EmployeeID:   rm.EmployeeID,
		EmployeeName: rm.EmployeeName,
		ServiceName:  rm.ServiceName,
		StartTime:    rm.StartTime,
		EndTime:      rm.EndTime,
		Status:       rm.Status,
		Kind:         rm.Kind,
	}
}
