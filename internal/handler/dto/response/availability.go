package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityResponse struct {
	SalonID    uuid.UUID  `json:"salonId"`
	ServiceID  uuid.UUID  `json:"serviceId"`
	EmployeeID *uuid.UUID `json:"employeeId,omitempty"`
	Date       string     `json:"date"`
	Slots      []string   `json:"slots"`
}

type NearestSlotResponse struct {
	Date  string   `json:"date"`
	Slot  string   `json:"slot"`
	Slots []string `json:"slots"`
}

func FromDayAvailabilityView(view *queries.DayAvailabilityView) *AvailabilityResponse {
	return &AvailabilityResponse{
		SalonID:    view.SalonID,
		ServiceID:  view.ServiceID,
		EmployeeID: view.EmployeeID,
		Date:       view.Date,
		Slots:      view.Slots,
	}
}

func FromNearestSlotView(view *queries.NearestSlotView) *NearestSlotResponse {
	return &NearestSlotResponse{
		Date:  view.Date,
		Slot:  view.Slot,
		Slots: view.Slots,
	}
}
