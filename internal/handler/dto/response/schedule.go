package response

import (
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type WeekdayHoursResponse struct {
	Weekday    int     `json:"weekday"`
	Open       *string `json:"open,omitempty"`
	Close      *string `json:"close,omitempty"`
	BreakStart *string `json:"breakStart,omitempty"`
	BreakEnd   *string `json:"breakEnd,omitempty"`
}

type HolidayResponse struct {
	ID       uuid.UUID `json:"id"`
	Date     string    `json:"date"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	IsActive bool      `json:"isActive"`
}

func FromWeekdayHoursViews(views []queries.WeekdayHoursView) []WeekdayHoursResponse {
	result := make([]WeekdayHoursResponse, len(views))
	for i, v := range views {
		result[i] = WeekdayHoursResponse{
			Weekday:    v.Weekday,
			Open:       v.Open,
			Close:      v.Close,
			BreakStart: v.BreakStart,
			BreakEnd:   v.BreakEnd,
		}
	}
	return result
}

func FromHolidayView(v *queries.HolidayView) *HolidayResponse {
	return &HolidayResponse{
		ID:       v.ID,
		Date:     v.Date,
		Name:     v.Name,
		Type:     v.Type,
		IsActive: v.IsActive,
	}
}

func FromHolidayViews(views []queries.HolidayView) []HolidayResponse {
	result := make([]HolidayResponse, len(views))
	for i, v := range views {
		result[i] = *FromHolidayView(&v)
	}
	return result
}
