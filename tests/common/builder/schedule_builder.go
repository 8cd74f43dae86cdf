//go:build unit || e2e

package builder

import (
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	SalonID     uuid.UUID
	Open        string
	Close       string
	BreakStart  string
	BreakEnd    string
	HolidayDate string
	HolidayName string
	HolidayType string
}

func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		SalonID:     uuid.New(),
		Open:        "09:00",
		Close:       "18:00",
		BreakStart:  "12:00",
		BreakEnd:    "13:00",
		HolidayDate: "2026-12-29",
		HolidayName: "Year-end closure",
		HolidayType: "custom",
	}
}

// Build methods

// BuildReplaceRequestDTO covers Monday through Saturday with the same
// hours; Sunday is omitted and therefore closed.
func (b *ScheduleBuilder) BuildReplaceRequestDTO() reqdto.ReplaceWorkingHoursRequest {
	days := make([]reqdto.WeekdayHoursRequest, 0, 6)
	for wd := 1; wd <= 6; wd++ {
		open := b.Open
		cls := b.Close
		breakStart := b.BreakStart
		breakEnd := b.BreakEnd
		days = append(days, reqdto.WeekdayHoursRequest{
			Weekday:    wd,
			Open:       &open,
			Close:      &cls,
			BreakStart: &breakStart,
			BreakEnd:   &breakEnd,
		})
	}
	return reqdto.ReplaceWorkingHoursRequest{Days: days}
}

func (b *ScheduleBuilder) BuildHolidayRequestDTO() reqdto.CreateHolidayRequest {
	return reqdto.CreateHolidayRequest{
		Date: b.HolidayDate,
		Name: b.HolidayName,
		Type: b.HolidayType,
	}
}

func (b *ScheduleBuilder) BuildWeekHoursView() []queries.WeekdayHoursView {
	views := make([]queries.WeekdayHoursView, 0, 7)
	for wd := 0; wd <= 6; wd++ {
		view := queries.WeekdayHoursView{Weekday: wd}
		if wd != 0 {
			open := b.Open
			cls := b.Close
			view.Open = &open
			view.Close = &cls
		}
		views = append(views, view)
	}
	return views
}

func (b *ScheduleBuilder) BuildHolidayView() *queries.HolidayView {
	return &queries.HolidayView{
		ID:       uuid.New(),
		Date:     b.HolidayDate,
		Name:     b.HolidayName,
		Type:     b.HolidayType,
		IsActive: true,
	}
}

// Fluent builder methods

func (b *ScheduleBuilder) WithSalonID(salonID uuid.UUID) *ScheduleBuilder {
	b.SalonID = salonID
	return b
}

func (b *ScheduleBuilder) WithHours(open, close string) *ScheduleBuilder {
	b.Open = open
	b.Close = close
	return b
}

func (b *ScheduleBuilder) WithHolidayDate(date string) *ScheduleBuilder {
	b.HolidayDate = date
	return b
}
