package request

import (
	"time"

	"salon-booking/internal/domain/schedule"
	"salon-booking/internal/pkg/errs"
)

type WeekdayHoursRequest struct {
	Weekday    int     `json:"weekday" binding:"min=0,max=6"`
	Open       *string `json:"open,omitempty"`
	Close      *string `json:"close,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
}

func (r WeekdayHoursRequest) ToDomain() (schedule.DayHours, error) {
	open, err := parseClockPtr(r.Open)
	if err != nil {
		return schedule.DayHours{}, err
	}
	cls, err := parseClockPtr(r.Close)
	if err != nil {
		return schedule.DayHours{}, err
	}
	breakStart, err := parseClockPtr(r.BreakStart)
	if err != nil {
		return schedule.DayHours{}, err
	}
	breakEnd, err := parseClockPtr(r.BreakEnd)
	if err != nil {
		return schedule.DayHours{}, err
	}
	return schedule.NewDayHours(time.Weekday(r.Weekday), open, cls, breakStart, breakEnd)
}

type ReplaceWorkingHoursRequest struct {
	Days []WeekdayHoursRequest `json:"days" binding:"required,dive"`
}

// ToDomain rejects duplicate weekdays; omitted weekdays become closed.
func (r ReplaceWorkingHoursRequest) ToDomain() ([]schedule.DayHours, error) {
	seen := make(map[time.Weekday]bool, len(r.Days))
	week := make([]schedule.DayHours, 0, len(r.Days))
	for _, day := range r.Days {
		dh, err := day.ToDomain()
		if err != nil {
			return nil, err
		}
		if seen[dh.Weekday()] {
			return nil, errs.Wrap(errs.ErrDomainValidation, "duplicate weekday in working hours")
		}
		seen[dh.Weekday()] = true
		week = append(week, dh)
	}
	return week, nil
}

type CreateHolidayRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"omitempty,oneof=national custom"`
}

func (r CreateHolidayRequest) HolidayType() schedule.HolidayType {
	if r.Type == "" {
		return schedule.HolidayTypeCustom
	}
	return schedule.HolidayType(r.Type)
}

func parseClockPtr(s *string) (*schedule.ClockTime, error) {
	if s == nil {
		return nil, nil
	}
	ct, err := schedule.ParseClockTime(*s)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
