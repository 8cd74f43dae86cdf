package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyHolidayName = errors.New("holiday name must not be empty")

type HolidayType string

const (
	HolidayTypeNational HolidayType = "national"
	HolidayTypeCustom   HolidayType = "custom"
)

func (t HolidayType) IsValid() bool {
	switch t {
	case HolidayTypeNational, HolidayTypeCustom:
		return true
	default:
		return false
	}
}

// Holiday closes a salon for one specific calendar date. Holidays are
// dated per year; recurring month/day holidays are not modeled.
type Holiday struct {
	id       uuid.UUID
	salonID  uuid.UUID
	date     time.Time
	name     string
	kind     HolidayType
	isActive bool
}

func NewHoliday(salonID uuid.UUID, date time.Time, name string, kind HolidayType) (*Holiday, error) {
	if name == "" {
		return nil, ErrEmptyHolidayName
	}
	if !kind.IsValid() {
		return nil, errors.New("invalid holiday type: " + string(kind))
	}
	return &Holiday{
		id:       uuid.New(),
		salonID:  salonID,
		date:     truncateToDate(date),
		name:     name,
		kind:     kind,
		isActive: true,
	}, nil
}

func ReconstructHoliday(id, salonID uuid.UUID, date time.Time, name string, kind HolidayType, isActive bool) *Holiday {
	return &Holiday{
		id:       id,
		salonID:  salonID,
		date:     truncateToDate(date),
		name:     name,
		kind:     kind,
		isActive: isActive,
	}
}

func (h *Holiday) ID() uuid.UUID     { return h.id }
func (h *Holiday) SalonID() uuid.UUID { return h.salonID }
func (h *Holiday) Date() time.Time   { return h.date }
func (h *Holiday) Name() string      { return h.name }
func (h *Holiday) Type() HolidayType { return h.kind }
func (h *Holiday) IsActive() bool    { return h.isActive }

func (h *Holiday) Deactivate() { h.isActive = false }
func (h *Holiday) Activate()   { h.isActive = true }

// Closes reports whether the holiday shuts the salon on the given date.
func (h *Holiday) Closes(date time.Time) bool {
	if !h.isActive {
		return false
	}
	d := truncateToDate(date)
	return h.date.Year() == d.Year() && h.date.Month() == d.Month() && h.date.Day() == d.Day()
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
