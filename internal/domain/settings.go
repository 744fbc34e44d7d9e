package domain

import (
	"time"

	"github.com/AM-Studio-19/am-booking/pkg/types"
)

// Location is one of the studio's physical locations
type Location struct {
	ID   string
	Name string
}

// LocationSettings holds the per-location booking configuration maintained
// through the back office: which dates are open for booking, the daily slot
// grid, and date-specific slot overrides.
type LocationSettings struct {
	LocationID   string
	AllowedDates []string                     // "2006-01-02" dates open for booking
	TimeSlots    []types.TimeString           // default daily slots
	SpecialRules map[string][]types.TimeString // date -> replacement slot list

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SlotsForDate returns the bookable slots for a date, applying special rules
func (s *LocationSettings) SlotsForDate(date string) []types.TimeString {
	if slots, ok := s.SpecialRules[date]; ok {
		return slots
	}
	return s.TimeSlots
}

// AllowsDate reports whether the date is open for booking
func (s *LocationSettings) AllowsDate(date string) bool {
	for _, d := range s.AllowedDates {
		if d == date {
			return true
		}
	}
	return false
}

// DefaultTimeSlots is the slot grid used when a location has no settings yet
var DefaultTimeSlots = []types.TimeString{"11:00", "13:00", "15:00", "17:00", "18:30"}
