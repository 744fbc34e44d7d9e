package models

import (
	"errors"
	"fmt"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	"github.com/AM-Studio-19/am-booking/pkg/types"
)

var (
	// ErrInvalidTimeSlot возвращается при некорректном формате слота
	ErrInvalidTimeSlot = errors.New("invalid time slot")
)

// Request модели

// UpdateSettingsRequest запрос на обновление настроек локации
type UpdateSettingsRequest struct {
	AllowedDates []string            `json:"allowedDates"`
	TimeSlots    []string            `json:"timeSlots"`
	SpecialRules map[string][]string `json:"specialRules,omitempty"`
}

// ToDomainSettings конвертирует request в domain модель с валидацией слотов
func (r *UpdateSettingsRequest) ToDomainSettings(locationID string) (*domain.LocationSettings, error) {
	timeSlots, err := toTimeStrings(r.TimeSlots)
	if err != nil {
		return nil, err
	}

	var specialRules map[string][]types.TimeString
	if len(r.SpecialRules) > 0 {
		specialRules = make(map[string][]types.TimeString, len(r.SpecialRules))
		for date, slots := range r.SpecialRules {
			converted, err := toTimeStrings(slots)
			if err != nil {
				return nil, fmt.Errorf("special rule for %s: %w", date, err)
			}
			specialRules[date] = converted
		}
	}

	return &domain.LocationSettings{
		LocationID:   locationID,
		AllowedDates: r.AllowedDates,
		TimeSlots:    timeSlots,
		SpecialRules: specialRules,
	}, nil
}

func toTimeStrings(slots []string) ([]types.TimeString, error) {
	result := make([]types.TimeString, 0, len(slots))
	for _, slot := range slots {
		ts, err := types.NewTimeStringFromString(slot)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
		}
		result = append(result, ts)
	}
	return result, nil
}

// Response модели

// SettingsResponse ответ с настройками локации
type SettingsResponse struct {
	LocationID   string              `json:"locationId"`
	AllowedDates []string            `json:"allowedDates"`
	TimeSlots    []string            `json:"timeSlots"`
	SpecialRules map[string][]string `json:"specialRules,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.LocationSettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	resp := &SettingsResponse{
		LocationID:   s.LocationID,
		AllowedDates: s.AllowedDates,
		TimeSlots:    fromTimeStrings(s.TimeSlots),
	}
	if resp.AllowedDates == nil {
		resp.AllowedDates = []string{}
	}

	if len(s.SpecialRules) > 0 {
		resp.SpecialRules = make(map[string][]string, len(s.SpecialRules))
		for date, slots := range s.SpecialRules {
			resp.SpecialRules[date] = fromTimeStrings(slots)
		}
	}

	return resp
}

func fromTimeStrings(slots []types.TimeString) []string {
	result := make([]string, len(slots))
	for i, slot := range slots {
		result[i] = slot.String()
	}
	return result
}
