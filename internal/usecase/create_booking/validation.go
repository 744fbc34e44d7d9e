package create_booking

import (
	"fmt"
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID == "" {
		return fmt.Errorf("%w: locationID must not be empty", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: startTime: %v", ErrInvalidInput, err)
	}

	if len(req.Guests) == 0 {
		return fmt.Errorf("%w: at least one guest is required", ErrInvalidInput)
	}
	if len(req.Guests) > domain.MaxGuestsPerBooking {
		return fmt.Errorf("%w: at most %d guests per booking", ErrInvalidInput, domain.MaxGuestsPerBooking)
	}

	for i, guest := range req.Guests {
		if guest.Name == "" {
			return fmt.Errorf("%w: guest %d has no name", ErrInvalidInput, i+1)
		}
		if len(guest.Name) > domain.MaxCustomerNameLength {
			return fmt.Errorf("%w: guest %d name is too long", ErrInvalidInput, i+1)
		}
		if len(guest.Phone) > domain.MaxCustomerPhoneLength {
			return fmt.Errorf("%w: guest %d phone is too long", ErrInvalidInput, i+1)
		}
		if len(guest.ServiceIDs) == 0 {
			return fmt.Errorf("%w: guest %d has no services selected", ErrInvalidInput, i+1)
		}
	}

	// Телефон обязателен хотя бы у первого гостя - по нему клиент
	// потом находит свою запись и историю визитов
	if req.Guests[0].Phone == "" {
		return fmt.Errorf("%w: first guest must have a phone", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes are too long (max %d)", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date, now time.Time) error {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return fmt.Errorf("%w: date is in the past", ErrInvalidDate)
	}

	return nil
}

// validateLocationExists проверяет, что локация есть в конфигурации студии
func validateLocationExists(locations []domain.Location, locationID string) (*domain.Location, error) {
	for i := range locations {
		if locations[i].ID == locationID {
			return &locations[i], nil
		}
	}
	return nil, ErrLocationNotFound
}

// validateSlot проверяет дату и время записи против настроек локации
// Локация без настроек принимает любые будущие даты по стандартной сетке слотов
func validateSlot(settings *domain.LocationSettings, req *Request) error {
	dateStr := req.Date.Format(domain.DateFormat)

	if len(settings.AllowedDates) > 0 && !settings.AllowsDate(dateStr) {
		return ErrDateNotAllowed
	}

	slots := settings.SlotsForDate(dateStr)
	if len(slots) == 0 {
		slots = domain.DefaultTimeSlots
	}

	for _, slot := range slots {
		if slot == req.StartTime {
			return nil
		}
	}

	return ErrInvalidTimeSlot
}
