package create_booking

import "errors"

var (
	// ErrLocationNotFound возвращается, когда локация не найдена
	ErrLocationNotFound = errors.New("create_booking: location not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrServiceInactive возвращается при попытке записаться на отключенную услугу
	ErrServiceInactive = errors.New("create_booking: service is not active")

	// ErrDiscountNotFound возвращается, когда скидка не найдена или отключена
	ErrDiscountNotFound = errors.New("create_booking: discount not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateNotAllowed возвращается, когда дата не открыта для записи
	ErrDateNotAllowed = errors.New("create_booking: date is not open for booking")

	// ErrInvalidTimeSlot возвращается, когда время не входит в сетку слотов локации
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
