package models

import (
	"errors"
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ReportPaymentRequest запрос на сообщение о переводе депозита
type ReportPaymentRequest struct {
	Code  string `json:"code"`
	Last5 string `json:"last5"` // Последние 5 цифр счёта перевода
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status        *string `json:"status,omitempty"`
	PaymentStatus *string `json:"paymentStatus,omitempty"`
}

// GetBookingsRequest запрос на получение бронирований с фильтрацией
type GetBookingsRequest struct {
	LocationID      *string    `json:"locationId,omitempty"`
	Date            *time.Time `json:"date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
	Limit           uint64     `json:"limit,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		LocationID:      r.LocationID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
		Limit:           r.Limit,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования одного гостя
type BookingResponse struct {
	ID         int64  `json:"id"`
	Code       string `json:"code"`
	LocationID string `json:"locationId"`

	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	// Денормализованные данные на момент записи
	LocationName    string `json:"locationName"`
	ServiceName     string `json:"serviceName"`
	DurationMinutes int    `json:"durationMinutes"`

	BookingDate string `json:"bookingDate"` // "2026-03-15"
	StartTime   string `json:"startTime"`   // "11:00"
	GuestIndex  int    `json:"guestIndex"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TotalPrice int64 `json:"totalPrice"`
	Deposit    int64 `json:"deposit"`

	Notes *string `json:"notes,omitempty"`

	PaymentLast5      *string `json:"paymentLast5,omitempty"`
	PaymentReportedAt *string `json:"paymentReportedAt,omitempty"` // ISO 8601 format

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingGroupResponse ответ с группой бронирований под общим кодом
type BookingGroupResponse struct {
	Code         string            `json:"code"`
	LocationID   string            `json:"locationId"`
	LocationName string            `json:"locationName"`
	BookingDate  string            `json:"bookingDate"`
	StartTime    string            `json:"startTime"`
	TotalPrice   int64             `json:"totalPrice"`
	TotalDeposit int64             `json:"totalDeposit"`
	Bookings     []BookingResponse `json:"bookings"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Code:               b.Code,
		LocationID:         b.LocationID,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		LocationName:       b.LocationName,
		ServiceName:        b.ServiceName,
		DurationMinutes:    b.DurationMinutes,
		BookingDate:        b.Date.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		GuestIndex:         b.GuestIndex,
		Status:             string(b.Status),
		PaymentStatus:      string(b.PaymentStatus),
		TotalPrice:         b.TotalPrice,
		Deposit:            b.Deposit,
		Notes:              b.Notes,
		PaymentLast5:       b.PaymentLast5,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	if b.PaymentReportedAt != nil {
		reportedStr := b.PaymentReportedAt.Format(time.RFC3339)
		resp.PaymentReportedAt = &reportedStr
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainBookingGroup собирает групповой ответ из записей с общим кодом
// Записи приходят отсортированными по guest_index
func FromDomainBookingGroup(bookings []*domain.Booking) *BookingGroupResponse {
	if len(bookings) == 0 {
		return nil
	}

	first := bookings[0]
	resp := &BookingGroupResponse{
		Code:         first.Code,
		LocationID:   first.LocationID,
		LocationName: first.LocationName,
		BookingDate:  first.Date.Format(domain.DateFormat),
		StartTime:    first.StartTime.String(),
		Bookings:     make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		resp.TotalPrice += booking.TotalPrice
		resp.TotalDeposit += booking.Deposit
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidBookingStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s := domain.PaymentStatus(status)

	for _, valid := range domain.ValidPaymentStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
