package create_booking

import (
	"time"

	"github.com/AM-Studio-19/am-booking/internal/domain"
	createBooking "github.com/AM-Studio-19/am-booking/internal/usecase/create_booking"
	"github.com/AM-Studio-19/am-booking/pkg/types"
)

// GuestRequest гость в составе HTTP запроса
type GuestRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	ServiceIDs []int64 `json:"serviceIds"`
	DiscountID *int64  `json:"discountId,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	LocationID string         `json:"locationId"`
	Date       string         `json:"date"`      // "2026-03-15"
	StartTime  string         `json:"startTime"` // "11:00"
	Guests     []GuestRequest `json:"guests"`
	Notes      *string        `json:"notes,omitempty"`
	LineUserID *string        `json:"lineUserId,omitempty"`
}

// GuestBookingResponse созданная запись одного гостя
type GuestBookingResponse struct {
	ID          int64  `json:"id"`
	GuestIndex  int    `json:"guestIndex"`
	GuestName   string `json:"guestName"`
	ServiceName string `json:"serviceName"`
	TotalPrice  int64  `json:"totalPrice"`
	Deposit     int64  `json:"deposit"`
	StartTime   string `json:"startTime"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Code         string                 `json:"code"`
	LocationID   string                 `json:"locationId"`
	LocationName string                 `json:"locationName"`
	Date         string                 `json:"date"`
	StartTime    string                 `json:"startTime"`
	Status       string                 `json:"status"`
	TotalPrice   int64                  `json:"totalPrice"`
	TotalDeposit int64                  `json:"totalDeposit"`
	Bookings     []GuestBookingResponse `json:"bookings"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	guests := make([]createBooking.Guest, len(r.Guests))
	for i, guest := range r.Guests {
		guests[i] = createBooking.Guest{
			Name:       guest.Name,
			Phone:      guest.Phone,
			ServiceIDs: guest.ServiceIDs,
			DiscountID: guest.DiscountID,
		}
	}

	return &createBooking.Request{
		LocationID: r.LocationID,
		Date:       bookingDate,
		StartTime:  startTime,
		Guests:     guests,
		Notes:      r.Notes,
		LineUserID: r.LineUserID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	bookings := make([]GuestBookingResponse, len(resp.Bookings))
	for i, booking := range resp.Bookings {
		bookings[i] = GuestBookingResponse{
			ID:          booking.ID,
			GuestIndex:  booking.GuestIndex,
			GuestName:   booking.GuestName,
			ServiceName: booking.ServiceName,
			TotalPrice:  booking.TotalPrice,
			Deposit:     booking.Deposit,
			StartTime:   booking.StartTime.String(),
		}
	}

	return &CreateBookingResponse{
		Code:         resp.Code,
		LocationID:   resp.LocationID,
		LocationName: resp.LocationName,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		TotalPrice:   resp.TotalPrice,
		TotalDeposit: resp.TotalDeposit,
		Bookings:     bookings,
	}
}
