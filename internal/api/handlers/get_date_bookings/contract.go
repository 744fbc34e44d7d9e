package get_date_bookings

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
