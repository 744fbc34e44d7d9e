package search_bookings

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

type BookingService interface {
	Search(ctx context.Context, query string) (*models.BookingListResponse, error)
	GetWithFilter(ctx context.Context, req *models.GetBookingsRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
