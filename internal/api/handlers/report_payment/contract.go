package report_payment

import (
	"context"

	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

type BookingService interface {
	ReportPayment(ctx context.Context, req *models.ReportPaymentRequest) (*models.BookingGroupResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
