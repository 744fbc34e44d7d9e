package report_payment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	bookingsService "github.com/AM-Studio-19/am-booking/internal/service/bookings"
	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody  = "資料格式錯誤"
	msgInvalidLast5        = "請輸入帳號後五碼"
	msgBookingNotFound     = "查無此預約"
	msgCannotReportPayment = "此預約無法回報付款"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/code/{code}/payment
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var req ReportPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/code/payment - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ReportPayment(r.Context(), &models.ReportPaymentRequest{
		Code:  code,
		Last5: req.Last5,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("POST /bookings/code/payment - Invalid input: code=%s, error=%v", code, err)
			handlers.RespondBadRequest(w, msgInvalidLast5)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/code/payment - Bookings not found: code=%s", code)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrCannotReportPayment):
			h.logger.Warn("POST /bookings/code/payment - Cannot report payment: code=%s", code)
			handlers.RespondError(w, http.StatusConflict, msgCannotReportPayment)

		default:
			h.logger.Error("POST /bookings/code/payment - Failed to report payment: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/code/payment - Payment reported: code=%s", code)
	handlers.RespondJSON(w, http.StatusOK, result)
}
