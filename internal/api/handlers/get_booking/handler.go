package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	bookingsService "github.com/AM-Studio-19/am-booking/internal/service/bookings"
)

const (
	msgBookingNotFound  = "查無此預約"
	msgInvalidBookingID = "預約編號格式錯誤"
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

// HandleByCode GET /api/v1/bookings/code/{code}
func (h *Handler) HandleByCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	result, err := h.service.GetByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /bookings/code - Invalid code: %v", err)
			handlers.RespondBadRequest(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/code - Bookings not found: code=%s", code)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /bookings/code - Failed to fetch bookings: code=%s, error=%v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/code - Fetched %d bookings: code=%s", len(result.Bookings), code)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleByID GET /api/v1/admin/bookings/{bookingId}
func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /admin/bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.GetByID(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("GET /admin/bookings/{id} - Booking not found: id=%d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		default:
			h.logger.Error("GET /admin/bookings/{id} - Failed to fetch booking: id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/{id} - Fetched booking id=%d", bookingID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
