package create_booking

import (
	"errors"
	"net/http"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	createBooking "github.com/AM-Studio-19/am-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "預約資料格式錯誤"
	msgInvalidDateFormat  = "日期格式錯誤，請使用 YYYY-MM-DD"
	msgLocationNotFound   = "查無此分店"
	msgServiceNotFound    = "查無此服務項目"
	msgServiceInactive    = "此服務項目目前未開放預約"
	msgDiscountNotFound   = "查無此優惠"
	msgInvalidDate        = "預約日期無效"
	msgDateNotAllowed     = "此日期未開放預約"
	msgInvalidTimeSlot    = "此時段未開放預約"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrLocationNotFound):
			h.logger.Warn("POST /bookings - Location not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrServiceInactive):
			h.logger.Warn("POST /bookings - Service inactive: location_id=%s", req.LocationID)
			handlers.RespondBadRequest(w, msgServiceInactive)

		case errors.Is(err, createBooking.ErrDiscountNotFound):
			h.logger.Warn("POST /bookings - Discount not found: location_id=%s", req.LocationID)
			handlers.RespondNotFound(w, msgDiscountNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrDateNotAllowed):
			h.logger.Warn("POST /bookings - Date not open for booking: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotAllowed)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: location_id=%s, error=%v",
				req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: code=%s, location_id=%s, guests=%d",
		result.Code, req.LocationID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
