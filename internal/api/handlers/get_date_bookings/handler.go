package get_date_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	"github.com/AM-Studio-19/am-booking/internal/domain"
	bookingsService "github.com/AM-Studio-19/am-booking/internal/service/bookings"
	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

const (
	msgMissingDate   = "請指定查詢日期"
	msgInvalidDate   = "日期格式錯誤，請使用 YYYY-MM-DD"
	msgInvalidFilter = "查詢條件格式錯誤"
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

// Handle GET /api/v1/admin/locations/{locationId}/bookings?date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /admin/locations/bookings - Missing date parameter: location=%s", locationID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /admin/locations/bookings - Invalid date: date=%s, error=%v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.GetBookingsRequest{
		LocationID:      &locationID,
		Date:            &date,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetWithFilter(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/locations/bookings - Invalid filter: location=%s, error=%v", locationID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/locations/bookings - Failed to fetch bookings: location=%s, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/locations/bookings - Fetched %d bookings: location=%s, date=%s",
		len(result.Bookings), locationID, dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
