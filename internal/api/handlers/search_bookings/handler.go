package search_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	bookingsService "github.com/AM-Studio-19/am-booking/internal/service/bookings"
	"github.com/AM-Studio-19/am-booking/internal/service/bookings/models"
)

const (
	msgMissingQuery  = "請輸入電話或姓名"
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

// HandleSearch GET /api/v1/admin/bookings/search?query=
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		h.logger.Warn("GET /admin/bookings/search - Missing query parameter")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	result, err := h.service.Search(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings/search - Invalid query: %v", err)
			handlers.RespondBadRequest(w, msgMissingQuery)

		default:
			h.logger.Error("GET /admin/bookings/search - Failed to search bookings: query=%s, error=%v", query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings/search - Found %d bookings: query=%s", len(result.Bookings), query)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleList GET /api/v1/admin/bookings?status=&includeInactive=&limit=
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	req := &models.GetBookingsRequest{
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	}

	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.ParseUint(limitStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid limit: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		req.Limit = limit
	}

	result, err := h.service.GetWithFilter(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/bookings - Failed to fetch bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Fetched %d bookings", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
