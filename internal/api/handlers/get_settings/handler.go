package get_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	settingsService "github.com/AM-Studio-19/am-booking/internal/service/settings"
)

const msgLocationNotFound = "查無此分店"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationId"]

	result, err := h.service.Get(r.Context(), locationID)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrLocationNotFound):
			h.logger.Warn("GET /locations/settings - Location not found: location=%s", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/settings - Failed to fetch settings: location=%s, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/settings - Fetched settings: location=%s", locationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
