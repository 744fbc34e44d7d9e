package update_settings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	settingsService "github.com/AM-Studio-19/am-booking/internal/service/settings"
	"github.com/AM-Studio-19/am-booking/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "資料格式錯誤"
	msgLocationNotFound   = "查無此分店"
)

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

// Handle PUT /api/v1/admin/locations/{locationId}/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID := mux.Vars(r)["locationId"]

	var req models.UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/locations/settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), locationID, &req)
	if err != nil {
		switch {
		case errors.Is(err, settingsService.ErrLocationNotFound):
			h.logger.Warn("PUT /admin/locations/settings - Location not found: location=%s", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, settingsService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/locations/settings - Invalid settings: location=%s, error=%v",
				locationID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /admin/locations/settings - Failed to update settings: location=%s, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/locations/settings - Updated settings: location=%s", locationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
