package get_catalog

import (
	"net/http"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog?includeInactive=
// Клиентская часть видит только активные позиции; includeInactive
// используется админкой
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	includeInactive := r.URL.Query().Get("includeInactive") == "true"

	result, err := h.service.GetCatalog(r.Context(), includeInactive)
	if err != nil {
		h.logger.Error("GET /catalog - Failed to fetch catalog: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /catalog - Fetched catalog: services=%d, discounts=%d, templates=%d",
		len(result.Services), len(result.Discounts), len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
