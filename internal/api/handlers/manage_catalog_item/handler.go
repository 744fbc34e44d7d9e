package manage_catalog_item

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	catalogService "github.com/AM-Studio-19/am-booking/internal/service/catalog"
	"github.com/AM-Studio-19/am-booking/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "資料格式錯誤"
	msgInvalidItemID      = "編號格式錯誤"
	msgUnknownCollection  = "查無此類別"
	msgItemNotFound       = "查無此項目"
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

// HandleCreate POST /api/v1/admin/catalog/{collection}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	collection := mux.Vars(r)["collection"]

	var (
		result interface{}
		err    error
	)

	switch collection {
	case catalogService.CollectionServices:
		var payload models.ServicePayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("POST /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.CreateService(r.Context(), &payload)

	case catalogService.CollectionDiscounts:
		var payload models.DiscountPayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("POST /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.CreateDiscount(r.Context(), &payload)

	case catalogService.CollectionTemplates:
		var payload models.TemplatePayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("POST /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.CreateTemplate(r.Context(), &payload)

	default:
		h.logger.Warn("POST /admin/catalog - Unknown collection: %s", collection)
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	if err != nil {
		h.respondError(w, "POST", collection, err)
		return
	}

	h.logger.Info("POST /admin/catalog - Created item in collection=%s", collection)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PUT /api/v1/admin/catalog/{collection}/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection := vars["collection"]

	id, parseErr := strconv.ParseInt(vars["id"], 10, 64)
	if parseErr != nil {
		h.logger.Warn("PUT /admin/catalog - Invalid item ID: %v", parseErr)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var (
		result interface{}
		err    error
	)

	switch collection {
	case catalogService.CollectionServices:
		var payload models.ServicePayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("PUT /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdateService(r.Context(), id, &payload)

	case catalogService.CollectionDiscounts:
		var payload models.DiscountPayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("PUT /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdateDiscount(r.Context(), id, &payload)

	case catalogService.CollectionTemplates:
		var payload models.TemplatePayload
		if decodeErr := handlers.DecodeJSON(r, &payload); decodeErr != nil {
			h.logger.Warn("PUT /admin/catalog - Invalid request body: %v", decodeErr)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		result, err = h.service.UpdateTemplate(r.Context(), id, &payload)

	default:
		h.logger.Warn("PUT /admin/catalog - Unknown collection: %s", collection)
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	if err != nil {
		h.respondError(w, "PUT", collection, err)
		return
	}

	h.logger.Info("PUT /admin/catalog - Updated item id=%d in collection=%s", id, collection)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/admin/catalog/{collection}/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	collection := vars["collection"]

	id, parseErr := strconv.ParseInt(vars["id"], 10, 64)
	if parseErr != nil {
		h.logger.Warn("DELETE /admin/catalog - Invalid item ID: %v", parseErr)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var err error
	switch collection {
	case catalogService.CollectionServices:
		err = h.service.DeleteService(r.Context(), id)
	case catalogService.CollectionDiscounts:
		err = h.service.DeleteDiscount(r.Context(), id)
	case catalogService.CollectionTemplates:
		err = h.service.DeleteTemplate(r.Context(), id)
	default:
		h.logger.Warn("DELETE /admin/catalog - Unknown collection: %s", collection)
		handlers.RespondNotFound(w, msgUnknownCollection)
		return
	}

	if err != nil {
		h.respondError(w, "DELETE", collection, err)
		return
	}

	h.logger.Info("DELETE /admin/catalog - Deleted item id=%d from collection=%s", id, collection)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) respondError(w http.ResponseWriter, method, collection string, err error) {
	switch {
	case errors.Is(err, catalogService.ErrInvalidInput):
		h.logger.Warn("%s /admin/catalog - Invalid input: collection=%s, error=%v", method, collection, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)

	case errors.Is(err, catalogService.ErrItemNotFound):
		h.logger.Warn("%s /admin/catalog - Item not found: collection=%s", method, collection)
		handlers.RespondNotFound(w, msgItemNotFound)

	default:
		h.logger.Error("%s /admin/catalog - Operation failed: collection=%s, error=%v", method, collection, err)
		handlers.RespondInternalError(w)
	}
}
