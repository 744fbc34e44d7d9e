package check_touchup

import (
	"errors"
	"net/http"
	"strings"

	"github.com/AM-Studio-19/am-booking/internal/api/handlers"
	checkTouchup "github.com/AM-Studio-19/am-booking/internal/usecase/check_touchup"
)

const (
	msgMissingQuery      = "請輸入電話或姓名"
	msgNoHistory         = "查無歷史施作紀錄"
	msgNoCategoryHistory = "查無此項目的施作紀錄"
)

type Handler struct {
	useCase CheckTouchupUseCase
	logger  Logger
}

func NewHandler(useCase CheckTouchupUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/touchup/check?query=&category=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		h.logger.Warn("GET /touchup/check - Missing query parameter")
		handlers.RespondBadRequest(w, msgMissingQuery)
		return
	}

	useCaseReq := &checkTouchup.Request{Query: query}
	if category := strings.TrimSpace(r.URL.Query().Get("category")); category != "" {
		useCaseReq.Category = &category
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkTouchup.ErrInvalidInput):
			h.logger.Warn("GET /touchup/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingQuery)

		case errors.Is(err, checkTouchup.ErrNoHistory):
			h.logger.Info("GET /touchup/check - No history for query=%s", query)
			handlers.RespondNotFound(w, msgNoHistory)

		case errors.Is(err, checkTouchup.ErrNoEligibleHistory),
			errors.Is(err, checkTouchup.ErrNoCategoryHistory):
			h.logger.Info("GET /touchup/check - No category history for query=%s", query)
			handlers.RespondNotFound(w, msgNoCategoryHistory)

		default:
			h.logger.Error("GET /touchup/check - Failed to resolve touch-up: query=%s, error=%v", query, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /touchup/check - Resolved %d categories for query=%s", len(result.Records), query)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
