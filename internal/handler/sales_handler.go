package handler

import (
	"net/http"
	"strconv"

	"resto-hub/internal/model"
	"resto-hub/internal/service"

	"github.com/rs/zerolog"
)

// SalesHandler handles analytics HTTP requests.
type SalesHandler struct {
	service service.SalesService
	logger  zerolog.Logger
}

// NewSalesHandler creates a new sales handler.
func NewSalesHandler(service service.SalesService, logger zerolog.Logger) *SalesHandler {
	return &SalesHandler{
		service: service,
		logger:  logger.With().Str("handler", "sales").Logger(),
	}
}

// TopSellers handles GET /api/orders/analytics/top-sellers requests.
func (h *SalesHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, model.ErrCodeInvalidArgument, "invalid limit parameter", h.logger)
			return
		}
		limit = parsed
	}

	sellers, err := h.service.TopSellers(r.Context(), limit)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sellers)
}
