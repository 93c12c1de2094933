package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/one393143/quizlet/internal/service/analytics"
)

type analyticsService interface {
	Overview(ctx context.Context) (*analytics.Overview, error)
	DueSets(ctx context.Context) ([]analytics.DueSet, error)
}

// AnalyticsHandler serves aggregated study statistics.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

// Overview handles GET /analytics.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, overview)
}

// Due handles GET /analytics/due.
func (h *AnalyticsHandler) Due(w http.ResponseWriter, r *http.Request) {
	due, err := h.svc.DueSets(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if due == nil {
		due = []analytics.DueSet{}
	}
	writeJSON(w, http.StatusOK, due)
}
