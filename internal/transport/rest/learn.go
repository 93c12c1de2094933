package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/adapter/sessioncache"
	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study"
)

type learnService interface {
	StartLearnSession(ctx context.Context, input study.StartLearnInput) (*domain.LearnSession, error)
	GradeLearnCard(ctx context.Context, input study.GradeLearnInput) (*domain.LearnSession, study.GradeResult, error)
}

// LearnHandler serves learn-mode sessions. Sessions live in the session cache
// between requests.
type LearnHandler struct {
	svc      learnService
	sessions sessioncache.Store[domain.LearnSession]
	log      *slog.Logger
}

// NewLearnHandler creates a LearnHandler.
func NewLearnHandler(svc learnService, sessions sessioncache.Store[domain.LearnSession], logger *slog.Logger) *LearnHandler {
	return &LearnHandler{svc: svc, sessions: sessions, log: logger.With("handler", "learn")}
}

type startLearnRequest struct {
	Scope domain.Scope `json:"scope"`
}

type gradeRequest struct {
	Known *bool `json:"known"`
}

type learnView struct {
	SessionID uuid.UUID    `json:"sessionId"`
	SetID     uuid.UUID    `json:"setId"`
	SetTitle  string       `json:"setTitle"`
	Scope     domain.Scope `json:"scope"`
	Position  int          `json:"position"`
	Queued    int          `json:"queued"`
	Remaining int          `json:"remaining"`
	Done      bool         `json:"done"`
	Current   *domain.Card `json:"current,omitempty"`
}

type gradeResponse struct {
	Session learnView         `json:"session"`
	Result  study.GradeResult `json:"result"`
}

func toLearnView(s *domain.LearnSession) learnView {
	v := learnView{
		SessionID: s.ID,
		SetID:     s.Set.ID,
		SetTitle:  s.Set.Title,
		Scope:     s.Scope,
		Position:  s.Position,
		Queued:    len(s.Queue),
		Remaining: s.Remaining(),
		Done:      s.Done(),
	}
	if card, ok := s.Current(); ok {
		v.Current = &card
	}
	return v
}

// Start handles POST /sets/{id}/learn.
func (h *LearnHandler) Start(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	req := startLearnRequest{Scope: domain.ScopeAll}
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Scope == "" {
		req.Scope = domain.ScopeAll
	}

	session, err := h.svc.StartLearnSession(r.Context(), study.StartLearnInput{SetID: setID, Scope: req.Scope})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.sessions.Put(r.Context(), session.ID, session); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toLearnView(session))
}

// Get handles GET /learn/{sessionID}.
func (h *LearnHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLearnView(session))
}

// Grade handles POST /learn/{sessionID}/grade.
func (h *LearnHandler) Grade(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req gradeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Known == nil {
		handleError(h.log, w, r, domain.NewValidationError("known", "required"))
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, result, err := h.svc.GradeLearnCard(r.Context(), study.GradeLearnInput{Session: session, Known: *req.Known})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.sessions.Put(r.Context(), session.ID, session); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gradeResponse{Session: toLearnView(session), Result: result})
}
