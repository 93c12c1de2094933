package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/studyset"
)

type setService interface {
	List(ctx context.Context) ([]domain.StudySet, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.StudySet, error)
	Create(ctx context.Context, input studyset.CreateSetInput) (*domain.StudySet, error)
	UpdateContent(ctx context.Context, input studyset.UpdateSetInput) (*domain.StudySet, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddCard(ctx context.Context, input studyset.AddCardInput) (*domain.StudySet, domain.Card, error)
	EditCard(ctx context.Context, input studyset.EditCardInput) (*domain.StudySet, error)
	DeleteCard(ctx context.Context, input studyset.DeleteCardInput) (*domain.StudySet, error)
}

// SetHandler serves study set and card endpoints.
type SetHandler struct {
	svc   setService
	log   *slog.Logger
	clock func() time.Time
}

// NewSetHandler creates a SetHandler.
func NewSetHandler(svc setService, logger *slog.Logger) *SetHandler {
	return &SetHandler{svc: svc, log: logger.With("handler", "sets"), clock: time.Now}
}

type setRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Cards       []domain.CardInput `json:"cards"`
}

type cardRequest struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
}

type setListItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CardCount   int       `json:"cardCount"`
	DueCount    int       `json:"dueCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type cardResponse struct {
	Card domain.Card      `json:"card"`
	Set  *domain.StudySet `json:"set"`
}

// List handles GET /sets.
func (h *SetHandler) List(w http.ResponseWriter, r *http.Request) {
	sets, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	now := h.clock()
	items := make([]setListItem, 0, len(sets))
	for i := range sets {
		s := &sets[i]
		due := 0
		for _, rec := range s.Progress.SRS {
			if rec.IsDue(now) {
				due++
			}
		}
		items = append(items, setListItem{
			ID:          s.ID,
			Title:       s.Title,
			Description: s.Description,
			CardCount:   len(s.Cards),
			DueCount:    due,
			CreatedAt:   s.CreatedAt,
			UpdatedAt:   s.UpdatedAt,
		})
	}
	writeJSON(w, http.StatusOK, items)
}

// Get handles GET /sets/{id}.
func (h *SetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// Create handles POST /sets.
func (h *SetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req setRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.Create(r.Context(), studyset.CreateSetInput{
		Title:       req.Title,
		Description: req.Description,
		Cards:       req.Cards,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, set)
}

// Update handles PUT /sets/{id}.
func (h *SetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req setRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.UpdateContent(r.Context(), studyset.UpdateSetInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Cards:       req.Cards,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}

// Delete handles DELETE /sets/{id}.
func (h *SetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddCard handles POST /sets/{id}/cards.
func (h *SetHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, card, err := h.svc.AddCard(r.Context(), studyset.AddCardInput{
		SetID:      id,
		Term:       req.Term,
		Definition: req.Definition,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cardResponse{Card: card, Set: set})
}

// EditCard handles PUT /sets/{id}/cards/{cardID}.
func (h *SetHandler) EditCard(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	cardID, err := pathID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req cardRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.EditCard(r.Context(), studyset.EditCardInput{
		SetID:      setID,
		CardID:     cardID,
		Term:       req.Term,
		Definition: req.Definition,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	card, _ := set.Card(cardID)
	writeJSON(w, http.StatusOK, cardResponse{Card: card, Set: set})
}

// DeleteCard handles DELETE /sets/{id}/cards/{cardID}.
func (h *SetHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	cardID, err := pathID(r, "cardID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	set, err := h.svc.DeleteCard(r.Context(), studyset.DeleteCardInput{SetID: setID, CardID: cardID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, set)
}
