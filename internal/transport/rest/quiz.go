package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/adapter/sessioncache"
	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/quiz"
)

type quizService interface {
	StartTest(ctx context.Context, input quiz.StartTestInput) (*domain.TestSession, error)
	SubmitAnswer(ctx context.Context, input quiz.SubmitAnswerInput) (*domain.TestSession, quiz.AnswerResult, error)
}

// TestHandler serves test-mode sessions.
type TestHandler struct {
	svc      quizService
	sessions sessioncache.Store[domain.TestSession]
	log      *slog.Logger
}

// NewTestHandler creates a TestHandler.
func NewTestHandler(svc quizService, sessions sessioncache.Store[domain.TestSession], logger *slog.Logger) *TestHandler {
	return &TestHandler{svc: svc, sessions: sessions, log: logger.With("handler", "test")}
}

type startTestRequest struct {
	Scope      domain.Scope     `json:"scope"`
	Count      int              `json:"count"`
	UseTF      bool             `json:"useTF"`
	UseMC      bool             `json:"useMC"`
	UseWritten bool             `json:"useWritten"`
	Strict     bool             `json:"strict"`
	Direction  domain.Direction `json:"direction"`
}

// questionView hides the expected answer.
type questionView struct {
	CardID  uuid.UUID           `json:"cardId"`
	Type    domain.QuestionType `json:"type"`
	Prompt  string              `json:"prompt"`
	Options []string            `json:"options,omitempty"`
	Shown   string              `json:"shown,omitempty"`
}

type testView struct {
	SessionID    uuid.UUID             `json:"sessionId"`
	SetID        uuid.UUID             `json:"setId"`
	SetTitle     string                `json:"setTitle"`
	Config       domain.TestConfig     `json:"config"`
	Total        int                   `json:"total"`
	CurrentIndex int                   `json:"currentIndex"`
	Score        int                   `json:"score"`
	Done         bool                  `json:"done"`
	Question     *questionView         `json:"question,omitempty"`
	Answers      []domain.AnswerRecord `json:"answers,omitempty"`
}

type answerResponse struct {
	Session testView          `json:"session"`
	Result  quiz.AnswerResult `json:"result"`
}

func toTestView(s *domain.TestSession) testView {
	v := testView{
		SessionID:    s.ID,
		SetID:        s.Set.ID,
		SetTitle:     s.Set.Title,
		Config:       s.Config,
		Total:        len(s.Questions),
		CurrentIndex: s.CurrentIndex,
		Score:        s.Score,
		Done:         s.Done(),
	}
	if q, ok := s.Current(); ok {
		v.Question = &questionView{
			CardID:  q.CardID,
			Type:    q.Type,
			Prompt:  q.Prompt,
			Options: q.Options,
			Shown:   q.Shown,
		}
	}
	// Graded answers reveal the expected text, so they are only listed at the end.
	if v.Done {
		v.Answers = s.Answers
	}
	return v
}

// Start handles POST /sets/{id}/test.
func (h *TestHandler) Start(w http.ResponseWriter, r *http.Request) {
	setID, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req startTestRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Scope == "" {
		req.Scope = domain.ScopeAll
	}

	session, err := h.svc.StartTest(r.Context(), quiz.StartTestInput{
		SetID: setID,
		Scope: req.Scope,
		Count: req.Count,
		Config: domain.TestConfig{
			UseTF:      req.UseTF,
			UseMC:      req.UseMC,
			UseWritten: req.UseWritten,
			Strict:     req.Strict,
			Direction:  req.Direction,
		},
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.sessions.Put(r.Context(), session.ID, session); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTestView(session))
}

// Get handles GET /test/{sessionID}.
func (h *TestHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toTestView(session))
}

// Answer handles POST /test/{sessionID}/answer.
func (h *TestHandler) Answer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "sessionID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var resp domain.Response
	if err := decodeJSON(w, r, &resp); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	session, result, err := h.svc.SubmitAnswer(r.Context(), quiz.SubmitAnswerInput{Session: session, Response: resp})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if err := h.sessions.Put(r.Context(), session.ID, session); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answerResponse{Session: toTestView(session), Result: result})
}
