package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestLearnSession_Cursor(t *testing.T) {
	t.Parallel()

	a, b := uuid.New(), uuid.New()
	s := LearnSession{
		Set:   StudySet{Cards: []Card{{ID: a, Term: "a"}, {ID: b, Term: "b"}}},
		Queue: []uuid.UUID{b, a},
	}

	c, ok := s.Current()
	if !ok || c.ID != b {
		t.Fatalf("expected card b first, got %v/%v", c.ID, ok)
	}
	if s.Remaining() != 2 {
		t.Fatalf("expected 2 remaining, got %d", s.Remaining())
	}

	s.Position = 2
	if !s.Done() {
		t.Fatal("expected session to be done")
	}
	if _, ok := s.Current(); ok {
		t.Fatal("Current on a finished session must return ok=false")
	}
	if s.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", s.Remaining())
	}
}

func TestTestConfig_EnabledTypes(t *testing.T) {
	t.Parallel()

	got := TestConfig{UseTF: true, UseWritten: true}.EnabledTypes()
	if len(got) != 2 || got[0] != QuestionTrueFalse || got[1] != QuestionWritten {
		t.Fatalf("unexpected types: %v", got)
	}
	if len(TestConfig{}.EnabledTypes()) != 0 {
		t.Fatal("no types expected")
	}
}

func TestTestSession_Current(t *testing.T) {
	t.Parallel()

	s := TestSession{Questions: []Question{{Type: QuestionWritten, Prompt: "p"}}}
	q, ok := s.Current()
	if !ok || q.Prompt != "p" {
		t.Fatal("expected first question")
	}
	s.CurrentIndex = 1
	if !s.Done() {
		t.Fatal("expected done")
	}
}
