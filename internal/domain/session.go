package domain

import (
	"time"

	"github.com/google/uuid"
)

// LearnSession is a single pass through a queue of cards in learn mode.
// The session owns its copy of the set; grading mutates that copy.
type LearnSession struct {
	ID        uuid.UUID   `json:"id"`
	Set       StudySet    `json:"set"`
	Scope     Scope       `json:"scope"`
	Queue     []uuid.UUID `json:"queue"`
	Position  int         `json:"position"`
	StartedAt time.Time   `json:"startedAt"`
}

// Done reports whether the cursor has reached the end of the (possibly grown) queue.
func (s *LearnSession) Done() bool {
	return s.Position >= len(s.Queue)
}

// Current returns the card under the cursor.
// A queued ID whose card was deleted yields ok=false.
func (s *LearnSession) Current() (Card, bool) {
	if s.Done() {
		return Card{}, false
	}
	return s.Set.Card(s.Queue[s.Position])
}

// Remaining is the number of queue entries not yet graded.
func (s *LearnSession) Remaining() int {
	if s.Done() {
		return 0
	}
	return len(s.Queue) - s.Position
}

// TestConfig selects the question types and direction of a test.
type TestConfig struct {
	UseTF      bool      `json:"useTF"`
	UseMC      bool      `json:"useMC"`
	UseWritten bool      `json:"useWritten"`
	Strict     bool      `json:"strict"`
	Direction  Direction `json:"direction"`
}

// EnabledTypes returns the enabled question types in a fixed order.
func (c TestConfig) EnabledTypes() []QuestionType {
	var out []QuestionType
	if c.UseTF {
		out = append(out, QuestionTrueFalse)
	}
	if c.UseMC {
		out = append(out, QuestionMultipleChoice)
	}
	if c.UseWritten {
		out = append(out, QuestionWritten)
	}
	return out
}

// Question is one generated test item.
// For true/false, Shown is the answer-side text displayed next to the prompt
// and IsTrue tells whether it belongs to the prompted card.
type Question struct {
	CardID  uuid.UUID    `json:"cardId"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"prompt"`
	Answer  string       `json:"answer"`
	Options []string     `json:"options,omitempty"`
	Shown   string       `json:"shown,omitempty"`
	IsTrue  bool         `json:"isTrue,omitempty"`
}

// Response is a user's answer. Only the field matching the question type is read.
type Response struct {
	Option string `json:"option,omitempty"`
	Truth  *bool  `json:"truth,omitempty"`
	Text   string `json:"text,omitempty"`
}

// AnswerRecord is the graded answer to one question.
type AnswerRecord struct {
	CardID   uuid.UUID    `json:"cardId"`
	Type     QuestionType `json:"type"`
	Correct  bool         `json:"correct"`
	Given    string       `json:"given"`
	Expected string       `json:"expected"`
}

// TestSession is one generated test and its progress.
type TestSession struct {
	ID           uuid.UUID      `json:"id"`
	Set          StudySet       `json:"set"`
	Config       TestConfig     `json:"config"`
	Questions    []Question     `json:"questions"`
	CurrentIndex int            `json:"currentIndex"`
	Score        int            `json:"score"`
	Answers      []AnswerRecord `json:"answers"`
	StartedAt    time.Time      `json:"startedAt"`
}

// Done reports whether every question has been answered.
func (s *TestSession) Done() bool {
	return s.CurrentIndex >= len(s.Questions)
}

// Current returns the question under the cursor.
func (s *TestSession) Current() (Question, bool) {
	if s.Done() {
		return Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}
