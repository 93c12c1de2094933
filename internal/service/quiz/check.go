package quiz

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// Check grades a response with the default lenient distance.
func Check(q domain.Question, resp domain.Response, strict bool) bool {
	return checkWithin(q, resp, strict, DefaultMaxDistance)
}

func checkWithin(q domain.Question, resp domain.Response, strict bool, maxDistance int) bool {
	switch q.Type {
	case domain.QuestionMultipleChoice:
		return resp.Option != "" && resp.Option == q.Answer
	case domain.QuestionTrueFalse:
		return resp.Truth != nil && *resp.Truth == q.IsTrue
	case domain.QuestionWritten:
		return MatchWritten(resp.Text, q.Answer, strict, maxDistance)
	default:
		return false
	}
}

// given renders the part of the response that applies to the question type.
func given(q domain.Question, resp domain.Response) string {
	switch q.Type {
	case domain.QuestionMultipleChoice:
		return resp.Option
	case domain.QuestionTrueFalse:
		if resp.Truth == nil {
			return ""
		}
		return strconv.FormatBool(*resp.Truth)
	default:
		return resp.Text
	}
}

// expected renders the correct response for the question.
func expected(q domain.Question) string {
	if q.Type == domain.QuestionTrueFalse {
		return strconv.FormatBool(q.IsTrue)
	}
	return q.Answer
}

// RecordAnswer stores one test result for a card: a test history entry,
// the attempt counters and bounded result history, and on a wrong answer
// the card goes back to review. The returned change repeats it for the store.
func RecordAnswer(set *domain.StudySet, cardID uuid.UUID, correct bool, now time.Time) domain.ProgressChange {
	change := domain.ProgressChange{
		CardID:  cardID,
		Attempt: &correct,
		Entry: domain.HistoryEntry{
			CardID:    cardID,
			Result:    domain.ResultOf(correct),
			Mode:      domain.ModeTest,
			Timestamp: now.UnixMilli(),
		},
	}
	if !correct {
		change.Status = domain.LearnStatusReview
	}
	change.Apply(set)
	return change
}
