package quiz

import "github.com/one393143/quizlet/internal/domain"

// AnswerResult is returned after answering one question.
type AnswerResult struct {
	Answer  domain.AnswerRecord `json:"answer"`
	Done    bool                `json:"done"`
	Score   int                 `json:"score"`
	Total   int                 `json:"total"`
	Percent int                 `json:"percent"`
}
