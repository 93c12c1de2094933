package study

// GradeResult is returned after grading one card of a learn session.
type GradeResult struct {
	Outcome        GradeOutcome `json:"outcome"`
	Done           bool         `json:"done"`
	Remaining      int          `json:"remaining"`
	Mastered       int          `json:"mastered"`
	Total          int          `json:"total"`
	MasteryPercent int          `json:"masteryPercent"`
}
