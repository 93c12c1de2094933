package domain

// LearnStatus is the per-card learn state. A card with no recorded status is new.
type LearnStatus string

const (
	LearnStatusNew      LearnStatus = "new"
	LearnStatusReview   LearnStatus = "review"
	LearnStatusMastered LearnStatus = "mastered"
)

func (s LearnStatus) String() string { return string(s) }

func (s LearnStatus) IsValid() bool {
	switch s {
	case LearnStatusNew, LearnStatusReview, LearnStatusMastered:
		return true
	}
	return false
}

// Rank orders statuses for learn queues: review first, then new, then mastered.
func (s LearnStatus) Rank() int {
	switch s {
	case LearnStatusReview:
		return 0
	case LearnStatusMastered:
		return 2
	default:
		return 1
	}
}

// Result is the outcome of a single grading event.
type Result string

const (
	ResultCorrect Result = "correct"
	ResultWrong   Result = "wrong"
)

func (r Result) String() string { return string(r) }

// ResultOf converts a boolean outcome into a Result.
func ResultOf(correct bool) Result {
	if correct {
		return ResultCorrect
	}
	return ResultWrong
}

// Mode identifies which study mode produced a history entry.
type Mode string

const (
	ModeLearn Mode = "learn"
	ModeTest  Mode = "test"
)

func (m Mode) String() string { return string(m) }

// Scope selects which cards of a set a session draws from.
type Scope string

const (
	ScopeAll    Scope = "all"
	ScopeMissed Scope = "missed"
)

func (s Scope) String() string { return string(s) }

func (s Scope) IsValid() bool {
	switch s {
	case ScopeAll, ScopeMissed:
		return true
	}
	return false
}

// QuestionType is the kind of a generated test question.
type QuestionType string

const (
	QuestionTrueFalse      QuestionType = "tf"
	QuestionMultipleChoice QuestionType = "mc"
	QuestionWritten        QuestionType = "written"
)

func (q QuestionType) String() string { return string(q) }

func (q QuestionType) IsValid() bool {
	switch q {
	case QuestionTrueFalse, QuestionMultipleChoice, QuestionWritten:
		return true
	}
	return false
}

// Direction decides which side of a card is the prompt.
type Direction string

const (
	DirectionTermToDef Direction = "term_to_def"
	DirectionDefToTerm Direction = "def_to_term"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionTermToDef, DirectionDefToTerm:
		return true
	}
	return false
}
