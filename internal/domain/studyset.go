package domain

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// MinCards is the smallest number of cards a set may hold.
const MinCards = 2

// TestHistoryLimit caps TestStat.History; the oldest result is evicted first.
const TestHistoryLimit = 5

// SRSRecord is the spaced-repetition schedule of one card.
// Interval is in days (0 = not yet scheduled); DueDate is epoch milliseconds.
type SRSRecord struct {
	Interval int     `json:"interval"`
	Stage    int     `json:"stage"`
	Ease     float64 `json:"ease,omitempty"`
	DueDate  int64   `json:"dueDate"`
}

// IsDue reports whether the record's due date lies strictly before now.
func (r SRSRecord) IsDue(now time.Time) bool {
	return r.DueDate < now.UnixMilli()
}

// TestStat accumulates test-mode results for one card.
type TestStat struct {
	TotalAttempts   int    `json:"totalAttempts"`
	CorrectAttempts int    `json:"correctAttempts"`
	History         []bool `json:"history"`
}

// Record counts an attempt and pushes it into the bounded history.
func (t *TestStat) Record(correct bool) {
	t.TotalAttempts++
	if correct {
		t.CorrectAttempts++
	}
	t.History = append(t.History, correct)
	if over := len(t.History) - TestHistoryLimit; over > 0 {
		t.History = append([]bool(nil), t.History[over:]...)
	}
}

// HistoryEntry is an append-only record of one grading event.
type HistoryEntry struct {
	CardID    uuid.UUID `json:"cardId"`
	Result    Result    `json:"result"`
	Mode      Mode      `json:"mode"`
	Timestamp int64     `json:"ts"`
}

// Progress holds all per-card study state of a set.
type Progress struct {
	Learn     map[uuid.UUID]LearnStatus `json:"learn"`
	SRS       map[uuid.UUID]SRSRecord   `json:"srs"`
	TestStats map[uuid.UUID]TestStat    `json:"testStats"`
	History   []HistoryEntry            `json:"history"`
}

// StudySet is a titled, ordered deck of cards plus its study progress.
// Progress entries whose card no longer exists are kept as-is.
type StudySet struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Cards       []Card    `json:"cards"`
	Progress    Progress  `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Normalize lazily initializes missing progress maps and assigns
// deterministic IDs to cards stored without one. Safe to call repeatedly.
func (s *StudySet) Normalize() {
	if s.Progress.Learn == nil {
		s.Progress.Learn = make(map[uuid.UUID]LearnStatus)
	}
	if s.Progress.SRS == nil {
		s.Progress.SRS = make(map[uuid.UUID]SRSRecord)
	}
	if s.Progress.TestStats == nil {
		s.Progress.TestStats = make(map[uuid.UUID]TestStat)
	}
	if s.Progress.History == nil {
		s.Progress.History = []HistoryEntry{}
	}
	if s.Cards == nil {
		s.Cards = []Card{}
	}
	for i := range s.Cards {
		if s.Cards[i].ID == uuid.Nil {
			s.Cards[i].ID = LegacyCardID(s.ID, i)
		}
	}
}

// Clone returns a deep copy so that sessions can mutate their own set.
func (s StudySet) Clone() StudySet {
	out := s
	out.Cards = slices.Clone(s.Cards)
	out.Progress.Learn = maps.Clone(s.Progress.Learn)
	out.Progress.SRS = maps.Clone(s.Progress.SRS)
	out.Progress.History = slices.Clone(s.Progress.History)
	if s.Progress.TestStats != nil {
		out.Progress.TestStats = make(map[uuid.UUID]TestStat, len(s.Progress.TestStats))
		for id, st := range s.Progress.TestStats {
			st.History = slices.Clone(st.History)
			out.Progress.TestStats[id] = st
		}
	}
	return out
}

// Card returns the card with the given ID.
func (s *StudySet) Card(id uuid.UUID) (Card, bool) {
	if i := s.CardIndex(id); i >= 0 {
		return s.Cards[i], true
	}
	return Card{}, false
}

// CardIndex returns the display position of the card, or -1.
func (s *StudySet) CardIndex(id uuid.UUID) int {
	return slices.IndexFunc(s.Cards, func(c Card) bool { return c.ID == id })
}

// CardIDs returns the card IDs in display order.
func (s *StudySet) CardIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Cards))
	for i, c := range s.Cards {
		ids[i] = c.ID
	}
	return ids
}

// Status returns the learn status of a card; cards with no status are new.
func (s *StudySet) Status(id uuid.UUID) LearnStatus {
	if st, ok := s.Progress.Learn[id]; ok && st.IsValid() {
		return st
	}
	return LearnStatusNew
}

// Snapshot returns a patch that overwrites every progress field with the set's current state.
func (s *StudySet) Snapshot() ProgressPatch {
	c := s.Clone()
	c.Normalize()
	return ProgressPatch{
		Learn:     c.Progress.Learn,
		SRS:       c.Progress.SRS,
		TestStats: c.Progress.TestStats,
		History:   c.Progress.History,
	}
}

// ProgressPatch is a partial progress update. A nil field is left untouched.
type ProgressPatch struct {
	Learn     map[uuid.UUID]LearnStatus
	SRS       map[uuid.UUID]SRSRecord
	TestStats map[uuid.UUID]TestStat
	History   []HistoryEntry
}

// IsEmpty reports whether the patch would change nothing.
func (p ProgressPatch) IsEmpty() bool {
	return p.Learn == nil && p.SRS == nil && p.TestStats == nil && p.History == nil
}

// Apply writes the non-nil fields of the patch into the set.
func (p ProgressPatch) Apply(s *StudySet) {
	if p.Learn != nil {
		s.Progress.Learn = p.Learn
	}
	if p.SRS != nil {
		s.Progress.SRS = p.SRS
	}
	if p.TestStats != nil {
		s.Progress.TestStats = p.TestStats
	}
	if p.History != nil {
		s.Progress.History = p.History
	}
}

// ProgressChange is the effect of one grading event on a single card.
// Applying it merges into the progress the set holds at that moment.
type ProgressChange struct {
	CardID uuid.UUID
	// Status is the new learn status; empty leaves it unchanged.
	Status LearnStatus
	// SRS replaces the card's schedule when set.
	SRS *SRSRecord
	// Attempt is a test result to count into the card's TestStat.
	Attempt *bool
	Entry   HistoryEntry
}

// IsEmpty reports whether the change names no card.
func (c ProgressChange) IsEmpty() bool {
	return c.CardID == uuid.Nil
}

// Apply merges the change into the set's progress and appends its history entry.
func (c ProgressChange) Apply(s *StudySet) {
	s.Normalize()

	if c.Status != "" {
		s.Progress.Learn[c.CardID] = c.Status
	}
	if c.SRS != nil {
		s.Progress.SRS[c.CardID] = *c.SRS
	}
	if c.Attempt != nil {
		st := s.Progress.TestStats[c.CardID]
		st.Record(*c.Attempt)
		s.Progress.TestStats[c.CardID] = st
	}
	s.Progress.History = append(s.Progress.History, c.Entry)
}

// Patch returns the progress columns of s that the change touches.
// Call it after Apply.
func (c ProgressChange) Patch(s *StudySet) ProgressPatch {
	p := ProgressPatch{History: s.Progress.History}
	if c.Status != "" {
		p.Learn = s.Progress.Learn
	}
	if c.SRS != nil {
		p.SRS = s.Progress.SRS
	}
	if c.Attempt != nil {
		p.TestStats = s.Progress.TestStats
	}
	return p
}
