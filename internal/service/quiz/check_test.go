package quiz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/one393143/quizlet/internal/domain"
	"github.com/one393143/quizlet/internal/service/study"
)

func ptr[T any](v T) *T { return &v }

func TestCheck(t *testing.T) {
	t.Parallel()

	mc := domain.Question{Type: domain.QuestionMultipleChoice, Answer: "Paris", Options: []string{"Rome", "Paris"}}
	tfTrue := domain.Question{Type: domain.QuestionTrueFalse, Answer: "Paris", Shown: "Paris", IsTrue: true}
	tfFalse := domain.Question{Type: domain.QuestionTrueFalse, Answer: "Paris", Shown: "Rome", IsTrue: false}
	written := domain.Question{Type: domain.QuestionWritten, Answer: "Paris"}

	tests := []struct {
		name   string
		q      domain.Question
		resp   domain.Response
		strict bool
		want   bool
	}{
		{name: "mc correct", q: mc, resp: domain.Response{Option: "Paris"}, want: true},
		{name: "mc wrong", q: mc, resp: domain.Response{Option: "Rome"}, want: false},
		{name: "mc is exact", q: mc, resp: domain.Response{Option: "paris"}, want: false},
		{name: "mc empty", q: mc, resp: domain.Response{}, want: false},
		{name: "tf true answered true", q: tfTrue, resp: domain.Response{Truth: ptr(true)}, want: true},
		{name: "tf true answered false", q: tfTrue, resp: domain.Response{Truth: ptr(false)}, want: false},
		{name: "tf false answered false", q: tfFalse, resp: domain.Response{Truth: ptr(false)}, want: true},
		{name: "tf unanswered", q: tfFalse, resp: domain.Response{}, want: false},
		{name: "written lenient", q: written, resp: domain.Response{Text: "pariss"}, want: true},
		{name: "written strict", q: written, resp: domain.Response{Text: "pariss"}, strict: true, want: false},
		{name: "written blank", q: written, resp: domain.Response{Text: "  "}, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Check(tt.q, tt.resp, tt.strict))
		})
	}
}

func TestRecordAnswer_RingOfFive(t *testing.T) {
	t.Parallel()

	set := capitals()
	id := set.Cards[0].ID
	now := time.UnixMilli(1_700_000_000_000)

	results := []bool{false, true, true, false, true, true, false}
	for i, r := range results {
		RecordAnswer(set, id, r, now.Add(time.Duration(i)*time.Second))
	}

	st := set.Progress.TestStats[id]
	assert.Equal(t, 7, st.TotalAttempts)
	assert.Equal(t, 4, st.CorrectAttempts)
	assert.Equal(t, []bool{true, false, true, true, false}, st.History)

	require.Len(t, set.Progress.History, 7)
	last := set.Progress.History[6]
	assert.Equal(t, domain.ModeTest, last.Mode)
	assert.Equal(t, domain.ResultWrong, last.Result)
	assert.Equal(t, now.Add(6*time.Second).UnixMilli(), last.Timestamp)
}

func TestRecordAnswer_CorrectKeepsStatus(t *testing.T) {
	t.Parallel()

	set := capitals()
	id := set.Cards[1].ID
	set.Progress.Learn[id] = domain.LearnStatusMastered

	RecordAnswer(set, id, true, time.Now())

	assert.Equal(t, domain.LearnStatusMastered, set.Progress.Learn[id])
}

func TestRecordAnswer_WrongFeedsLearnMissed(t *testing.T) {
	t.Parallel()

	set := capitals()
	for _, id := range set.CardIDs() {
		set.Progress.Learn[id] = domain.LearnStatusMastered
	}
	k := set.Cards[2].ID

	RecordAnswer(set, k, false, time.Now())

	assert.Equal(t, domain.LearnStatusReview, set.Progress.Learn[k])
	session := study.NewLearnSession(*set, domain.ScopeMissed)
	assert.Contains(t, session.Queue, k)
	assert.Len(t, session.Queue, 1)
}
