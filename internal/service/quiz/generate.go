package quiz

import (
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/one393143/quizlet/internal/domain"
)

// MaxDistractors is the number of wrong options offered in a multiple-choice question.
const MaxDistractors = 3

// Generate builds up to count questions from ids, in random order.
//
// The question count is never inflated: with fewer ids than count, every id
// gets exactly one question. IDs without a card in the set are skipped.
// Multiple-choice distractors come from the whole deck, not only from ids.
func Generate(rng *rand.Rand, set *domain.StudySet, ids []uuid.UUID, count int, cfg domain.TestConfig) ([]domain.Question, error) {
	types := cfg.EnabledTypes()
	if len(types) == 0 {
		return nil, domain.NewValidationError("config", "at least one question type must be enabled")
	}
	if count <= 0 {
		return nil, domain.NewValidationError("count", "must be positive")
	}

	pool := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if set.CardIndex(id) >= 0 {
			pool = append(pool, id)
		}
	}
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	pool = pool[:min(count, len(pool))]

	questions := make([]domain.Question, 0, len(pool))
	for _, id := range pool {
		card, _ := set.Card(id)
		q := domain.Question{
			CardID: id,
			Type:   types[rng.IntN(len(types))],
			Prompt: card.Side(cfg.Direction, false),
			Answer: card.Side(cfg.Direction, true),
		}

		switch q.Type {
		case domain.QuestionMultipleChoice:
			q.Options = multipleChoice(rng, set, card, q.Answer, cfg.Direction)
		case domain.QuestionTrueFalse:
			q.Shown, q.IsTrue = trueFalse(rng, set, card, q.Answer, cfg.Direction)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// distinctOthers returns the answer-side texts of every other card that
// differ from answer, without duplicates, in deck order.
func distinctOthers(set *domain.StudySet, card domain.Card, answer string, dir domain.Direction) []string {
	var out []string
	for _, c := range set.Cards {
		if c.ID == card.ID {
			continue
		}
		text := c.Side(dir, true)
		if text == answer || slices.Contains(out, text) {
			continue
		}
		out = append(out, text)
	}
	return out
}

func multipleChoice(rng *rand.Rand, set *domain.StudySet, card domain.Card, answer string, dir domain.Direction) []string {
	others := distinctOthers(set, card, answer, dir)
	rng.Shuffle(len(others), func(i, j int) { others[i], others[j] = others[j], others[i] })

	options := slices.Clone(others[:min(MaxDistractors, len(others))])
	options = append(options, answer)
	rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })
	return options
}

// trueFalse picks the text shown next to the prompt. When no distinct
// other text exists the pairing is always true.
func trueFalse(rng *rand.Rand, set *domain.StudySet, card domain.Card, answer string, dir domain.Direction) (string, bool) {
	if rng.IntN(2) == 0 {
		return answer, true
	}
	others := distinctOthers(set, card, answer, dir)
	if len(others) == 0 {
		return answer, true
	}
	return others[rng.IntN(len(others))], false
}
