package domain

import (
	"strconv"

	"github.com/google/uuid"
)

// Card is a single term/definition pair. ID is stable across edits and reorders;
// all progress maps of a set are keyed by it.
type Card struct {
	ID         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
}

// Side returns the text of the card shown for the given direction:
// the prompt side when answer is false, the answer side otherwise.
func (c Card) Side(dir Direction, answer bool) string {
	termFirst := dir != DirectionDefToTerm
	if termFirst != answer {
		return c.Term
	}
	return c.Definition
}

// LegacyCardID derives a deterministic ID for a card stored without one.
// The same set ID and position always yield the same card ID.
func LegacyCardID(setID uuid.UUID, position int) uuid.UUID {
	return uuid.NewSHA1(setID, []byte("card:"+strconv.Itoa(position)))
}

// CardInput is the user-supplied content of a card.
type CardInput struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Term       string     `json:"term"`
	Definition string     `json:"definition"`
}

// IsBlank reports whether both sides are empty after trimming.
func (c CardInput) IsBlank() bool {
	return CleanText(c.Term) == "" && CleanText(c.Definition) == ""
}
