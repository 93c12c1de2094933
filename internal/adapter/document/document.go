// Package document converts study sets to and from the JSON columns shared by
// every store adapter.
package document

import (
	"encoding/json"
	"fmt"

	"github.com/one393143/quizlet/internal/domain"
)

// Progress column names, in the order they are written.
const (
	ColumnLearn     = "learn"
	ColumnSRS       = "srs"
	ColumnTestStats = "test_stats"
	ColumnHistory   = "history"
)

// Columns holds the JSON-encoded parts of a stored set.
type Columns struct {
	Cards     []byte
	Learn     []byte
	SRS       []byte
	TestStats []byte
	History   []byte
}

// PatchColumn is one progress column to overwrite.
type PatchColumn struct {
	Name  string
	Value []byte
}

// Encode marshals the cards and every progress field of set.
func Encode(set *domain.StudySet) (Columns, error) {
	cards, err := EncodeCards(set.Cards)
	if err != nil {
		return Columns{}, err
	}

	c := Columns{Cards: cards}
	cols, err := EncodePatch(set.Snapshot())
	if err != nil {
		return Columns{}, err
	}
	for _, col := range cols {
		switch col.Name {
		case ColumnLearn:
			c.Learn = col.Value
		case ColumnSRS:
			c.SRS = col.Value
		case ColumnTestStats:
			c.TestStats = col.Value
		case ColumnHistory:
			c.History = col.Value
		}
	}
	return c, nil
}

// EncodeCards marshals cards; nil encodes as an empty array.
func EncodeCards(cards []domain.Card) ([]byte, error) {
	if cards == nil {
		cards = []domain.Card{}
	}
	b, err := json.Marshal(cards)
	if err != nil {
		return nil, fmt.Errorf("encode cards: %w", err)
	}
	return b, nil
}

// EncodePatch marshals the non-nil fields of patch.
func EncodePatch(patch domain.ProgressPatch) ([]PatchColumn, error) {
	fields := []struct {
		name  string
		set   bool
		value any
	}{
		{ColumnLearn, patch.Learn != nil, patch.Learn},
		{ColumnSRS, patch.SRS != nil, patch.SRS},
		{ColumnTestStats, patch.TestStats != nil, patch.TestStats},
		{ColumnHistory, patch.History != nil, patch.History},
	}

	var out []PatchColumn
	for _, f := range fields {
		if !f.set {
			continue
		}
		b, err := json.Marshal(f.value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.name, err)
		}
		out = append(out, PatchColumn{Name: f.name, Value: b})
	}
	return out, nil
}

// Decode fills the cards and progress of set from c and normalizes it.
// Empty or null columns decode to empty values.
func Decode(set *domain.StudySet, c Columns) error {
	parts := []struct {
		name string
		raw  []byte
		dst  any
	}{
		{"cards", c.Cards, &set.Cards},
		{ColumnLearn, c.Learn, &set.Progress.Learn},
		{ColumnSRS, c.SRS, &set.Progress.SRS},
		{ColumnTestStats, c.TestStats, &set.Progress.TestStats},
		{ColumnHistory, c.History, &set.Progress.History},
	}
	for _, p := range parts {
		if len(p.raw) == 0 || string(p.raw) == "null" {
			continue
		}
		if err := json.Unmarshal(p.raw, p.dst); err != nil {
			return fmt.Errorf("decode %s: %w", p.name, err)
		}
	}
	set.Normalize()
	return nil
}
