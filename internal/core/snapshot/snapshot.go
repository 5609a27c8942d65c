// Package snapshot builds grouped answer views from a dense catalog question
// list and a sparse set of answer rows belonging to one batch
package snapshot

import (
	"strings"
	"time"

	ptime "herdbook/internal/platform/time"
)

// DefaultGroup labels questions whose category or subcategory has no
// localized display name
const DefaultGroup = "Uncategorized"

// Question is one applicable catalog question with localized metadata
// Category and SubCategory carry the localized display names when resolved
type Question struct {
	QuestionID    int64
	Question      string
	Localized     string
	FormType      string
	FormTypeLocal *string
	Validation    string
	ConstantValue string
	Tag           string
	Unit          string
	Hint          *string
	Category      string
	SubCategory   string
	Sequence      int
}

// Answer is one stored answer row from the anchor batch
type Answer struct {
	QuestionID int64
	Value      string
	CreatedAt  time.Time
}

// Entry is the merged view of a question and its (possibly absent) answer
type Entry struct {
	QuestionID    int64     `json:"question_id"`
	Question      string    `json:"question"`
	Localized     string    `json:"localized_question"`
	FormType      string    `json:"form_type"`
	FormTypeLocal *string   `json:"localized_form_type,omitempty"`
	Validation    string    `json:"validation_rule"`
	ConstantValue string    `json:"constant_value"`
	Tag           string    `json:"tag"`
	Unit          string    `json:"unit"`
	Hint          *string   `json:"hint,omitempty"`
	Answer        *string   `json:"answer"`
	AnsweredAt    *time.Time `json:"answered_at"`
}

// Grouped is localized category name -> localized subcategory name -> entries
type Grouped map[string]map[string][]Entry

// Group left-joins answers onto the dense question list and nests the result
// two levels deep, defaulting unresolved labels to DefaultGroup
// questions with no answer in the batch render with a nil Answer; categories
// with zero applicable questions simply never appear as keys
func Group(questions []Question, answers []Answer) Grouped {
	byQuestion := make(map[int64]Answer, len(answers))
	for _, a := range answers {
		byQuestion[a.QuestionID] = a
	}

	out := make(Grouped)
	for _, q := range questions {
		cat := q.Category
		if cat == "" {
			cat = DefaultGroup
		}
		sub := q.SubCategory
		if sub == "" {
			sub = DefaultGroup
		}

		e := Entry{
			QuestionID:    q.QuestionID,
			Question:      q.Question,
			Localized:     q.Localized,
			FormType:      q.FormType,
			FormTypeLocal: q.FormTypeLocal,
			Validation:    q.Validation,
			ConstantValue: q.ConstantValue,
			Tag:           q.Tag,
			Unit:          q.Unit,
			Hint:          q.Hint,
		}
		if a, ok := byQuestion[q.QuestionID]; ok {
			v := a.Value
			e.Answer = &v
			// a zero timestamp renders as no timestamp
			e.AnsweredAt = ptime.Ptr(a.CreatedAt)
		}

		if out[cat] == nil {
			out[cat] = make(map[string][]Entry)
		}
		out[cat][sub] = append(out[cat][sub], e)
	}
	return out
}

// NormalizeKey lowers a localized label and replaces spaces with underscores
// used as the flat group key for previous heat cycles
func NormalizeKey(label string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(label)), " ", "_")
}

// HeatRow is one date-of-heat answer row used for anchor selection
type HeatRow struct {
	BatchID string
	Value   string
}

// MaxHeatValue returns the lexicographically greatest date-of-heat value
// ISO dates compare correctly as strings, which is what the anchor relies on
func MaxHeatValue(rows []HeatRow) string {
	max := ""
	for _, r := range rows {
		if r.Value > max {
			max = r.Value
		}
	}
	return max
}

// CurrentHeatBatches returns the batch ids whose date-of-heat answer equals
// the maximum value; those batches form the current estrus cycle
func CurrentHeatBatches(rows []HeatRow) []string {
	max := MaxHeatValue(rows)
	if max == "" {
		return nil
	}
	seen := make(map[string]bool, len(rows))
	var out []string
	for _, r := range rows {
		if r.Value == max && !seen[r.BatchID] {
			seen[r.BatchID] = true
			out = append(out, r.BatchID)
		}
	}
	return out
}

// PreviousRow is one tagged answer row from a non-current heat cycle
type PreviousRow struct {
	Category string
	Value    string
}

// GroupPrevious flattens prior-cycle rows into normalized category buckets
// ordered by answer value descending inside each bucket
func GroupPrevious(rows []PreviousRow) map[string][]string {
	out := make(map[string][]string)
	for _, r := range rows {
		key := NormalizeKey(r.Category)
		if key == "" {
			key = NormalizeKey(DefaultGroup)
		}
		out[key] = append(out[key], r.Value)
	}
	for _, vs := range out {
		// descending by value; ISO dates order newest first
		for i := 1; i < len(vs); i++ {
			for j := i; j > 0 && vs[j] > vs[j-1]; j-- {
				vs[j], vs[j-1] = vs[j-1], vs[j]
			}
		}
	}
	return out
}
