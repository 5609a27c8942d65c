// Package domain defines the types and contracts for the question catalog
package domain

// QuestionView is one applicable question with localized text and metadata
// Category and SubCategory hold localized display names when a translation
// resolves for the requested language, empty otherwise
type QuestionView struct {
	ID            int64   `json:"question_id"`
	Question      string  `json:"question"`
	Localized     string  `json:"localized_question"`
	FormType      string  `json:"form_type"`
	FormTypeLocal *string `json:"localized_form_type,omitempty"`
	Validation    string  `json:"validation_rule"`
	ConstantValue string  `json:"constant_value"`
	Tag           string  `json:"tag"`
	Unit          string  `json:"unit"`
	Hint          *string `json:"hint,omitempty"`
	CategoryID    int64   `json:"category_id"`
	Category      string  `json:"category"`
	SubCategory   string  `json:"sub_category"`
	Sequence      int     `json:"sequence_number"`
}
