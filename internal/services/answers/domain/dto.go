package domain

// AnswerIn is one submitted answer
type AnswerIn struct {
	QuestionID int64  `json:"question_id" validate:"required,gt=0" example:"42"`
	Value      string `json:"value" validate:"max=2000" example:"2026-02-14"`
}

// CreateInput registers a new animal's full answer set
// Date optionally backdates the batch (ISO date); default is the call moment
type CreateInput struct {
	SpeciesID    int64      `json:"species_id" validate:"required,gt=0" example:"1"`
	AnimalNumber string     `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
	Answers      []AnswerIn `json:"answers" validate:"required,min=1,dive"`
	Date         *string    `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-30"`
}

// GroupedInput selects the current snapshot for one animal
type GroupedInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	LanguageID   int64  `json:"language_id" validate:"required,gt=0" example:"2"`
	AnimalNumber string `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
	CategoryID   *int64 `json:"category_id,omitempty" validate:"omitempty,gt=0" example:"4"`
}

// ReplaceInput rewrites one category's answers for one day (default today)
type ReplaceInput struct {
	SpeciesID    int64      `json:"species_id" validate:"required,gt=0" example:"1"`
	AnimalNumber string     `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
	CategoryID   int64      `json:"category_id" validate:"required,gt=0" example:"4"`
	Answers      []AnswerIn `json:"answers" validate:"required,min=1,dive"`
	Date         *string    `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2026-01-30"`
}

// HeatInput selects heat-event views for one animal
type HeatInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	LanguageID   int64  `json:"language_id" validate:"required,gt=0" example:"2"`
	AnimalNumber string `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
}

// ReplaceHeatInput records a heat event with three-way replace precedence
type ReplaceHeatInput struct {
	SpeciesID    int64      `json:"species_id" validate:"required,gt=0" example:"1"`
	AnimalNumber string     `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
	Answers      []AnswerIn `json:"answers" validate:"required,min=1,dive"`
}

// GestationInput selects the derived ledger for one animal
type GestationInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	AnimalNumber string `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
}
