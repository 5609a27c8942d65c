package domain

// QuestionsInput selects the questionnaire for one species in one language
type QuestionsInput struct {
	SpeciesID  int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	LanguageID int64  `json:"language_id" validate:"required,gt=0" example:"2"`
	CategoryID *int64 `json:"category_id,omitempty" validate:"omitempty,gt=0" example:"4"`
}
