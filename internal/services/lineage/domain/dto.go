package domain

// MotherInput selects one mother animal
type MotherInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	MotherNumber string `json:"mother_number" validate:"required,min=1,max=64" example:"IN-4412"`
}

// MapInput links a calf to its mother for one delivery
type MapInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	DeliveryDate string `json:"delivery_date" validate:"required,datetime=2006-01-02" example:"2026-01-05"`
	MotherNumber string `json:"mother_number" validate:"required,min=1,max=64" example:"IN-4412"`
	CalfNumber   string `json:"calf_number" validate:"required,min=1,max=64" example:"IN-5523"`
}

// HistoryInput selects one animal's breeding history
type HistoryInput struct {
	SpeciesID    int64  `json:"species_id" validate:"required,gt=0" example:"1"`
	AnimalNumber string `json:"animal_number" validate:"required,min=1,max=64" example:"IN-4412"`
}
