package domain

import "context"

// ReaderPort resolves applicable questions for a species and language
// other modules consume this port to build answer snapshots
type ReaderPort interface {
	QuestionsFor(ctx context.Context, speciesID, languageID int64) ([]QuestionView, error)
	QuestionsForCategory(ctx context.Context, speciesID, languageID, categoryID int64) ([]QuestionView, error)
}

// ServicePort is the http-facing contract of the catalog module
type ServicePort interface {
	Questions(ctx context.Context, in QuestionsInput) ([]QuestionView, error)
}
