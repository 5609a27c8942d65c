// Package service contains catalog workflows
package service

import (
	"context"

	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/services/catalog/domain"
	"herdbook/internal/services/catalog/repo"
)

// Service defines the service contract for the catalog
type Service interface {
	domain.ServicePort
	domain.ReaderPort
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
}

// New creates a new catalog service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo]) *Svc {
	if db == nil {
		panic("catalog.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("catalog.Service requires a non nil Repo binder")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db}
}

// Questions resolves the applicable questionnaire for the http surface
func (s *Svc) Questions(ctx context.Context, in domain.QuestionsInput) ([]domain.QuestionView, error) {
	if in.CategoryID != nil {
		return s.QuestionsForCategory(ctx, in.SpeciesID, in.LanguageID, *in.CategoryID)
	}
	return s.QuestionsFor(ctx, in.SpeciesID, in.LanguageID)
}

// QuestionsFor implements domain.ReaderPort
func (s *Svc) QuestionsFor(ctx context.Context, speciesID, languageID int64) ([]domain.QuestionView, error) {
	rows, err := s.Repo.QuestionsFor(ctx, speciesID, languageID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("no questions for species %d language %d", speciesID, languageID)
	}
	return rows, nil
}

// QuestionsForCategory implements domain.ReaderPort
func (s *Svc) QuestionsForCategory(
	ctx context.Context, speciesID, languageID, categoryID int64,
) ([]domain.QuestionView, error) {
	rows, err := s.Repo.QuestionsForCategory(ctx, speciesID, languageID, categoryID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, perr.NotFoundf("no questions for species %d category %d", speciesID, categoryID)
	}
	return rows, nil
}
