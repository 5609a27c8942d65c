package service

import (
	"context"
	"testing"

	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/platform/store"
	"herdbook/internal/services/catalog/domain"
	"herdbook/internal/services/catalog/repo"
)

type stubQueryer struct{}

func (stubQueryer) Exec(context.Context, string, ...any) (store.CommandTag, error) { return nil, nil }
func (stubQueryer) Query(context.Context, string, ...any) (store.Rows, error)      { return nil, nil }
func (stubQueryer) QueryRow(context.Context, string, ...any) store.Row             { return nil }

type stubDB struct{ stubQueryer }

func (s stubDB) Tx(_ context.Context, fn func(q store.RowQuerier) error) error {
	return fn(s.stubQueryer)
}

type fakeRepo struct{ rows []domain.QuestionView }

func (f fakeRepo) QuestionsFor(context.Context, int64, int64) ([]domain.QuestionView, error) {
	return f.rows, nil
}

func (f fakeRepo) QuestionsForCategory(
	context.Context, int64, int64, int64,
) ([]domain.QuestionView, error) {
	return f.rows, nil
}

func newTestSvc(rows []domain.QuestionView) *Svc {
	binder := repokit.BindFunc[repo.Repo](func(repokit.Queryer) repo.Repo { return fakeRepo{rows: rows} })
	return New(stubDB{}, binder)
}

func TestQuestions_EmptyResultIsNotFound(t *testing.T) {
	s := newTestSvc(nil)

	_, err := s.Questions(context.Background(), domain.QuestionsInput{SpeciesID: 1, LanguageID: 2})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestQuestions_CategoryScopedDelegation(t *testing.T) {
	rows := []domain.QuestionView{{ID: 7, Question: "m"}}
	s := newTestSvc(rows)

	cat := int64(4)
	got, err := s.Questions(context.Background(), domain.QuestionsInput{
		SpeciesID: 1, LanguageID: 2, CategoryID: &cat,
	})
	if err != nil {
		t.Fatalf("Questions: %v", err)
	}
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("unexpected rows: %+v", got)
	}
}
