// Package service contains the answer versioning workflows
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"herdbook/internal/core/classify"
	"herdbook/internal/core/snapshot"
	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/services/answers/domain"
	"herdbook/internal/services/answers/repo"
	catdom "herdbook/internal/services/catalog/domain"
)

// seams for deterministic tests
var (
	now        = func() time.Time { return time.Now().UTC() }
	newBatchID = uuid.NewString
)

const dayFormat = "2006-01-02"

// Service defines the service contract for answers
type Service interface{ domain.ServicePort }

// Options control tag resolution and the heat-event category
type Options struct {
	// question tag names carrying the three ledger signals
	PregnancyTag string
	LactatingTag string
	EventDateTag string

	// heat events live in their own category with a designated date tag
	HeatCategoryID int64
	HeatDateTag    string
}

func (o *Options) defaults() {
	if o.PregnancyTag == "" {
		o.PregnancyTag = "pregnancy_status"
	}
	if o.LactatingTag == "" {
		o.LactatingTag = "lactating_status"
	}
	if o.EventDateTag == "" {
		o.EventDateTag = "record_date"
	}
	if o.HeatCategoryID == 0 {
		o.HeatCategoryID = 99
	}
	if o.HeatDateTag == "" {
		o.HeatDateTag = "date_of_heat"
	}
}

// Svc implements the Service interface
type Svc struct {
	Repo       repo.Repo
	binder     repokit.Binder[repo.Repo]
	db         repokit.TxRunner
	catalog    catdom.ReaderPort
	classifier *classify.Classifier
	opt        Options
}

// New creates a new answers service
func New(
	db repokit.TxRunner,
	binder repokit.Binder[repo.Repo],
	catalog catdom.ReaderPort,
	classifier *classify.Classifier,
	opt Options,
) *Svc {
	if db == nil {
		panic("answers.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("answers.Service requires a non nil Repo binder")
	}
	if catalog == nil {
		panic("answers.Service requires the catalog Reader port")
	}
	if classifier == nil {
		classifier = classify.New(classify.DefaultTerms())
	}
	opt.defaults()
	return &Svc{
		Repo:       binder.Bind(db),
		binder:     binder,
		db:         db,
		catalog:    catalog,
		classifier: classifier,
		opt:        opt,
	}
}

// rowsFrom classifies each submitted answer and shapes it for insertion
func (s *Svc) rowsFrom(answers []domain.AnswerIn) []repo.Row {
	out := make([]repo.Row, 0, len(answers))
	for _, a := range answers {
		row := repo.Row{QuestionID: a.QuestionID, Answer: a.Value}
		if tag := s.classifier.Classify(a.Value); tag != "" {
			t := tag
			row.LogicValue = &t
		}
		out = append(out, row)
	}
	return out
}

// Create registers a full answer set for a new animal number and appends
// exactly one gestation fact, all inside one transaction
// a concurrent registration of the same number trips the storage constraint
// and surfaces as a conflict
func (s *Svc) Create(ctx context.Context, owner string, in domain.CreateInput) error {
	stamp := now()
	if in.Date != nil {
		d, err := time.Parse(dayFormat, *in.Date)
		if err != nil {
			return perr.Newf(perr.ErrorCodeValidation, "invalid date %q", *in.Date)
		}
		stamp = d
	}
	batchID := newBatchID()

	ids := make([]int64, 0, len(in.Answers))
	for _, a := range in.Answers {
		ids = append(ids, a.QuestionID)
	}

	err := repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		tags, err := r.TagsForQuestions(ctx, ids)
		if err != nil {
			return err
		}

		batch := repo.Batch{
			Owner:        owner,
			SpeciesID:    in.SpeciesID,
			AnimalNumber: in.AnimalNumber,
			BatchID:      batchID,
			EntrySource:  repo.SourceRegistration,
			CreatedAt:    stamp,
			Rows:         s.rowsFrom(in.Answers),
		}
		// claim the animal number before writing anything else; a second
		// registration conflicts here even with a disjoint question set
		if err := r.InsertRegistration(ctx, batch); err != nil {
			return err
		}
		if err := r.InsertBatch(ctx, batch); err != nil {
			return err
		}

		fact := repo.FactRow{
			Owner:        owner,
			SpeciesID:    in.SpeciesID,
			AnimalNumber: in.AnimalNumber,
			RecordDate:   stamp.Format(dayFormat),
			BatchID:      batchID,
			CreatedAt:    stamp,
		}
		for _, a := range in.Answers {
			switch tags[a.QuestionID] {
			case s.opt.PregnancyTag:
				fact.Pregnancy = a.Value
			case s.opt.LactatingTag:
				fact.Lactating = a.Value
			case s.opt.EventDateTag:
				// the event-date answer overrides the batch's ledger date
				if a.Value != "" {
					fact.RecordDate = a.Value
				}
			}
		}
		return r.InsertGestationFact(ctx, fact)
	})
	if perr.IsDuplicateKey(err) || perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		return perr.Conflictf("animal number %q is already registered", in.AnimalNumber)
	}
	return err
}

// Grouped resolves the current snapshot and joins it against the dense
// question list; a never-answered animal renders every entry unanswered
func (s *Svc) Grouped(ctx context.Context, owner string, in domain.GroupedInput) (domain.Grouped, error) {
	var (
		questions []catdom.QuestionView
		err       error
		ref       *repo.BatchRef
	)
	if in.CategoryID != nil {
		questions, err = s.catalog.QuestionsForCategory(ctx, in.SpeciesID, in.LanguageID, *in.CategoryID)
		if err != nil {
			return nil, err
		}
		ref, err = s.Repo.LatestBatchForCategory(ctx, owner, in.SpeciesID, in.AnimalNumber, *in.CategoryID)
	} else {
		questions, err = s.catalog.QuestionsFor(ctx, in.SpeciesID, in.LanguageID)
		if err != nil {
			return nil, err
		}
		ref, err = s.Repo.LatestBatch(ctx, owner, in.SpeciesID, in.AnimalNumber)
	}
	if err != nil {
		return nil, err
	}

	var answers []snapshot.Answer
	if ref != nil {
		stored, err := s.Repo.AnswersForBatch(ctx, owner, in.SpeciesID, in.AnimalNumber, ref.BatchID)
		if err != nil {
			return nil, err
		}
		answers = toSnapshotAnswers(stored)
	}
	return snapshot.Group(toSnapshotQuestions(questions), answers), nil
}

// ReplaceCategory rewrites one category's answers for one day in a single
// transaction; the ledger is deliberately left alone here, it reflects only
// the initial registration
func (s *Svc) ReplaceCategory(ctx context.Context, owner string, in domain.ReplaceInput) error {
	stamp := now()
	if in.Date != nil {
		d, err := time.Parse(dayFormat, *in.Date)
		if err != nil {
			return perr.Newf(perr.ErrorCodeValidation, "invalid date %q", *in.Date)
		}
		stamp = d
	}
	day := stamp.Format(dayFormat)
	batchID := newBatchID()

	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)
		if err := r.DeleteCategoryDay(ctx, owner, in.SpeciesID, in.AnimalNumber, in.CategoryID, day); err != nil {
			return err
		}
		return r.InsertBatch(ctx, repo.Batch{
			Owner:        owner,
			SpeciesID:    in.SpeciesID,
			AnimalNumber: in.AnimalNumber,
			BatchID:      batchID,
			EntrySource:  repo.SourceRevision,
			CreatedAt:    stamp,
			Rows:         s.rowsFrom(in.Answers),
		})
	})
}

// HeatCurrent builds the grouped view of the current estrus cycle
// the anchor is the batch with the greatest date-of-heat value, not the most
// recent timestamp
func (s *Svc) HeatCurrent(ctx context.Context, owner string, in domain.HeatInput) (domain.Grouped, error) {
	questions, err := s.catalog.QuestionsForCategory(ctx, in.SpeciesID, in.LanguageID, s.opt.HeatCategoryID)
	if err != nil {
		return nil, err
	}

	heat, err := s.Repo.HeatRows(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.HeatDateTag, s.opt.HeatCategoryID)
	if err != nil {
		return nil, err
	}

	var answers []snapshot.Answer
	for _, batchID := range snapshot.CurrentHeatBatches(heat) {
		stored, err := s.Repo.AnswersForBatch(ctx, owner, in.SpeciesID, in.AnimalNumber, batchID)
		if err != nil {
			return nil, err
		}
		answers = append(answers, toSnapshotAnswers(stored)...)
	}
	return snapshot.Group(toSnapshotQuestions(questions), answers), nil
}

// HeatPrevious lists prior cycles' heat dates grouped by normalized
// localized category label, newest first
func (s *Svc) HeatPrevious(ctx context.Context, owner string, in domain.HeatInput) (domain.PreviousCycles, error) {
	heat, err := s.Repo.HeatRows(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.HeatDateTag, s.opt.HeatCategoryID)
	if err != nil {
		return nil, err
	}
	max := snapshot.MaxHeatValue(heat)
	if max == "" {
		return domain.PreviousCycles{}, nil
	}
	rows, err := s.Repo.PreviousHeatRows(
		ctx, owner, in.SpeciesID, in.AnimalNumber,
		in.LanguageID, s.opt.HeatDateTag, s.opt.HeatCategoryID, max,
	)
	if err != nil {
		return nil, err
	}
	return snapshot.GroupPrevious(rows), nil
}

// ReplaceHeatEvent applies the three-way precedence
// 1 a batch from today is a same-day correction and is replaced
// 2 else a batch sharing the new date-of-heat value is the same cycle and is replaced
// 3 else the batch starts a new cycle and nothing is deleted
func (s *Svc) ReplaceHeatEvent(ctx context.Context, owner string, in domain.ReplaceHeatInput) error {
	stamp := now()
	day := stamp.Format(dayFormat)
	batchID := newBatchID()

	ids := make([]int64, 0, len(in.Answers))
	for _, a := range in.Answers {
		ids = append(ids, a.QuestionID)
	}

	return repokit.WithTx(ctx, s.db, func(q repokit.Queryer) error {
		r := s.binder.Bind(q)

		tags, err := r.TagsForQuestions(ctx, ids)
		if err != nil {
			return err
		}
		heatValue := ""
		for _, a := range in.Answers {
			if tags[a.QuestionID] == s.opt.HeatDateTag {
				heatValue = a.Value
				break
			}
		}
		if heatValue == "" {
			return perr.New(perr.ErrorCodeValidation, "missing date of heat answer")
		}

		old, found, err := r.BatchForDay(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.HeatCategoryID, day)
		if err != nil {
			return err
		}
		if !found {
			old, found, err = r.BatchForHeatValue(
				ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.HeatCategoryID, s.opt.HeatDateTag, heatValue,
			)
			if err != nil {
				return err
			}
		}
		if found {
			if err := r.DeleteBatch(ctx, owner, in.SpeciesID, in.AnimalNumber, old); err != nil {
				return err
			}
		}

		return r.InsertBatch(ctx, repo.Batch{
			Owner:        owner,
			SpeciesID:    in.SpeciesID,
			AnimalNumber: in.AnimalNumber,
			BatchID:      batchID,
			EntrySource:  repo.SourceRevision,
			CreatedAt:    stamp,
			Rows:         s.rowsFrom(in.Answers),
		})
	})
}

// GestationHistory reads the derived ledger, newest first
func (s *Svc) GestationHistory(
	ctx context.Context, owner string, in domain.GestationInput,
) ([]domain.GestationFact, error) {
	return s.Repo.GestationHistory(ctx, owner, in.SpeciesID, in.AnimalNumber)
}

func toSnapshotQuestions(qs []catdom.QuestionView) []snapshot.Question {
	out := make([]snapshot.Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, snapshot.Question{
			QuestionID:    q.ID,
			Question:      q.Question,
			Localized:     q.Localized,
			FormType:      q.FormType,
			FormTypeLocal: q.FormTypeLocal,
			Validation:    q.Validation,
			ConstantValue: q.ConstantValue,
			Tag:           q.Tag,
			Unit:          q.Unit,
			Hint:          q.Hint,
			Category:      q.Category,
			SubCategory:   q.SubCategory,
			Sequence:      q.Sequence,
		})
	}
	return out
}

func toSnapshotAnswers(stored []repo.Stored) []snapshot.Answer {
	out := make([]snapshot.Answer, 0, len(stored))
	for _, s := range stored {
		out = append(out, snapshot.Answer{
			QuestionID: s.QuestionID,
			Value:      s.Answer,
			CreatedAt:  s.CreatedAt,
		})
	}
	return out
}
