// Package service contains the lineage reconciliation workflows
package service

import (
	"context"

	"herdbook/internal/core/classify"
	"herdbook/internal/core/reconcile"
	"herdbook/internal/modkit/repokit"
	perr "herdbook/internal/platform/errors"
	"herdbook/internal/services/lineage/domain"
	"herdbook/internal/services/lineage/repo"
)

// Service defines the service contract for lineage
type Service interface{ domain.ServicePort }

// Options name the question tags the reconciler reads
type Options struct {
	DeliveryDateTag string
	AIDateTag       string
	BullNumberTag   string
	SemenCompanyTag string
	MotherYieldTag  string
}

func (o *Options) defaults() {
	if o.DeliveryDateTag == "" {
		o.DeliveryDateTag = "delivery_date"
	}
	if o.AIDateTag == "" {
		o.AIDateTag = "ai_date"
	}
	if o.BullNumberTag == "" {
		o.BullNumberTag = "bull_number"
	}
	if o.SemenCompanyTag == "" {
		o.SemenCompanyTag = "semen_company"
	}
	if o.MotherYieldTag == "" {
		o.MotherYieldTag = "mother_yield"
	}
}

// Svc implements the Service interface
type Svc struct {
	Repo   repo.Repo
	binder repokit.Binder[repo.Repo]
	db     repokit.TxRunner
	opt    Options
}

// New creates a new lineage service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], opt Options) *Svc {
	if db == nil {
		panic("lineage.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("lineage.Service requires a non nil Repo binder")
	}
	opt.defaults()
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, opt: opt}
}

// CandidateCalves lists calf-classified animal numbers not yet mapped to
// this mother and distinct from the mother's own number
func (s *Svc) CandidateCalves(ctx context.Context, owner string, in domain.MotherInput) ([]string, error) {
	classified, err := s.Repo.ClassifiedNumbers(ctx, owner, in.SpeciesID, classify.TagCalf)
	if err != nil {
		return nil, err
	}
	mapped, err := s.Repo.MappedCalves(ctx, owner, in.SpeciesID, in.MotherNumber)
	if err != nil {
		return nil, err
	}
	return reconcile.CandidateCalves(classified, mapped, in.MotherNumber), nil
}

// UnresolvedDeliveries diffs freeform delivery-date answers against mapped
// deliveries; it reads, it never corrects
func (s *Svc) UnresolvedDeliveries(ctx context.Context, owner string, in domain.MotherInput) ([]string, error) {
	raw, err := s.Repo.RawDeliveryCounts(ctx, owner, in.SpeciesID, in.MotherNumber, s.opt.DeliveryDateTag)
	if err != nil {
		return nil, err
	}
	mapped, err := s.Repo.MappedDeliveryCounts(ctx, owner, in.SpeciesID, in.MotherNumber)
	if err != nil {
		return nil, err
	}
	return reconcile.UnresolvedDeliveries(raw, mapped), nil
}

// MapMotherToCalf records a curated link; mapping the same delivery twice is
// reported as already_mapped rather than an error
func (s *Svc) MapMotherToCalf(ctx context.Context, owner string, in domain.MapInput) (domain.MapResult, error) {
	if in.MotherNumber == in.CalfNumber {
		return domain.MapResult{}, perr.New(perr.ErrorCodeValidation, "a mother cannot be her own calf")
	}
	err := s.Repo.InsertMapping(ctx, repo.Mapping{
		Owner:        owner,
		SpeciesID:    in.SpeciesID,
		DeliveryDate: in.DeliveryDate,
		MotherNumber: in.MotherNumber,
		CalfNumber:   in.CalfNumber,
	})
	if perr.IsDuplicateKey(err) || perr.IsCode(err, perr.ErrorCodeDuplicateKey) {
		return domain.MapResult{Outcome: domain.OutcomeAlreadyMapped}, nil
	}
	if err != nil {
		return domain.MapResult{}, err
	}
	return domain.MapResult{Outcome: domain.OutcomeCreated}, nil
}

// BreedingHistory merges the four tag-scoped streams on their shared batch
func (s *Svc) BreedingHistory(
	ctx context.Context, owner string, in domain.HistoryInput,
) ([]domain.BreedingRow, error) {
	dates, err := s.Repo.TagStream(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.AIDateTag)
	if err != nil {
		return nil, err
	}
	bulls, err := s.Repo.TagStream(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.BullNumberTag)
	if err != nil {
		return nil, err
	}
	semen, err := s.Repo.TagStream(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.SemenCompanyTag)
	if err != nil {
		return nil, err
	}
	yields, err := s.Repo.TagStream(ctx, owner, in.SpeciesID, in.AnimalNumber, s.opt.MotherYieldTag)
	if err != nil {
		return nil, err
	}
	return reconcile.MergeBreeding(dates, bulls, semen, yields), nil
}
