package domain

import "context"

// ServicePort is the contract of the lineage module
type ServicePort interface {
	CandidateCalves(ctx context.Context, owner string, in MotherInput) ([]string, error)
	UnresolvedDeliveries(ctx context.Context, owner string, in MotherInput) ([]string, error)
	MapMotherToCalf(ctx context.Context, owner string, in MapInput) (MapResult, error)
	BreedingHistory(ctx context.Context, owner string, in HistoryInput) ([]BreedingRow, error)
}
