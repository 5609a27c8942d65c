package domain

import "context"

// ServicePort is the full contract of the answers module
// owner is the trusted user id resolved by the auth middleware
type ServicePort interface {
	Create(ctx context.Context, owner string, in CreateInput) error
	Grouped(ctx context.Context, owner string, in GroupedInput) (Grouped, error)
	ReplaceCategory(ctx context.Context, owner string, in ReplaceInput) error
	HeatCurrent(ctx context.Context, owner string, in HeatInput) (Grouped, error)
	HeatPrevious(ctx context.Context, owner string, in HeatInput) (PreviousCycles, error)
	ReplaceHeatEvent(ctx context.Context, owner string, in ReplaceHeatInput) error
	GestationHistory(ctx context.Context, owner string, in GestationInput) ([]GestationFact, error)
}
