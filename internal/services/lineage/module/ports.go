package module

import (
	"context"

	lindom "herdbook/internal/services/lineage/domain"
	linsvc "herdbook/internal/services/lineage/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptLineagePort adapts the lineage service to the domain port interface
type adaptLineagePort struct{ svc linsvc.Service }

func (a adaptLineagePort) CandidateCalves(
	ctx context.Context, owner string, in lindom.MotherInput,
) ([]string, error) {
	return a.svc.CandidateCalves(ctx, owner, in)
}

func (a adaptLineagePort) UnresolvedDeliveries(
	ctx context.Context, owner string, in lindom.MotherInput,
) ([]string, error) {
	return a.svc.UnresolvedDeliveries(ctx, owner, in)
}

func (a adaptLineagePort) MapMotherToCalf(
	ctx context.Context, owner string, in lindom.MapInput,
) (lindom.MapResult, error) {
	return a.svc.MapMotherToCalf(ctx, owner, in)
}

func (a adaptLineagePort) BreedingHistory(
	ctx context.Context, owner string, in lindom.HistoryInput,
) ([]lindom.BreedingRow, error) {
	return a.svc.BreedingHistory(ctx, owner, in)
}
