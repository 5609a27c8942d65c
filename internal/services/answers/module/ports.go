package module

import (
	"context"

	ansdom "herdbook/internal/services/answers/domain"
	anssvc "herdbook/internal/services/answers/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAnswersPort adapts the answers service to the domain port interface
type adaptAnswersPort struct{ svc anssvc.Service }

func (a adaptAnswersPort) Create(ctx context.Context, owner string, in ansdom.CreateInput) error {
	return a.svc.Create(ctx, owner, in)
}

func (a adaptAnswersPort) Grouped(
	ctx context.Context, owner string, in ansdom.GroupedInput,
) (ansdom.Grouped, error) {
	return a.svc.Grouped(ctx, owner, in)
}

func (a adaptAnswersPort) ReplaceCategory(ctx context.Context, owner string, in ansdom.ReplaceInput) error {
	return a.svc.ReplaceCategory(ctx, owner, in)
}

func (a adaptAnswersPort) HeatCurrent(
	ctx context.Context, owner string, in ansdom.HeatInput,
) (ansdom.Grouped, error) {
	return a.svc.HeatCurrent(ctx, owner, in)
}

func (a adaptAnswersPort) HeatPrevious(
	ctx context.Context, owner string, in ansdom.HeatInput,
) (ansdom.PreviousCycles, error) {
	return a.svc.HeatPrevious(ctx, owner, in)
}

func (a adaptAnswersPort) ReplaceHeatEvent(ctx context.Context, owner string, in ansdom.ReplaceHeatInput) error {
	return a.svc.ReplaceHeatEvent(ctx, owner, in)
}

func (a adaptAnswersPort) GestationHistory(
	ctx context.Context, owner string, in ansdom.GestationInput,
) ([]ansdom.GestationFact, error) {
	return a.svc.GestationHistory(ctx, owner, in)
}
