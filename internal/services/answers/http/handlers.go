// Package http provides http transport for answers
package http

import (
	stdhttp "net/http"

	"herdbook/internal/modkit/httpkit"
	"herdbook/internal/services/answers/domain"
	svc "herdbook/internal/services/answers/service"
)

// Register mounts answers endpoints on the given router
// callers must be authenticated; the owner comes from the request context
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.CreateInput](r, "/create", h.create)
	httpkit.PostJSON[domain.GroupedInput](r, "/grouped", h.grouped)
	httpkit.PostJSON[domain.ReplaceInput](r, "/replace", h.replace)
	httpkit.PostJSON[domain.HeatInput](r, "/heat/current", h.heatCurrent)
	httpkit.PostJSON[domain.HeatInput](r, "/heat/previous", h.heatPrevious)
	httpkit.PostJSON[domain.ReplaceHeatInput](r, "/heat/replace", h.heatReplace)
	httpkit.PostJSON[domain.GestationInput](r, "/gestation", h.gestation)
}

type handlers struct{ svc svc.Service }

type ack struct {
	Status string `json:"status"`
}

// swagger:route POST /answers/create Answers answersCreate
// @Summary Register a new animal's answer set
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.CreateInput true "Registration"
// @Success 200 {object} ack "ok"
// @Failure 409 {object} httpkit.Envelope "animal number already registered"
// @Router /answers/create [post]
func (h *handlers) create(r *stdhttp.Request, in domain.CreateInput) (any, error) {
	if err := h.svc.Create(r.Context(), httpkit.MustUser(r), in); err != nil {
		return nil, err
	}
	return ack{Status: "created"}, nil
}

// swagger:route POST /answers/grouped Answers answersGrouped
// @Summary Current grouped snapshot for one animal
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.GroupedInput true "Selector"
// @Success 200 {object} domain.Grouped "ok"
// @Failure 404 {object} httpkit.Envelope "no applicable questions"
// @Router /answers/grouped [post]
func (h *handlers) grouped(r *stdhttp.Request, in domain.GroupedInput) (any, error) {
	return h.svc.Grouped(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /answers/replace Answers answersReplace
// @Summary Replace one category's answers for one day
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.ReplaceInput true "Replacement"
// @Success 200 {object} ack "ok"
// @Router /answers/replace [post]
func (h *handlers) replace(r *stdhttp.Request, in domain.ReplaceInput) (any, error) {
	if err := h.svc.ReplaceCategory(r.Context(), httpkit.MustUser(r), in); err != nil {
		return nil, err
	}
	return ack{Status: "replaced"}, nil
}

// swagger:route POST /answers/heat/current Answers heatCurrent
// @Summary Current estrus cycle view
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.HeatInput true "Selector"
// @Success 200 {object} domain.Grouped "ok"
// @Router /answers/heat/current [post]
func (h *handlers) heatCurrent(r *stdhttp.Request, in domain.HeatInput) (any, error) {
	return h.svc.HeatCurrent(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /answers/heat/previous Answers heatPrevious
// @Summary Previous estrus cycles grouped by category label
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.HeatInput true "Selector"
// @Success 200 {object} domain.PreviousCycles "ok"
// @Router /answers/heat/previous [post]
func (h *handlers) heatPrevious(r *stdhttp.Request, in domain.HeatInput) (any, error) {
	return h.svc.HeatPrevious(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /answers/heat/replace Answers heatReplace
// @Summary Record a heat event with same-cycle replacement
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.ReplaceHeatInput true "Heat event"
// @Success 200 {object} ack "ok"
// @Failure 400 {object} httpkit.Envelope "missing date of heat answer"
// @Router /answers/heat/replace [post]
func (h *handlers) heatReplace(r *stdhttp.Request, in domain.ReplaceHeatInput) (any, error) {
	if err := h.svc.ReplaceHeatEvent(r.Context(), httpkit.MustUser(r), in); err != nil {
		return nil, err
	}
	return ack{Status: "recorded"}, nil
}

// swagger:route POST /answers/gestation Answers gestationHistory
// @Summary Gestation ledger for one animal, newest first
// @Tags Answers
// @Accept json
// @Produce json
// @Param payload body domain.GestationInput true "Selector"
// @Success 200 {array} domain.GestationFact "ok"
// @Router /answers/gestation [post]
func (h *handlers) gestation(r *stdhttp.Request, in domain.GestationInput) (any, error) {
	return h.svc.GestationHistory(r.Context(), httpkit.MustUser(r), in)
}
