// Package http provides http transport for lineage
package http

import (
	stdhttp "net/http"

	"herdbook/internal/modkit/httpkit"
	"herdbook/internal/services/lineage/domain"
	svc "herdbook/internal/services/lineage/service"
)

// Register mounts lineage endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.MotherInput](r, "/calves/candidates", h.candidates)
	httpkit.PostJSON[domain.MotherInput](r, "/deliveries/unresolved", h.unresolved)
	httpkit.PostJSON[domain.MapInput](r, "/map", h.mapCalf)
	httpkit.PostJSON[domain.HistoryInput](r, "/breeding-history", h.history)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /lineage/calves/candidates Lineage candidateCalves
// @Summary Calf-classified numbers not yet linked to this mother
// @Tags Lineage
// @Accept json
// @Produce json
// @Param payload body domain.MotherInput true "Mother"
// @Success 200 {array} string "ok"
// @Router /lineage/calves/candidates [post]
func (h *handlers) candidates(r *stdhttp.Request, in domain.MotherInput) (any, error) {
	return h.svc.CandidateCalves(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /lineage/deliveries/unresolved Lineage unresolvedDeliveries
// @Summary Delivery dates recorded in answers but not mapped to a calf
// @Tags Lineage
// @Accept json
// @Produce json
// @Param payload body domain.MotherInput true "Mother"
// @Success 200 {array} string "ok"
// @Router /lineage/deliveries/unresolved [post]
func (h *handlers) unresolved(r *stdhttp.Request, in domain.MotherInput) (any, error) {
	return h.svc.UnresolvedDeliveries(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /lineage/map Lineage mapMotherToCalf
// @Summary Link a calf to its mother for one delivery
// @Tags Lineage
// @Accept json
// @Produce json
// @Param payload body domain.MapInput true "Mapping"
// @Success 200 {object} domain.MapResult "ok"
// @Router /lineage/map [post]
func (h *handlers) mapCalf(r *stdhttp.Request, in domain.MapInput) (any, error) {
	return h.svc.MapMotherToCalf(r.Context(), httpkit.MustUser(r), in)
}

// swagger:route POST /lineage/breeding-history Lineage breedingHistory
// @Summary Merged AI and breeding history, newest first
// @Tags Lineage
// @Accept json
// @Produce json
// @Param payload body domain.HistoryInput true "Animal"
// @Success 200 {array} domain.BreedingRow "ok"
// @Router /lineage/breeding-history [post]
func (h *handlers) history(r *stdhttp.Request, in domain.HistoryInput) (any, error) {
	return h.svc.BreedingHistory(r.Context(), httpkit.MustUser(r), in)
}
