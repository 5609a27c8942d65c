// Package http provides http transport for the catalog
package http

import (
	stdhttp "net/http"

	"herdbook/internal/modkit/httpkit"
	"herdbook/internal/services/catalog/domain"
	svc "herdbook/internal/services/catalog/service"
)

// Register mounts catalog endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}
	httpkit.PostJSON[domain.QuestionsInput](r, "/questions", h.questions)
}

type handlers struct{ svc svc.Service }

// swagger:route POST /catalog/questions Catalog catalogQuestions
// @Summary Applicable questionnaire for a species and language
// @Tags Catalog
// @Accept json
// @Produce json
// @Param payload body domain.QuestionsInput true "Selector"
// @Success 200 {array} domain.QuestionView "ok"
// @Failure 404 {object} httpkit.Envelope "not found"
// @Router /catalog/questions [post]
func (h *handlers) questions(r *stdhttp.Request, in domain.QuestionsInput) (any, error) {
	return h.svc.Questions(r.Context(), in)
}
