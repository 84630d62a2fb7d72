package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Moora/internal/ranking"
)

type CriteriaHandler struct {
	svc *ranking.Service
}

func NewCriteriaHandler(svc *ranking.Service) *CriteriaHandler {
	return &CriteriaHandler{svc: svc}
}

// List returns the configured criteria.
// GET /api/v1/criteria
func (h *CriteriaHandler) List(w http.ResponseWriter, r *http.Request) {
	criteria := h.svc.Criteria()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"criteria":   criteria,
		"weight_sum": criteria.Sum(),
	})
}
