package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

type WeightsHandler struct {
	maxBytes int64
}

func NewWeightsHandler(maxBytes int64) *WeightsHandler {
	return &WeightsHandler{maxBytes: maxBytes}
}

type WeightEntry struct {
	ID     string  `json:"id" validate:"required"`
	Weight float64 `json:"weight"`
}

type NormalizeWeightsRequest struct {
	Weights []WeightEntry `json:"weights" validate:"required,min=1,dive"`
}

// Normalize rescales raw weights so they sum to 1.0, keeping their order.
// POST /api/v1/weights/normalize
func (h *WeightsHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeWeightsRequest
	if !decodeBody(w, r, h.maxBytes, &req) {
		return
	}

	raw := make([]float64, len(req.Weights))
	for i, e := range req.Weights {
		raw[i] = e.Weight
	}
	norm, err := scoring.NormalizeWeights(raw)
	if err != nil {
		writeScoringError(w, err)
		return
	}

	out := make([]WeightEntry, len(norm))
	for i, v := range norm {
		out[i] = WeightEntry{ID: req.Weights[i].ID, Weight: v}
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"weights": out})
}
