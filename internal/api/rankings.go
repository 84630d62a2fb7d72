package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Moora/internal/metrics"
	"github.com/MikeSquared-Agency/Moora/internal/ranking"
	"github.com/MikeSquared-Agency/Moora/internal/scoring"
)

type RankingsHandler struct {
	svc      *ranking.Service
	maxBytes int64
}

func NewRankingsHandler(svc *ranking.Service, maxBytes int64) *RankingsHandler {
	return &RankingsHandler{svc: svc, maxBytes: maxBytes}
}

type AlternativeInput struct {
	Name   string    `json:"name" validate:"required,max=200"`
	Scores []float64 `json:"scores"`
}

// RankingRequest is the body of both ranking endpoints. Criteria may be left
// out (or null) to score against the server's configured criteria; an empty
// list is rejected as a configuration error.
type RankingRequest struct {
	RunID        string             `json:"run_id,omitempty" validate:"omitempty,uuid"`
	Criteria     scoring.Criteria   `json:"criteria,omitempty"`
	Alternatives []AlternativeInput `json:"alternatives" validate:"dive"`
}

func (req RankingRequest) toRequest(r *http.Request) ranking.Request {
	alts := make([]scoring.Alternative, len(req.Alternatives))
	for i, a := range req.Alternatives {
		alts[i] = scoring.Alternative{Name: a.Name, Scores: a.Scores}
	}
	// The client id is caller-chosen, so it goes to logs and events only.
	source := "http"
	if client := r.Header.Get(ClientIDHeader); client != "" {
		source = client
	}
	return ranking.Request{
		RunID:        req.RunID,
		Transport:    metrics.TransportHTTP,
		Source:       source,
		Criteria:     req.Criteria,
		Alternatives: alts,
	}
}

// Rank handles POST /api/v1/rankings
func (h *RankingsHandler) Rank(w http.ResponseWriter, r *http.Request) {
	var req RankingRequest
	if !decodeBody(w, r, h.maxBytes, &req) {
		return
	}

	report, err := h.svc.Rank(r.Context(), req.toRequest(r))
	if err != nil {
		writeScoringError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// Explain handles POST /api/v1/rankings/explain
func (h *RankingsHandler) Explain(w http.ResponseWriter, r *http.Request) {
	var req RankingRequest
	if !decodeBody(w, r, h.maxBytes, &req) {
		return
	}

	report, err := h.svc.Explain(r.Context(), req.toRequest(r))
	if err != nil {
		writeScoringError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
