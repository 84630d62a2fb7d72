package scoring

import (
	"io"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// Ranking is the outcome of one scoring run.
type Ranking struct {
	Results []Result `json:"results"`
	// Best is Results[0], the recommended alternative.
	Best Result `json:"best"`
	// Frontier lists the non-dominated alternatives when the engine has the
	// frontier enabled.
	Frontier []string `json:"frontier,omitempty"`
}

// Explanation is a Ranking plus the intermediate values that produced it.
type Explanation struct {
	Ranking
	Normalized [][]float64 `json:"normalized"`
	Breakdowns []Breakdown `json:"breakdowns"`
}

// Engine runs Normalize → Aggregate → RankScores. It holds only immutable
// settings, so one Engine may serve concurrent callers.
type Engine struct {
	tolerance       float64
	frontierEnabled bool
	logger          *slog.Logger
}

// NewEngine creates an Engine. A non-positive tolerance falls back to
// DefaultWeightTolerance; a nil logger discards output.
func NewEngine(tolerance float64, frontierEnabled bool, logger *slog.Logger) *Engine {
	if tolerance <= 0 {
		tolerance = DefaultWeightTolerance
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{
		tolerance:       tolerance,
		frontierEnabled: frontierEnabled,
		logger:          logger,
	}
}

// Score validates m and ranks its alternatives.
func Score(m Matrix) (*Ranking, error) {
	return NewEngine(DefaultWeightTolerance, false, nil).Score(m)
}

// Score validates m and ranks its alternatives.
func (e *Engine) Score(m Matrix) (*Ranking, error) {
	ranking, _, _, err := e.run(m)
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

// Explain is Score plus the normalized matrix and per-criterion breakdowns.
func (e *Engine) Explain(m Matrix) (*Explanation, error) {
	ranking, normalized, scores, err := e.run(m)
	if err != nil {
		return nil, err
	}
	return &Explanation{
		Ranking:    *ranking,
		Normalized: Rows(normalized),
		Breakdowns: Breakdowns(m, normalized, scores),
	}, nil
}

func (e *Engine) run(m Matrix) (*Ranking, *mat.Dense, []float64, error) {
	if err := m.Validate(e.tolerance); err != nil {
		e.logger.Debug("scoring input rejected", "kind", Kind(err), "error", err)
		return nil, nil, nil, err
	}

	normalized, err := Normalize(m)
	if err != nil {
		e.logger.Debug("normalization failed", "kind", Kind(err), "error", err)
		return nil, nil, nil, err
	}

	scores := Aggregate(normalized, m.Criteria)
	results := RankScores(m.Alternatives, scores)

	ranking := &Ranking{
		Results: results,
		Best:    results[0],
	}
	if e.frontierEnabled {
		ranking.Frontier = ComputeFrontier(m)
	}

	e.logger.Debug("scored alternatives",
		"criteria", len(m.Criteria),
		"alternatives", len(m.Alternatives),
		"best", ranking.Best.Name,
		"best_score", ranking.Best.Score,
	)
	return ranking, normalized, scores, nil
}
