package scoring

import "gonum.org/v1/gonum/mat"

// FactorResult captures one criterion's contribution to an alternative's score.
// Weighted is signed: negative for cost criteria.
type FactorResult struct {
	Criterion  string    `json:"criterion"`
	Label      string    `json:"label,omitempty"`
	Direction  Direction `json:"direction"`
	Raw        float64   `json:"raw"`
	Normalized float64   `json:"normalized"`
	Weight     float64   `json:"weight"`
	Weighted   float64   `json:"weighted"`
}

// Breakdown lists the per-criterion factors behind one alternative's score.
type Breakdown struct {
	Name    string         `json:"name"`
	Score   float64        `json:"score"`
	Factors []FactorResult `json:"factors"`
}

// Breakdowns explains every alternative's score, in input order. normalized
// and scores must come from Normalize and Aggregate over the same matrix.
func Breakdowns(m Matrix, normalized *mat.Dense, scores []float64) []Breakdown {
	signed := SignedWeights(m.Criteria)
	out := make([]Breakdown, len(m.Alternatives))
	for i, alt := range m.Alternatives {
		factors := make([]FactorResult, len(m.Criteria))
		for j, cr := range m.Criteria {
			n := normalized.At(i, j)
			weighted := signed[j] * n
			factors[j] = FactorResult{
				Criterion:  cr.ID,
				Label:      cr.Label,
				Direction:  cr.Direction,
				Raw:        alt.Scores[j],
				Normalized: n,
				Weight:     cr.Weight,
				Weighted:   weighted,
			}
		}
		out[i] = Breakdown{Name: alt.Name, Score: scores[i], Factors: factors}
	}
	return out
}
