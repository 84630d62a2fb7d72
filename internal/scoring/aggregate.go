package scoring

import "gonum.org/v1/gonum/mat"

// Aggregate nets the weighted benefit criteria against the weighted cost
// criteria for every normalized row:
//
//	score[i] = Σ_benefit w_j·n[i][j] − Σ_cost w_j·n[i][j]
//
// computed as one matrix-vector product against the signed weights. Weights
// are used exactly as given. Scores come back in row order.
func Aggregate(normalized *mat.Dense, criteria Criteria) []float64 {
	var scores mat.VecDense
	scores.MulVec(normalized, mat.NewVecDense(len(criteria), SignedWeights(criteria)))
	return mat.Col(nil, 0, &scores)
}

// SignedWeights returns each criterion's weight, negated for cost criteria.
// A criterion with an unset direction contributes zero.
func SignedWeights(criteria Criteria) []float64 {
	w := make([]float64, len(criteria))
	for j, cr := range criteria {
		switch cr.Direction {
		case Benefit:
			w[j] = cr.Weight
		case Cost:
			w[j] = -cr.Weight
		}
	}
	return w
}
