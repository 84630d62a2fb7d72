package scoring

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Normalize divides every raw value by the Euclidean norm of its criterion
// column. The result has one row per alternative and one column per
// criterion and, for every column, the squares of the normalized values sum
// to 1.
//
// An all-zero column is reported as a DegenerateColumnError before any
// division takes place.
func Normalize(m Matrix) (*mat.Dense, error) {
	if len(m.Alternatives) == 0 {
		return nil, &ShapeMismatchError{Want: len(m.Criteria), Empty: true}
	}
	for _, alt := range m.Alternatives {
		if len(alt.Scores) != len(m.Criteria) {
			return nil, &ShapeMismatchError{Alternative: alt.Name, Want: len(m.Criteria), Got: len(alt.Scores)}
		}
	}
	if len(m.Criteria) == 0 {
		return nil, &ConfigurationError{Reason: "no criteria configured"}
	}

	raw := m.Dense()
	norms := make([]float64, len(m.Criteria))
	col := make([]float64, len(m.Alternatives))
	for j, cr := range m.Criteria {
		// floats.Norm scales by the largest magnitude, so neither very large
		// nor subnormal columns overflow or underflow.
		norm := floats.Norm(mat.Col(col, j, raw), 2)
		if norm == 0 {
			return nil, &DegenerateColumnError{Criterion: cr.ID}
		}
		norms[j] = norm
	}

	var out mat.Dense
	out.Apply(func(_, j int, v float64) float64 { return v / norms[j] }, raw)
	return &out, nil
}

// Rows copies d into a row-major slice of slices.
func Rows(d *mat.Dense) [][]float64 {
	if d == nil {
		return nil
	}
	r, _ := d.Dims()
	out := make([][]float64, r)
	for i := range out {
		out[i] = mat.Row(nil, i, d)
	}
	return out
}
