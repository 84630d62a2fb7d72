package scoring

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Alternative is one candidate being ranked. Scores[j] is its raw value for
// criterion j of the run's Criteria.
type Alternative struct {
	Name   string    `json:"name" yaml:"name"`
	Scores []float64 `json:"scores" yaml:"scores"`
}

// Matrix pairs the criteria of a run with the alternatives to rank.
type Matrix struct {
	Criteria     Criteria      `json:"criteria" yaml:"criteria"`
	Alternatives []Alternative `json:"alternatives" yaml:"alternatives"`
}

// Validate checks the criteria first, then the shape and values of every
// alternative row.
func (m Matrix) Validate(tolerance float64) error {
	if err := m.Criteria.Validate(tolerance); err != nil {
		return err
	}
	if len(m.Alternatives) == 0 {
		return &ShapeMismatchError{Want: len(m.Criteria), Empty: true}
	}
	for _, alt := range m.Alternatives {
		if len(alt.Scores) != len(m.Criteria) {
			return &ShapeMismatchError{Alternative: alt.Name, Want: len(m.Criteria), Got: len(alt.Scores)}
		}
		for j, v := range alt.Scores {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				return &InvalidValueError{Alternative: alt.Name, Criterion: m.Criteria[j].ID, Value: v}
			}
		}
	}
	return nil
}

// Dense copies the raw scores into an alternatives × criteria matrix. The
// shape must already have been validated; gonum rejects empty dimensions.
func (m Matrix) Dense() *mat.Dense {
	d := mat.NewDense(len(m.Alternatives), len(m.Criteria), nil)
	for i, alt := range m.Alternatives {
		d.SetRow(i, alt.Scores)
	}
	return d
}
