package scoring

import (
	"fmt"
	"math"
)

// DefaultWeightTolerance is how far the criteria weights may drift from 1.0.
const DefaultWeightTolerance = 1e-6

// DefaultCriteria returns the site-selection criteria of a poultry-farm
// location study. Weights are an even-ish starting point and are expected to
// be replaced by the operator's own.
func DefaultCriteria() Criteria {
	return Criteria{
		{ID: "C1", Label: "Distance from settlements", Weight: 0.15, Direction: Benefit},
		{ID: "C2", Label: "Land area", Weight: 0.15, Direction: Benefit},
		{ID: "C3", Label: "Distance to water source", Weight: 0.10, Direction: Cost},
		{ID: "C4", Label: "Distance to power source", Weight: 0.10, Direction: Cost},
		{ID: "C5", Label: "Access road surface", Weight: 0.10, Direction: Benefit},
		{ID: "C6", Label: "Road width", Weight: 0.10, Direction: Benefit},
		{ID: "C7", Label: "Land ownership", Weight: 0.10, Direction: Cost},
		{ID: "C8", Label: "Distance to main road", Weight: 0.10, Direction: Benefit},
		{ID: "C9", Label: "Distance to other farms", Weight: 0.10, Direction: Benefit},
	}
}

// Sum returns the total of all weights.
func (c Criteria) Sum() float64 {
	var total float64
	for _, cr := range c {
		total += cr.Weight
	}
	return total
}

// Validate checks that there is at least one criterion, ids are present and
// unique, every direction is Benefit or Cost, every weight is a finite value
// in [0,1], and the weights sum to 1.0 within tolerance.
func (c Criteria) Validate(tolerance float64) error {
	if len(c) == 0 {
		return &ConfigurationError{Reason: "no criteria configured"}
	}
	seen := make(map[string]bool, len(c))
	for i, cr := range c {
		if cr.ID == "" {
			return &ConfigurationError{Reason: fmt.Sprintf("criterion at position %d has no id", i)}
		}
		if seen[cr.ID] {
			return &ConfigurationError{Criterion: cr.ID, Reason: "duplicate id"}
		}
		seen[cr.ID] = true
		if !cr.Direction.Valid() {
			return &ConfigurationError{Criterion: cr.ID, Reason: "direction must be benefit or cost"}
		}
		if math.IsNaN(cr.Weight) || math.IsInf(cr.Weight, 0) {
			return &ConfigurationError{Criterion: cr.ID, Reason: "weight is not a finite number"}
		}
		if cr.Weight < 0 || cr.Weight > 1 {
			return &ConfigurationError{Criterion: cr.ID, Reason: fmt.Sprintf("weight %.4f outside [0, 1]", cr.Weight)}
		}
	}
	if sum := c.Sum(); math.Abs(sum-1.0) > tolerance {
		return &ConfigurationError{Reason: fmt.Sprintf("weights sum to %.6f, must sum to 1.0", sum)}
	}
	return nil
}

// NormalizeWeights divides each raw weight by the total so the result sums to
// 1.0. Raw weights must be finite and non-negative with a positive total.
func NormalizeWeights(raw []float64) ([]float64, error) {
	if len(raw) == 0 {
		return nil, &ConfigurationError{Reason: "no weights to normalize"}
	}
	var total float64
	for i, w := range raw {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("raw weight at position %d is %v, must be finite and non-negative", i, w)}
		}
		total += w
	}
	if total == 0 {
		return nil, &ConfigurationError{Reason: "weights total 0"}
	}
	out := make([]float64, len(raw))
	for i, w := range raw {
		out[i] = w / total
	}
	return out, nil
}

// WithNormalizedWeights returns a copy of c whose weights are rescaled to sum
// to 1.0.
func (c Criteria) WithNormalizedWeights() (Criteria, error) {
	raw := make([]float64, len(c))
	for i, cr := range c {
		raw[i] = cr.Weight
	}
	norm, err := NormalizeWeights(raw)
	if err != nil {
		return nil, err
	}
	out := c.Clone()
	for i := range out {
		out[i].Weight = norm[i]
	}
	return out, nil
}
