package scoring

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below, for callers that only need errors.Is.
var (
	ErrConfiguration    = errors.New("invalid criteria configuration")
	ErrShapeMismatch    = errors.New("alternative matrix shape mismatch")
	ErrDegenerateColumn = errors.New("degenerate criterion column")
	ErrInvalidValue     = errors.New("invalid criterion value")
)

// ConfigurationError reports a criteria set that cannot be scored: missing
// criteria, bad weights, a weight sum off 1.0, or an unknown direction label.
type ConfigurationError struct {
	Criterion string
	Reason    string
}

func (e *ConfigurationError) Error() string {
	if e.Criterion == "" {
		return fmt.Sprintf("configuration: %s", e.Reason)
	}
	return fmt.Sprintf("configuration: criterion %q: %s", e.Criterion, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// ShapeMismatchError reports an empty alternative set (Empty) or a score row
// whose length differs from the criteria count.
type ShapeMismatchError struct {
	Alternative string
	Want        int
	Got         int
	Empty       bool
}

func (e *ShapeMismatchError) Error() string {
	if e.Empty {
		return "shape mismatch: no alternatives to score"
	}
	return fmt.Sprintf("shape mismatch: alternative %q has %d scores, want %d", e.Alternative, e.Got, e.Want)
}

func (e *ShapeMismatchError) Is(target error) bool { return target == ErrShapeMismatch }

// DegenerateColumnError reports a criterion whose raw values are all zero, so
// its vector norm is zero and normalization is undefined.
type DegenerateColumnError struct {
	Criterion string
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("degenerate column: criterion %q is zero for every alternative", e.Criterion)
}

func (e *DegenerateColumnError) Is(target error) bool { return target == ErrDegenerateColumn }

// InvalidValueError reports a raw score that is negative, NaN or infinite.
type InvalidValueError struct {
	Alternative string
	Criterion   string
	Value       float64
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value: alternative %q criterion %q: %v is not a finite non-negative number",
		e.Alternative, e.Criterion, e.Value)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }

// Error kinds as reported to API and event consumers.
const (
	KindConfiguration    = "configuration"
	KindShapeMismatch    = "shape_mismatch"
	KindDegenerateColumn = "degenerate_column"
	KindInvalidValue     = "invalid_value"
)

// Kind classifies err into one of the Kind* strings. It returns "" for errors
// that did not originate in this package.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrShapeMismatch):
		return KindShapeMismatch
	case errors.Is(err, ErrDegenerateColumn):
		return KindDegenerateColumn
	case errors.Is(err, ErrInvalidValue):
		return KindInvalidValue
	default:
		return ""
	}
}
