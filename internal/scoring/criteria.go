package scoring

import (
	"fmt"
	"strings"
)

// Direction says whether a higher raw value is desirable (Benefit) or not (Cost).
// The zero value is invalid, so an omitted direction fails validation.
type Direction int

const (
	Benefit Direction = iota + 1
	Cost
)

// ParseDirection matches s case-insensitively against "benefit" and "cost".
func ParseDirection(s string) (Direction, error) {
	switch {
	case strings.EqualFold(s, "benefit"):
		return Benefit, nil
	case strings.EqualFold(s, "cost"):
		return Cost, nil
	default:
		return 0, &ConfigurationError{Reason: fmt.Sprintf("unrecognized direction %q, want benefit or cost", s)}
	}
}

func (d Direction) String() string {
	switch d {
	case Benefit:
		return "benefit"
	case Cost:
		return "cost"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Valid reports whether d is Benefit or Cost.
func (d Direction) Valid() bool { return d == Benefit || d == Cost }

func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("cannot encode direction %d", int(d))}
	}
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Criterion is one column of the decision matrix.
type Criterion struct {
	ID        string    `json:"id" yaml:"id"`
	Label     string    `json:"label" yaml:"label"`
	Weight    float64   `json:"weight" yaml:"weight"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Criteria is the ordered criterion sequence for one scoring run. Alternative
// score rows are indexed in the same order.
type Criteria []Criterion

// IDs returns the criterion ids in order.
func (c Criteria) IDs() []string {
	ids := make([]string, len(c))
	for i, cr := range c {
		ids[i] = cr.ID
	}
	return ids
}

// Clone returns a copy that shares nothing with c.
func (c Criteria) Clone() Criteria {
	if c == nil {
		return nil
	}
	out := make(Criteria, len(c))
	copy(out, c)
	return out
}
