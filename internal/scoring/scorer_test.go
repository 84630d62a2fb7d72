package scoring

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math"
	"strings"
	"sync"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoCriteria() Criteria {
	return Criteria{
		{ID: "C1", Label: "Land area", Weight: 0.6, Direction: Benefit},
		{ID: "C2", Label: "Distance to water", Weight: 0.4, Direction: Cost},
	}
}

// Scenario A: higher benefit with equal cost wins.
func TestScoreBenefitOverCost(t *testing.T) {
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "X", Scores: []float64{10, 2}},
			{Name: "Y", Scores: []float64{5, 2}},
		},
	}

	r, err := NewEngine(DefaultWeightTolerance, false, discardLogger()).Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if len(r.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(r.Results))
	}
	if r.Results[0].Name != "X" || r.Results[1].Name != "Y" {
		t.Fatalf("expected X above Y, got %s then %s", r.Results[0].Name, r.Results[1].Name)
	}

	c2 := 2 / math.Sqrt(8)
	wantX := 0.6*10/math.Sqrt(125) - 0.4*c2
	wantY := 0.6*5/math.Sqrt(125) - 0.4*c2
	if math.Abs(r.Results[0].Score-wantX) > 1e-12 {
		t.Errorf("X score: got %.12f, want %.12f", r.Results[0].Score, wantX)
	}
	if math.Abs(r.Results[1].Score-wantY) > 1e-12 {
		t.Errorf("Y score: got %.12f, want %.12f", r.Results[1].Score, wantY)
	}
	if r.Best != r.Results[0] {
		t.Errorf("best %+v does not match head %+v", r.Best, r.Results[0])
	}
	if r.Results[0].Rank != 1 || r.Results[1].Rank != 2 {
		t.Errorf("unexpected ranks %d, %d", r.Results[0].Rank, r.Results[1].Rank)
	}
}

// Scenario B: an all-zero column is reported, never scored as NaN.
func TestScoreDegenerateColumn(t *testing.T) {
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "X", Scores: []float64{10, 0}},
			{Name: "Y", Scores: []float64{5, 0}},
		},
	}

	r, err := Score(m)
	if r != nil {
		t.Fatalf("expected no ranking, got %+v", r)
	}
	var dce *DegenerateColumnError
	if !errors.As(err, &dce) {
		t.Fatalf("expected DegenerateColumnError, got %v", err)
	}
	if dce.Criterion != "C2" {
		t.Errorf("expected criterion C2, got %q", dce.Criterion)
	}
	if !errors.Is(err, ErrDegenerateColumn) {
		t.Error("expected errors.Is ErrDegenerateColumn")
	}
}

// Scenario C: weights summing to 1.1 are rejected before scoring.
func TestScoreRejectsBadWeightSum(t *testing.T) {
	m := Matrix{
		Criteria: Criteria{
			{ID: "C1", Weight: 0.5, Direction: Benefit},
			{ID: "C2", Weight: 0.6, Direction: Cost},
		},
		// The zero column would fail normalization; configuration must win.
		Alternatives: []Alternative{{Name: "X", Scores: []float64{1, 0}}},
	}

	_, err := Score(m)
	var ce *ConfigurationError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if Kind(err) != KindConfiguration {
		t.Errorf("expected kind %q, got %q", KindConfiguration, Kind(err))
	}
}

// Scenario D: a single alternative is its own best.
func TestScoreSingleAlternative(t *testing.T) {
	m := Matrix{
		Criteria:     twoCriteria(),
		Alternatives: []Alternative{{Name: "only", Scores: []float64{3, 4}}},
	}

	r, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if len(r.Results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(r.Results))
	}
	// Each column of one row normalizes to 1.
	want := 0.6 - 0.4
	if math.Abs(r.Best.Score-want) > 1e-12 {
		t.Errorf("expected score %f, got %f", want, r.Best.Score)
	}
	if r.Best.Name != "only" || r.Best != r.Results[0] {
		t.Errorf("unexpected best %+v", r.Best)
	}
}

func TestScoreTiesKeepInputOrder(t *testing.T) {
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "low", Scores: []float64{1, 3}},
			{Name: "tie-a", Scores: []float64{4, 2}},
			{Name: "high", Scores: []float64{9, 1}},
			{Name: "tie-b", Scores: []float64{4, 2}},
			{Name: "tie-c", Scores: []float64{4, 2}},
		},
	}

	r, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	got := make([]string, len(r.Results))
	for i, res := range r.Results {
		got[i] = res.Name
	}
	want := []string{"high", "tie-a", "tie-b", "tie-c", "low"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	m := Matrix{
		Criteria: DefaultCriteria(),
		Alternatives: []Alternative{
			{Name: "Bergas", Scores: []float64{3, 4, 2, 1, 4, 2, 2, 3, 3}},
			{Name: "Ungaran", Scores: []float64{2, 3, 4, 4, 3, 3, 1, 2, 2}},
			{Name: "Tuntang", Scores: []float64{1, 2, 1, 2, 2, 1, 2, 1, 1}},
		},
	}

	first, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	second, err := Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if !bytes.Equal(a, b) {
		t.Errorf("expected identical output\nfirst:  %s\nsecond: %s", a, b)
	}
}

func TestScoreMonotonicInBenefit(t *testing.T) {
	base := []Alternative{
		{Name: "A", Scores: []float64{2, 3}},
		{Name: "B", Scores: []float64{5, 2}},
		{Name: "C", Scores: []float64{4, 1}},
		{Name: "D", Scores: []float64{3, 3}},
	}
	position := func(alts []Alternative, name string) int {
		r, err := Score(Matrix{Criteria: twoCriteria(), Alternatives: alts})
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		for _, res := range r.Results {
			if res.Name == name {
				return res.Rank
			}
		}
		t.Fatalf("%s missing from results", name)
		return 0
	}

	prev := position(base, "A")
	for _, v := range []float64{2.5, 3, 4, 6, 10, 50} {
		alts := make([]Alternative, len(base))
		copy(alts, base)
		alts[0] = Alternative{Name: "A", Scores: []float64{v, 3}}

		rank := position(alts, "A")
		if rank > prev {
			t.Fatalf("raising A's benefit to %v dropped it from rank %d to %d", v, prev, rank)
		}
		prev = rank
	}
	if prev != 1 {
		t.Errorf("expected A to reach rank 1, got %d", prev)
	}
}

func TestScoreDoesNotMutateInput(t *testing.T) {
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "Y", Scores: []float64{5, 2}},
			{Name: "X", Scores: []float64{10, 2}},
		},
	}
	if _, err := Score(m); err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if m.Alternatives[0].Name != "Y" || m.Alternatives[0].Scores[0] != 5 {
		t.Errorf("input alternatives were modified: %+v", m.Alternatives)
	}
	if m.Criteria[0].Weight != 0.6 {
		t.Errorf("input criteria were modified: %+v", m.Criteria)
	}
}

func TestScoreShapeMismatch(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Score(Matrix{Criteria: twoCriteria()})
		if !errors.Is(err, ErrShapeMismatch) {
			t.Fatalf("expected shape mismatch, got %v", err)
		}
		var sme *ShapeMismatchError
		if !errors.As(err, &sme) || !sme.Empty {
			t.Errorf("expected Empty to be set, got %+v", sme)
		}
	})

	t.Run("unnamed row without scores", func(t *testing.T) {
		_, err := Score(Matrix{
			Criteria:     twoCriteria(),
			Alternatives: []Alternative{{Name: "", Scores: nil}},
		})
		var sme *ShapeMismatchError
		if !errors.As(err, &sme) {
			t.Fatalf("expected ShapeMismatchError, got %v", err)
		}
		if sme.Empty {
			t.Error("one alternative is present, Empty must be false")
		}
		if strings.Contains(err.Error(), "no alternatives") {
			t.Errorf("message should report the short row, got %q", err.Error())
		}
	})

	t.Run("short row", func(t *testing.T) {
		_, err := Score(Matrix{
			Criteria: twoCriteria(),
			Alternatives: []Alternative{
				{Name: "ok", Scores: []float64{1, 2}},
				{Name: "short", Scores: []float64{1}},
			},
		})
		var sme *ShapeMismatchError
		if !errors.As(err, &sme) {
			t.Fatalf("expected ShapeMismatchError, got %v", err)
		}
		if sme.Alternative != "short" || sme.Want != 2 || sme.Got != 1 {
			t.Errorf("unexpected error fields %+v", sme)
		}
	})
}

func TestScoreInvalidValues(t *testing.T) {
	for _, v := range []float64{-1, math.NaN(), math.Inf(1)} {
		_, err := Score(Matrix{
			Criteria:     twoCriteria(),
			Alternatives: []Alternative{{Name: "bad", Scores: []float64{1, v}}},
		})
		var ive *InvalidValueError
		if !errors.As(err, &ive) {
			t.Fatalf("value %v: expected InvalidValueError, got %v", v, err)
		}
		if ive.Criterion != "C2" {
			t.Errorf("value %v: expected criterion C2, got %q", v, ive.Criterion)
		}
	}
}

func TestExplainMatchesScore(t *testing.T) {
	e := NewEngine(0, false, discardLogger())
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "X", Scores: []float64{10, 2}},
			{Name: "Y", Scores: []float64{5, 4}},
		},
	}

	ex, err := e.Explain(m)
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	r, _ := e.Score(m)
	if ex.Best != r.Best {
		t.Errorf("explain best %+v differs from score best %+v", ex.Best, r.Best)
	}
	if len(ex.Breakdowns) != 2 {
		t.Fatalf("expected 2 breakdowns, got %d", len(ex.Breakdowns))
	}
	for _, b := range ex.Breakdowns {
		var total float64
		for _, f := range b.Factors {
			total += f.Weighted
		}
		if math.Abs(total-b.Score) > 1e-12 {
			t.Errorf("%s: factors sum to %f, score is %f", b.Name, total, b.Score)
		}
	}
	if ex.Breakdowns[0].Factors[1].Weighted >= 0 {
		t.Error("expected cost contribution to be negative")
	}
}

func TestEngineFrontier(t *testing.T) {
	m := Matrix{
		Criteria: twoCriteria(),
		Alternatives: []Alternative{
			{Name: "X", Scores: []float64{10, 2}},
			{Name: "Y", Scores: []float64{5, 2}},
			{Name: "Z", Scores: []float64{4, 1}},
		},
	}

	r, err := NewEngine(0, true, discardLogger()).Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if len(r.Frontier) != 2 || r.Frontier[0] != "X" || r.Frontier[1] != "Z" {
		t.Errorf("expected frontier [X Z], got %v", r.Frontier)
	}

	r, _ = NewEngine(0, false, discardLogger()).Score(m)
	if r.Frontier != nil {
		t.Errorf("expected no frontier when disabled, got %v", r.Frontier)
	}
}

func TestEngineConcurrentUse(t *testing.T) {
	e := NewEngine(0, true, discardLogger())
	m := Matrix{
		Criteria: DefaultCriteria(),
		Alternatives: []Alternative{
			{Name: "a", Scores: []float64{3, 4, 2, 1, 4, 2, 2, 3, 3}},
			{Name: "b", Scores: []float64{2, 3, 4, 4, 3, 3, 1, 2, 2}},
		},
	}
	want, err := e.Score(m)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Score(m)
			if err != nil {
				t.Errorf("Score failed: %v", err)
				return
			}
			if got.Best != want.Best {
				t.Errorf("expected best %+v, got %+v", want.Best, got.Best)
			}
		}()
	}
	wg.Wait()
}
