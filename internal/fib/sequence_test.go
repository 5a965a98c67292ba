package fib

import (
	"errors"
	"math"
	"testing"
)

func TestSequence(t *testing.T) {
	seq, err := Sequence(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, v := range want {
		if seq[i] != v {
			t.Errorf("term %d: expected %d, got %d", i, v, seq[i])
		}
	}
}

func TestSequence_Bounds(t *testing.T) {
	if _, err := Sequence(1); !errors.Is(err, ErrTooFewTerms) {
		t.Errorf("expected ErrTooFewTerms, got %v", err)
	}
	if _, err := Sequence(93); !errors.Is(err, ErrTooManyTerms) {
		t.Errorf("expected ErrTooManyTerms, got %v", err)
	}

	seq, err := Sequence(MaxTerms)
	if err != nil {
		t.Fatalf("unexpected error at max terms: %v", err)
	}
	if seq[91] != 7540113804746346429 {
		t.Errorf("term 91: got %d", seq[91])
	}
}

func TestRatios(t *testing.T) {
	seq, _ := Sequence(20)
	ratios := seq.Ratios()

	if ratios[0] != 1 {
		t.Errorf("ratio 0 should be 1, got %f", ratios[0])
	}
	if ratios[2] != 2 {
		t.Errorf("ratio 2 should be 2, got %f", ratios[2])
	}
	if math.Abs(ratios[19]-Phi) > 1e-7 {
		t.Errorf("ratio 19 should be within 1e-7 of phi, got %f", ratios[19])
	}
}

func TestDiffs(t *testing.T) {
	seq, _ := Sequence(12)
	diffs := seq.Diffs()

	if diffs[0] != 0 {
		t.Errorf("diff 0 should be 0, got %d", diffs[0])
	}
	// F(i) - F(i-1) = F(i-2)
	for i := 2; i < len(seq); i++ {
		if diffs[i] != seq[i-2] {
			t.Errorf("diff %d: expected %d, got %d", i, seq[i-2], diffs[i])
		}
	}
}

func TestSum(t *testing.T) {
	seq, _ := Sequence(10)

	// sum of first n Fibonacci terms is F(n+2) - 1
	total, err := seq.Sum(7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != seq[9]-1 {
		t.Errorf("expected %d, got %d", seq[9]-1, total)
	}

	if _, err := seq.Sum(10); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestIndexAt(t *testing.T) {
	tests := []struct {
		t    float64
		n    int
		want int
	}{
		{0, 20, 0},
		{0.4, 20, 0},
		{0.5, 20, 1},
		{3.2, 20, 6},
		{10.0, 20, 0}, // wraps
		{10.5, 20, 1},
		{1.0, 0, 0}, // degenerate
	}
	for _, tt := range tests {
		if got := IndexAt(tt.t, tt.n); got != tt.want {
			t.Errorf("IndexAt(%f, %d): expected %d, got %d", tt.t, tt.n, tt.want, got)
		}
	}
}

func TestStatsAt(t *testing.T) {
	seq, _ := Sequence(20)

	s, err := StatsAt(seq, 6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Trailing) != 5 {
		t.Errorf("expected 5 trailing terms, got %d", len(s.Trailing))
	}
	if s.Trailing[4] != 13 {
		t.Errorf("expected last trailing term 13, got %d", s.Trailing[4])
	}
	if s.Total != 33 {
		t.Errorf("expected running sum 33, got %d", s.Total)
	}

	s, err = StatsAt(seq, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Trailing) != 2 {
		t.Errorf("expected 2 trailing terms near start, got %d", len(s.Trailing))
	}

	if _, err := StatsAt(seq, 20); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}
