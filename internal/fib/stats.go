package fib

import (
	"fmt"
	"math"
	"strings"
)

// Stats holds the derived values the statistics panel shows for one term.
type Stats struct {
	Index    int
	Trailing Terms
	Ratio    float64
	Growth   float64 // percent growth over the previous term
	Total    int64   // running sum through Index
	PhiError float64 // |Ratio - Phi|
}

// StatsAt computes panel statistics for the term at idx.
func StatsAt(t Terms, idx int) (Stats, error) {
	if idx < 0 || idx >= len(t) {
		return Stats{}, ErrIndexOutOfRange
	}
	ratios := t.Ratios()

	start := idx - 4
	if start < 0 {
		start = 0
	}

	s := Stats{
		Index:    idx,
		Trailing: t[start : idx+1],
		Ratio:    ratios[idx],
		PhiError: math.Abs(ratios[idx] - Phi),
	}
	if idx > 0 {
		s.Growth = (float64(t[idx])/float64(t[idx-1]) - 1) * 100
	}
	s.Total, _ = t.Sum(idx)
	return s, nil
}

// Format renders the stats as the multi-line panel text.
func (s Stats) Format() string {
	var b strings.Builder

	terms := make([]string, len(s.Trailing))
	for i, v := range s.Trailing {
		terms[i] = fmt.Sprintf("%d", v)
	}
	fmt.Fprintf(&b, "Last terms:   %s\n", strings.Join(terms, " → "))
	fmt.Fprintf(&b, "Ratio:        %.6f\n", s.Ratio)
	fmt.Fprintf(&b, "Golden ratio: %.6f\n", Phi)
	if s.Index > 0 {
		fmt.Fprintf(&b, "Growth:       %.2f%%\n", s.Growth)
	}
	fmt.Fprintf(&b, "Running sum:  %d\n", s.Total)
	if s.Index > 1 {
		fmt.Fprintf(&b, "Error vs φ:   %.6f", s.PhiError)
	}
	return strings.TrimRight(b.String(), "\n")
}
