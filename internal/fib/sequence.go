package fib

import "math"

// Phi is the golden ratio, the limit of consecutive-term ratios.
var Phi = (1 + math.Sqrt(5)) / 2

const (
	// MinTerms is the shortest generatable sequence (the two seed terms).
	MinTerms = 2

	// MaxTerms is the largest index whose term fits in int64.
	MaxTerms = 92
)

// Terms is a Fibonacci sequence starting 1, 1.
type Terms []int64

// Sequence generates n Fibonacci terms.
func Sequence(n int) (Terms, error) {
	if n < MinTerms {
		return nil, ErrTooFewTerms
	}
	if n > MaxTerms {
		return nil, ErrTooManyTerms
	}
	t := make(Terms, n)
	t[0], t[1] = 1, 1
	for i := 2; i < n; i++ {
		t[i] = t[i-1] + t[i-2]
	}
	return t, nil
}

// Ratios returns the consecutive-term ratios. The first entry is 1 so the
// result aligns index-for-index with the sequence tail it describes.
func (t Terms) Ratios() []float64 {
	r := make([]float64, len(t))
	r[0] = 1
	for i := 1; i < len(t); i++ {
		r[i] = float64(t[i]) / float64(t[i-1])
	}
	return r
}

// Logs returns the natural log of each term.
func (t Terms) Logs() []float64 {
	l := make([]float64, len(t))
	for i, v := range t {
		l[i] = math.Log(float64(v))
	}
	return l
}

// Diffs returns first differences, with 0 at index 0. For Fibonacci terms
// the difference at i equals the term at i-2, which makes it a cheap
// self-check in tests.
func (t Terms) Diffs() []int64 {
	d := make([]int64, len(t))
	for i := 1; i < len(t); i++ {
		d[i] = t[i] - t[i-1]
	}
	return d
}

// IndexAt maps virtual time to the term index the panels highlight. The
// index advances at two terms per time unit and wraps at n.
func IndexAt(t float64, n int) int {
	if n <= 0 {
		return 0
	}
	idx := int(t*2) % n
	if idx < 0 {
		idx += n
	}
	return idx
}

// Sum returns the sum of the first n+1 terms.
func (t Terms) Sum(n int) (int64, error) {
	if n < 0 || n >= len(t) {
		return 0, ErrIndexOutOfRange
	}
	var total int64
	for _, v := range t[:n+1] {
		total += v
	}
	return total, nil
}
