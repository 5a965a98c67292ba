package fib_test

import (
	"math"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/fibgalaxy/internal/fib"
)

func TestConvergence(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Golden Ratio Convergence Suite")
}

var _ = Describe("consecutive-term ratios", func() {
	var (
		seq    fib.Terms
		ratios []float64
	)

	BeforeEach(func() {
		var err error
		seq, err = fib.Sequence(40)
		Expect(err).NotTo(HaveOccurred())
		ratios = seq.Ratios()
	})

	It("converges monotonically in error toward phi", func() {
		// Checked up to index 30; past that the error drops below double
		// precision and comparisons stop being meaningful.
		prev := math.Abs(ratios[2] - fib.Phi)
		for i := 3; i <= 30; i++ {
			cur := math.Abs(ratios[i] - fib.Phi)
			Expect(cur).To(BeNumerically("<", prev),
				"error should shrink at every index, index %d", i)
			prev = cur
		}
	})

	It("alternates around phi", func() {
		for i := 2; i < 30; i++ {
			Expect((ratios[i] - fib.Phi) * (ratios[i+1] - fib.Phi)).To(BeNumerically("<", 0))
		}
	})

	It("reaches phi to double precision by term 40", func() {
		Expect(ratios[39]).To(BeNumerically("~", fib.Phi, 1e-15))
	})
})
