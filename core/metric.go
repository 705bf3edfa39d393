package core

import (
	"fmt"
	"math"
)

// LMetric is the L_p metric for arbitrary positive integer p, with an option
// to take the p-th root of the accumulated sum.
//
// For two vectors x and y of dimension n it computes
//
//	d(x, y) = (sum over i of |x_i - y_i|^p)^(1/p)
//
// when the root is taken, and the plain sum otherwise. Skipping the root is
// faster and preserves the ordering of distances, which is all that
// comparison-based consumers need.
//
// An LMetric is immutable and safe for concurrent use. The zero value is not
// a valid metric; use NewLMetric or one of the presets.
type LMetric struct {
	power    int
	takeRoot bool
}

// NewLMetric returns an LMetric with the given power and root behavior.
// power must be a positive integer.
func NewLMetric(power int, takeRoot bool) (LMetric, error) {
	if power < 1 {
		return LMetric{}, fmt.Errorf("power must be a positive integer, got %d", power)
	}
	return LMetric{power: power, takeRoot: takeRoot}, nil
}

// ManhattanDistance returns the L1 metric (no root).
func ManhattanDistance() LMetric { return LMetric{power: 1} }

// SquaredEuclideanDistance returns the L2 metric without the root.
func SquaredEuclideanDistance() LMetric { return LMetric{power: 2} }

// EuclideanDistance returns the L2 metric with the root.
func EuclideanDistance() LMetric { return LMetric{power: 2, takeRoot: true} }

// Metrics is a map of human–readable names to preset metrics.
// You can use it to choose a metric by name.
var Metrics = map[string]LMetric{
	"manhattan":         ManhattanDistance(),
	"squared_euclidean": SquaredEuclideanDistance(),
	"euclidean":         EuclideanDistance(),
}

// Power returns the metric's exponent p.
func (m LMetric) Power() int { return m.power }

// TakesRoot reports whether the 1/p root is applied to the accumulated sum.
func (m LMetric) TakesRoot() bool { return m.takeRoot }

// String returns a short description such as "L2" or "L2^2 (no root)".
func (m LMetric) String() string {
	if m.takeRoot {
		return fmt.Sprintf("L%d", m.power)
	}
	return fmt.Sprintf("L%d^%d (no root)", m.power, m.power)
}

// Evaluate computes the distance between two vectors.
// a and b must have the same length; Evaluate panics otherwise.
func (m LMetric) Evaluate(a, b []float32) float64 {
	if len(a) != len(b) {
		panic("vectors must have the same length")
	}
	sum := m.sum(a, b)
	if !m.takeRoot {
		return sum
	}
	return math.Pow(sum, 1/float64(m.power))
}

// EvaluateChecked is Evaluate with the length precondition reported as an
// error instead of a panic.
func (m LMetric) EvaluateChecked(a, b []float32) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("vector dimension %d does not match vector dimension %d",
			len(a), len(b))
	}
	return m.Evaluate(a, b), nil
}

// Func adapts the metric into a DistanceFunc.
func (m LMetric) Func() DistanceFunc {
	return m.Evaluate
}

// sum accumulates |a_i - b_i|^p in ascending index order. p=1 and p=2 use
// the specialized kernels; other powers go through math.Pow.
func (m LMetric) sum(a, b []float32) float64 {
	switch m.power {
	case 1:
		return sumAbsDiffs(a, b)
	case 2:
		return sumSquaredDiffs(a, b)
	}
	var sum float64
	p := float64(m.power)
	for i := range a {
		sum += math.Pow(math.Abs(float64(a[i])-float64(b[i])), p)
	}
	return sum
}
