// Package roots finds the complex roots of real polynomials of degree one to
// three with closed-form formulas. Coefficients are little-endian: index 0 is
// the constant term.
//
// The flow is one-way: Normalize strips trailing zero coefficients,
// SelectStrategy maps the remaining length to a Strategy, and the Strategy
// computes the roots. Polynomial bundles the first two steps at construction.
// Everything in this package is pure and safe for concurrent use.
package roots

import (
	"github.com/agbru/polyroots/internal/complexnum"
)

// Finder is the capability shared by every root-finding strategy.
type Finder interface {
	// FindRoots returns the roots of the polynomial whose little-endian
	// coefficients are given. The number of roots depends on the strategy
	// and, for quadratics, on the discriminant.
	FindRoots(coefficients []float64) ([]complexnum.Complex, error)
	// Name returns the lowercase identifier of the strategy.
	Name() string
}

// Strategy is the closed set of closed-form finders, selected by degree.
type Strategy uint8

const (
	// Linear solves c1·x + c0 = 0.
	Linear Strategy = iota + 1
	// Quadratic solves c2·x² + c1·x + c0 = 0.
	Quadratic
	// Cubic solves a·x³ + b·x² + c·x + d = 0 with Cardano's method.
	Cubic
)

var _ Finder = Linear

// Strategies lists every supported strategy in increasing degree.
func Strategies() []Strategy {
	return []Strategy{Linear, Quadratic, Cubic}
}

// Name implements Finder.
func (s Strategy) Name() string {
	switch s {
	case Linear:
		return "linear"
	case Quadratic:
		return "quadratic"
	case Cubic:
		return "cubic"
	default:
		return "unknown"
	}
}

// String returns the strategy name.
func (s Strategy) String() string { return s.Name() }

// Degree returns the polynomial degree the strategy handles.
func (s Strategy) Degree() int { return int(s) }

// CoefficientCount returns the exact number of coefficients the strategy
// accepts.
func (s Strategy) CoefficientCount() int { return int(s) + 1 }

// FindRoots implements Finder by dispatching to the matching formula.
func (s Strategy) FindRoots(coefficients []float64) ([]complexnum.Complex, error) {
	switch s {
	case Linear:
		return solveLinear(coefficients)
	case Quadratic:
		return solveQuadratic(coefficients)
	case Cubic:
		return solveCubic(coefficients)
	default:
		return nil, &PreconditionError{Strategy: s, Reason: "no such strategy"}
	}
}

// SelectStrategy maps a normalized coefficient list to the strategy that
// solves it: two coefficients are linear, three quadratic, four cubic. Any
// other length fails with an *UnsupportedDegreeError.
func SelectStrategy(coefficients []float64) (Strategy, error) {
	switch len(coefficients) {
	case 2:
		return Linear, nil
	case 3:
		return Quadratic, nil
	case 4:
		return Cubic, nil
	default:
		return 0, &UnsupportedDegreeError{Count: len(coefficients)}
	}
}

// Normalize returns a copy of coefficients with every trailing exact zero
// removed, so the last entry is the non-zero leading coefficient. An all-zero
// or empty input yields an empty slice. The input is never modified.
func Normalize(coefficients []float64) []float64 {
	n := len(coefficients)
	for n > 0 && coefficients[n-1] == 0 {
		n--
	}
	out := make([]float64, n)
	copy(out, coefficients[:n])
	return out
}
