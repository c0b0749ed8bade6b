package roots

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/agbru/polyroots/internal/complexnum"
)

// Polynomial is an immutable polynomial bound to the strategy that solves it.
// The strategy is chosen once, when the Polynomial is built.
type Polynomial struct {
	coefficients []float64
	strategy     Strategy
}

// NewPolynomial normalizes coefficients and selects the strategy for the
// resulting degree. It fails with an *UnsupportedDegreeError when the
// normalized list does not describe a degree 1 to 3 polynomial.
func NewPolynomial(coefficients []float64) (*Polynomial, error) {
	normalized := Normalize(coefficients)
	strategy, err := SelectStrategy(normalized)
	if err != nil {
		return nil, err
	}
	return &Polynomial{coefficients: normalized, strategy: strategy}, nil
}

// Coefficients returns a copy of the normalized little-endian coefficients.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coefficients))
	copy(out, p.coefficients)
	return out
}

// Degree returns the polynomial degree.
func (p *Polynomial) Degree() int { return len(p.coefficients) - 1 }

// Strategy returns the strategy bound at construction.
func (p *Polynomial) Strategy() Strategy { return p.strategy }

// FindRoots computes the roots with the bound strategy. Results are not
// cached.
func (p *Polynomial) FindRoots() ([]complexnum.Complex, error) {
	return p.strategy.FindRoots(p.coefficients)
}

// String renders the polynomial highest power first, e.g.
// "x^3 - 6x^2 + 11x - 6". Zero terms are omitted.
func (p *Polynomial) String() string {
	var b strings.Builder
	for i := len(p.coefficients) - 1; i >= 0; i-- {
		c := p.coefficients[i]
		if c == 0 {
			continue
		}
		mag := math.Abs(c)
		switch {
		case b.Len() == 0 && c < 0:
			b.WriteString("-")
		case b.Len() > 0 && c < 0:
			b.WriteString(" - ")
		case b.Len() > 0:
			b.WriteString(" + ")
		}
		if mag != 1 || i == 0 {
			b.WriteString(strconv.FormatFloat(mag, 'g', -1, 64))
		}
		switch i {
		case 0:
		case 1:
			b.WriteString("x")
		default:
			fmt.Fprintf(&b, "x^%d", i)
		}
	}
	if b.Len() == 0 {
		return "0"
	}
	return b.String()
}
