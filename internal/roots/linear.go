package roots

import (
	"github.com/agbru/polyroots/internal/complexnum"
)

// solveLinear returns the single root -c0/c1 of c1·x + c0 = 0. A zero slope
// is reported as complexnum.ErrDivisionByZero rather than an infinite root.
func solveLinear(c []float64) ([]complexnum.Complex, error) {
	if len(c) != 2 {
		return nil, wrongLength(Linear, len(c))
	}
	if c[1] == 0 {
		return nil, complexnum.ErrDivisionByZero
	}
	return []complexnum.Complex{complexnum.Real(-c[0] / c[1])}, nil
}
