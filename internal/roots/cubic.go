package roots

import (
	"math"

	"github.com/agbru/polyroots/internal/complexnum"
)

var halfSqrt3 = math.Sqrt(3) / 2

// solveCubic solves a·x³ + b·x² + c·x + d = 0 for little-endian input
// [d, c, b, a] by reducing to the depressed cubic t³ + p·t + q = 0 and
// applying Cardano's formula. It always returns three roots; real roots
// carry a zero imaginary part.
func solveCubic(coeffs []float64) ([]complexnum.Complex, error) {
	if len(coeffs) != 4 {
		return nil, wrongLength(Cubic, len(coeffs))
	}
	a := coeffs[3]
	if a == 0 {
		return nil, &PreconditionError{Strategy: Cubic, Reason: "leading coefficient is zero"}
	}
	b := coeffs[2] / a
	c := coeffs[1] / a
	d := coeffs[0] / a

	p := c - b*b/3
	q := 2*b*b*b/27 - b*c/3 + d
	discriminant := q*q/4 + p*p*p/27

	var u, v complexnum.Complex
	if discriminant < 0 {
		u, v = trigonometricPair(p, q)
	} else {
		u, v = cardanoPair(p, q, discriminant)
	}

	offset := complexnum.Real(b / 3)
	sum := u.Add(v)
	twist := complexnum.I.Mul(u.Sub(v)).Scale(halfSqrt3)
	base := sum.Scale(-0.5).Sub(offset)

	return []complexnum.Complex{
		sum.Sub(offset),
		base.Add(twist),
		base.Sub(twist),
	}, nil
}

// trigonometricPair handles three distinct real roots (negative
// discriminant, which implies p < 0). The cube roots are the conjugate pair
// r·e^{±iθ}; their sum and difference make the three roots real. The acos
// argument is clamped to [-1, 1] to absorb rounding near a repeated root.
func trigonometricPair(p, q float64) (complexnum.Complex, complexnum.Complex) {
	r := math.Sqrt(-p / 3)
	arg := -(q / 2) * math.Sqrt(-27/(p*p*p))
	arg = math.Max(-1, math.Min(1, arg))
	theta := math.Acos(arg) / 3

	u := complexnum.New(r*math.Cos(theta), r*math.Sin(theta))
	return u, u.Conj()
}

// cardanoPair handles a non-negative discriminant, where both cube-root
// arguments -q/2 ± sqrt(Δ) are real. Real cube roots are used so that
// u·v = -p/3 holds. The larger-magnitude argument is rooted directly and its
// partner derived from u·v = -p/3 to avoid cancellation.
func cardanoPair(p, q, discriminant float64) (complexnum.Complex, complexnum.Complex) {
	half := -q / 2
	s := math.Sqrt(discriminant)

	var u, v float64
	if half >= 0 {
		u = math.Cbrt(half + s)
		if u != 0 {
			v = -p / (3 * u)
		}
	} else {
		v = math.Cbrt(half - s)
		if v != 0 {
			u = -p / (3 * v)
		}
	}
	return complexnum.Real(u), complexnum.Real(v)
}
