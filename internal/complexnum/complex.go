// Package complexnum provides the immutable complex-number value used by the
// root finders. Every operation returns a new value; nothing mutates its
// receiver. Equality is exact and component-wise, matching the behavior of
// the == operator on the struct.
package complexnum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrDivisionByZero is returned by Div when the divisor is the zero complex
// number (both components exactly zero).
var ErrDivisionByZero = errors.New("division by zero complex number")

// Complex is a complex number with float64 components.
type Complex struct {
	re float64
	im float64
}

var (
	// Zero is 0 + 0i.
	Zero = Complex{}
	// One is 1 + 0i.
	One = Complex{re: 1}
	// I is the imaginary unit 0 + 1i.
	I = Complex{im: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// Real returns re + 0i.
func Real(re float64) Complex {
	return Complex{re: re}
}

// Imag returns 0 + im·i.
func Imag(im float64) Complex {
	return Complex{im: im}
}

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z · w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z / w using conjugate multiplication, (z·w̄)/|w|².
// It fails with ErrDivisionByZero when w is exactly zero.
func (z Complex) Div(w Complex) (Complex, error) {
	if w.re == 0 && w.im == 0 {
		return Complex{}, ErrDivisionByZero
	}
	denom := w.re*w.re + w.im*w.im
	return Complex{
		re: (z.re*w.re + z.im*w.im) / denom,
		im: (z.im*w.re - z.re*w.im) / denom,
	}, nil
}

// Scale returns z multiplied by the real factor f.
func (z Complex) Scale(f float64) Complex {
	return Complex{re: z.re * f, im: z.im * f}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Plus is the unary identity; it returns z unchanged.
func (z Complex) Plus() Complex { return z }

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Abs returns the magnitude sqrt(re² + im²).
func (z Complex) Abs() float64 {
	return math.Hypot(z.re, z.im)
}

// IsReal reports whether the imaginary part is exactly zero.
func (z Complex) IsReal() bool { return z.im == 0 }

// IsFinite reports whether both components are finite.
func (z Complex) IsFinite() bool {
	return !math.IsNaN(z.re) && !math.IsInf(z.re, 0) &&
		!math.IsNaN(z.im) && !math.IsInf(z.im, 0)
}

// Equal reports exact component-wise equality. Two values that differ only
// by rounding are not equal; use ApproxEqual for tolerant comparison.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// String renders z as "X + Yi".
func (z Complex) String() string {
	return fmt.Sprintf("%v + %vi", z.re, z.im)
}

// RealSqrt returns the square root of a real number placed on the axis that
// keeps it exact: sqrt(x) on the real axis for x >= 0, sqrt(-x) on the
// imaginary axis for x < 0. It is not the general complex square root.
func RealSqrt(x float64) Complex {
	if x >= 0 {
		return Complex{re: math.Sqrt(x)}
	}
	return Complex{im: math.Sqrt(-x)}
}

// Cbrt returns the principal complex cube root of z. It is a general helper
// for callers holding an arbitrary complex value; the cubic solver works on
// real cube-root arguments and uses math.Cbrt instead.
func Cbrt(z Complex) Complex {
	if z.re == 0 && z.im == 0 {
		return Zero
	}
	c := cmplx.Pow(complex(z.re, z.im), complex(1.0/3.0, 0))
	return Complex{re: real(c), im: imag(c)}
}

// ApproxEqual reports whether a and b are within tol of each other in
// magnitude of their difference.
func ApproxEqual(a, b Complex, tol float64) bool {
	return a.Sub(b).Abs() <= tol
}
