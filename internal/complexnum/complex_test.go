package complexnum

import (
	"errors"
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestConstructors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		got    Complex
		re, im float64
	}{
		{"New", New(3, 4), 3, 4},
		{"Real", Real(-2.5), -2.5, 0},
		{"Imag", Imag(7), 0, 7},
		{"Zero", Zero, 0, 0},
		{"One", One, 1, 0},
		{"I", I, 0, 1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got.Re() != tt.re || tt.got.Im() != tt.im {
				t.Errorf("got (%v, %v), want (%v, %v)", tt.got.Re(), tt.got.Im(), tt.re, tt.im)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	t.Parallel()
	z := New(3, 4)
	w := New(1, 2)

	if got := z.Add(w); !got.Equal(New(4, 6)) {
		t.Errorf("Add = %v", got)
	}
	if got := z.Sub(w); !got.Equal(New(2, 2)) {
		t.Errorf("Sub = %v", got)
	}
	// (3+4i)(1+2i) = 3 + 6i + 4i - 8 = -5 + 10i
	if got := z.Mul(w); !got.Equal(New(-5, 10)) {
		t.Errorf("Mul = %v", got)
	}
	// (4+2i)/(1+i) = 3 - i
	q, err := New(4, 2).Div(New(1, 1))
	if err != nil {
		t.Fatalf("Div returned error: %v", err)
	}
	if !q.Equal(New(3, -1)) {
		t.Errorf("Div = %v", q)
	}
	if got := z.Neg(); !got.Equal(New(-3, -4)) {
		t.Errorf("Neg = %v", got)
	}
	if got := z.Plus(); !got.Equal(z) {
		t.Errorf("Plus = %v", got)
	}
	if got := z.Conj(); !got.Equal(New(3, -4)) {
		t.Errorf("Conj = %v", got)
	}
	if got := z.Scale(0.5); !got.Equal(New(1.5, 2)) {
		t.Errorf("Scale = %v", got)
	}
	if got := z.Abs(); got != 5 {
		t.Errorf("Abs = %v, want 5", got)
	}
	if got := I.Mul(I); !got.Equal(New(-1, 0)) {
		t.Errorf("i*i = %v", got)
	}
}

func TestDivisionByZero(t *testing.T) {
	t.Parallel()
	_, err := One.Div(Zero)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
	// A divisor with only one zero component is valid.
	if _, err := One.Div(Imag(2)); err != nil {
		t.Errorf("unexpected error dividing by 2i: %v", err)
	}
}

func TestEqualIsExact(t *testing.T) {
	t.Parallel()
	x, y := 0.1, 0.2
	a := Real(x + y)
	b := Real(0.3)
	if a.Equal(b) {
		t.Error("Equal should not tolerate rounding differences")
	}
	if !ApproxEqual(a, b, 1e-12) {
		t.Error("ApproxEqual should tolerate rounding differences")
	}
	if New(1, 2) != New(1, 2) {
		t.Error("== must agree with Equal")
	}
}

func TestRealSqrt(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want Complex
	}{
		{4, Real(2)},
		{0, Zero},
		{-9, Imag(3)},
		{-2, Imag(math.Sqrt(2))},
	}
	for _, tt := range tests {
		if got := RealSqrt(tt.in); !got.Equal(tt.want) {
			t.Errorf("RealSqrt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestCbrt(t *testing.T) {
	t.Parallel()
	if got := Cbrt(Real(8)); !ApproxEqual(got, Real(2), 1e-12) {
		t.Errorf("Cbrt(8) = %v", got)
	}
	// Principal branch of -1 is e^{iπ/3}.
	want := New(0.5, math.Sqrt(3)/2)
	if got := Cbrt(Real(-1)); !ApproxEqual(got, want, 1e-12) {
		t.Errorf("Cbrt(-1) = %v, want %v", got, want)
	}
	if got := Cbrt(Zero); !got.Equal(Zero) {
		t.Errorf("Cbrt(0) = %v", got)
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	tests := []struct {
		z    Complex
		want string
	}{
		{New(1, 2), "1 + 2i"},
		{New(2.5, -1), "2.5 + -1i"},
		{Zero, "0 + 0i"},
	}
	for _, tt := range tests {
		if got := tt.z.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	t.Parallel()
	if !New(1, 2).IsFinite() {
		t.Error("1+2i should be finite")
	}
	if Real(math.Inf(1)).IsFinite() || Imag(math.NaN()).IsFinite() {
		t.Error("Inf/NaN components should not be finite")
	}
}

// TestDivisionRoundTrip_PropertyBased checks that (a/b)·b recovers a for any
// non-zero divisor, within floating tolerance.
func TestDivisionRoundTrip_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("(a/b)*b ≈ a", prop.ForAll(
		func(ar, ai, br, bi float64) bool {
			a, b := New(ar, ai), New(br, bi)
			if b.Abs() < 1e-6 {
				return true
			}
			q, err := a.Div(b)
			if err != nil {
				return false
			}
			tol := 1e-9 * math.Max(1, a.Abs())
			return ApproxEqual(q.Mul(b), a, tol)
		},
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
		gen.Float64Range(-1e3, 1e3),
	))

	properties.Property("a - a == 0 and a + (-a) == 0", prop.ForAll(
		func(re, im float64) bool {
			a := New(re, im)
			return a.Sub(a).Equal(Zero) && a.Add(a.Neg()).Equal(Zero)
		},
		gen.Float64Range(-1e6, 1e6),
		gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}
