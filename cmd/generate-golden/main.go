package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/cmplx"
	"os"
	"path/filepath"
)

// GoldenRoot is a root in the golden file.
type GoldenRoot struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// GoldenData represents a single test case in the golden file.
type GoldenData struct {
	Name         string       `json:"name"`
	Coefficients []float64    `json:"coefficients"`
	Strategy     string       `json:"strategy"`
	Roots        []GoldenRoot `json:"roots"`
}

// goldenCase pairs coefficients with analytically known roots. Factors lists
// every root with multiplicity and defaults to Roots; it is used only to
// verify the case before writing it.
type goldenCase struct {
	name     string
	coeffs   []float64
	strategy string
	roots    []complex128
	factors  []complex128
}

func main() {
	outputDir := flag.String("out", "internal/roots/testdata", "Output directory for the golden file")
	flag.Parse()

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	sqrt2 := math.Sqrt(2)
	halfSqrt3 := math.Sqrt(3) / 2
	halfSqrt7 := math.Sqrt(7) / 2

	cases := []goldenCase{
		{name: "linear 2x-5", coeffs: []float64{-5, 2}, strategy: "linear", roots: []complex128{2.5}},
		{name: "linear 2x-4", coeffs: []float64{-4, 2}, strategy: "linear", roots: []complex128{2}},
		{name: "quadratic x^2+2", coeffs: []float64{2, 0, 1}, strategy: "quadratic", roots: []complex128{complex(0, sqrt2), complex(0, -sqrt2)}},
		{name: "quadratic x^2-1", coeffs: []float64{-1, 0, 1}, strategy: "quadratic", roots: []complex128{1, -1}},
		{name: "quadratic x^2", coeffs: []float64{0, 0, 1}, strategy: "quadratic", roots: []complex128{0}, factors: []complex128{0, 0}},
		{name: "quadratic x^2-2x+5", coeffs: []float64{5, -2, 1}, strategy: "quadratic", roots: []complex128{complex(1, 2), complex(1, -2)}},
		{name: "quadratic x^2-5x+6", coeffs: []float64{6, -5, 1}, strategy: "quadratic", roots: []complex128{3, 2}},
		{name: "cubic x^3-6x^2+11x-6", coeffs: []float64{-6, 11, -6, 1}, strategy: "cubic", roots: []complex128{1, 2, 3}},
		{name: "cubic 2x^3-12x^2+22x-12", coeffs: []float64{-12, 22, -12, 2}, strategy: "cubic", roots: []complex128{1, 2, 3}},
		{name: "cubic x^3-4x^2+6x-4", coeffs: []float64{-4, 6, -4, 1}, strategy: "cubic", roots: []complex128{2, complex(1, 1), complex(1, -1)}},
		{name: "cubic x^3-3x+2", coeffs: []float64{2, -3, 0, 1}, strategy: "cubic", roots: []complex128{-2, 1, 1}},
		{name: "cubic x^3-1", coeffs: []float64{-1, 0, 0, 1}, strategy: "cubic", roots: []complex128{1, complex(-0.5, halfSqrt3), complex(-0.5, -halfSqrt3)}},
		{name: "cubic x^3+x+2", coeffs: []float64{2, 1, 0, 1}, strategy: "cubic", roots: []complex128{-1, complex(0.5, halfSqrt7), complex(0.5, -halfSqrt7)}},
		{name: "cubic 2x^3", coeffs: []float64{0, 0, 0, 2}, strategy: "cubic", roots: []complex128{0, 0, 0}},
		{name: "cubic with trailing zeros", coeffs: []float64{-6, 11, -6, 1, 0, 0}, strategy: "cubic", roots: []complex128{1, 2, 3}},
	}

	var data []GoldenData

	fmt.Println("Generating golden data...")

	for _, c := range cases {
		factors := c.factors
		if factors == nil {
			factors = c.roots
		}
		if err := verify(c.coeffs, factors); err != nil {
			fmt.Fprintf(os.Stderr, "Case %q failed verification: %v\n", c.name, err)
			os.Exit(1)
		}
		entry := GoldenData{Name: c.name, Coefficients: c.coeffs, Strategy: c.strategy}
		for _, r := range c.roots {
			entry.Roots = append(entry.Roots, GoldenRoot{Re: real(r), Im: imag(r)})
		}
		data = append(data, entry)
		fmt.Printf("Generated %s\n", c.name)
	}

	filename := filepath.Join(*outputDir, "roots_golden.json")
	file, err := os.Create(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated golden file at %s\n", filename)
}

// verify expands the monic product of (x - r) over factors and checks it
// against coeffs divided by their leading non-zero coefficient. This is the
// oracle: it never calls the solvers under test.
func verify(coeffs []float64, factors []complex128) error {
	n := len(coeffs)
	for n > 0 && coeffs[n-1] == 0 {
		n--
	}
	if n-1 != len(factors) {
		return fmt.Errorf("degree %d but %d factors", n-1, len(factors))
	}
	lead := coeffs[n-1]

	product := []complex128{1}
	for _, r := range factors {
		next := make([]complex128, len(product)+1)
		for i, p := range product {
			next[i] -= p * r
			next[i+1] += p
		}
		product = next
	}
	for i, p := range product {
		want := complex(coeffs[i]/lead, 0)
		if cmplx.Abs(p-want) > 1e-9 {
			return fmt.Errorf("coefficient %d: expanded %v, want %v", i, p, want)
		}
	}
	return nil
}
