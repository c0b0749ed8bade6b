// Package models defines the JSON documents polyroots emits, shared by the
// CLI -json output, the result file and the HTTP API.
package models

import (
	"math"
	"strconv"
)

// Number is a float64 that survives JSON encoding when it is not finite:
// NaN and infinities are written as the strings "NaN", "+Inf" and "-Inf".
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	switch {
	case math.IsNaN(f):
		return []byte(`"NaN"`), nil
	case math.IsInf(f, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(f, -1):
		return []byte(`"-Inf"`), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

// Root is one root of a polynomial.
type Root struct {
	Re   Number `json:"re"`
	Im   Number `json:"im"`
	Real bool   `json:"real"`
	// Text is the root rendered with the requested precision.
	Text string `json:"text"`
}

// Solution is the document for one solved polynomial.
type Solution struct {
	Polynomial   string    `json:"polynomial"`
	Coefficients []float64 `json:"coefficients"`
	Strategy     string    `json:"strategy"`
	Degree       int       `json:"degree"`
	Roots        []Root    `json:"roots"`
	DurationUS   float64   `json:"duration_us"`
}

// BatchItem is one line of a batch run: either a Solution or an Error.
type BatchItem struct {
	Line     int       `json:"line"`
	Input    string    `json:"input"`
	Solution *Solution `json:"solution,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// BatchReport summarizes a batch run.
type BatchReport struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}
