package models

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumberMarshalJSON(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, `1.5`},
		{-2, `-2`},
		{0, `0`},
		{1e21, `1e+21`},
		{math.NaN(), `"NaN"`},
		{math.Inf(1), `"+Inf"`},
		{math.Inf(-1), `"-Inf"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(Number(tt.in))
		if err != nil {
			t.Fatalf("Marshal(%v) error: %v", tt.in, err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestSolutionJSONShape(t *testing.T) {
	t.Parallel()
	sol := Solution{
		Polynomial:   "x^2 + 2",
		Coefficients: []float64{2, 0, 1},
		Strategy:     "quadratic",
		Degree:       2,
		Roots:        []Root{{Re: 0, Im: Number(math.Inf(1)), Text: "inf"}},
	}
	raw, err := json.Marshal(sol)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var back map[string]any
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	roots := back["roots"].([]any)
	if roots[0].(map[string]any)["im"] != "+Inf" {
		t.Errorf("non-finite imaginary part not preserved: %s", raw)
	}
	if back["strategy"] != "quadratic" || back["degree"] != float64(2) {
		t.Errorf("unexpected document: %s", raw)
	}
}

func TestBatchItemOmitsEmpty(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(BatchItem{Line: 3, Input: "abc", Error: "bad"})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"line":3,"input":"abc","error":"bad"}` {
		t.Errorf("unexpected encoding %s", raw)
	}
}
