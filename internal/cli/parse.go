package cli

import (
	"errors"
	"math"
	"strconv"
	"strings"

	apperrors "github.com/agbru/polyroots/internal/errors"
)

// ErrNoCoefficients is the cause of the InputError returned for blank input.
var ErrNoCoefficients = errors.New("no coefficients given")

// ErrNotFinite is the cause of the InputError returned for NaN or infinite
// tokens.
var ErrNotFinite = errors.New("coefficient must be a finite number")

// ParseCoefficients reads little-endian coefficients (constant term first)
// separated by whitespace, commas or semicolons. Enclosing brackets are
// ignored, so "[-6, 11, -6, 1]" parses too.
//
// Returns:
//   - []float64: The coefficients, in input order.
//   - error: An apperrors.InputError naming the first bad token.
func ParseCoefficients(line string) ([]float64, error) {
	trimmed := strings.TrimSpace(line)
	trimmed = strings.TrimPrefix(trimmed, "[")
	trimmed = strings.TrimSuffix(trimmed, "]")

	fields := strings.FieldsFunc(trimmed, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) == 0 {
		return nil, apperrors.NewInputError(line, ErrNoCoefficients)
	}

	coefficients := make([]float64, 0, len(fields))
	for _, field := range fields {
		value, err := strconv.ParseFloat(field, 64)
		if err != nil {
			var numErr *strconv.NumError
			if errors.As(err, &numErr) {
				err = numErr.Err
			}
			return nil, apperrors.NewInputError(field, err)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return nil, apperrors.NewInputError(field, ErrNotFinite)
		}
		coefficients = append(coefficients, value)
	}
	return coefficients, nil
}
