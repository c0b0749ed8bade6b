package roots

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDegree is matched (via errors.Is) by every
// UnsupportedDegreeError returned by the dispatcher.
var ErrUnsupportedDegree = errors.New("unsupported equation type")

// UnsupportedDegreeError reports a normalized coefficient count that no
// closed-form finder handles.
type UnsupportedDegreeError struct {
	// Count is the number of coefficients after normalization.
	Count int
}

// Error names the unsupported case.
func (e *UnsupportedDegreeError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedDegree, describeCount(e.Count))
}

// Is makes errors.Is(err, ErrUnsupportedDegree) succeed.
func (e *UnsupportedDegreeError) Is(target error) bool {
	return target == ErrUnsupportedDegree
}

// Degree returns the polynomial degree the rejected input represents, or -1
// for an empty coefficient list.
func (e *UnsupportedDegreeError) Degree() int {
	return e.Count - 1
}

func describeCount(n int) string {
	switch {
	case n <= 0:
		return "all coefficients are zero"
	case n == 1:
		return "constant equation has no variable to solve for"
	default:
		return fmt.Sprintf("degree %d equation (supported degrees: 1 to 3)", n-1)
	}
}

// PreconditionError signals that a finder was invoked with coefficients it
// cannot accept. Reaching it through NewPolynomial indicates a dispatcher bug;
// it is only expected when a Strategy is called directly.
type PreconditionError struct {
	// Strategy is the finder that rejected the input.
	Strategy Strategy
	// Reason describes the violated condition.
	Reason string
}

// Error implements the error interface.
func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s finder precondition violated: %s", e.Strategy, e.Reason)
}

func wrongLength(s Strategy, got int) error {
	return &PreconditionError{
		Strategy: s,
		Reason:   fmt.Sprintf("expected exactly %d coefficients, got %d", s.CoefficientCount(), got),
	}
}
