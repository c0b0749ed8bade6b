// Package service wraps the root-finding core with the concerns a caller
// outside the core needs: input limits, cancellation, metrics, tracing and
// diagnostic logging. The CLI, the batch runner and the HTTP server all solve
// through a Solver.
package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/polyroots/internal/complexnum"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/logging"
	"github.com/agbru/polyroots/internal/roots"
)

var (
	// ErrTooManyCoefficients is returned when an input has more coefficients
	// than the configured limit, trailing zeros included.
	ErrTooManyCoefficients = errors.New("too many coefficients")
	// ErrNonFiniteCoefficient is returned for NaN or infinite coefficients.
	ErrNonFiniteCoefficient = errors.New("coefficient is not a finite number")
)

var (
	solvesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "polyroots_solves_total",
			Help: "The total number of polynomials submitted for solving",
		},
		[]string{"strategy", "status"},
	)
	solveDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "polyroots_solve_duration_seconds",
			Help:    "The duration of root finding in seconds",
			Buckets: prometheus.ExponentialBuckets(1e-7, 4, 10),
		},
		[]string{"strategy"},
	)
)

// unsolvedLabel is the strategy label for inputs rejected before a strategy
// was selected.
const unsolvedLabel = "none"

// Solution is the outcome of one successful solve.
type Solution struct {
	// Polynomial is the human-readable form, e.g. "x^2 + 2".
	Polynomial string
	// Coefficients are the normalized little-endian coefficients.
	Coefficients []float64
	// Strategy is the finder that produced the roots.
	Strategy roots.Strategy
	// Roots holds one entry per distinct root reported by the strategy.
	Roots []complexnum.Complex
	// Duration is the time spent in the core.
	Duration time.Duration
}

// Solver finds the roots of a polynomial given by little-endian coefficients.
type Solver interface {
	// Solve validates coefficients and returns the roots.
	//
	// Parameters:
	//   - ctx: Checked for cancellation before solving.
	//   - coefficients: Constant term first; trailing zeros are allowed.
	//
	// Returns:
	//   - *Solution: The roots and solve metadata.
	//   - error: An apperrors.InputError, an apperrors.SolveError wrapping a
	//     core error, or the context error.
	Solve(ctx context.Context, coefficients []float64) (*Solution, error)
}

// RootService is the production Solver.
type RootService struct {
	maxCoefficients int
	logger          logging.Logger
}

// Ensure RootService implements Solver.
var _ Solver = (*RootService)(nil)

// NewRootService creates a RootService. A maxCoefficients of 0 disables the
// size check; a nil logger discards diagnostics.
func NewRootService(maxCoefficients int, logger logging.Logger) *RootService {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &RootService{maxCoefficients: maxCoefficients, logger: logger}
}

// Solve implements Solver.
func (s *RootService) Solve(ctx context.Context, coefficients []float64) (solution *Solution, err error) {
	ctx, span := otel.Tracer("polyroots/service").Start(ctx, "Solve",
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attribute.Int("coefficients.count", len(coefficients))),
	)
	defer span.End()

	strategy := unsolvedLabel
	start := time.Now()
	defer func() {
		duration := time.Since(start)
		status := "success"
		if err != nil {
			status = "error"
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		solvesTotal.WithLabelValues(strategy, status).Inc()
		solveDuration.WithLabelValues(strategy).Observe(duration.Seconds())
		span.SetAttributes(attribute.String("strategy", strategy))

		s.logger.Debug("solve completed",
			logging.Floats("coefficients", coefficients),
			logging.String("strategy", strategy),
			logging.String("status", status),
			logging.Float64("duration_us", float64(duration.Nanoseconds())/1e3),
		)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.validate(coefficients); err != nil {
		return nil, err
	}

	polynomial, err := roots.NewPolynomial(coefficients)
	if err != nil {
		return nil, apperrors.SolveError{Cause: err}
	}
	strategy = polynomial.Strategy().Name()

	coreStart := time.Now()
	found, err := polynomial.FindRoots()
	if err != nil {
		return nil, apperrors.SolveError{Polynomial: polynomial.String(), Cause: err}
	}
	return &Solution{
		Polynomial:   polynomial.String(),
		Coefficients: polynomial.Coefficients(),
		Strategy:     polynomial.Strategy(),
		Roots:        found,
		Duration:     time.Since(coreStart),
	}, nil
}

func (s *RootService) validate(coefficients []float64) error {
	if s.maxCoefficients > 0 && len(coefficients) > s.maxCoefficients {
		return apperrors.NewInputError(
			fmt.Sprintf("%d coefficients", len(coefficients)),
			fmt.Errorf("%w: limit is %d", ErrTooManyCoefficients, s.maxCoefficients),
		)
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return apperrors.NewInputError(
				strconv.FormatFloat(c, 'g', -1, 64),
				fmt.Errorf("%w (position %d)", ErrNonFiniteCoefficient, i),
			)
		}
	}
	return nil
}

// StrategyInfo describes one supported strategy.
type StrategyInfo struct {
	Name         string `json:"name"`
	Degree       int    `json:"degree"`
	Coefficients int    `json:"coefficients"`
}

// Strategies lists the supported strategies in increasing degree.
func Strategies() []StrategyInfo {
	all := roots.Strategies()
	out := make([]StrategyInfo, 0, len(all))
	for _, s := range all {
		out = append(out, StrategyInfo{Name: s.Name(), Degree: s.Degree(), Coefficients: s.CoefficientCount()})
	}
	return out
}
