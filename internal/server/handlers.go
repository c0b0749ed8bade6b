package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"github.com/agbru/polyroots/internal/cli"
	"github.com/agbru/polyroots/internal/complexnum"
	"github.com/agbru/polyroots/internal/config"
	apperrors "github.com/agbru/polyroots/internal/errors"
	"github.com/agbru/polyroots/internal/service"
)

// handleHealth answers liveness probes.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, HealthResponse{Status: "healthy", Timestamp: time.Now().Unix()})
}

// handleStrategies lists the supported equation types.
func (s *Server) handleStrategies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	s.writeJSONResponse(w, http.StatusOK, StrategiesResponse{Strategies: service.Strategies()})
}

// handleSolve solves one polynomial. GET takes the coefficients in the 'c'
// query parameter; POST takes a JSON body {"coefficients": [...]}. Both
// accept an optional precision.
func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var (
		coefficients []float64
		precision    int
		err          error
	)
	switch r.Method {
	case http.MethodGet:
		coefficients, precision, err = s.parseSolveQuery(r)
	case http.MethodPost:
		coefficients, precision, err = s.parseSolveBody(w, r)
	default:
		s.writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if err != nil {
		var reqErr requestError
		if errors.As(err, &reqErr) {
			s.writeErrorResponse(w, reqErr.StatusCode, reqErr.Message)
		} else {
			s.writeErrorResponse(w, http.StatusBadRequest, err.Error())
		}
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeouts.RequestTimeout)
	defer cancel()

	sol, err := s.service.Solve(ctx, coefficients)
	if err != nil {
		s.writeErrorResponse(w, statusForSolveError(err), err.Error())
		return
	}
	s.writeJSONResponse(w, http.StatusOK, cli.ToModel(sol, precision))
}

// parseSolveQuery reads ?c=-6,11,-6,1&precision=4. Repeated 'c' values are
// concatenated.
func (s *Server) parseSolveQuery(r *http.Request) ([]float64, int, error) {
	query := r.URL.Query()
	values := query["c"]
	if len(values) == 0 {
		return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "Missing 'c' parameter"}
	}
	coefficients, err := cli.ParseCoefficients(strings.Join(values, " "))
	if err != nil {
		return nil, 0, err
	}

	precision := s.cfg.Precision
	if p := query.Get("precision"); p != "" {
		n, err := strconv.Atoi(p)
		if err != nil || !validPrecision(n) {
			return nil, 0, precisionError()
		}
		precision = n
	}
	return coefficients, precision, nil
}

// parseSolveBody reads {"coefficients": [-6, 11, -6, 1], "precision": 4}.
// The coefficients may also be given as a single string in the CLI syntax.
func (s *Server) parseSolveBody(w http.ResponseWriter, r *http.Request) ([]float64, int, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.securityConfig.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, 0, requestError{
				StatusCode: http.StatusRequestEntityTooLarge,
				Message:    fmt.Sprintf("Request body exceeds %d bytes", tooLarge.Limit),
			}
		}
		return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "Could not read request body"}
	}
	if !gjson.ValidBytes(body) {
		return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "Request body is not valid JSON"}
	}

	field := gjson.GetBytes(body, "coefficients")
	var coefficients []float64
	switch {
	case !field.Exists():
		return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "Missing 'coefficients' field"}
	case field.IsArray():
		items := field.Array()
		if len(items) == 0 {
			return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "'coefficients' must not be empty"}
		}
		coefficients = make([]float64, len(items))
		for i, item := range items {
			if item.Type != gjson.Number {
				return nil, 0, requestError{
					StatusCode: http.StatusBadRequest,
					Message:    fmt.Sprintf("coefficients[%d] is not a number: %s", i, item.Raw),
				}
			}
			coefficients[i] = item.Float()
		}
	case field.Type == gjson.String:
		coefficients, err = cli.ParseCoefficients(field.Str)
		if err != nil {
			return nil, 0, err
		}
	default:
		return nil, 0, requestError{StatusCode: http.StatusBadRequest, Message: "'coefficients' must be an array of numbers"}
	}

	precision := s.cfg.Precision
	if p := gjson.GetBytes(body, "precision"); p.Exists() {
		if p.Type != gjson.Number || p.Float() != float64(p.Int()) || !validPrecision(int(p.Int())) {
			return nil, 0, precisionError()
		}
		precision = int(p.Int())
	}
	return coefficients, precision, nil
}

func validPrecision(n int) bool { return n >= 0 && n <= config.MaxPrecision }

func precisionError() error {
	return requestError{
		StatusCode: http.StatusBadRequest,
		Message:    fmt.Sprintf("Invalid 'precision': must be an integer between 0 and %d", config.MaxPrecision),
	}
}

// statusForSolveError maps a Solver error to an HTTP status.
func statusForSolveError(err error) int {
	switch apperrors.ExitCodeFor(err) {
	case apperrors.ExitErrorInput:
		return http.StatusBadRequest
	case apperrors.ExitErrorUnsupported:
		return http.StatusUnprocessableEntity
	case apperrors.ExitErrorTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ExitErrorCanceled:
		return http.StatusServiceUnavailable
	}
	if errors.Is(err, complexnum.ErrDivisionByZero) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (s *Server) writeJSONResponse(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding JSON response", err)
	}
}

func (s *Server) writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	s.writeJSONResponse(w, statusCode, ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
	})
}
