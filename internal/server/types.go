package server

import "github.com/agbru/polyroots/internal/service"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	// Error is the HTTP status text.
	Error string `json:"error"`
	// Message describes what was wrong with the request.
	Message string `json:"message,omitempty"`
}

// StrategiesResponse is the body of GET /strategies.
type StrategiesResponse struct {
	Strategies []service.StrategyInfo `json:"strategies"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// requestError is a rejected request with the status to answer.
type requestError struct {
	StatusCode int
	Message    string
}

func (e requestError) Error() string { return e.Message }
