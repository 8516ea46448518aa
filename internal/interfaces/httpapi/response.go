package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
	"go.opentelemetry.io/otel/trace"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// responseEnvelope is the wire shape the draft client decodes:
// {"status":"success","data":...} or {"status":"error","message":"..."}.
type responseEnvelope struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, responseEnvelope{
		Status: statusSuccess,
		Data:   data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := mapError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		trace.SpanFromContext(ctx).RecordError(err)
	}
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	writeJSON(ctx, w, status, responseEnvelope{
		Status:  statusError,
		Message: message,
	})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, responseEnvelope{
		Status:  statusError,
		Message: "internal server error",
	})
}

func mapError(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, usecase.ErrTransport), errors.Is(err, usecase.ErrProviderFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
