package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("fantasy-draft/internal/interfaces/httpapi")

// startSpan opens a child span only under an existing request span, so
// untraced probes stay span-free.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return apiTracer.Start(ctx, name)
}

func traceable(path string) bool {
	switch strings.ToLower(strings.TrimSpace(path)) {
	case "/healthz", "/livez", "/readyz":
		return false
	}
	return true
}

// routeName collapses player ids so detail lookups share one span name.
func routeName(r *http.Request) string {
	path := r.URL.Path
	if rest, ok := strings.CutPrefix(path, "/api/player/"); ok && rest != "" {
		path = "/api/player/{playerID}"
	}
	return r.Method + " " + path
}
