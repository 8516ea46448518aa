package httpapi

import (
	"net/http"

	idgen "github.com/riskibarqy/fantasy-draft/internal/platform/id"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

// NewRouter serves the catalog read API behind tracing, request ids,
// access logs, CORS and panic recovery, outermost first.
func NewRouter(handler *Handler, logger *logging.Logger, corsAllowedOrigins []string) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler)
	registerCatalogRoutes(mux, handler)

	return chain(mux,
		tracing,
		requestID(idgen.NewUUIDGenerator()),
		requestLogging(logger),
		newCORSPolicy(corsAllowedOrigins).middleware,
		recoverPanic(logger),
	)
}
