package observability

import (
	"strings"

	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/uptrace/uptrace-go/uptrace"
)

// startTracing points the global OpenTelemetry providers at Uptrace. The
// otelhttp middleware and otelsqlx spans export through them.
func startTracing(cfg config.Config, logger *logging.Logger) (stopFunc, error) {
	dsn := strings.TrimSpace(cfg.UptraceDSN)
	switch {
	case !cfg.UptraceEnabled:
		return nil, nil
	case dsn == "":
		logger.Warn("tracing requested without UPTRACE_DSN, skipping")
		return nil, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(dsn),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
	)
	logger.Info("tracing enabled", "exporter", "uptrace", "catalog_source", cfg.CatalogSource)
	return uptrace.Shutdown, nil
}
