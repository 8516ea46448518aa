// Package observability wires tracing, continuous profiling and the pprof
// listener for the catalog API process.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/fantasy-draft/internal/config"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
)

type stopFunc func(context.Context) error

// Stack holds whatever Setup started. Disabled parts are skipped.
type Stack struct {
	logger *logging.Logger
	stops  []namedStop
}

type namedStop struct {
	name string
	stop stopFunc
}

// Setup starts each enabled backend. On error everything already started is
// stopped again.
func Setup(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Stack, error) {
	if logger == nil {
		logger = logging.Default()
	}
	s := &Stack{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{"tracing", startTracing},
		{"profiler", startProfiler},
		{"pprof", startPprof},
	}
	for _, st := range starters {
		stop, err := st.start(cfg, logger)
		if err != nil {
			_ = s.Shutdown(ctx)
			return nil, fmt.Errorf("start %s: %w", st.name, err)
		}
		if stop != nil {
			s.stops = append(s.stops, namedStop{name: st.name, stop: stop})
		}
	}
	return s, nil
}

// Enabled lists the running backends in start order.
func (s *Stack) Enabled() []string {
	names := make([]string, len(s.stops))
	for i, ns := range s.stops {
		names[i] = ns.name
	}
	return names
}

// Shutdown stops backends in reverse start order so traces flush last.
func (s *Stack) Shutdown(ctx context.Context) error {
	var errs []error
	for i := len(s.stops) - 1; i >= 0; i-- {
		ns := s.stops[i]
		if err := ns.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", ns.name, err))
			continue
		}
		s.logger.Debug("observability backend stopped", "backend", ns.name)
	}
	s.stops = nil
	return errors.Join(errs...)
}
