package resilience

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type transition struct {
	from, to CircuitState
}

func newTestBreaker(threshold int, timeout time.Duration, now *time.Time) (*CircuitBreaker, *[]transition) {
	var seen []transition
	b := NewCircuitBreaker("draftapi", CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: threshold,
		OpenTimeout:      timeout,
		HalfOpenMaxReq:   1,
	},
		withClock(func() time.Time { return *now }),
		WithStateChange(func(name string, from, to CircuitState) {
			if name != "draftapi" {
				panic("unexpected breaker name " + name)
			}
			seen = append(seen, transition{from, to})
		}),
	)
	return b, &seen
}

func TestCircuitBreaker_BasicTransitions(t *testing.T) {
	now := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	b, seen := newTestBreaker(2, 5*time.Second, &now)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("got state=%s want=%s", state, CircuitStateClosed)
	}

	require.NoError(t, b.Allow())
	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("got state=%s want=%s", state, CircuitStateOpen)
	}
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)

	now = now.Add(6 * time.Second)
	require.NoError(t, b.Allow())
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen, "only one half-open probe is admitted")

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("got state=%s want=%s", state, CircuitStateClosed)
	}

	require.Equal(t, []transition{
		{CircuitStateClosed, CircuitStateOpen},
		{CircuitStateOpen, CircuitStateHalfOpen},
		{CircuitStateHalfOpen, CircuitStateClosed},
	}, *seen)
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	now := time.Date(2026, 9, 6, 12, 0, 0, 0, time.UTC)
	b, _ := newTestBreaker(1, time.Second, &now)

	require.NoError(t, b.Allow())
	b.RecordFailure()
	now = now.Add(2 * time.Second)
	if state := b.State(); state != CircuitStateHalfOpen {
		t.Fatalf("got state=%s want=%s", state, CircuitStateHalfOpen)
	}

	require.NoError(t, b.Allow())
	b.RecordFailure()
	require.ErrorIs(t, b.Allow(), ErrCircuitOpen)
}

func TestCircuitBreaker_GuardIgnoresNonCountedErrors(t *testing.T) {
	now := time.Now()
	b, _ := newTestBreaker(1, time.Minute, &now)
	errUpstream := errors.New("upstream 503")
	errNotFound := errors.New("player not found")
	transient := func(err error) bool { return errors.Is(err, errUpstream) }

	require.ErrorIs(t, b.Guard(func() error { return errNotFound }, transient), errNotFound)
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("got state=%s want=%s", state, CircuitStateClosed)
	}

	require.ErrorIs(t, b.Guard(func() error { return errUpstream }, transient), errUpstream)
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("got state=%s want=%s", state, CircuitStateOpen)
	}

	called := false
	err := b.Guard(func() error { called = true; return nil }, transient)
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("got err=%v called=%v want open breaker to short-circuit", err, called)
	}
}

func TestCircuitBreaker_DisabledAdmitsEverything(t *testing.T) {
	b := NewCircuitBreaker("sportsdata", CircuitBreakerConfig{Enabled: false, FailureThreshold: 1})
	for range 5 {
		require.NoError(t, b.Allow())
		b.RecordFailure()
	}
	require.False(t, b.Enabled())
	require.Equal(t, CircuitStateClosed, b.State())
}

func TestNormalizeCircuitBreakerConfig(t *testing.T) {
	got := NormalizeCircuitBreakerConfig(CircuitBreakerConfig{Enabled: true})
	want := DefaultCircuitBreakerConfig()
	if got != want {
		t.Fatalf("got=%+v want=%+v", got, want)
	}
}

func TestCircuitBreakerConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CircuitBreakerConfig)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*CircuitBreakerConfig) {}},
		{name: "zero threshold", mutate: func(c *CircuitBreakerConfig) { c.FailureThreshold = 0 }, wantErr: true},
		{name: "negative timeout", mutate: func(c *CircuitBreakerConfig) { c.OpenTimeout = -time.Second }, wantErr: true},
		{name: "zero half-open", mutate: func(c *CircuitBreakerConfig) { c.HalfOpenMaxReq = 0 }, wantErr: true},
	}
	for _, tt := range tests {
		cfg := DefaultCircuitBreakerConfig()
		tt.mutate(&cfg)
		if err := cfg.Validate(); (err != nil) != tt.wantErr {
			t.Fatalf("%s: got err=%v wantErr=%v", tt.name, err, tt.wantErr)
		}
	}
}
