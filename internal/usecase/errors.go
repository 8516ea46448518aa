package usecase

import (
	"errors"
	"strings"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrTransport marks network or HTTP level failures talking to the player provider.
	ErrTransport = errors.New("player provider unreachable")
	// ErrProviderFailure marks well-formed responses that report an error.
	ErrProviderFailure = errors.New("player provider reported an error")
	// ErrPlayerNotAvailable is returned when drafting a player that is not in the pool.
	ErrPlayerNotAvailable = errors.New("player is not in the available pool")
)

// ProviderError carries the message of an error envelope returned by the provider.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return ErrProviderFailure.Error()
	}
	return ErrProviderFailure.Error() + ": " + e.Message
}

func (e *ProviderError) Unwrap() error {
	return ErrProviderFailure
}

// ErrorMessage renders err for display next to the player list.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}

	var providerErr *ProviderError
	switch {
	case errors.As(err, &providerErr) && strings.TrimSpace(providerErr.Message) != "":
		return "Failed to load players: " + providerErr.Message
	case errors.Is(err, ErrTransport), errors.Is(err, ErrDependencyUnavailable):
		return "Failed to fetch players. Check your connection and try again."
	case errors.Is(err, ErrInvalidInput):
		return "Invalid search parameters."
	default:
		return "Failed to fetch players."
	}
}
