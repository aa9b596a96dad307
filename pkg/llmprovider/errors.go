package llmprovider

import (
	"errors"
	"fmt"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrProviderRateLimited indicates rate limit exceeded
	ErrProviderRateLimited = errors.New("provider rate limited")

	// ErrUnknownProvider is returned by the factory for an unsupported name.
	ErrUnknownProvider = errors.New("unknown provider")
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider  string
	Temporary bool
	Err       error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

type temporary interface {
	Temporary() bool
}

// wrapProviderError tags client errors with the provider name. Errors that do
// not say otherwise are treated as temporary.
func wrapProviderError(provider string, err error) error {
	pe := &ProviderError{Provider: provider, Temporary: true, Err: err}
	var t temporary
	if errors.As(err, &t) {
		pe.Temporary = t.Temporary()
	}
	return pe
}

// retryable reports whether another attempt against the same provider makes sense.
func retryable(err error) bool {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Temporary
	}
	return true
}
