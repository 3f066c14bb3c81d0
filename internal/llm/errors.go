package llm

import (
	"errors"
	"fmt"
)

// ProviderUnavailableError indicates the upstream LLM provider was
// unreachable, timed out, or returned a non-success status. Fatal when
// raised during brainstorming; per-angle drafts substitute a fallback
// post instead.
type ProviderUnavailableError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *ProviderUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s provider unavailable: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s provider unavailable: %s", e.Provider, e.Message)
}

func (e *ProviderUnavailableError) Unwrap() error {
	return e.Cause
}

// IsProviderUnavailable reports whether err wraps a ProviderUnavailableError.
func IsProviderUnavailable(err error) bool {
	var pe *ProviderUnavailableError
	return errors.As(err, &pe)
}
