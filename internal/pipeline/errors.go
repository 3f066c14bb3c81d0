package pipeline

import (
	"fmt"
	"strings"
)

// InvalidInputError indicates the request failed validation. The
// pipeline never starts when this is returned.
type InvalidInputError struct {
	Field   string
	Message string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Message)
}

// trimmed is shorthand used by request validation.
func trimmed(s string) string { return strings.TrimSpace(s) }
