package placeholder

import (
	"fmt"
	"strings"

	"github.com/itsatony/go-cuserr"
)

// ResolutionError reports a failed placeholder resolution: either a key
// that could not be resolved (no resolver value, no default) or a circular
// reference among keys under resolution.
//
// The rendered message lists the value texts that were being resolved when
// the failure occurred, innermost first, e.g.
//
//	Could not resolve placeholder 'bogus' in value "${p1}:${p2}:${bogus}" <-- "${p3}"
type ResolutionError struct {
	key      string
	circular bool
	values   []string // value texts under resolution, innermost first
}

// newUnresolvableError creates an unresolvable-placeholder error for key,
// found while resolving value.
func newUnresolvableError(key, value string) *ResolutionError {
	return &ResolutionError{key: key, values: []string{value}}
}

// newCircularError creates a circular-reference error for key, detected
// while resolving value.
func newCircularError(key, value string) *ResolutionError {
	return &ResolutionError{key: key, circular: true, values: []string{value}}
}

// withValue appends an enclosing value text to the resolution chain. Called
// while the error unwinds through each transitively-resolved value.
func (e *ResolutionError) withValue(value string) *ResolutionError {
	e.values = append(e.values, value)
	return e
}

// Error renders the failure message with the full value chain.
func (e *ResolutionError) Error() string {
	var sb strings.Builder
	if e.circular {
		sb.WriteString(fmt.Sprintf(ErrFmtCircularReference, e.key))
	} else {
		sb.WriteString(fmt.Sprintf(ErrFmtUnresolvablePlaceholder, e.key))
	}
	for i, value := range e.values {
		if i == 0 {
			sb.WriteString(StrValueChainIntro)
		} else {
			sb.WriteString(StrValueChainSep)
		}
		sb.WriteByte('"')
		sb.WriteString(value)
		sb.WriteByte('"')
	}
	return sb.String()
}

// Key returns the placeholder key that failed to resolve.
func (e *ResolutionError) Key() string {
	return e.key
}

// IsCircular reports whether the failure was a circular reference rather
// than an unresolvable key.
func (e *ResolutionError) IsCircular() bool {
	return e.circular
}

// Values returns the value texts that were under resolution when the
// failure occurred, innermost first.
func (e *ResolutionError) Values() []string {
	values := make([]string, len(e.values))
	copy(values, e.values)
	return values
}

// NewConfigError creates an engine configuration error.
func NewConfigError(msg string) error {
	return cuserr.NewValidationError(ErrCodeConfig, msg)
}

// NewResolveInputError creates an error for invalid resolve arguments.
func NewResolveInputError(msg string) error {
	return cuserr.NewValidationError(ErrCodeResolve, msg)
}

// NewSourceError creates an error for a failing resolver source (YAML
// parsing, database connectivity).
func NewSourceError(msg string, cause error) error {
	if cause != nil {
		return cuserr.WrapStdError(cause, ErrCodeSource, msg)
	}
	return cuserr.NewValidationError(ErrCodeSource, msg)
}
