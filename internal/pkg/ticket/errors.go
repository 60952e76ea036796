package ticket

import (
	"fmt"
	"strings"
)

// Kind classifies a shape violation. Every rejected document maps to at
// least one kind, so callers can tell a missing field from a malformed
// value without parsing error strings.
type Kind int

const (
	// MissingField reports a required element or attribute that is absent.
	MissingField Kind = iota
	// UnexpectedField reports an element or attribute the shape does not
	// declare, or (in strict mode) one that appears out of canonical order.
	UnexpectedField
	// TypeMismatch reports a value that does not parse as its declared
	// primitive type, such as a non-numeric uniqueId.
	TypeMismatch
	// ConstraintViolation reports a value of the right type that breaks a
	// declared facet, such as the service length or character rules.
	ConstraintViolation
	// MultipleOccurrence reports a field declared max-occurs 1 that
	// appears more than once.
	MultipleOccurrence
)

func (k Kind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case UnexpectedField:
		return "unexpected field"
	case TypeMismatch:
		return "type mismatch"
	case ConstraintViolation:
		return "constraint violation"
	case MultipleOccurrence:
		return "multiple occurrence"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// ValidationError describes one shape violation: the kind of rule that
// failed, the dotted path of the offending field (e.g.
// "header.expirationTime"), and a human-readable detail.
type ValidationError struct {
	Kind Kind
	Path string
	Msg  string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Kind, e.Path, e.Msg)
}

// Is makes errors.Is match any *ValidationError of the same kind, so
// callers can test for a class of violation without comparing messages.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Path == "" || e.Path == t.Path)
}

// ValidationErrors aggregates every violation found in one document.
// It unwraps to its members, so errors.As and errors.Is reach into the
// individual violations.
type ValidationErrors []*ValidationError

func (es ValidationErrors) Error() string {
	switch len(es) {
	case 0:
		return "no validation errors"
	case 1:
		return es[0].Error()
	}
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(es), strings.Join(msgs, "; "))
}

func (es ValidationErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}
