package cvss3

import (
	"errors"
	"strings"
)

// Error is the cvss3 error domain type.
//
// Every failure reported by this package is an *Error carrying one of the
// defined [ErrorKind] values. Failures that concern specific metrics list
// every offending metric in Metrics, not just the first encountered.
type Error struct {
	Inner   error
	Kind    ErrorKind
	Metrics []Metric
}

var (
	_ error                       = (*Error)(nil)
	_ interface{ Is(error) bool } = (*Error)(nil)
	_ interface{ Unwrap() error } = (*Error)(nil)
)

// Error implements error.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("cvss3: ")
	b.WriteString(string(e.Kind))
	if len(e.Metrics) != 0 {
		b.WriteString(": ")
		for i, m := range e.Metrics {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.String())
		}
	}
	if e.Inner != nil {
		b.WriteString(": ")
		b.WriteString(e.Inner.Error())
	}
	return b.String()
}

// Is enables [errors.Is].
//
// It compares the error kind. Callers should compare against a declared
// [ErrorKind] over a specific error.
func (e *Error) Is(kind error) bool {
	return errors.Is(e.Kind, kind)
}

// Unwrap enables [errors.Unwrap].
func (e *Error) Unwrap() error {
	return e.Inner
}

// ErrorKind represents classes of errors to be checked against.
type ErrorKind string

// Defined error kinds.
var (
	ErrMalformedVector = ErrorKind("malformed vector string")        // input does not match the vector grammar
	ErrDuplicateMetric = ErrorKind("multiple definitions of metric") // a metric appears more than once in a vector
	ErrMissingMetric   = ErrorKind("missing base metric")            // one or more Base metrics are absent
	ErrUnknownValue    = ErrorKind("unknown metric value")           // a supplied value is outside its metric's domain
)

// Error implements error.
func (e ErrorKind) Error() string {
	return string(e)
}
