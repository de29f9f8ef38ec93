package domain

import "fmt"

// The engine rejects bad requests with exactly one of three error categories.
// A whole chart-build request fails as a unit; there is no partial chart.

// InputError marks invalid caller input: bad dates, out-of-range coordinates,
// unknown ayanamsa or house-system identifiers. Detected at the boundary
// before any computation starts.
type InputError struct {
	Field  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// NewInputError creates an InputError for a named field.
func NewInputError(field, format string, args ...any) *InputError {
	return &InputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// EphemerisError marks a failure of the underlying astronomical computation,
// such as an unsupported date range or missing VSOP87 data. Fatal for the
// whole chart; never retried internally.
type EphemerisError struct {
	Op  string
	Err error
}

func (e *EphemerisError) Error() string {
	return fmt.Sprintf("ephemeris %s: %v", e.Op, e.Err)
}

func (e *EphemerisError) Unwrap() error {
	return e.Err
}

// ConfigurationError marks an inconsistent computation request, such as an
// unsupported varga number or a non-positive dasha horizon.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "configuration: " + e.Reason
}

// NewConfigurationError creates a ConfigurationError.
func NewConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Reason: fmt.Sprintf(format, args...)}
}
