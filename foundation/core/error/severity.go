// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.2.0: Severity mapping for formula and config codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input, e.g. a malformed formula
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure the caller may work around
	SeverityMedium

	// SeverityHigh indicates a failure that stops the current command,
	// e.g. an unreadable configuration file
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the toolkit
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the default severity for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh
	case CodeUnknown, CodeCanceled:
		return SeverityMedium
	}
	if code.IsSyntax() {
		return SeverityLow
	}
	switch code {
	case CodeInvalidInput, CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
