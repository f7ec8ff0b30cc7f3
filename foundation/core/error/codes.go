// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the molecule toolkit. Codes
//              classify failures for logging and for CLI exit handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-19 v0.2.0: Formula syntax codes replace service codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Formula syntax
	CodeUnmatchedOpeningBracket Code = "FORMULA_UNMATCHED_OPENING_BRACKET"
	CodeUnmatchedClosingBracket Code = "FORMULA_UNMATCHED_CLOSING_BRACKET"
	CodeInvalidAtomSymbol       Code = "FORMULA_INVALID_ATOM_SYMBOL"
	CodeInvalidMultiplier       Code = "FORMULA_INVALID_MULTIPLIER"
	CodeTrailingCharacters      Code = "FORMULA_TRAILING_CHARACTERS"
	CodeUnexpectedCharacter     Code = "FORMULA_UNEXPECTED_CHARACTER"
	CodeNestingTooDeep          Code = "FORMULA_NESTING_TOO_DEEP"
	CodeInputTooLong            Code = "FORMULA_INPUT_TOO_LONG"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput, CodeCanceled,
		CodeUnmatchedOpeningBracket, CodeUnmatchedClosingBracket, CodeInvalidAtomSymbol,
		CodeInvalidMultiplier, CodeTrailingCharacters, CodeUnexpectedCharacter,
		CodeNestingTooDeep, CodeInputTooLong,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnmatchedOpeningBracket, CodeUnmatchedClosingBracket, CodeInvalidAtomSymbol,
		CodeInvalidMultiplier, CodeTrailingCharacters, CodeUnexpectedCharacter,
		CodeNestingTooDeep, CodeInputTooLong:
		return "formula"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	default:
		return "generic"
	}
}

// IsSyntax reports whether the code describes a malformed formula
func (c Code) IsSyntax() bool {
	return c.Category() == "formula"
}
