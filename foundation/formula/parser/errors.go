// File: errors.go
// Title: Formula Syntax Errors
// Description: Defines ParseError and the error kinds reported by the lexer
//              and parser, and their mapping onto structured error codes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"fmt"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
)

// ErrorKind classifies a formula syntax error. ErrorKind implements error,
// so errors.Is(err, parser.InvalidMultiplier) matches any *ParseError of
// that kind.
type ErrorKind int

const (
	UnmatchedOpeningBracket ErrorKind = iota + 1
	UnmatchedClosingBracket
	InvalidAtomSymbol
	InvalidMultiplier
	TrailingCharacters
	UnexpectedCharacter
	NestingTooDeep
	InputTooLong
)

// String returns the name of the error kind
func (k ErrorKind) String() string {
	switch k {
	case UnmatchedOpeningBracket:
		return "UnmatchedOpeningBracket"
	case UnmatchedClosingBracket:
		return "UnmatchedClosingBracket"
	case InvalidAtomSymbol:
		return "InvalidAtomSymbol"
	case InvalidMultiplier:
		return "InvalidMultiplier"
	case TrailingCharacters:
		return "TrailingCharacters"
	case UnexpectedCharacter:
		return "UnexpectedCharacter"
	case NestingTooDeep:
		return "NestingTooDeep"
	case InputTooLong:
		return "InputTooLong"
	default:
		return "Unknown"
	}
}

// Error implements the error interface
func (k ErrorKind) Error() string {
	return "formula: " + k.String()
}

// Code returns the structured error code of the kind
func (k ErrorKind) Code() mdwerror.Code {
	switch k {
	case UnmatchedOpeningBracket:
		return mdwerror.CodeUnmatchedOpeningBracket
	case UnmatchedClosingBracket:
		return mdwerror.CodeUnmatchedClosingBracket
	case InvalidAtomSymbol:
		return mdwerror.CodeInvalidAtomSymbol
	case InvalidMultiplier:
		return mdwerror.CodeInvalidMultiplier
	case TrailingCharacters:
		return mdwerror.CodeTrailingCharacters
	case UnexpectedCharacter:
		return mdwerror.CodeUnexpectedCharacter
	case NestingTooDeep:
		return mdwerror.CodeNestingTooDeep
	case InputTooLong:
		return mdwerror.CodeInputTooLong
	default:
		return mdwerror.CodeUnknown
	}
}

// ParseError represents a formula syntax error with position information
type ParseError struct {
	Kind    ErrorKind
	Offset  int    // byte offset of the failure in Input
	Near    string // offending text at Offset, empty at end of input
	Message string
	Input   string
}

func (pe *ParseError) Error() string {
	if pe.Near == "" {
		return fmt.Sprintf("parse error at offset %d: %s", pe.Offset, pe.Message)
	}
	return fmt.Sprintf("parse error at offset %d: %s (near '%s')", pe.Offset, pe.Message, pe.Near)
}

// Is reports whether target is the ErrorKind of pe
func (pe *ParseError) Is(target error) bool {
	kind, ok := target.(ErrorKind)
	return ok && kind == pe.Kind
}

// Code returns the structured error code of the error kind
func (pe *ParseError) Code() mdwerror.Code {
	return pe.Kind.Code()
}

// AsError converts pe into a structured error for logging
func (pe *ParseError) AsError() *mdwerror.Error {
	return mdwerror.Wrap(pe, "invalid formula").
		WithCode(pe.Code()).
		WithSeverity(mdwerror.SeverityLow).
		WithOperation("parser.Parse").
		WithContext(pe.Input).
		WithDetails(map[string]interface{}{
			"kind":   pe.Kind.String(),
			"offset": pe.Offset,
			"near":   pe.Near,
		})
}

func newParseError(kind ErrorKind, input string, offset int, near, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Kind:    kind,
		Offset:  offset,
		Near:    near,
		Message: fmt.Sprintf(format, args...),
		Input:   input,
	}
}
