// File: bracket.go
// Title: Bracket Kinds
// Description: Enumerates the three interchangeable bracket pairs of the
//              formula grammar.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

// BracketKind identifies one of the three bracket pairs
type BracketKind int

const (
	BracketNone   BracketKind = iota
	BracketRound              // ( )
	BracketSquare             // [ ]
	BracketCurly              // { }
)

// Open returns the opening character of the bracket kind
func (b BracketKind) Open() byte {
	switch b {
	case BracketRound:
		return '('
	case BracketSquare:
		return '['
	case BracketCurly:
		return '{'
	default:
		return 0
	}
}

// Close returns the closing character of the bracket kind
func (b BracketKind) Close() byte {
	switch b {
	case BracketRound:
		return ')'
	case BracketSquare:
		return ']'
	case BracketCurly:
		return '}'
	default:
		return 0
	}
}

// String returns the name of the bracket kind
func (b BracketKind) String() string {
	switch b {
	case BracketRound:
		return "ROUND"
	case BracketSquare:
		return "SQUARE"
	case BracketCurly:
		return "CURLY"
	default:
		return "NONE"
	}
}

// openingKind classifies ch as an opening bracket
func openingKind(ch byte) (BracketKind, bool) {
	switch ch {
	case '(':
		return BracketRound, true
	case '[':
		return BracketSquare, true
	case '{':
		return BracketCurly, true
	default:
		return BracketNone, false
	}
}

// closingKind classifies ch as a closing bracket
func closingKind(ch byte) (BracketKind, bool) {
	switch ch {
	case ')':
		return BracketRound, true
	case ']':
		return BracketSquare, true
	case '}':
		return BracketCurly, true
	default:
		return BracketNone, false
	}
}
