// File: lexer.go
// Title: Formula Lexical Analyzer
// Description: Converts formula strings into a stream of element, number and
//              bracket tokens. Tokens are produced on demand so that the
//              parser reports the first error in reading order.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF     TokenType = iota
	TokenIllegal           // carries the ErrorKind in Token.Problem
	TokenElement           // H, Mg
	TokenNumber            // 2, 14
	TokenOpen              // ( [ {
	TokenClose             // ) ] }
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return "ILLEGAL"
	case TokenElement:
		return "ELEMENT"
	case TokenNumber:
		return "NUMBER"
	case TokenOpen:
		return "OPEN"
	case TokenClose:
		return "CLOSE"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Value    string
	Position int         // byte offset in the input
	Bracket  BracketKind // set for TokenOpen and TokenClose
	Problem  ErrorKind   // set for TokenIllegal
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenIllegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Type, t.Value)
	}
}

// Lexer performs lexical analysis of a formula
type Lexer struct {
	input    string
	position int // next byte to read
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken returns the next token. After the end of input every call
// returns TokenEOF.
func (l *Lexer) NextToken() Token {
	if l.position >= len(l.input) {
		return Token{Type: TokenEOF, Position: len(l.input)}
	}

	start := l.position
	ch := l.input[start]

	switch {
	case isUpper(ch):
		l.position++
		if l.position < len(l.input) && isLower(l.input[l.position]) {
			l.position++
		}
		return Token{Type: TokenElement, Value: l.input[start:l.position], Position: start}

	case isLower(ch):
		l.position++
		return Token{Type: TokenIllegal, Value: string(ch), Position: start, Problem: InvalidAtomSymbol}

	case isDigit(ch):
		for l.position < len(l.input) && isDigit(l.input[l.position]) {
			l.position++
		}
		return Token{Type: TokenNumber, Value: l.input[start:l.position], Position: start}
	}

	if kind, ok := openingKind(ch); ok {
		l.position++
		return Token{Type: TokenOpen, Value: string(ch), Position: start, Bracket: kind}
	}
	if kind, ok := closingKind(ch); ok {
		l.position++
		return Token{Type: TokenClose, Value: string(ch), Position: start, Bracket: kind}
	}

	r, size := utf8.DecodeRuneInString(l.input[start:])
	l.position += size
	value := string(r)
	if r == utf8.RuneError && size == 1 {
		value = fmt.Sprintf("\\x%02x", ch)
	}
	return Token{Type: TokenIllegal, Value: value, Position: start, Problem: UnexpectedCharacter}
}

// Tokenize returns all tokens up to and including TokenEOF. On an illegal
// token it returns the tokens read so far and a *ParseError.
func (l *Lexer) Tokenize() ([]Token, error) {
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == TokenIllegal {
			return tokens, illegalTokenError(l.input, tok)
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

// Tokenize is a convenience function that tokenizes input
func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).Tokenize()
}

func illegalTokenError(input string, tok Token) *ParseError {
	if tok.Problem == InvalidAtomSymbol {
		return newParseError(InvalidAtomSymbol, input, tok.Position, tok.Value,
			"element symbol must start with an uppercase letter")
	}
	return newParseError(UnexpectedCharacter, input, tok.Position, tok.Value,
		"unexpected character %q", tok.Value)
}

func isUpper(ch byte) bool {
	return 'A' <= ch && ch <= 'Z'
}

func isLower(ch byte) bool {
	return 'a' <= ch && ch <= 'z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
