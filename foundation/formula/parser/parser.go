// File: parser.go
// Title: Formula Recursive Descent Parser
// Description: Implements the parsing phase of formula processing. Walks the
//              token stream with one token of lookahead, aggregates element
//              counts per bracket level and reports position-tagged errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

package parser

import (
	"errors"
	"strconv"

	mdwerror "github.com/msto63/molecule/foundation/core/error"
	mdwlog "github.com/msto63/molecule/foundation/core/log"
	"github.com/msto63/molecule/foundation/formula/model"
)

// DefaultMaxDepth is the bracket nesting limit used when Options.MaxDepth is 0
const DefaultMaxDepth = 64

// Parser parses formulas. It keeps no per-call state and is safe for
// concurrent use.
type Parser struct {
	logger  *mdwlog.Logger
	options Options
}

// Options configures parser behavior
type Options struct {
	Logger         *mdwlog.Logger
	MaxDepth       int // 0 means DefaultMaxDepth
	MaxInputLength int // 0 means unlimited
}

// New creates a new formula parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxDepth < 0 {
		return nil, mdwerror.New("max depth must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New").
			WithDetail("max_depth", opts.MaxDepth)
	}
	if opts.MaxInputLength < 0 {
		return nil, mdwerror.New("max input length must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("parser.New").
			WithDetail("max_input_length", opts.MaxInputLength)
	}

	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}

	return &Parser{
		logger:  opts.Logger.WithField("component", "formula-parser"),
		options: opts,
	}, nil
}

// Parse parses input with a parser using default options
func Parse(input string) (model.Molecule, error) {
	p, err := New(Options{})
	if err != nil {
		return nil, err
	}
	return p.Parse(input)
}

// MaxDepth returns the effective nesting limit
func (p *Parser) MaxDepth() int {
	return p.options.MaxDepth
}

// Parse parses a formula and returns its elements in order of first
// appearance. Errors are of type *ParseError.
func (p *Parser) Parse(input string) (model.Molecule, error) {
	if limit := p.options.MaxInputLength; limit > 0 && len(input) > limit {
		return nil, newParseError(InputTooLong, input, limit, "",
			"input exceeds maximum length: %d > %d", len(input), limit)
	}

	tracing := p.logger.IsLevelEnabled(mdwlog.LevelTrace)
	if tracing {
		p.logger.Trace("Starting formula parsing", mdwlog.Fields{
			"input":  input,
			"length": len(input),
		})
	}

	s := &parseState{
		input:    input,
		lexer:    NewLexer(input),
		maxDepth: p.options.MaxDepth,
	}
	s.advance()

	agg, err := s.parseMolecule(0)
	if err == nil {
		err = s.expectEnd()
	}
	if err != nil {
		if tracing {
			p.logger.Trace("Formula parsing failed", mdwlog.Fields{
				"input": input,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	molecule := agg.Molecule()
	if tracing {
		p.logger.Trace("Formula parsing completed", mdwlog.Fields{
			"input":    input,
			"elements": len(molecule),
		})
	}
	return molecule, nil
}

// parseState holds the cursor of a single Parse call
type parseState struct {
	input    string
	lexer    *Lexer
	current  Token
	maxDepth int
}

func (s *parseState) advance() {
	s.current = s.lexer.NextToken()
}

// parseMolecule parses terms until a token that cannot start a term.
// The stopping token is left in s.current for the caller to judge.
func (s *parseState) parseMolecule(depth int) (*model.Aggregate, error) {
	agg := model.NewAggregate()

	for {
		switch s.current.Type {
		case TokenElement:
			if err := s.parseAtom(agg); err != nil {
				return nil, err
			}
		case TokenOpen:
			if err := s.parseGroup(agg, depth); err != nil {
				return nil, err
			}
		case TokenIllegal:
			return nil, illegalTokenError(s.input, s.current)
		default:
			return agg, nil
		}
	}
}

// parseAtom parses element-symbol multiplier? into agg
func (s *parseState) parseAtom(agg *model.Aggregate) error {
	symbol := s.current
	s.advance()

	count, _, err := s.parseMultiplier()
	if err != nil {
		return err
	}

	if err := agg.Add(symbol.Value, count); err != nil {
		return s.overflowError(symbol, err)
	}
	return nil
}

// parseGroup parses open-bracket molecule close-bracket multiplier? and
// merges the scaled group into agg
func (s *parseState) parseGroup(agg *model.Aggregate, depth int) error {
	open := s.current
	if depth >= s.maxDepth {
		return newParseError(NestingTooDeep, s.input, open.Position, open.Value,
			"bracket nesting exceeds maximum depth of %d", s.maxDepth)
	}
	s.advance()

	inner, err := s.parseMolecule(depth + 1)
	if err != nil {
		return err
	}

	switch s.current.Type {
	case TokenClose:
		if s.current.Bracket != open.Bracket {
			return newParseError(UnmatchedClosingBracket, s.input, s.current.Position, s.current.Value,
				"expected '%c' to close '%c' at offset %d", open.Bracket.Close(), open.Bracket.Open(), open.Position)
		}
		s.advance()
	case TokenEOF:
		return newParseError(UnmatchedOpeningBracket, s.input, open.Position, open.Value,
			"'%c' is never closed", open.Bracket.Open())
	default:
		return newParseError(UnexpectedCharacter, s.input, s.current.Position, s.current.Value,
			"multiplier without preceding element or group")
	}

	factor, multiplier, err := s.parseMultiplier()
	if err != nil {
		return err
	}

	scaled, err := inner.Scaled(factor)
	if err != nil {
		return s.overflowError(multiplier, err)
	}
	if err := agg.Merge(scaled); err != nil {
		return s.overflowError(open, err)
	}
	return nil
}

// parseMultiplier consumes an optional digit sequence. Without digits the
// multiplier is 1 and the returned token is the zero Token.
func (s *parseState) parseMultiplier() (uint64, Token, error) {
	if s.current.Type != TokenNumber {
		return 1, Token{}, nil
	}

	tok := s.current
	value, err := strconv.ParseUint(tok.Value, 10, 64)
	if err != nil {
		return 0, tok, newParseError(InvalidMultiplier, s.input, tok.Position, tok.Value,
			"multiplier out of range")
	}
	if value == 0 {
		return 0, tok, newParseError(InvalidMultiplier, s.input, tok.Position, tok.Value,
			"multiplier must be positive")
	}

	s.advance()
	return value, tok, nil
}

// expectEnd checks that the top-level molecule consumed the whole input
func (s *parseState) expectEnd() error {
	switch s.current.Type {
	case TokenEOF:
		return nil
	case TokenClose:
		return newParseError(UnmatchedClosingBracket, s.input, s.current.Position, s.current.Value,
			"'%c' has no matching opening bracket", s.current.Bracket.Close())
	default:
		return newParseError(TrailingCharacters, s.input, s.current.Position, s.input[s.current.Position:],
			"unexpected trailing input")
	}
}

// overflowError reports a count overflow at tok, or at the current token
// when tok is the zero Token of an absent multiplier
func (s *parseState) overflowError(tok Token, cause error) *ParseError {
	if tok.Value == "" {
		tok = s.current
	}
	message := "element count overflows"
	if errors.Is(cause, model.ErrZeroCount) {
		message = "element count must be positive"
	}
	return newParseError(InvalidMultiplier, s.input, tok.Position, tok.Value, "%s", message)
}
