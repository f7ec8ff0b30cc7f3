// File: doc.go
// Title: Formula Parser Package Documentation
// Description: Implements the lexical analyzer and recursive descent parser
//              for chemical formulas. Converts formula strings into ordered
//              element counts with position-tagged syntax errors.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial parser implementation

/*
Package parser turns a chemical formula such as K4[ON(SO3)2]2 into the
number of atoms per element.

Grammar:

	molecule       := term*
	term           := atom-term | group-term
	atom-term      := element-symbol multiplier?
	group-term     := open-bracket molecule close-bracket multiplier?
	element-symbol := uppercase-letter lowercase-letter?
	multiplier     := digit+

The three bracket pairs (), [] and {} nest the same way and must close with
their own kind. A missing multiplier means 1; a multiplier of 0 is an error.

The package includes:

  • Lexer producing tokens lazily, so the first error in left-to-right order wins
  • Parser with bounded nesting depth, safe for concurrent use
  • ParseError carrying an ErrorKind and the byte offset of the failure

Each bracket level owns its own model.Aggregate. A closing group scales that
aggregate by the group multiplier and merges it into the enclosing level,
which keeps the first-appearance order of symbols across nesting.
*/
package parser
