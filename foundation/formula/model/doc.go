// File: doc.go
// Title: Formula Model Package Documentation
// Description: Value types produced by the formula parser.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial model implementation

/*
Package model defines the values the formula parser works with:

  • ElementCount: one element symbol with its count
  • Molecule: the ordered parse result, one entry per distinct symbol
  • Aggregate: an insertion-ordered multiset used while parsing

Counts are uint64 and always positive. Every arithmetic operation checks
for overflow and reports ErrCountOverflow instead of wrapping around.
Order is first appearance: merging never reorders symbols already present.
*/
package model
