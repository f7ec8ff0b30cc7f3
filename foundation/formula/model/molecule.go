// File: molecule.go
// Title: Element Counts and Molecules
// Description: Defines ElementCount and Molecule, the ordered result of
//              parsing a formula, with helpers for rendering and comparison.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package model

import (
	"strconv"
	"strings"
)

// ElementCount pairs an element symbol with its number of atoms
type ElementCount struct {
	Symbol string `json:"symbol" yaml:"symbol"`
	Count  uint64 `json:"count" yaml:"count"`
}

// String returns the symbol followed by its count, omitting a count of 1
func (e ElementCount) String() string {
	if e.Count == 1 {
		return e.Symbol
	}
	return e.Symbol + strconv.FormatUint(e.Count, 10)
}

// Molecule is the ordered list of distinct elements of a parsed formula
type Molecule []ElementCount

// Count returns the count of symbol, or 0 if the molecule does not contain it
func (m Molecule) Count(symbol string) uint64 {
	for _, e := range m {
		if e.Symbol == symbol {
			return e.Count
		}
	}
	return 0
}

// Total returns the number of atoms in the molecule. The second value is
// false if the sum does not fit into uint64.
func (m Molecule) Total() (uint64, bool) {
	var total uint64
	for _, e := range m {
		next, ok := addCounts(total, e.Count)
		if !ok {
			return 0, false
		}
		total = next
	}
	return total, true
}

// Symbols returns the element symbols in order
func (m Molecule) Symbols() []string {
	symbols := make([]string, len(m))
	for i, e := range m {
		symbols[i] = e.Symbol
	}
	return symbols
}

// Formula renders the molecule in compact form, e.g. K4O14N2S4
func (m Molecule) Formula() string {
	var sb strings.Builder
	for _, e := range m {
		sb.WriteString(e.String())
	}
	return sb.String()
}

// String renders the molecule as a tuple list, e.g. [("H", 2), ("O", 1)]
func (m Molecule) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, e := range m {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(`("`)
		sb.WriteString(e.Symbol)
		sb.WriteString(`", `)
		sb.WriteString(strconv.FormatUint(e.Count, 10))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}

// Equal reports whether both molecules hold the same elements in the same order
func (m Molecule) Equal(other Molecule) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}
