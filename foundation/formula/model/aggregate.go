// File: aggregate.go
// Title: Ordered Element Aggregate
// Description: Implements the insertion-ordered multiset of element counts
//              built by the parser for every bracket scope.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package model

import (
	"errors"
	"math/bits"
)

var (
	// ErrCountOverflow indicates a count no longer fits into uint64
	ErrCountOverflow = errors.New("model: element count overflows uint64")

	// ErrZeroCount indicates an attempt to add or scale by zero
	ErrZeroCount = errors.New("model: element count must be positive")
)

// Aggregate maps element symbols to counts and remembers the order in
// which symbols were first added. The zero value is not usable; call
// NewAggregate.
type Aggregate struct {
	order  []string
	counts map[string]uint64
}

// NewAggregate creates an empty aggregate
func NewAggregate() *Aggregate {
	return &Aggregate{counts: make(map[string]uint64)}
}

// Add adds count atoms of symbol. A new symbol is appended to the order.
// On error the aggregate is unchanged.
func (a *Aggregate) Add(symbol string, count uint64) error {
	if count == 0 {
		return ErrZeroCount
	}

	current, exists := a.counts[symbol]
	sum, ok := addCounts(current, count)
	if !ok {
		return ErrCountOverflow
	}

	if !exists {
		a.order = append(a.order, symbol)
	}
	a.counts[symbol] = sum
	return nil
}

// Scaled returns a new aggregate with every count multiplied by factor.
// The receiver is not modified.
func (a *Aggregate) Scaled(factor uint64) (*Aggregate, error) {
	if factor == 0 {
		return nil, ErrZeroCount
	}

	scaled := &Aggregate{
		order:  make([]string, len(a.order)),
		counts: make(map[string]uint64, len(a.counts)),
	}
	copy(scaled.order, a.order)

	for _, symbol := range a.order {
		hi, lo := bits.Mul64(a.counts[symbol], factor)
		if hi != 0 {
			return nil, ErrCountOverflow
		}
		scaled.counts[symbol] = lo
	}

	return scaled, nil
}

// Merge adds every count of other to the receiver. Symbols already present
// keep their position; new symbols are appended in other's order. On error
// the receiver is unchanged.
func (a *Aggregate) Merge(other *Aggregate) error {
	for _, symbol := range other.order {
		if _, ok := addCounts(a.counts[symbol], other.counts[symbol]); !ok {
			return ErrCountOverflow
		}
	}

	for _, symbol := range other.order {
		if err := a.Add(symbol, other.counts[symbol]); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the count of symbol and whether it is present
func (a *Aggregate) Count(symbol string) (uint64, bool) {
	count, ok := a.counts[symbol]
	return count, ok
}

// Len returns the number of distinct symbols
func (a *Aggregate) Len() int {
	return len(a.order)
}

// Symbols returns the symbols in first-seen order
func (a *Aggregate) Symbols() []string {
	symbols := make([]string, len(a.order))
	copy(symbols, a.order)
	return symbols
}

// Molecule returns the aggregate as an ordered Molecule. An empty
// aggregate yields an empty, non-nil Molecule.
func (a *Aggregate) Molecule() Molecule {
	molecule := make(Molecule, 0, len(a.order))
	for _, symbol := range a.order {
		molecule = append(molecule, ElementCount{Symbol: symbol, Count: a.counts[symbol]})
	}
	return molecule
}

func addCounts(x, y uint64) (uint64, bool) {
	sum, carry := bits.Add64(x, y, 0)
	return sum, carry == 0
}
