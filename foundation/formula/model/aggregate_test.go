package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_AddKeepsFirstSeenOrder(t *testing.T) {
	agg := NewAggregate()
	require.NoError(t, agg.Add("K", 4))
	require.NoError(t, agg.Add("O", 2))
	require.NoError(t, agg.Add("K", 1))
	require.NoError(t, agg.Add("N", 1))

	assert.Equal(t, []string{"K", "O", "N"}, agg.Symbols())
	assert.Equal(t, Molecule{{"K", 5}, {"O", 2}, {"N", 1}}, agg.Molecule())

	count, ok := agg.Count("K")
	assert.True(t, ok)
	assert.Equal(t, uint64(5), count)

	_, ok = agg.Count("S")
	assert.False(t, ok)
}

func TestAggregate_AddRejectsZeroAndOverflow(t *testing.T) {
	agg := NewAggregate()
	assert.ErrorIs(t, agg.Add("H", 0), ErrZeroCount)
	assert.Equal(t, 0, agg.Len())

	require.NoError(t, agg.Add("H", math.MaxUint64))
	assert.ErrorIs(t, agg.Add("H", 1), ErrCountOverflow)

	count, _ := agg.Count("H")
	assert.Equal(t, uint64(math.MaxUint64), count, "failed Add must not change the count")
}

func TestAggregate_ScaledReturnsNewValue(t *testing.T) {
	inner := NewAggregate()
	require.NoError(t, inner.Add("S", 1))
	require.NoError(t, inner.Add("O", 3))

	scaled, err := inner.Scaled(2)
	require.NoError(t, err)

	assert.Equal(t, Molecule{{"S", 2}, {"O", 6}}, scaled.Molecule())
	assert.Equal(t, Molecule{{"S", 1}, {"O", 3}}, inner.Molecule(), "receiver must stay untouched")

	_, err = inner.Scaled(0)
	assert.ErrorIs(t, err, ErrZeroCount)

	big := NewAggregate()
	require.NoError(t, big.Add("C", math.MaxUint64/2+1))
	_, err = big.Scaled(2)
	assert.ErrorIs(t, err, ErrCountOverflow)
}

func TestAggregate_MergeAppendsNewSymbols(t *testing.T) {
	outer := NewAggregate()
	require.NoError(t, outer.Add("O", 1))
	require.NoError(t, outer.Add("N", 1))

	inner := NewAggregate()
	require.NoError(t, inner.Add("S", 2))
	require.NoError(t, inner.Add("O", 6))

	require.NoError(t, outer.Merge(inner))
	assert.Equal(t, Molecule{{"O", 7}, {"N", 1}, {"S", 2}}, outer.Molecule())
}

func TestAggregate_MergeIsAtomicOnOverflow(t *testing.T) {
	outer := NewAggregate()
	require.NoError(t, outer.Add("H", 1))
	require.NoError(t, outer.Add("O", math.MaxUint64))

	inner := NewAggregate()
	require.NoError(t, inner.Add("H", 1))
	require.NoError(t, inner.Add("O", 1))

	assert.ErrorIs(t, outer.Merge(inner), ErrCountOverflow)
	assert.Equal(t, Molecule{{"H", 1}, {"O", math.MaxUint64}}, outer.Molecule())
}

func TestAggregate_EmptyMoleculeIsNotNil(t *testing.T) {
	molecule := NewAggregate().Molecule()
	assert.NotNil(t, molecule)
	assert.Empty(t, molecule)
}
