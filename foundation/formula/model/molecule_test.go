package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementCount_String(t *testing.T) {
	assert.Equal(t, "O", ElementCount{"O", 1}.String())
	assert.Equal(t, "K4", ElementCount{"K", 4}.String())
}

func TestMolecule_Rendering(t *testing.T) {
	fremysSalt := Molecule{{"K", 4}, {"O", 14}, {"N", 2}, {"S", 4}}

	assert.Equal(t, "K4O14N2S4", fremysSalt.Formula())
	assert.Equal(t, `[("K", 4), ("O", 14), ("N", 2), ("S", 4)]`, fremysSalt.String())
	assert.Equal(t, "[]", Molecule{}.String())
	assert.Equal(t, []string{"K", "O", "N", "S"}, fremysSalt.Symbols())
}

func TestMolecule_CountAndTotal(t *testing.T) {
	water := Molecule{{"H", 2}, {"O", 1}}

	assert.Equal(t, uint64(2), water.Count("H"))
	assert.Equal(t, uint64(0), water.Count("C"))

	total, ok := water.Total()
	assert.True(t, ok)
	assert.Equal(t, uint64(3), total)

	_, ok = Molecule{{"H", math.MaxUint64}, {"O", 1}}.Total()
	assert.False(t, ok)
}

func TestMolecule_Equal(t *testing.T) {
	a := Molecule{{"H", 2}, {"O", 1}}

	assert.True(t, a.Equal(Molecule{{"H", 2}, {"O", 1}}))
	assert.False(t, a.Equal(Molecule{{"O", 1}, {"H", 2}}), "order matters")
	assert.False(t, a.Equal(Molecule{{"H", 2}}))
}
