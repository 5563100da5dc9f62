package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActionEqualityIsNameAndEditionOnly(t *testing.T) {
	a := Action{Name: "seawall", Edition: 0, Design: ActionDesign{Color: "#ff0000"}}
	b := Action{Name: "seawall", Edition: 0, Design: ActionDesign{Color: "#00ff00"}}
	assert.True(t, a.Equal(b))

	c := Action{Name: "seawall", Edition: 1}
	assert.False(t, a.Equal(c))
}

func TestIsCombination(t *testing.T) {
	plain := Action{Name: "seawall"}
	assert.False(t, plain.IsCombination())

	combo := Action{Name: "hybrid", Components: []Action{{Name: "seawall"}, {Name: "levee"}}}
	assert.True(t, combo.IsCombination())

	degenerate := Action{Name: "hybrid", Components: []Action{{Name: "seawall"}}}
	assert.False(t, degenerate.IsCombination())
}

func TestActionKeyDistinguishesEditions(t *testing.T) {
	a0 := Action{Name: "seawall", Edition: 0}
	a1 := Action{Name: "seawall", Edition: 1}
	assert.NotEqual(t, a0.Key(), a1.Key())
	assert.Equal(t, "seawall", a0.Key())
}
