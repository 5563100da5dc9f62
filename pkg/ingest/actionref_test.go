package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActionRefPartsPlain(t *testing.T) {
	name, edition, components, err := parseActionRefParts("a")
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, 0, edition)
	assert.Equal(t, "", components)
}

func TestParseActionRefPartsEdition(t *testing.T) {
	name, edition, components, err := parseActionRefParts("a[3]")
	require.NoError(t, err)
	assert.Equal(t, "a", name)
	assert.Equal(t, 3, edition)
	assert.Equal(t, "", components)
}

func TestParseActionRefPartsCombination(t *testing.T) {
	name, edition, components, err := parseActionRefParts("c(a & b)")
	require.NoError(t, err)
	assert.Equal(t, "c", name)
	assert.Equal(t, 0, edition)
	assert.Equal(t, "a & b", components)
}

func TestActionRegistryResolveNonExistentComponentsStillRegisters(t *testing.T) {
	r := newActionRegistry()
	action, err := r.resolve("c(d & e)")
	require.NoError(t, err)
	require.Len(t, action.Components, 2)
	assert.Equal(t, "d", action.Components[0].Name)
	assert.Equal(t, "e", action.Components[1].Name)
}
