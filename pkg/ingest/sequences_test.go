package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

func TestParseSequencesSingleEdge(t *testing.T) {
	transitions, err := ParseSequences(strings.NewReader("current a\n"))
	require.NoError(t, err)
	require.Len(t, transitions, 1)
	assert.Equal(t, "current", transitions[0].From.Name)
	assert.Equal(t, "a", transitions[0].To.Name)
}

func TestParseSequencesSkipsBlankAndCommentLines(t *testing.T) {
	input := "\n# a comment\ncurrent a  # trailing comment\n\n"
	transitions, err := ParseSequences(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transitions, 1)
}

func TestParseSequencesDivergingOrderPreserved(t *testing.T) {
	transitions, err := ParseSequences(strings.NewReader("current a\ncurrent b\ncurrent c\n"))
	require.NoError(t, err)
	require.Len(t, transitions, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{
		transitions[0].To.Name, transitions[1].To.Name, transitions[2].To.Name,
	})
}

func TestParseSequencesMalformedLineWrongFieldCount(t *testing.T) {
	_, err := ParseSequences(strings.NewReader("current\n"))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeMalformedLine, perrors.GetCode(err))

	_, err = ParseSequences(strings.NewReader("current a b\n"))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeMalformedLine, perrors.GetCode(err))
}

func TestParseSequencesActionCombinationSharedAcrossMentions(t *testing.T) {
	input := `
current a
current b
a       c(a & b)  # c is a combination of a and b
b       c         # This is the same action combination c
`
	transitions, err := ParseSequences(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transitions, 4)

	cFromA, cFromB := transitions[2].To, transitions[3].To
	require.Len(t, cFromA.Components, 2)
	assert.Equal(t, cFromA.Components, cFromB.Components)
}

func TestParseSequencesActionCombinationInconsistentOrderFails(t *testing.T) {
	input := `
current a
current b
b       c
a       c(a & b)
`
	_, err := ParseSequences(strings.NewReader(input))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeAmbiguousCombination, perrors.GetCode(err))
}

func TestParseSequencesDuplicateCombinationComponentFails(t *testing.T) {
	_, err := ParseSequences(strings.NewReader("current a(b & b)\n"))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeDuplicateCombinationComponent, perrors.GetCode(err))
}

func TestParseSequencesDuplicateComponentDifferentEditionsAccepted(t *testing.T) {
	_, err := ParseSequences(strings.NewReader("current a(a[1] & a[2])\n"))
	require.NoError(t, err)
}

func TestParseSequencesActionEditions(t *testing.T) {
	input := "current a[1]\na[1] b[1]\nb[1] c[1](a[1] & b[2])\n"
	transitions, err := ParseSequences(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, transitions, 3)

	c1 := transitions[2].To
	assert.Equal(t, "c", c1.Name)
	assert.Equal(t, 1, c1.Edition)
	require.Len(t, c1.Components, 2)
	assert.Equal(t, "a", c1.Components[0].Name)
	assert.Equal(t, 1, c1.Components[0].Edition)
	assert.Equal(t, "b", c1.Components[1].Name)
	assert.Equal(t, 2, c1.Components[1].Edition)
}
