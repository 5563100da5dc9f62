package pathwayinput

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteXPositionsWritesOneLinePerEntry(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "xpositions.txt")

	err := WriteXPositions([]XPositionEntry{
		{Key: RootKey, XPosition: 100},
		{Key: "a[0]", XPosition: 105},
	}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "current 100\na[0] 105\n", string(data))
}

func TestWriteSequencesWritesOneLinePerPair(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sequences.txt")

	err := WriteSequences([]SequencePair{
		{From: RootKey, To: "a[0]"},
		{From: "a[0]", To: "b[0]"},
	}, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "current a[0]\na[0] b[0]\n", string(data))
}

func TestWriteXPositionsFailsOnUnwritableDirectory(t *testing.T) {
	err := WriteXPositions(nil, filepath.Join(t.TempDir(), "missing-dir", "xpositions.txt"))
	require.Error(t, err)
}
