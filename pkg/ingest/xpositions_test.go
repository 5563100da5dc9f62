package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseXPositionsReadsKeyValuePairs(t *testing.T) {
	byKey, err := ParseXPositions(strings.NewReader("current 0\na[0] 10\nb[0] 15\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.0, byKey["current"])
	assert.Equal(t, 10.0, byKey["a[0]"])
	assert.Equal(t, 15.0, byKey["b[0]"])
}

func TestTippingPointByActionNameStripsInstanceSuffix(t *testing.T) {
	byName, err := TippingPointByActionName(map[string]float64{"current": 0, "a[0]": 10})
	require.NoError(t, err)
	assert.Equal(t, 0.0, byName["current"])
	assert.Equal(t, 10.0, byName["a"])
}

func TestParseXPositionsMalformedLine(t *testing.T) {
	_, err := ParseXPositions(strings.NewReader("current\n"))
	require.Error(t, err)
}
