package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adaptation-pathways/pathwaymap/pkg/model"
	"github.com/adaptation-pathways/pathwaymap/pkg/perrors"
)

func TestParseActionStylesAcceptsRGBAndRGBA(t *testing.T) {
	styles, err := ParseActionStyles(strings.NewReader("a #112233\nb #11223344\n"))
	require.NoError(t, err)
	assert.Equal(t, "#112233", styles["a"])
	assert.Equal(t, "#11223344", styles["b"])
}

func TestParseActionStylesBadColorFails(t *testing.T) {
	_, err := ParseActionStyles(strings.NewReader("a not-a-color\n"))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeBadColor, perrors.GetCode(err))
}

func TestParseActionStylesMalformedLine(t *testing.T) {
	_, err := ParseActionStyles(strings.NewReader("a #112233 extra\n"))
	require.Error(t, err)
	assert.Equal(t, perrors.CodeMalformedLine, perrors.GetCode(err))
}

func TestMergeStylesSetsColorByName(t *testing.T) {
	actions := []model.Action{{Name: "a"}, {Name: "b", Edition: 1}}
	merged := MergeStyles(actions, map[string]string{"a": "#112233"})
	assert.Equal(t, "#112233", merged[0].Design.Color)
	assert.Equal(t, "", merged[1].Design.Color)
}
