package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitFieldsKeepsParenthesizedSpansTogether(t *testing.T) {
	assert.Equal(t, []string{"a", "c(a & b)"}, splitFields("a       c(a & b)"))
}

func TestSplitFieldsPlainTwoFields(t *testing.T) {
	assert.Equal(t, []string{"current", "a"}, splitFields("current a"))
}

func TestSplitFieldsDetectsExtraField(t *testing.T) {
	assert.Equal(t, []string{"current", "a", "b"}, splitFields("current a b"))
}

func TestStripCommentRemovesTrailingComment(t *testing.T) {
	assert.Equal(t, "current a  ", stripComment("current a  # a comment"))
}

func TestStripCommentLeavesLineWithoutHashUnchanged(t *testing.T) {
	assert.Equal(t, "current a", stripComment("current a"))
}
