package perrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeUnknownAction, "unknown action: %s", "retreat")
	require.Error(t, err)
	assert.Equal(t, CodeUnknownAction, err.Code)
	assert.Equal(t, "unknown action: retreat", err.Message)
	assert.Nil(t, err.Cause)
	assert.Equal(t, "UNKNOWN_ACTION: unknown action: retreat", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(CodeWriteFailure, cause, "writing %s", "sequences.txt")
	require.Error(t, err)
	assert.Equal(t, CodeWriteFailure, err.Code)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk full")
}

func TestIsAndGetCode(t *testing.T) {
	err := New(CodeCycleDetected, "cycle")
	assert.True(t, Is(err, CodeCycleDetected))
	assert.False(t, Is(err, CodeEmpty))
	assert.Equal(t, CodeCycleDetected, GetCode(err))

	plain := errors.New("plain error")
	assert.False(t, Is(plain, CodeCycleDetected))
	assert.Equal(t, Code(""), GetCode(plain))
}

func TestUserMessage(t *testing.T) {
	err := New(CodeBadColor, "bad color literal: %q", "#zzzzzz")
	assert.Equal(t, `bad color literal: "#zzzzzz"`, UserMessage(err))

	plain := errors.New("plain error")
	assert.Equal(t, "plain error", UserMessage(plain))
}

func TestOutOfRangeError(t *testing.T) {
	err := &OutOfRangeError{Subject: "planning_end", Value: 120, Low: 0, High: 100}
	assert.Equal(t, CodeOutOfRange, err.Code())
	assert.Contains(t, err.Error(), "planning_end")
}
