package sysinfo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExec_MissingBinary(t *testing.T) {
	_, err := NewExec().Output(context.Background(), "envprobe-no-such-binary")
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.False(t, BinaryExists("envprobe-no-such-binary"))
}

func TestExec_Echo(t *testing.T) {
	if !BinaryExists("echo") {
		t.Skip("echo not on PATH")
	}
	out, err := NewExec().Output(context.Background(), "echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", joinLines(out))
}
