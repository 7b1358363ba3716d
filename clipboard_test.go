package bwd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteClipboard(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var got string
	clipboardWriteAll = func(text string) error {
		got = text
		return nil
	}

	require.NoError(t, WriteClipboard("/home/user/project"))
	assert.Equal(t, "/home/user/project", got, "the rendered text passes through unchanged")
}

func TestWriteClipboardFailure(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	cause := errors.New("no clipboard service")
	clipboardWriteAll = func(string) error { return cause }

	err := WriteClipboard("anything")
	require.Error(t, err)

	var perr *Error
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, KindClipboard, perr.Kind)
	assert.True(t, errors.Is(err, cause), "the underlying cause stays wrapped")
	assert.Equal(t, "Clipboard Error: no clipboard service", err.Error())
}
