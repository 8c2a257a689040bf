package storage

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError_Message(t *testing.T) {
	err := opError("stat", "/a/b", ErrNotAccessible, fs.ErrNotExist)
	assert.Equal(t, "stat /a/b: not accessible: file does not exist", err.Error())

	bare := opError("list", "/a", ErrNotADirectory, nil)
	assert.Equal(t, "list /a: not a directory", bare.Error())
}

func TestOpError_UnwrapsSentinelAndCause(t *testing.T) {
	err := opError("read", "/a/b", ErrNotAccessible, fs.ErrNotExist)

	assert.True(t, errors.Is(err, ErrNotAccessible))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrNotAFile))

	var opErr *OpError
	assert.True(t, errors.As(err, &opErr))
	assert.Equal(t, "read", opErr.Op)
	assert.Equal(t, "/a/b", opErr.Path)
}
