package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap("session_error", "failed to persist credentials", cause)

	require.Equal(t, "failed to persist credentials: disk full", err.Error())
	require.True(t, IsCode(err, "session_error"))
	require.False(t, IsCode(err, "invalid_input"))
	require.ErrorIs(t, err, cause)

	wrapped := fmt.Errorf("outer: %w", err)
	require.True(t, IsCode(wrapped, "session_error"))
	require.Equal(t, "session_error", CodeOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.False(t, IsCode(nil, "x"))
}
