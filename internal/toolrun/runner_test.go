package toolrun

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
)

func TestLocalRunner_CapturesStdout(t *testing.T) {
	r := &LocalRunner{}
	var sb strings.Builder

	require.NoError(t, r.Run(context.Background(), "echo", []string{"hello"}, &sb))
	assert.Equal(t, "hello\n", sb.String())
}

func TestLocalRunner_StdinIsPassedThrough(t *testing.T) {
	r := &LocalRunner{}
	var sb strings.Builder

	err := r.RunWithIO(context.Background(), "cat", nil, strings.NewReader("piped"), &sb)
	require.NoError(t, err)
	assert.Equal(t, "piped", sb.String())
}

func TestLocalRunner_MissingToolIsDependencyError(t *testing.T) {
	r := &LocalRunner{}

	err := r.Run(context.Background(), "definitely-not-a-real-tool-xyz", nil, nil)
	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.TypeDependency))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.NotEmpty(t, appErr.Hint)
}

func TestLocalRunner_NonZeroExit(t *testing.T) {
	r := &LocalRunner{}
	err := r.Run(context.Background(), "false", nil, nil)
	assert.Error(t, err)
}

func TestOutput_TrimsWhitespace(t *testing.T) {
	r := &LocalRunner{}

	out, err := Output(context.Background(), r, "echo", "  spaced  ")
	require.NoError(t, err)
	assert.Equal(t, "spaced", out)
}

func TestLocalRunner_ContextCancellation(t *testing.T) {
	r := &LocalRunner{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := r.Run(ctx, "sleep", []string{"10"}, nil)
	assert.Error(t, err)
}
