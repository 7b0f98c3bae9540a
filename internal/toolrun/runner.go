package toolrun

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
)

// Runner executes external collaborator tools. Commands receive their
// arguments as a vector, never through a shell.
type Runner interface {
	Run(ctx context.Context, name string, args []string, stdout io.Writer) error
	RunWithIO(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error
}

// LocalRunner executes tools on the local machine.
type LocalRunner struct{}

func (r *LocalRunner) Run(ctx context.Context, name string, args []string, stdout io.Writer) error {
	return r.RunWithIO(ctx, name, args, nil, stdout)
}

func (r *LocalRunner) RunWithIO(ctx context.Context, name string, args []string, stdin io.Reader, stdout io.Writer) error {
	if _, err := exec.LookPath(name); err != nil {
		return apperrors.Wrap(err, apperrors.TypeDependency,
			fmt.Sprintf("%s not found in PATH", name),
			fmt.Sprintf("Install %s or run 'dotvault doctor' to see what is missing.", name))
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

// Output runs a tool and returns its stdout as a trimmed string.
func Output(ctx context.Context, r Runner, name string, args ...string) (string, error) {
	var sb strings.Builder
	if err := r.Run(ctx, name, args, &sb); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}
