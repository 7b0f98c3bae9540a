package tools

import (
	"context"

	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// GitRepo syncs the config directory with its remote through plain git
// invocations.
type GitRepo struct {
	Runner toolrun.Runner
	Dir    string
	Remote string
	Branch string
}

func NewGitRepo(r toolrun.Runner, dir, remote, branch string) *GitRepo {
	return &GitRepo{Runner: r, Dir: dir, Remote: remote, Branch: branch}
}

func (g *GitRepo) git(ctx context.Context, args ...string) error {
	return g.Runner.Run(ctx, "git", append([]string{"-C", g.Dir}, args...), nil)
}

// SyncTo stages, commits, and pushes local changes. A clean tree skips the
// commit so repeated syncs stay idempotent.
func (g *GitRepo) SyncTo(ctx context.Context, message string) error {
	if err := g.git(ctx, "add", "-A"); err != nil {
		return err
	}

	status, err := toolrun.Output(ctx, g.Runner, "git", "-C", g.Dir, "status", "--porcelain")
	if err != nil {
		return err
	}
	if status != "" {
		if err := g.git(ctx, "commit", "-m", message); err != nil {
			return err
		}
	}

	return g.git(ctx, "push", g.Remote, g.Branch)
}

func (g *GitRepo) SyncFrom(ctx context.Context) error {
	return g.git(ctx, "pull", g.Remote, g.Branch)
}
