// Package tools wraps the external collaborator commands (brew, git,
// firewall, network listing, secret scanners). Each wrapper is a thin,
// fail-fast shell-out through a Runner so tests can substitute a fake.
package tools

import (
	"context"

	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// Brew drives `brew bundle` against the Brewfile kept in the config dir.
type Brew struct {
	Runner   toolrun.Runner
	Brewfile string
}

func NewBrew(r toolrun.Runner, brewfile string) *Brew {
	return &Brew{Runner: r, Brewfile: brewfile}
}

func (b *Brew) Dump(ctx context.Context) error {
	return b.Runner.Run(ctx, "brew", []string{"bundle", "dump", "--force", "--file", b.Brewfile}, nil)
}

func (b *Brew) Install(ctx context.Context) error {
	return b.Runner.Run(ctx, "brew", []string{"bundle", "install", "--file", b.Brewfile}, nil)
}

func (b *Brew) Check(ctx context.Context) error {
	return b.Runner.Run(ctx, "brew", []string{"bundle", "check", "--file", b.Brewfile}, nil)
}
