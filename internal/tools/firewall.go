package tools

import (
	"context"

	"github.com/josephjohncox/dotvault/internal/toolrun"
)

const socketfilterfw = "/usr/libexec/ApplicationFirewall/socketfilterfw"

// Firewall toggles the macOS application firewall global state.
type Firewall struct {
	Runner toolrun.Runner
}

func NewFirewall(r toolrun.Runner) *Firewall {
	return &Firewall{Runner: r}
}

func (f *Firewall) Enable(ctx context.Context) error {
	return f.Runner.Run(ctx, socketfilterfw, []string{"--setglobalstate", "on"}, nil)
}

func (f *Firewall) Disable(ctx context.Context) error {
	return f.Runner.Run(ctx, socketfilterfw, []string{"--setglobalstate", "off"}, nil)
}

func (f *Firewall) Status(ctx context.Context) (string, error) {
	return toolrun.Output(ctx, f.Runner, socketfilterfw, "--getglobalstate")
}
