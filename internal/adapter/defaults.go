package adapter

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// DefaultsAdapter exports every macOS preference domain to its own plist in
// staging and imports each one back under its domain name on restore.
type DefaultsAdapter struct {
	Runner toolrun.Runner
}

func NewDefaults(r toolrun.Runner) *DefaultsAdapter {
	return &DefaultsAdapter{Runner: r}
}

func (a *DefaultsAdapter) Name() string { return "macos-defaults" }

func (a *DefaultsAdapter) Gather(ctx context.Context, stagingDir string) error {
	out, err := toolrun.Output(ctx, a.Runner, "defaults", "domains")
	if err != nil {
		return err
	}

	domains := strings.Split(out, ",")
	// `defaults domains` omits the global domain.
	domains = append(domains, "NSGlobalDomain")

	for _, domain := range domains {
		domain = strings.TrimSpace(domain)
		if domain == "" {
			continue
		}
		dest := filepath.Join(stagingDir, domain+".plist")
		if err := a.Runner.Run(ctx, "defaults", []string{"export", domain, dest}, nil); err != nil {
			return err
		}
	}
	return nil
}

func (a *DefaultsAdapter) Scatter(ctx context.Context, stagingDir string) error {
	matches, err := filepath.Glob(filepath.Join(stagingDir, "*.plist"))
	if err != nil {
		return err
	}

	for _, path := range matches {
		domain := strings.TrimSuffix(filepath.Base(path), ".plist")
		if err := a.Runner.Run(ctx, "defaults", []string{"import", domain, path}, nil); err != nil {
			return err
		}
	}
	return nil
}
