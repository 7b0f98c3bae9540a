package cmd

import (
	"context"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/josephjohncox/dotvault/internal/archive"
	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/tools"
)

var backupAllCmd = &cobra.Command{
	Use:   "backup-all",
	Short: "Run every backup capability in sequence",
	Long: `Back up each target in a fixed order: SSH keys, GPG keyring, macOS defaults,
application plists, kube/docker configs, Brewfile, git config, Cursor settings.
A failing target does not stop the ones after it; all failures are reported at
the end and the command exits non-zero if any target failed.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd.Context(), archive.OpBackup)
	},
}

var restoreAllCmd = &cobra.Command{
	Use:           "restore-all",
	Short:         "Run every restore capability in sequence",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAll(cmd.Context(), archive.OpRestore)
	},
}

func runAll(ctx context.Context, op archive.Op) error {
	l := logger.FromContext(ctx)
	cfg := config.GetConfig()
	brew := tools.NewBrew(runner, filepath.Join(cfg.ConfigDir, "Brewfile"))

	steps := []struct {
		name string
		run  func() error
	}{
		{"ssh", func() error { return runArchiveJob(ctx, op, sshTarget(cfg)) }},
		{"gpg", func() error { return runArchiveJob(ctx, op, gpgTarget()) }},
		{"macos-defaults", func() error { return runArchiveJob(ctx, op, defaultsTarget()) }},
		{"sync-plists", func() error { return runArchiveJob(ctx, op, plistTarget(cfg, l)) }},
		{"kube-config", func() error { return runArchiveJob(ctx, op, kubeTarget(l)) }},
		{"brewfile", func() error {
			if op == archive.OpBackup {
				return brew.Dump(ctx)
			}
			return brew.Install(ctx)
		}},
		{"git-config", func() error { return gitConfigRun(ctx, op) }},
		{"cursor", func() error { return cursorRun(ctx, op) }},
	}

	// Each step runs regardless of earlier failures; nothing here is
	// transactional across targets.
	var errs error
	for _, step := range steps {
		if err := step.run(); err != nil {
			l.Error("Capability failed, continuing", "capability", step.name, "error", err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

func init() {
	rootCmd.AddCommand(backupAllCmd)
	rootCmd.AddCommand(restoreAllCmd)
}
