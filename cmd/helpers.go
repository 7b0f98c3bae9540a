package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/term"

	"github.com/josephjohncox/dotvault/internal/adapter"
	"github.com/josephjohncox/dotvault/internal/archive"
	"github.com/josephjohncox/dotvault/internal/config"
	apperrors "github.com/josephjohncox/dotvault/internal/errors"
	"github.com/josephjohncox/dotvault/internal/keychain"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/storage"
	"github.com/josephjohncox/dotvault/internal/toolrun"
)

// runner executes collaborator tools; tests substitute a fake.
var runner toolrun.Runner = &toolrun.LocalRunner{}

// credStore resolves backup passphrases; tests substitute a MemStore.
var credStore keychain.Store = keychain.NewSystemStore()

func resolveOp(backup, restore bool) (archive.Op, error) {
	switch {
	case backup && restore:
		return "", fmt.Errorf("--backup and --restore are mutually exclusive")
	case backup:
		return archive.OpBackup, nil
	case restore:
		return archive.OpRestore, nil
	default:
		return "", fmt.Errorf("one of --backup or --restore is required")
	}
}

func toolMissing(err error) bool {
	return apperrors.IsType(err, apperrors.TypeDependency)
}

func resolvePassphrase(cfg *config.Config) ([]byte, error) {
	return keychain.Resolve(credStore, cfg.KeychainService, cfg.KeychainAccount, nil)
}

func newCoordinator(cfg *config.Config, l *logger.Logger) *archive.Coordinator {
	c := archive.NewCoordinator(storage.NewLocalStorage(cfg.ConfigDir), l, cfg.StagingRoot)
	c.Progress = term.IsTerminal(int(os.Stdout.Fd())) && !LogJSON
	return c
}

// archiveTarget couples a capability with the adapter and archive name it uses.
type archiveTarget struct {
	name        string
	archiveName string
	sourceDir   string
	adapter     adapter.Adapter
}

func sshTarget(cfg *config.Config) archiveTarget {
	return archiveTarget{
		name:        "ssh",
		archiveName: "ssh_keys",
		sourceDir:   cfg.SSHDir,
		adapter:     adapter.NewSSHKeys(cfg.SSHDir),
	}
}

func gpgTarget() archiveTarget {
	return archiveTarget{
		name:        "gpg",
		archiveName: "gpg_keyring",
		adapter:     adapter.NewGPGKeyring(runner),
	}
}

func defaultsTarget() archiveTarget {
	return archiveTarget{
		name:        "macos-defaults",
		archiveName: "macos_defaults",
		adapter:     adapter.NewDefaults(runner),
	}
}

func plistTarget(cfg *config.Config, l *logger.Logger) archiveTarget {
	files := make(map[string]string, len(cfg.Plists))
	for _, name := range cfg.Plists {
		files[name] = filepath.Join(config.PrefsDir(), name)
	}
	return archiveTarget{
		name:        "sync-plists",
		archiveName: "app_plists",
		sourceDir:   config.PrefsDir(),
		adapter:     adapter.NewFileSet("app-plists", files, 0, l),
	}
}

func kubeTarget(l *logger.Logger) archiveTarget {
	home, _ := os.UserHomeDir()
	files := map[string]string{
		"kube_config":   filepath.Join(home, ".kube", "config"),
		"docker_config": filepath.Join(home, ".docker", "config.json"),
	}
	return archiveTarget{
		name:        "kube-config",
		archiveName: "kube_configs",
		adapter:     adapter.NewFileSet("kube-config", files, 0600, l),
	}
}

func runArchiveJob(ctx context.Context, op archive.Op, target archiveTarget) error {
	l := logger.FromContext(ctx)
	cfg := config.GetConfig()

	pass, err := resolvePassphrase(cfg)
	if err != nil {
		return err
	}

	coord := newCoordinator(cfg, l)
	job := archive.NewJob(op, target.adapter, target.sourceDir, target.archiveName, pass)

	start := time.Now()
	l.Info("Job started", "target", target.name, "operation", string(op))
	if err := coord.Run(ctx, job); err != nil {
		l.Error("Job failed", "target", target.name, "error", err)
		return err
	}
	l.Info("Job finished", "target", target.name, "duration", time.Since(start).String())
	return nil
}
