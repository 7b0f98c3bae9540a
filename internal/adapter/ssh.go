package adapter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/josephjohncox/dotvault/internal/fsutil"
)

// SSHKeysAdapter backs up everything in the user's SSH directory. Restore
// enforces the permission bits sshd insists on: 0600 files, 0700 directory.
type SSHKeysAdapter struct {
	Dir string
}

func NewSSHKeys(dir string) *SSHKeysAdapter {
	return &SSHKeysAdapter{Dir: dir}
}

func (a *SSHKeysAdapter) Name() string { return "ssh-keys" }

func (a *SSHKeysAdapter) Gather(ctx context.Context, stagingDir string) error {
	return fsutil.CopyDirFiles(a.Dir, stagingDir)
}

func (a *SSHKeysAdapter) Scatter(ctx context.Context, stagingDir string) error {
	if err := os.MkdirAll(a.Dir, 0700); err != nil {
		return err
	}

	entries, err := os.ReadDir(stagingDir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		src := filepath.Join(stagingDir, e.Name())
		dst := filepath.Join(a.Dir, e.Name())
		if err := fsutil.CopyFile(src, dst, 0600); err != nil {
			return err
		}
	}

	return os.Chmod(a.Dir, 0700)
}
