package adapter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/josephjohncox/dotvault/internal/fsutil"
	"github.com/josephjohncox/dotvault/internal/toolrun"
)

const (
	gpgPublicFile     = "public-keys.gpg"
	gpgSecretFile     = "secret-keys.gpg"
	gpgOwnertrustFile = "ownertrust.txt"
)

// GPGKeyringAdapter exports the public and secret keyrings plus ownertrust
// through the gpg binary. Secret key export may trigger gpg's own pinentry;
// that channel is gpg's to manage.
type GPGKeyringAdapter struct {
	Runner toolrun.Runner
}

func NewGPGKeyring(r toolrun.Runner) *GPGKeyringAdapter {
	return &GPGKeyringAdapter{Runner: r}
}

func (a *GPGKeyringAdapter) Name() string { return "gpg-keyring" }

func (a *GPGKeyringAdapter) Gather(ctx context.Context, stagingDir string) error {
	pub := filepath.Join(stagingDir, gpgPublicFile)
	if err := a.Runner.Run(ctx, "gpg", []string{"--batch", "--yes", "--output", pub, "--export"}, nil); err != nil {
		return err
	}

	sec := filepath.Join(stagingDir, gpgSecretFile)
	if err := a.Runner.Run(ctx, "gpg", []string{"--batch", "--yes", "--output", sec, "--export-secret-keys"}, nil); err != nil {
		return err
	}

	trust, err := os.Create(filepath.Join(stagingDir, gpgOwnertrustFile))
	if err != nil {
		return err
	}
	defer trust.Close()
	return a.Runner.Run(ctx, "gpg", []string{"--export-ownertrust"}, trust)
}

func (a *GPGKeyringAdapter) Scatter(ctx context.Context, stagingDir string) error {
	for _, name := range []string{gpgPublicFile, gpgSecretFile} {
		path := filepath.Join(stagingDir, name)
		if !fsutil.Exists(path) {
			continue
		}
		if err := a.Runner.Run(ctx, "gpg", []string{"--batch", "--import", path}, nil); err != nil {
			return err
		}
	}

	trust := filepath.Join(stagingDir, gpgOwnertrustFile)
	if fsutil.Exists(trust) {
		return a.Runner.Run(ctx, "gpg", []string{"--import-ownertrust", trust}, nil)
	}
	return nil
}
