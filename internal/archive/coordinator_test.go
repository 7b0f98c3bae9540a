package archive

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephjohncox/dotvault/internal/adapter"
	apperrors "github.com/josephjohncox/dotvault/internal/errors"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/storage"
)

func testCoordinator(t *testing.T) (*Coordinator, string) {
	t.Helper()
	configDir := t.TempDir()
	c := NewCoordinator(
		storage.NewLocalStorage(configDir),
		logger.New(logger.Config{Writer: io.Discard, NoColor: true}),
		t.TempDir(),
	)
	return c, configDir
}

// sshLikeSource creates a source dir with key material and returns an
// adapter plus the dir.
func sshLikeSource(t *testing.T) (*adapter.SSHKeysAdapter, string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "id_rsa"), []byte("PRIVATE KEY"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "id_rsa.pub"), []byte("PUBLIC KEY"), 0644))
	return adapter.NewSSHKeys(dir), dir
}

func TestCoordinator_BackupCreatesEncryptedArchive(t *testing.T) {
	c, configDir := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))

	assert.FileExists(t, filepath.Join(configDir, "ssh_keys.tar.gz.gpg"))
	assert.FileExists(t, filepath.Join(configDir, "ssh_keys.tar.gz.gpg.manifest"))

	// Staging must not outlive the job.
	assert.NoDirExists(t, c.stagingDir("ssh_keys"))

	blob, err := os.ReadFile(filepath.Join(configDir, "ssh_keys.tar.gz.gpg"))
	require.NoError(t, err)
	assert.NotContains(t, string(blob), "PRIVATE KEY")
}

func TestCoordinator_RoundTrip(t *testing.T) {
	c, _ := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))

	// Wipe the source and restore into it.
	require.NoError(t, os.RemoveAll(srcDir))

	job = NewJob(OpRestore, a, srcDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))

	data, err := os.ReadFile(filepath.Join(srcDir, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, []byte("PRIVATE KEY"), data)

	info, err := os.Stat(filepath.Join(srcDir, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	info, err = os.Stat(srcDir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())

	assert.NoDirExists(t, c.stagingDir("ssh_keys"))
}

func TestCoordinator_DoubleBackupStaysDecryptable(t *testing.T) {
	c, _ := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	for i := 0; i < 2; i++ {
		job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("pass"))
		require.NoError(t, c.Run(context.Background(), job))
	}

	restoreDir := t.TempDir()
	job := NewJob(OpRestore, adapter.NewSSHKeys(restoreDir), restoreDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))
	assert.FileExists(t, filepath.Join(restoreDir, "id_rsa"))
}

func TestCoordinator_WrongPassphraseLeavesArchiveUntouched(t *testing.T) {
	c, configDir := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("correct"))
	require.NoError(t, c.Run(context.Background(), job))

	archivePath := filepath.Join(configDir, "ssh_keys.tar.gz.gpg")
	before, err := os.ReadFile(archivePath)
	require.NoError(t, err)

	job = NewJob(OpRestore, a, srcDir, "ssh_keys", []byte("wrong"))
	err = c.Run(context.Background(), job)
	assert.Error(t, err)

	after, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.NoDirExists(t, c.stagingDir("ssh_keys"))
}

type failingAdapter struct{}

func (failingAdapter) Name() string { return "failing" }

func (failingAdapter) Gather(ctx context.Context, _ string) error {
	return errors.New("gather boom")
}

func (failingAdapter) Scatter(ctx context.Context, _ string) error {
	return errors.New("scatter boom")
}

func TestCoordinator_GatherFailureCleansStaging(t *testing.T) {
	c, configDir := testCoordinator(t)

	job := NewJob(OpBackup, failingAdapter{}, "", "broken", []byte("pass"))
	err := c.Run(context.Background(), job)
	assert.ErrorContains(t, err, "gather boom")

	assert.NoDirExists(t, c.stagingDir("broken"))
	assert.NoFileExists(t, filepath.Join(configDir, "broken.tar.gz.gpg"))
}

func TestCoordinator_ScatterFailureCleansStaging(t *testing.T) {
	c, _ := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))

	job = NewJob(OpRestore, failingAdapter{}, "", "ssh_keys", []byte("pass"))
	err := c.Run(context.Background(), job)
	assert.ErrorContains(t, err, "scatter boom")
	assert.NoDirExists(t, c.stagingDir("ssh_keys"))
}

func TestCoordinator_RestoreMissingArchive(t *testing.T) {
	c, _ := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpRestore, a, srcDir, "never_backed_up", []byte("pass"))
	err := c.Run(context.Background(), job)
	assert.True(t, apperrors.IsType(err, apperrors.TypeResource))
}

func TestCoordinator_CorruptArchiveFailsIntegrityCheck(t *testing.T) {
	c, configDir := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	job := NewJob(OpBackup, a, srcDir, "ssh_keys", []byte("pass"))
	require.NoError(t, c.Run(context.Background(), job))

	archivePath := filepath.Join(configDir, "ssh_keys.tar.gz.gpg")
	blob, err := os.ReadFile(archivePath)
	require.NoError(t, err)
	blob[len(blob)/2] ^= 0xFF
	require.NoError(t, os.WriteFile(archivePath, blob, 0600))

	job = NewJob(OpRestore, a, srcDir, "ssh_keys", []byte("pass"))
	err = c.Run(context.Background(), job)
	assert.True(t, apperrors.IsType(err, apperrors.TypeIntegrity))
}

func TestCoordinator_ValidatesJob(t *testing.T) {
	c, _ := testCoordinator(t)
	a, srcDir := sshLikeSource(t)

	tests := []struct {
		name string
		job  Job
	}{
		{"No adapter", Job{Op: OpBackup, ArchiveName: "x", Passphrase: []byte("p")}},
		{"No archive name", Job{Op: OpBackup, Adapter: a, Passphrase: []byte("p")}},
		{"No passphrase", Job{Op: OpBackup, Adapter: a, ArchiveName: "x"}},
		{"Unknown op", NewJob("frobnicate", a, srcDir, "x", []byte("p"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, c.Run(context.Background(), tt.job))
		})
	}
}
