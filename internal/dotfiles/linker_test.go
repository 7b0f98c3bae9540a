package dotfiles

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephjohncox/dotvault/internal/logger"
)

func testLinker(t *testing.T) (*Linker, string, string) {
	t.Helper()
	repo := t.TempDir()
	home := t.TempDir()
	l := NewLinker(repo, home, logger.New(logger.Config{Writer: io.Discard, NoColor: true}))
	return l, repo, home
}

func TestLinker_CreatesSymlink(t *testing.T) {
	l, repo, home := testLinker(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "zshrc"), []byte("export X=1"), 0644))

	require.NoError(t, l.Link(map[string]string{"zshrc": ".zshrc"}))

	link := filepath.Join(home, ".zshrc")
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, "zshrc"), target)

	data, err := os.ReadFile(link)
	require.NoError(t, err)
	assert.Equal(t, []byte("export X=1"), data)
}

func TestLinker_ReplacesExistingSymlink(t *testing.T) {
	l, repo, home := testLinker(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "zshrc"), []byte("new"), 0644))
	require.NoError(t, os.Symlink("/somewhere/else", filepath.Join(home, ".zshrc")))

	require.NoError(t, l.Link(map[string]string{"zshrc": ".zshrc"}))

	target, err := os.Readlink(filepath.Join(home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(repo, "zshrc"), target)
}

func TestLinker_DisplacesRegularFileToBackup(t *testing.T) {
	l, repo, home := testLinker(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "zshrc"), []byte("repo"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".zshrc"), []byte("local"), 0644))

	require.NoError(t, l.Link(map[string]string{"zshrc": ".zshrc"}))

	backup, err := os.ReadFile(filepath.Join(home, ".zshrc.bak"))
	require.NoError(t, err)
	assert.Equal(t, []byte("local"), backup)

	_, err = os.Readlink(filepath.Join(home, ".zshrc"))
	assert.NoError(t, err)
}

func TestLinker_MissingSourceFails(t *testing.T) {
	l, _, home := testLinker(t)

	err := l.Link(map[string]string{"nope": ".nope"})
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(home, ".nope"))
}

func TestLinker_CreatesParentDirectories(t *testing.T) {
	l, repo, home := testLinker(t)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "init.lua"), []byte("cfg"), 0644))

	require.NoError(t, l.Link(map[string]string{"init.lua": ".config/nvim/init.lua"}))
	_, err := os.Readlink(filepath.Join(home, ".config", "nvim", "init.lua"))
	assert.NoError(t, err)
}
