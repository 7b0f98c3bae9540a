package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josephjohncox/dotvault/internal/config"
)

func resetBrewFlags() {
	brewBackup = false
	brewRestore = false
	brewCheck = false
}

func TestBrewfileCommand_RequiresExactlyOneOperation(t *testing.T) {
	t.Cleanup(resetBrewFlags)

	_, err := executeCommand(rootCmd, "brewfile")
	assert.ErrorContains(t, err, "exactly one")

	resetBrewFlags()
	_, err = executeCommand(rootCmd, "brewfile", "--backup", "--check")
	assert.ErrorContains(t, err, "exactly one")
}

func TestBrewfileCommand_Dump(t *testing.T) {
	t.Cleanup(resetBrewFlags)

	r := &fakeRunner{}
	swapRunner(t, r)
	t.Setenv("DOTVAULT_CONFIG_DIR", t.TempDir())

	_, err := executeCommand(rootCmd, "brewfile", "--backup")
	require.NoError(t, err)

	brewfile := filepath.Join(config.GetConfig().ConfigDir, "Brewfile")
	require.Len(t, r.calls, 1)
	assert.Equal(t, []string{"brew", "bundle", "dump", "--force", "--file", brewfile}, r.calls[0])
}
