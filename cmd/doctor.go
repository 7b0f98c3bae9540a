package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/keychain"
	"github.com/josephjohncox/dotvault/internal/logger"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that required native binaries and stores are available",
	Long:  `Verify that the collaborator tools, the credential store, and the config directory are reachable on this machine.`,
	Run: func(cmd *cobra.Command, args []string) {
		l := logger.FromContext(cmd.Context())
		l.Info("dotvault doctor - System Environment Check", "os", runtime.GOOS, "arch", runtime.GOARCH)

		groups := []struct {
			name     string
			binaries []string
		}{
			{"Core", []string{"git", "gpg"}},
			{"macOS", []string{"defaults", "networksetup", "/usr/libexec/ApplicationFirewall/socketfilterfw"}},
			{"Homebrew", []string{"brew"}},
			{"Secret scanners", []string{"gitleaks", "trufflehog"}},
			{"Editor", []string{"cursor"}},
		}

		allOk := true
		for _, group := range groups {
			fmt.Printf("[%s]\n", group.name)
			for _, bin := range group.binaries {
				path, err := exec.LookPath(bin)
				if err != nil {
					fmt.Printf("  [ ] %-14s: NOT FOUND\n", bin)
					allOk = false
				} else {
					fmt.Printf("  [x] %-14s: %s\n", bin, path)
				}
			}
			fmt.Println()
		}

		cfg := config.GetConfig()
		fmt.Println("[Config directory]")
		if info, err := os.Stat(cfg.ConfigDir); err != nil {
			fmt.Printf("  [ ] %s: NOT FOUND\n", cfg.ConfigDir)
			allOk = false
		} else if !info.IsDir() {
			fmt.Printf("  [ ] %s: not a directory\n", cfg.ConfigDir)
			allOk = false
		} else {
			fmt.Printf("  [x] %s\n", cfg.ConfigDir)
		}
		fmt.Println()

		fmt.Println("[Credential store]")
		_, err := credStore.Get(cfg.KeychainService, cfg.KeychainAccount)
		switch {
		case err == nil:
			fmt.Printf("  [x] passphrase stored for %s/%s\n", cfg.KeychainService, cfg.KeychainAccount)
		case errors.Is(err, keychain.ErrNotFound):
			fmt.Printf("  [~] no passphrase stored for %s/%s (will prompt)\n", cfg.KeychainService, cfg.KeychainAccount)
		default:
			fmt.Printf("  [ ] credential store unreachable: %v\n", err)
			allOk = false
		}
		fmt.Println()

		if allOk {
			fmt.Println("Result: All systems go! Your environment is ready for dotvault.")
		} else {
			fmt.Println("Result: Some dependencies are missing. Install the tools for the capabilities you use.")
		}
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
