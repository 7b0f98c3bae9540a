package cmd

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/josephjohncox/dotvault/internal/archive"
	"github.com/josephjohncox/dotvault/internal/config"
	"github.com/josephjohncox/dotvault/internal/fsutil"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/toolrun"
)

var (
	cursorBackup  bool
	cursorRestore bool
)

var cursorSettingsFiles = []string{"settings.json", "keybindings.json"}

var cursorCmd = &cobra.Command{
	Use:   "cursor",
	Short: "Back up or restore Cursor editor settings",
	Long: `Copy Cursor's settings.json and keybindings.json between the live profile
and the config directory, and dump or reinstall the extension list through the
cursor CLI. The extension step is skipped with a warning when the CLI is absent.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		op, err := resolveOp(cursorBackup, cursorRestore)
		if err != nil {
			return err
		}
		return cursorRun(cmd.Context(), op)
	},
}

func cursorRun(ctx context.Context, op archive.Op) error {
	l := logger.FromContext(ctx)
	cfg := config.GetConfig()
	repoDir := filepath.Join(cfg.ConfigDir, "cursor")
	extFile := filepath.Join(repoDir, "extensions.txt")

	for _, name := range cursorSettingsFiles {
		livePath := filepath.Join(cfg.CursorDir, name)
		repoPath := filepath.Join(repoDir, name)

		src, dst := livePath, repoPath
		if op == archive.OpRestore {
			src, dst = repoPath, livePath
		}
		if !fsutil.Exists(src) {
			l.Warn("Skipping missing file", "path", src)
			continue
		}
		if err := fsutil.CopyFile(src, dst, 0); err != nil {
			return err
		}
		l.Info("Copied", "from", src, "to", dst)
	}

	if op == archive.OpBackup {
		return dumpCursorExtensions(ctx, extFile, l)
	}
	return installCursorExtensions(ctx, extFile, l)
}

func dumpCursorExtensions(ctx context.Context, extFile string, l *logger.Logger) error {
	out, err := toolrun.Output(ctx, runner, "cursor", "--list-extensions")
	if err != nil {
		if toolMissing(err) {
			l.Warn("cursor CLI not found, skipping extension dump")
			return nil
		}
		return err
	}
	if err := os.MkdirAll(filepath.Dir(extFile), 0755); err != nil {
		return err
	}
	return os.WriteFile(extFile, []byte(out+"\n"), 0644)
}

func installCursorExtensions(ctx context.Context, extFile string, l *logger.Logger) error {
	f, err := os.Open(extFile)
	if err != nil {
		if os.IsNotExist(err) {
			l.Warn("No extension list in config directory, skipping")
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ext := strings.TrimSpace(scanner.Text())
		if ext == "" {
			continue
		}
		if err := runner.Run(ctx, "cursor", []string{"--install-extension", ext}, nil); err != nil {
			if toolMissing(err) {
				l.Warn("cursor CLI not found, skipping extension install")
				return nil
			}
			return err
		}
	}
	return scanner.Err()
}

func init() {
	rootCmd.AddCommand(cursorCmd)
	cursorCmd.Flags().BoolVar(&cursorBackup, "backup", false, "copy Cursor settings into the config directory")
	cursorCmd.Flags().BoolVar(&cursorRestore, "restore", false, "copy Cursor settings back into the live profile")
}
