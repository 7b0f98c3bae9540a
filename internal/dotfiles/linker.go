// Package dotfiles links files kept in the config repository into $HOME.
package dotfiles

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/josephjohncox/dotvault/internal/logger"
)

type Linker struct {
	RepoDir string
	HomeDir string
	Log     *logger.Logger
}

func NewLinker(repoDir, homeDir string, log *logger.Logger) *Linker {
	return &Linker{RepoDir: repoDir, HomeDir: homeDir, Log: log}
}

// Link creates a symlink in HomeDir for every entry of the mapping, which
// names a repo-relative source per home-relative link. A pre-existing regular
// file at the link path is displaced to <name>.bak; a pre-existing symlink
// is replaced.
func (l *Linker) Link(mapping map[string]string) error {
	for src, dst := range mapping {
		target := filepath.Join(l.RepoDir, src)
		if _, err := os.Stat(target); err != nil {
			return fmt.Errorf("dotfile source missing: %w", err)
		}

		linkPath := filepath.Join(l.HomeDir, dst)
		if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
			return err
		}

		if info, err := os.Lstat(linkPath); err == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				if err := os.Remove(linkPath); err != nil {
					return err
				}
			} else {
				backup := linkPath + ".bak"
				l.Log.Warn("Displacing existing file", "path", linkPath, "backup", backup)
				if err := os.Rename(linkPath, backup); err != nil {
					return err
				}
			}
		}

		if err := os.Symlink(target, linkPath); err != nil {
			return err
		}
		l.Log.Info("Linked", "link", linkPath, "target", target)
	}
	return nil
}
