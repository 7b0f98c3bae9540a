package adapter

import (
	"context"
	"os"
	"path/filepath"

	"github.com/josephjohncox/dotvault/internal/fsutil"
	"github.com/josephjohncox/dotvault/internal/logger"
)

// FileSetAdapter backs up a fixed mapping of staged names to absolute
// paths. The application-plist and kube/docker config capabilities are both
// instances of it. Sources missing at gather time are skipped with a
// warning so a partially provisioned machine can still back up; staged
// files missing at scatter time are skipped the same way.
type FileSetAdapter struct {
	name  string
	files map[string]string // staged name to absolute path
	mode  os.FileMode       // forced on scatter; 0 keeps staged bits
	log   *logger.Logger
}

func NewFileSet(name string, files map[string]string, mode os.FileMode, log *logger.Logger) *FileSetAdapter {
	return &FileSetAdapter{name: name, files: files, mode: mode, log: log}
}

func (a *FileSetAdapter) Name() string { return a.name }

func (a *FileSetAdapter) Gather(ctx context.Context, stagingDir string) error {
	for name, path := range a.files {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				if a.log != nil {
					a.log.Warn("Skipping missing source file", "target", a.name, "path", path)
				}
				continue
			}
			return err
		}
		if err := fsutil.CopyFile(path, filepath.Join(stagingDir, name), 0); err != nil {
			return err
		}
	}
	return nil
}

func (a *FileSetAdapter) Scatter(ctx context.Context, stagingDir string) error {
	for name, path := range a.files {
		staged := filepath.Join(stagingDir, name)
		if !fsutil.Exists(staged) {
			if a.log != nil {
				a.log.Warn("Archive has no entry for file", "target", a.name, "name", name)
			}
			continue
		}
		if err := fsutil.CopyFile(staged, path, a.mode); err != nil {
			return err
		}
	}
	return nil
}
