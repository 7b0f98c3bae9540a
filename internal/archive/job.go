package archive

import (
	"github.com/google/uuid"

	"github.com/josephjohncox/dotvault/internal/adapter"
)

type Op string

const (
	OpBackup  Op = "backup"
	OpRestore Op = "restore"
)

// Job describes one backup or restore of one named target. Jobs are
// transient: built per invocation, discarded after Run returns.
type Job struct {
	ID            string
	Op            Op
	SourceDir     string // real source directory, ensured to exist on restore; may be empty
	ArchiveName   string // names the staging directory and the tarball
	EncryptedName string // basename of the persisted <name>.tar.gz.gpg
	Passphrase    []byte
	Adapter       adapter.Adapter
}

func NewJob(op Op, a adapter.Adapter, sourceDir, archiveName string, passphrase []byte) Job {
	return Job{
		ID:            uuid.NewString(),
		Op:            op,
		SourceDir:     sourceDir,
		ArchiveName:   archiveName,
		EncryptedName: archiveName,
		Passphrase:    passphrase,
		Adapter:       a,
	}
}
