package archive

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/josephjohncox/dotvault/internal/crypto"
	apperrors "github.com/josephjohncox/dotvault/internal/errors"
	"github.com/josephjohncox/dotvault/internal/logger"
	"github.com/josephjohncox/dotvault/internal/manifest"
	"github.com/josephjohncox/dotvault/internal/storage"
)

// Coordinator runs the backup/restore lifecycle for any named target:
// stage, pack, encrypt, and store on backup; fetch, decrypt, unpack, and
// scatter on restore. Packing, encryption, and storage happen on a single
// stream, so plaintext archive bytes never touch disk; the staging
// directory is the only plaintext location and it is destroyed
// unconditionally when the job ends.
type Coordinator struct {
	Store       storage.Storage
	Log         *logger.Logger
	StagingRoot string
	Progress    bool
}

func NewCoordinator(store storage.Storage, log *logger.Logger, stagingRoot string) *Coordinator {
	if stagingRoot == "" {
		stagingRoot = os.TempDir()
	}
	return &Coordinator{
		Store:       store,
		Log:         log,
		StagingRoot: stagingRoot,
	}
}

// stagingDir is keyed by archive name. It is removed before creation and
// again on completion, so no job ever sees another job's plaintext.
func (c *Coordinator) stagingDir(archiveName string) string {
	return filepath.Join(c.StagingRoot, "dotvault-"+archiveName)
}

func (c *Coordinator) Run(ctx context.Context, job Job) error {
	if err := validateJob(job); err != nil {
		return err
	}

	staging := c.stagingDir(job.ArchiveName)
	if err := os.RemoveAll(staging); err != nil {
		return fmt.Errorf("failed to clear staging directory: %w", err)
	}
	defer os.RemoveAll(staging)

	if err := os.MkdirAll(staging, 0700); err != nil {
		return fmt.Errorf("failed to create staging directory: %w", err)
	}

	switch job.Op {
	case OpBackup:
		return c.backup(ctx, job, staging)
	case OpRestore:
		return c.restore(ctx, job, staging)
	default:
		return apperrors.New(apperrors.TypeConfig, fmt.Sprintf("unknown operation %q", job.Op), "")
	}
}

func validateJob(job Job) error {
	if job.Adapter == nil {
		return apperrors.New(apperrors.TypeInternal, "job has no target adapter", "")
	}
	if job.ArchiveName == "" {
		return apperrors.New(apperrors.TypeConfig, "job has no archive name", "")
	}
	if len(job.Passphrase) == 0 {
		return apperrors.New(apperrors.TypeCredential, "job has no passphrase",
			"Store one in the system keychain or enter it at the prompt.")
	}
	return nil
}

func encryptedFileName(job Job) string {
	name := job.EncryptedName
	if name == "" {
		name = job.ArchiveName
	}
	return name + ".tar.gz.gpg"
}

func (c *Coordinator) backup(ctx context.Context, job Job, staging string) error {
	if err := job.Adapter.Gather(ctx, staging); err != nil {
		return fmt.Errorf("gather failed for %s: %w", job.Adapter.Name(), err)
	}

	encName := encryptedFileName(job)
	hasher := sha256.New()
	counter := &ByteCounter{}

	pr, pw := io.Pipe()
	go func() {
		mw := io.MultiWriter(pw, hasher, counter)
		ew, err := crypto.NewEncryptWriter(mw, job.Passphrase)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if err := Pack(staging, ew); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(ew.Close())
	}()

	var r io.Reader = pr
	var p *mpbProgress
	if c.Progress {
		p = newJobProgress(job.ArchiveName)
		r = NewProgressReader(pr, p.bar)
	}

	location, err := c.Store.Save(ctx, encName, r)
	if p != nil {
		p.finish(counter.Count)
	}
	if err != nil {
		pr.Close()
		return fmt.Errorf("failed to store encrypted archive: %w", err)
	}

	man := manifest.New(job.Adapter.Name(), encName)
	man.Checksum = hex.EncodeToString(hasher.Sum(nil))
	man.Size = counter.Count
	data, err := man.Serialize()
	if err != nil {
		return err
	}
	if err := c.Store.PutMetadata(ctx, encName+".manifest", data); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	c.Log.Info("Encrypted archive written", "target", job.Adapter.Name(), "location", location, "bytes", counter.Count)
	return nil
}

func (c *Coordinator) restore(ctx context.Context, job Job, staging string) error {
	encName := encryptedFileName(job)

	src, err := c.Store.Open(ctx, encName)
	if err != nil {
		return apperrors.Wrap(err, apperrors.TypeResource,
			fmt.Sprintf("no encrypted archive %s in %s", encName, c.Store.Location()),
			"Run the backup first, or sync the config repository onto this machine.")
	}

	// The blob is staged (still encrypted) so the checksum can be verified
	// before anything is extracted.
	blobPath := staging + ".enc"
	defer os.Remove(blobPath)

	blob, err := os.OpenFile(blobPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		src.Close()
		return err
	}
	hasher := sha256.New()
	_, err = io.Copy(blob, io.TeeReader(src, hasher))
	src.Close()
	blob.Close()
	if err != nil {
		return fmt.Errorf("failed to stage encrypted archive: %w", err)
	}

	if err := c.verifyChecksum(ctx, encName, hex.EncodeToString(hasher.Sum(nil))); err != nil {
		return err
	}

	in, err := os.Open(blobPath)
	if err != nil {
		return err
	}
	defer in.Close()

	pt, err := crypto.Decrypt(in, job.Passphrase)
	if err != nil {
		return err
	}

	if job.SourceDir != "" {
		if err := os.MkdirAll(job.SourceDir, 0755); err != nil {
			return fmt.Errorf("failed to create target directory: %w", err)
		}
	}

	var r io.Reader = pt
	var p *mpbProgress
	if c.Progress {
		p = newJobProgress(job.ArchiveName)
		r = NewProgressReader(pt, p.bar)
	}

	err = Unpack(r, staging)
	if p != nil {
		p.finishIndeterminate()
	}
	if err != nil {
		return fmt.Errorf("failed to extract archive: %w", err)
	}

	if err := job.Adapter.Scatter(ctx, staging); err != nil {
		return fmt.Errorf("scatter failed for %s: %w", job.Adapter.Name(), err)
	}

	c.Log.Info("Restore complete", "target", job.Adapter.Name(), "archive", encName)
	return nil
}

func (c *Coordinator) verifyChecksum(ctx context.Context, encName, got string) error {
	data, err := c.Store.GetMetadata(ctx, encName+".manifest")
	if err != nil {
		c.Log.Warn("Manifest not found, skipping integrity check", "archive", encName)
		return nil
	}

	man, err := manifest.Deserialize(data)
	if err != nil {
		c.Log.Warn("Unreadable manifest, skipping integrity check", "archive", encName, "error", err)
		return nil
	}

	if man.Checksum != "" && man.Checksum != got {
		return apperrors.ErrIntegrityMismatch
	}
	return nil
}
