package manifest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"time"

	"github.com/google/uuid"
)

// Manifest is the JSON sidecar written next to each encrypted archive. It
// records enough to verify the blob on restore and to audit when a target
// was last backed up.
type Manifest struct {
	ID          string    `json:"id"`
	Target      string    `json:"target"`
	ArchiveName string    `json:"archive_name"`
	Checksum    string    `json:"checksum,omitempty"` // SHA-256 of the encrypted blob
	Compression string    `json:"compression,omitempty"`
	Encryption  string    `json:"encryption,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Size        int64     `json:"size,omitempty"`
}

func New(target, archiveName string) *Manifest {
	return &Manifest{
		ID:          uuid.NewString(),
		Target:      target,
		ArchiveName: archiveName,
		Compression: "gzip",
		Encryption:  "openpgp-aes256",
		CreatedAt:   time.Now(),
	}
}

func (m *Manifest) Serialize() ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

func Deserialize(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func CalculateChecksum(r io.Reader) (string, error) {
	h := sha256.New()
	if _, err := io.Copy(h, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
