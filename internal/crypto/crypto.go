// Package crypto encrypts archive streams with OpenPGP symmetric encryption
// (AES-256, passphrase-derived key). The output is a standard .gpg message
// that stock gpg can decrypt with the same passphrase.
package crypto

import (
	"io"

	"golang.org/x/crypto/openpgp"
	"golang.org/x/crypto/openpgp/packet"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
)

func pgpConfig() *packet.Config {
	return &packet.Config{
		DefaultCipher: packet.CipherAES256,
	}
}

// EncryptWriter wraps w so that everything written to it is emitted as an
// OpenPGP symmetrically encrypted message. Close must be called to flush
// the final packets.
type EncryptWriter struct {
	pt io.WriteCloser
}

func NewEncryptWriter(w io.Writer, passphrase []byte) (*EncryptWriter, error) {
	if len(passphrase) == 0 {
		return nil, apperrors.New(apperrors.TypeSecurity,
			"a passphrase is required for encryption", "")
	}

	pt, err := openpgp.SymmetricallyEncrypt(w, passphrase, &openpgp.FileHints{IsBinary: true}, pgpConfig())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.TypeSecurity, "failed to start encryption", "")
	}

	return &EncryptWriter{pt: pt}, nil
}

func (ew *EncryptWriter) Write(p []byte) (int, error) {
	return ew.pt.Write(p)
}

func (ew *EncryptWriter) Close() error {
	return ew.pt.Close()
}

// Decrypt returns a reader over the plaintext of an OpenPGP symmetrically
// encrypted message. A wrong passphrase surfaces as an error either here or
// on the first read from the returned reader.
func Decrypt(r io.Reader, passphrase []byte) (io.Reader, error) {
	attempted := false
	prompt := func(keys []openpgp.Key, symmetric bool) ([]byte, error) {
		if attempted {
			// openpgp re-prompts on a bad passphrase; one attempt only.
			return nil, apperrors.ErrWrongPassphrase
		}
		attempted = true
		return passphrase, nil
	}

	md, err := openpgp.ReadMessage(r, nil, prompt, pgpConfig())
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.TypeSecurity,
			"decryption failed", "The passphrase is wrong or the archive is corrupt.")
	}

	return md.UnverifiedBody, nil
}
