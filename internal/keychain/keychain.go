// Package keychain resolves backup passphrases from the platform-native
// secret store, falling back to an interactive prompt and caching new values.
package keychain

import (
	"errors"

	"github.com/zalando/go-keyring"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
)

// ErrNotFound is returned when no passphrase is stored for a service/account pair.
var ErrNotFound = errors.New("passphrase not found in credential store")

// Store is the credential store contract: get(service, account) and
// set(service, account, passphrase).
type Store interface {
	Get(service, account string) (string, error)
	Set(service, account, passphrase string) error
}

// SystemStore is backed by the OS secret service (Keychain on macOS,
// Secret Service on Linux, Credential Manager on Windows).
type SystemStore struct{}

func NewSystemStore() *SystemStore {
	return &SystemStore{}
}

func (s *SystemStore) Get(service, account string) (string, error) {
	secret, err := keyring.Get(service, account)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", apperrors.Wrap(err, apperrors.TypeCredential,
			"failed to read credential store",
			"Check that the system keychain is unlocked and accessible.")
	}
	return secret, nil
}

func (s *SystemStore) Set(service, account, passphrase string) error {
	if err := keyring.Set(service, account, passphrase); err != nil {
		return apperrors.Wrap(err, apperrors.TypeCredential,
			"failed to write credential store",
			"Check that the system keychain is unlocked and accessible.")
	}
	return nil
}

// MemStore is an in-memory Store used in tests.
type MemStore struct {
	secrets map[string]string
}

func NewMemStore() *MemStore {
	return &MemStore{secrets: map[string]string{}}
}

func (s *MemStore) Get(service, account string) (string, error) {
	secret, ok := s.secrets[service+"/"+account]
	if !ok {
		return "", ErrNotFound
	}
	return secret, nil
}

func (s *MemStore) Set(service, account, passphrase string) error {
	s.secrets[service+"/"+account] = passphrase
	return nil
}
