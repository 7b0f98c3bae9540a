package keychain

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	apperrors "github.com/josephjohncox/dotvault/internal/errors"
)

// PromptFunc reads a passphrase interactively without echoing it.
type PromptFunc func(prompt string) ([]byte, error)

// Resolve looks the passphrase up in the store. On a miss it prompts the
// user and caches the entered value back into the store; a cache write
// failure is not fatal since the passphrase itself was obtained.
func Resolve(store Store, service, account string, prompt PromptFunc) ([]byte, error) {
	secret, err := store.Get(service, account)
	if err == nil {
		return []byte(secret), nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if prompt == nil {
		prompt = ReadPassphrase
	}
	pass, err := prompt(fmt.Sprintf("Passphrase for %s/%s: ", service, account))
	if err != nil {
		return nil, err
	}
	if len(pass) == 0 {
		return nil, apperrors.New(apperrors.TypeCredential,
			"empty passphrase",
			"A non-empty passphrase is required to encrypt or decrypt archives.")
	}

	_ = store.Set(service, account, string(pass))
	return pass, nil
}

// ReadPassphrase prompts on stderr and reads from stdin without echoing.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, apperrors.New(apperrors.TypeCredential,
			"cannot read passphrase: stdin is not a terminal",
			"Store the passphrase in the system keychain first, or run from an interactive shell.")
	}

	fmt.Fprint(os.Stderr, prompt)
	pass, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return pass, nil
}
