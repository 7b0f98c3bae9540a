package apperrors

import (
	"errors"
	"fmt"
)

type ErrorType string

const (
	TypeDependency ErrorType = "Dependency" // Missing native tool (e.g. gpg, brew)
	TypeCredential ErrorType = "Credential" // Passphrase missing or store unavailable
	TypeSecurity   ErrorType = "Security"   // Encryption/decryption failure
	TypeIntegrity  ErrorType = "Integrity"  // Checksum mismatch, corrupt archive
	TypeConfig     ErrorType = "Config"     // Invalid flags, missing required params
	TypeResource   ErrorType = "Resource"   // Permission denied, file not found
	TypeInternal   ErrorType = "Internal"   // Unexpected internal failure
)

// AppError is a rich error type that categorizes failures and carries hints for users.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
	Hint    string
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError
func New(t ErrorType, msg string, hint string) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Hint:    hint,
	}
}

// Wrap wraps an existing error into an AppError
func Wrap(err error, t ErrorType, msg string, hint string) *AppError {
	return &AppError{
		Type:    t,
		Message: msg,
		Err:     err,
		Hint:    hint,
	}
}

// IsType reports whether err (or anything it wraps) is an AppError of type t.
func IsType(err error, t ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == t
	}
	return false
}

var (
	ErrIntegrityMismatch = New(TypeIntegrity, "Integrity failure", "The encrypted archive does not match its manifest checksum. It may be corrupt or tampered with.")
	ErrWrongPassphrase   = New(TypeSecurity, "Decryption failed", "The passphrase is wrong or the archive is corrupt. Check the stored keychain entry.")
)
