// Package txerr defines the stable error taxonomy shared by every package
// in this module, so callers can branch on failure class instead of
// matching error strings.
package txerr

import (
	"errors"
	"fmt"
)

// Kind identifies a class of failure. The set is closed: every error the
// library packages raise themselves carries one of these. kms.CachingPort
// returns the wrapped port's errors unchanged, and tx.Sign wraps port errors
// as KmsError; the kmstest double returns plain errors, as a real port would.
type Kind string

const (
	// InvalidHex is raised when hex input has non-hex characters or an odd length.
	InvalidHex Kind = "invalid_hex"
	// InvalidLength is raised when input exceeds or mismatches a required width.
	InvalidLength Kind = "invalid_length"
	// InvalidPublicKey is raised when a DER SubjectPublicKeyInfo is malformed
	// or does not encode an uncompressed secp256k1 point.
	InvalidPublicKey Kind = "invalid_public_key"
	// InvalidSignature is raised when a DER ECDSA signature is malformed or
	// r/s fall outside [1, n-1].
	InvalidSignature Kind = "invalid_signature"
	// UnrecoverableSignature is raised when no recovery id reproduces the
	// known public key.
	UnrecoverableSignature Kind = "unrecoverable_signature"
	// InvalidChecksum is raised when mixed-case hex fails EIP-55 validation.
	InvalidChecksum Kind = "invalid_checksum"
	// KmsError wraps an error returned verbatim by the KMS port.
	KmsError Kind = "kms_error"
)

// Error is the single error type returned by this module. It carries a
// Kind so callers can distinguish failure classes, and optionally wraps
// the underlying cause (e.g. the KMS port's own error).
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// New constructs an Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf constructs an Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap constructs an Error that carries cause as its wrapped error.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: cause}
}

// Is reports whether err is an *Error of the given Kind, unwrapping as needed.
func Is(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}
