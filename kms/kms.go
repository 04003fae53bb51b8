// Package kms defines the boundary between this module and the remote
// signer: a two-operation port that never hands back a private key, only
// public keys and DER signatures over digests this module supplies.
package kms

import "context"

// Port is the contract a remote KMS or HSM must satisfy. Implementations
// are supplied by the caller; this module never talks to a real KMS
// directly.
type Port interface {
	// GetPublicKey returns the DER-encoded SubjectPublicKeyInfo for keyID.
	GetPublicKey(ctx context.Context, keyID string) ([]byte, error)
	// Sign returns a DER-encoded ECDSA signature over digest, which must be
	// exactly 32 bytes. The KMS is trusted to sign the digest verbatim
	// rather than hashing it again.
	Sign(ctx context.Context, keyID string, digest []byte) ([]byte, error)
}
