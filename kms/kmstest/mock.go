// Package kmstest provides a deterministic kms.Port test double backed by
// an in-memory secp256k1 key, so callers can exercise the full sign
// pipeline end to end without a real KMS or HSM.
package kmstest

import (
	"context"
	"encoding/asn1"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/orlowskilp/evm-signer-kms/kms"
)

// ecPublicKeyOID and secp256k1OID identify the key type and curve in the
// SubjectPublicKeyInfo this mock returns, matching what a real KMS (e.g.
// AWS KMS's ECC_SECG_P256K1 key spec) hands back.
var (
	ecPublicKeyOID = asn1.ObjectIdentifier{1, 2, 840, 10045, 2, 1}
	secp256k1OID   = asn1.ObjectIdentifier{1, 3, 132, 0, 10}
)

type algorithmIdentifier struct {
	Algorithm  asn1.ObjectIdentifier
	Parameters asn1.ObjectIdentifier
}

type subjectPublicKeyInfo struct {
	Algorithm algorithmIdentifier
	PublicKey asn1.BitString
}

// MockPort is a kms.Port backed by a single in-memory secp256k1 key. It is
// safe to share across goroutines; it holds no mutable state after
// construction.
type MockPort struct {
	keyID      string
	privateKey *secp256k1.PrivateKey
	publicKey  []byte // DER SubjectPublicKeyInfo, computed once
}

// NewMockPort builds a MockPort for a single logical key ID, deriving the
// key deterministically from seed so tests are reproducible. seed must be
// 32 bytes and encode a value below the curve order; tests should use a
// fixed, known-good seed rather than random bytes.
func NewMockPort(keyID string, seed [32]byte) (*MockPort, error) {
	priv := secp256k1.PrivKeyFromBytes(seed[:])
	der, err := encodePublicKey(priv.PubKey())
	if err != nil {
		return nil, err
	}
	return &MockPort{keyID: keyID, privateKey: priv, publicKey: der}, nil
}

// GetPublicKey returns the DER SubjectPublicKeyInfo for keyID. It fails if
// keyID does not match the key this MockPort was constructed with.
func (m *MockPort) GetPublicKey(_ context.Context, keyID string) ([]byte, error) {
	if keyID != m.keyID {
		return nil, fmt.Errorf("kmstest: unknown key id %q", keyID)
	}
	return m.publicKey, nil
}

// Sign returns a DER ECDSA signature over digest, which must be exactly 32
// bytes. It fails if keyID does not match the key this MockPort was
// constructed with.
func (m *MockPort) Sign(_ context.Context, keyID string, digest []byte) ([]byte, error) {
	if keyID != m.keyID {
		return nil, fmt.Errorf("kmstest: unknown key id %q", keyID)
	}
	if len(digest) != 32 {
		return nil, fmt.Errorf("kmstest: digest must be 32 bytes, got %d", len(digest))
	}
	sig := ecdsa.Sign(m.privateKey, digest)
	return sig.Serialize(), nil
}

var _ kms.Port = (*MockPort)(nil)

func encodePublicKey(pub *secp256k1.PublicKey) ([]byte, error) {
	spki := subjectPublicKeyInfo{
		Algorithm: algorithmIdentifier{
			Algorithm:  ecPublicKeyOID,
			Parameters: secp256k1OID,
		},
		PublicKey: asn1.BitString{
			Bytes:     pub.SerializeUncompressed(),
			BitLength: len(pub.SerializeUncompressed()) * 8,
		},
	}
	return asn1.Marshal(spki)
}
