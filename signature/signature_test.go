package signature

import (
	"encoding/asn1"
	"math/big"
	"testing"

	"github.com/orlowskilp/evm-signer-kms/pubkey"
	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// Test vectors pinned from the original implementation's own unit tests
// (parse_signature, recover_public_key), not invented.
var testPublicKey = pubkey.PublicKey{
	0xf9, 0x52, 0xb9, 0x6e, 0xb7, 0xa7, 0x84, 0x5a, 0xda, 0xbe, 0x93, 0x4b, 0xe3, 0x43, 0x8d,
	0x92, 0xe9, 0x97, 0x64, 0x78, 0x56, 0xdb, 0xc4, 0x89, 0x7c, 0x66, 0x1d, 0x2e, 0x8f, 0x39,
	0xbe, 0x7a, 0x27, 0x83, 0x23, 0x47, 0x42, 0xd4, 0x11, 0xb3, 0xc9, 0xe4, 0x55, 0x4d, 0xb4,
	0xc8, 0x66, 0x2a, 0x54, 0x71, 0x60, 0xf7, 0xee, 0x30, 0xd0, 0xaa, 0x68, 0x00, 0x88, 0xe1,
	0xa1, 0xdd, 0x80, 0xc0,
}

var testDigest = [32]byte{
	0x02, 0x6f, 0x61, 0x4e, 0xa0, 0x9e, 0x14, 0x68, 0x28, 0xcb, 0x42, 0xe8, 0xda, 0x55, 0xa5,
	0x9a, 0x90, 0x3b, 0xc6, 0x23, 0x00, 0xa5, 0x27, 0x85, 0xbd, 0xba, 0x8b, 0x94, 0x46, 0xc6,
	0x0c, 0x7d,
}

// testR2/testS2 recover testPublicKey with recovery id 0 against testDigest
// before low-s normalization; testS2 lies above the curve's half order, so
// Normalize must negate it and flip the recovery id to 1.
var testR2 = []byte{
	0x5e, 0x12, 0x50, 0x05, 0xa0, 0x8e, 0xcd, 0x57, 0x72, 0x81, 0x39, 0x6b, 0x81, 0xb0, 0x57,
	0x20, 0x13, 0xdb, 0xa0, 0x5b, 0x74, 0xfa, 0xc7, 0x79, 0x21, 0xf4, 0x71, 0x9c, 0xf3, 0x7e,
	0x9c, 0xe0,
}

var testS2 = []byte{
	0xe9, 0x9f, 0x4f, 0x23, 0x4d, 0x5c, 0x2a, 0x59, 0x0a, 0x4b, 0x0a, 0x07, 0x7d, 0x49, 0x0d,
	0xde, 0x56, 0x4a, 0xbc, 0x14, 0xfc, 0x4e, 0xa5, 0x30, 0x30, 0xa7, 0x14, 0x39, 0x91, 0x0d,
	0xfa, 0x89,
}

var wantNormalizedS2 = []byte{
	0x16, 0x60, 0xb0, 0xdc, 0xb2, 0xa3, 0xd5, 0xa6, 0xf5, 0xb4, 0xf5, 0xf8, 0x82, 0xb6, 0xf2,
	0x20, 0x64, 0x64, 0x20, 0xd1, 0xb2, 0xf9, 0xfb, 0x0b, 0x8f, 0x2b, 0x4a, 0x53, 0x3f, 0x28,
	0x46, 0xb8,
}

func encodeDER(t *testing.T, r, s []byte) []byte {
	t.Helper()
	der, err := asn1.Marshal(derSignature{R: new(big.Int).SetBytes(r), S: new(big.Int).SetBytes(s)})
	if err != nil {
		t.Fatalf("failed to build test DER signature: %v", err)
	}
	return der
}

func TestNormalizeAppliesLowSAndFlipsRecoveryID(t *testing.T) {
	der := encodeDER(t, testR2, testS2)

	sig, err := Normalize(der, testDigest, testPublicKey)
	if err != nil {
		t.Fatalf("Normalize error: %v", err)
	}
	if string(sig.R[:]) != string(testR2) {
		t.Errorf("R = %x, want %x", sig.R, testR2)
	}
	if string(sig.S[:]) != string(wantNormalizedS2) {
		t.Errorf("S = %x, want %x", sig.S, wantNormalizedS2)
	}
	if sig.RecoveryID != 1 {
		t.Errorf("RecoveryID = %d, want 1 (flipped by the s negation)", sig.RecoveryID)
	}
}

func TestNormalizeUnrecoverableSignature(t *testing.T) {
	// A syntactically valid signature that does not recover to
	// testPublicKey against testDigest.
	der := encodeDER(t, testR2, testS2)
	var otherDigest [32]byte
	copy(otherDigest[:], testDigest[:])
	otherDigest[0] ^= 0xff

	_, err := Normalize(der, otherDigest, testPublicKey)
	if !txerr.Is(err, txerr.UnrecoverableSignature) {
		t.Fatalf("expected UnrecoverableSignature, got %v", err)
	}
}

func TestNormalizeMalformedDER(t *testing.T) {
	_, err := Normalize([]byte{0x01, 0x02}, testDigest, testPublicKey)
	if !txerr.Is(err, txerr.InvalidSignature) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}

func TestNormalizeZeroR(t *testing.T) {
	der := encodeDER(t, []byte{0x00}, testS2)
	_, err := Normalize(der, testDigest, testPublicKey)
	if !txerr.Is(err, txerr.InvalidSignature) {
		t.Fatalf("expected InvalidSignature, got %v", err)
	}
}
