// Package signature turns the DER ECDSA signature a KMS Sign call returns
// into the (r, s, v) triple Ethereum consensus expects: s normalized to the
// lower half of the curve order, and v determined by trial recovery against
// the known public key, since the HSM contract exposes neither.
package signature

import (
	"encoding/asn1"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/orlowskilp/evm-signer-kms/pubkey"
	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// ComponentLength is the width of a normalized r or s value.
const ComponentLength = 32

// Signature is an Ethereum-form ECDSA signature: r and s as unsigned
// 32-byte big-endian scalars, and a recovery id in {0, 1}.
type Signature struct {
	R          [ComponentLength]byte
	S          [ComponentLength]byte
	RecoveryID byte
}

// derSignature mirrors the SEQUENCE { r INTEGER, s INTEGER } ASN.1 shape of
// a DER ECDSA signature, parsed generically via encoding/asn1 the same way
// the original implementation parses it with its own ASN.1 tooling.
type derSignature struct {
	R *big.Int
	S *big.Int
}

// Normalize parses a DER ECDSA signature, enforces low-s, and determines the
// recovery id by trial recovery against pub.
//
// It fails with InvalidSignature if der is malformed or r/s fall outside
// [1, n-1], and with UnrecoverableSignature if neither candidate recovery id
// reproduces pub (which indicates a digest/key mismatch upstream).
func Normalize(der []byte, digest [32]byte, pub pubkey.PublicKey) (Signature, error) {
	var raw derSignature
	rest, err := asn1.Unmarshal(der, &raw)
	if err != nil {
		return Signature{}, txerr.Wrap(txerr.InvalidSignature, "failed to parse DER ECDSA signature", err)
	}
	if len(rest) != 0 {
		return Signature{}, txerr.New(txerr.InvalidSignature, "trailing bytes after DER ECDSA signature")
	}
	if raw.R == nil || raw.S == nil || raw.R.Sign() <= 0 || raw.S.Sign() <= 0 {
		return Signature{}, txerr.New(txerr.InvalidSignature, "r and s must be positive integers")
	}

	var rScalar, sScalar secp256k1.ModNScalar
	if overflow := rScalar.SetByteSlice(raw.R.Bytes()); overflow || rScalar.IsZero() {
		return Signature{}, txerr.New(txerr.InvalidSignature, "r is out of range [1, n-1]")
	}
	if overflow := sScalar.SetByteSlice(raw.S.Bytes()); overflow || sScalar.IsZero() {
		return Signature{}, txerr.New(txerr.InvalidSignature, "s is out of range [1, n-1]")
	}

	// Low-s normalization (EIP-2): Ethereum rejects signatures with s above
	// half the curve order, even though both s and n-s are equally valid.
	if sScalar.IsOverHalfOrder() {
		sScalar.Negate()
	}

	rBytes := rScalar.Bytes()
	sBytes := sScalar.Bytes()

	recoveryID, err := recover(rBytes, sBytes, digest, pub)
	if err != nil {
		return Signature{}, err
	}

	return Signature{R: rBytes, S: sBytes, RecoveryID: recoveryID}, nil
}

// recover finds the recovery id in {0, 1} for which ecrecover(digest, r, s, v)
// reproduces pub, using the compact-signature recovery the secp256k1 package
// exposes for the curve's two candidate points.
func recover(r, s [ComponentLength]byte, digest [32]byte, pub pubkey.PublicKey) (byte, error) {
	compact := make([]byte, 65)
	copy(compact[1:33], r[:])
	copy(compact[33:65], s[:])

	for v := byte(0); v < 2; v++ {
		compact[0] = 27 + v
		recovered, _, err := ecdsa.RecoverCompact(compact, digest[:])
		if err != nil {
			continue
		}
		uncompressed := recovered.SerializeUncompressed()
		if [pubkey.Length]byte(uncompressed[1:]) == [pubkey.Length]byte(pub) {
			return v, nil
		}
	}
	return 0, txerr.New(txerr.UnrecoverableSignature, "no recovery id reproduces the known public key")
}
