// Package pubkey decodes the DER-encoded SubjectPublicKeyInfo a KMS
// GetPublicKey call returns for a secp256k1 key into the raw 64-byte
// uncompressed point the rest of this module works with.
package pubkey

import (
	"encoding/asn1"

	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// Length is the width of an uncompressed secp256k1 point with its leading
// 0x04 SEC1 prefix stripped: 32 bytes of X followed by 32 bytes of Y.
const Length = 64

// PublicKey is an uncompressed secp256k1 point, X‖Y, with the SEC1 0x04
// prefix already removed.
type PublicKey [Length]byte

// subjectPublicKeyInfo mirrors the SEQUENCE { algorithm, subjectPublicKey }
// shape of RFC 5280's SubjectPublicKeyInfo. The algorithm identifier is
// parsed generically since this package only cares about the key bytes;
// the KMS contract, not this decoder, is responsible for only ever handing
// back secp256k1 keys.
type subjectPublicKeyInfo struct {
	Algorithm asn1.RawValue
	PublicKey asn1.BitString
}

// Decode parses a DER SubjectPublicKeyInfo and returns the 64-byte X‖Y
// uncompressed point. It fails with InvalidPublicKey if the ASN.1 structure
// is malformed, the bit string is not 65 bytes, or it does not begin with
// the SEC1 uncompressed-point prefix 0x04.
func Decode(der []byte) (PublicKey, error) {
	var spki subjectPublicKeyInfo
	rest, err := asn1.Unmarshal(der, &spki)
	if err != nil {
		return PublicKey{}, txerr.Wrap(txerr.InvalidPublicKey, "failed to parse SubjectPublicKeyInfo", err)
	}
	if len(rest) != 0 {
		return PublicKey{}, txerr.New(txerr.InvalidPublicKey, "trailing bytes after SubjectPublicKeyInfo")
	}

	raw := spki.PublicKey.RightAlign()
	if len(raw) != 65 {
		return PublicKey{}, txerr.Newf(txerr.InvalidPublicKey, "expected 65-byte uncompressed point, got %d bytes", len(raw))
	}
	if raw[0] != 0x04 {
		return PublicKey{}, txerr.Newf(txerr.InvalidPublicKey, "expected uncompressed point prefix 0x04, got 0x%02x", raw[0])
	}

	var pk PublicKey
	copy(pk[:], raw[1:])
	return pk, nil
}
