// Package tx builds the three EIP-2718 transaction envelopes this module
// signs, and orchestrates the fetch-pubkey -> hash -> sign -> normalize ->
// assemble pipeline against a kms.Port.
package tx

import (
	"context"
	"encoding/binary"
	"math/big"

	"github.com/orlowskilp/evm-signer-kms/accesslist"
	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/keccak"
	"github.com/orlowskilp/evm-signer-kms/kms"
	"github.com/orlowskilp/evm-signer-kms/pubkey"
	"github.com/orlowskilp/evm-signer-kms/quantity"
	"github.com/orlowskilp/evm-signer-kms/rlp"
	"github.com/orlowskilp/evm-signer-kms/signature"
	"github.com/orlowskilp/evm-signer-kms/txerr"
)

// Transaction is an unsigned EVM transaction that knows how to compute its
// own signing digest and assemble itself into a signed wire encoding once
// a Signature is available.
type Transaction interface {
	// SigningHash returns the Keccak256 digest this transaction must be
	// signed over, EIP-2718 type byte included where the envelope has one.
	SigningHash() [32]byte
	// Assemble returns the fully serialized signed transaction, ready to
	// hand to eth_sendRawTransaction.
	Assemble(sig signature.Signature) []byte
}

// Sign runs the full pipeline against port for keyID: fetch the public key,
// compute txn's signing hash, request a signature over it, normalize the
// signature against the fetched key, and assemble the signed transaction.
func Sign(ctx context.Context, keyID string, port kms.Port, txn Transaction) ([]byte, error) {
	der, err := port.GetPublicKey(ctx, keyID)
	if err != nil {
		return nil, txerr.Wrap(txerr.KmsError, "GetPublicKey failed for key "+keyID, err)
	}
	pub, err := pubkey.Decode(der)
	if err != nil {
		return nil, err
	}

	digest := txn.SigningHash()

	derSig, err := port.Sign(ctx, keyID, digest[:])
	if err != nil {
		return nil, txerr.Wrap(txerr.KmsError, "Sign failed for key "+keyID, err)
	}

	sig, err := signature.Normalize(derSig, digest, pub)
	if err != nil {
		return nil, err
	}

	return txn.Assemble(sig), nil
}

// SignLegacy signs a legacy (type 0) transaction.
func SignLegacy(ctx context.Context, keyID string, port kms.Port, txn *LegacyTx) ([]byte, error) {
	return Sign(ctx, keyID, port, txn)
}

// SignAccessList signs an EIP-2930 (type 1) transaction.
func SignAccessList(ctx context.Context, keyID string, port kms.Port, txn *AccessListTx) ([]byte, error) {
	return Sign(ctx, keyID, port, txn)
}

// SignDynamicFee signs an EIP-1559 (type 2) transaction.
func SignDynamicFee(ctx context.Context, keyID string, port kms.Port, txn *DynamicFeeTx) ([]byte, error) {
	return Sign(ctx, keyID, port, txn)
}

// rlpUint64 encodes v as a minimal-width RLP byte string, per Ethereum's
// Quantity encoding (zero encodes as the empty string).
func rlpUint64(v uint64) rlp.Bytes {
	if v == 0 {
		return rlp.Bytes{}
	}
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	for len(buf) > 1 && buf[0] == 0 {
		buf = buf[1:]
	}
	return rlp.Bytes(buf)
}

// rlpBigInt encodes v as a minimal-width RLP byte string.
func rlpBigInt(v *big.Int) rlp.Bytes {
	return rlp.Bytes(quantity.ToBytes(v))
}

// rlpAddress encodes addr for RLP; nil means contract creation.
func rlpAddress(addr *address.Address) rlp.Bytes {
	if addr == nil {
		return rlp.Bytes{}
	}
	return rlp.Bytes(addr[:])
}

// rlpAccessList encodes an access list for RLP.
func rlpAccessList(list accesslist.List) rlp.Item {
	return list.RLP()
}

// signingDigest hashes payload, optionally prefixed with an EIP-2718 type
// byte for typed transactions.
func signingDigest(typeByte *byte, payload []byte) [32]byte {
	if typeByte == nil {
		return keccak.Sum256(payload)
	}
	return keccak.Sum256([]byte{*typeByte}, payload)
}
