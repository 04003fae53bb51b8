package tx

import (
	"math/big"

	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/rlp"
	"github.com/orlowskilp/evm-signer-kms/signature"
)

// LegacyTx is an EIP-2718 type 0 transaction. A nil ChainID opts into the
// pre-EIP-155 form (v = recoveryID + 27, no chain id in the signing data or
// the assembled v); a non-nil ChainID signs and assembles per EIP-155.
type LegacyTx struct {
	Nonce    uint64
	GasPrice *big.Int
	GasLimit uint64
	To       *address.Address // nil for contract creation
	Value    *big.Int
	Data     []byte
	ChainID  *big.Int
}

// SigningHash returns Keccak256(RLP([nonce, gasPrice, gasLimit, to, value,
// data])) for a pre-EIP-155 transaction, or Keccak256(RLP([nonce, gasPrice,
// gasLimit, to, value, data, chainId, 0, 0])) per EIP-155 when ChainID is set.
func (tx *LegacyTx) SigningHash() [32]byte {
	items := rlp.List{
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.GasPrice),
		rlpUint64(tx.GasLimit),
		rlpAddress(tx.To),
		rlpBigInt(tx.Value),
		rlp.Bytes(tx.Data),
	}
	if tx.ChainID != nil {
		items = append(items, rlpBigInt(tx.ChainID), rlpUint64(0), rlpUint64(0))
	}
	return signingDigest(nil, rlp.Encode(items))
}

// Assemble returns RLP([nonce, gasPrice, gasLimit, to, value, data, v, r, s]),
// where v follows EIP-155 (v = recoveryID + 35 + 2*chainID) when ChainID is
// set, or the pre-EIP-155 form (v = recoveryID + 27) when it is not.
func (tx *LegacyTx) Assemble(sig signature.Signature) []byte {
	v := new(big.Int)
	if tx.ChainID != nil {
		v.Mul(tx.ChainID, big.NewInt(2))
		v.Add(v, big.NewInt(35))
		v.Add(v, big.NewInt(int64(sig.RecoveryID)))
	} else {
		v.SetInt64(int64(sig.RecoveryID) + 27)
	}

	items := rlp.List{
		rlpUint64(tx.Nonce),
		rlpBigInt(tx.GasPrice),
		rlpUint64(tx.GasLimit),
		rlpAddress(tx.To),
		rlpBigInt(tx.Value),
		rlp.Bytes(tx.Data),
		rlpBigInt(v),
		rlp.Bytes(trimLeadingZeros(sig.R[:])),
		rlp.Bytes(trimLeadingZeros(sig.S[:])),
	}
	return rlp.Encode(items)
}

// trimLeadingZeros strips leading zero bytes, matching Ethereum's minimal
// Quantity encoding for r and s.
func trimLeadingZeros(b []byte) []byte {
	i := 0
	for i < len(b) && b[i] == 0 {
		i++
	}
	return b[i:]
}
