package tx

import (
	"math/big"
	"testing"

	"github.com/orlowskilp/evm-signer-kms/address"
	"github.com/orlowskilp/evm-signer-kms/keccak"
	"github.com/orlowskilp/evm-signer-kms/signature"
)

// testAddrBytes is pinned from the original implementation's own
// legacy/access-list transaction encoding tests.
var testAddrBytes = [20]byte{
	0x70, 0xad, 0x75, 0x4f, 0xf6, 0x70, 0x07, 0x74, 0x11, 0xdf, 0x59, 0x8f, 0xcf, 0xfd, 0x61,
	0xc4, 0x82, 0x99, 0xf1, 0x2f,
}

// Pre-EIP-155 RLP encoding of [nonce=5, gasPrice=1e11, gasLimit=21000,
// to=testAddrBytes, value=1e16, data=[]], pinned from the original
// implementation's LegacyTransaction::encode test.
var testLegacyUnsignedEncoding = []byte{
	0xe8, 0x05, 0x85, 0x17, 0x48, 0x76, 0xe8, 0x00, 0x82, 0x52, 0x08, 0x94, 0x70, 0xad, 0x75,
	0x4f, 0xf6, 0x70, 0x07, 0x74, 0x11, 0xdf, 0x59, 0x8f, 0xcf, 0xfd, 0x61, 0xc4, 0x82, 0x99,
	0xf1, 0x2f, 0x87, 0x23, 0x86, 0xf2, 0x6f, 0xc1, 0x00, 0x00, 0x80,
}

func testLegacyTx() *LegacyTx {
	to := address.Address(testAddrBytes)
	return &LegacyTx{
		Nonce:    5,
		GasPrice: big.NewInt(100_000_000_000),
		GasLimit: 21_000,
		To:       &to,
		Value:    big.NewInt(10_000_000_000_000_000),
		Data:     nil,
	}
}

func TestLegacyTxSigningHashPreEIP155(t *testing.T) {
	txn := testLegacyTx() // ChainID left nil: pre-EIP-155 form
	want := keccak.Sum256(testLegacyUnsignedEncoding)
	if got := txn.SigningHash(); got != want {
		t.Errorf("SigningHash() = %x, want %x", got, want)
	}
}

func TestLegacyTxSigningHashEIP155DiffersFromPreEIP155(t *testing.T) {
	withChainID := testLegacyTx()
	withChainID.ChainID = big.NewInt(1)
	withoutChainID := testLegacyTx()

	if withChainID.SigningHash() == withoutChainID.SigningHash() {
		t.Error("expected EIP-155 signing hash to differ from the pre-EIP-155 hash")
	}
}

func TestLegacyTxAssembleEIP155VEncoding(t *testing.T) {
	txn := testLegacyTx()
	txn.ChainID = big.NewInt(1)

	var sig signature.Signature
	sig.R[31] = 0x01
	sig.S[31] = 0x02
	sig.RecoveryID = 1

	encoded := txn.Assemble(sig)
	if len(encoded) == 0 {
		t.Fatal("expected non-empty assembled transaction")
	}
	// v = recoveryID + 35 + 2*chainId = 1 + 35 + 2 = 38 = 0x26, encoded as a
	// single RLP byte string.
	if !containsByte(encoded, 0x26) {
		t.Errorf("expected EIP-155 v=38 (0x26) to appear in the encoding: %x", encoded)
	}
}

func containsByte(haystack []byte, b byte) bool {
	for _, h := range haystack {
		if h == b {
			return true
		}
	}
	return false
}
