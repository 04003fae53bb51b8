package tx

import "github.com/orlowskilp/evm-signer-kms/signature"

// signatureFixture is a minimal non-zero signature used by assembly tests
// that only check structural properties (type byte, v encoding) rather
// than cryptographic validity.
type signatureFixture struct {
	r, s byte
	v    byte
}

func (f signatureFixture) toSignature() signature.Signature {
	var sig signature.Signature
	sig.R[31] = f.r
	sig.S[31] = f.s
	if sig.R[31] == 0 {
		sig.R[31] = 0x01
	}
	if sig.S[31] == 0 {
		sig.S[31] = 0x02
	}
	sig.RecoveryID = f.v
	return sig
}
