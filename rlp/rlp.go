// Package rlp implements Ethereum's Recursive Length Prefix encoding for
// byte strings and heterogeneous, nestable lists.
package rlp

import "encoding/binary"

// Item is anything that can be RLP-encoded: a byte string or a list of items.
type Item interface {
	encode() []byte
}

// Bytes is an RLP byte string.
type Bytes []byte

func (b Bytes) encode() []byte {
	length := len(b)
	if length == 1 && b[0] <= 0x7f {
		return []byte{b[0]}
	}
	if length <= 55 {
		out := make([]byte, 1+length)
		out[0] = 0x80 + byte(length)
		copy(out[1:], b)
		return out
	}
	lenBytes := minimalBigEndian(uint64(length))
	out := make([]byte, 1+len(lenBytes)+length)
	out[0] = 0xb7 + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], b)
	return out
}

// List is an ordered, heterogeneous, nestable RLP list.
type List []Item

func (l List) encode() []byte {
	var payload []byte
	for _, item := range l {
		payload = append(payload, item.encode()...)
	}
	length := len(payload)
	if length <= 55 {
		out := make([]byte, 1+length)
		out[0] = 0xc0 + byte(length)
		copy(out[1:], payload)
		return out
	}
	lenBytes := minimalBigEndian(uint64(length))
	out := make([]byte, 1+len(lenBytes)+length)
	out[0] = 0xf7 + byte(len(lenBytes))
	copy(out[1:], lenBytes)
	copy(out[1+len(lenBytes):], payload)
	return out
}

// Encode returns the RLP encoding of item.
func Encode(item Item) []byte {
	return item.encode()
}

// minimalBigEndian encodes v as big-endian bytes with no leading zeros.
// v is always > 55 at call sites, so the result is never empty.
func minimalBigEndian(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	for len(buf) > 1 && buf[0] == 0 {
		buf = buf[1:]
	}
	return buf
}
