package bitsig

import (
	"errors"
	"math/big"
)

// DER parsing errors.
var (
	// ErrSigTooShort is returned when a DER signature is shorter than the
	// minimum possible encoding.
	ErrSigTooShort = errors.New("malformed signature: too short")

	// ErrSigInvalidSeqID is returned when a DER signature does not start
	// with the ASN.1 sequence ID.
	ErrSigInvalidSeqID = errors.New("malformed signature: no ASN.1 sequence")

	// ErrSigInvalidDataLen is returned when the sequence length does not
	// match the number of remaining bytes.
	ErrSigInvalidDataLen = errors.New("malformed signature: bad sequence length")

	// ErrSigInvalidRIntID is returned when the R value is not tagged as an
	// ASN.1 integer.
	ErrSigInvalidRIntID = errors.New("malformed signature: no ASN.1 integer ID for R")

	// ErrSigInvalidRLen is returned when the declared R length overruns the
	// signature.
	ErrSigInvalidRLen = errors.New("malformed signature: bad R length")

	// ErrSigInvalidSIntID is returned when the S value is not tagged as an
	// ASN.1 integer.
	ErrSigInvalidSIntID = errors.New("malformed signature: no ASN.1 integer ID for S")

	// ErrSigInvalidSLen is returned when the declared S length overruns the
	// signature.
	ErrSigInvalidSLen = errors.New("malformed signature: bad S length")
)

// derInt renders v as a 32-byte big-endian ASN.1 INTEGER body. A zero byte
// is prepended when the high bit is set, so the value is not read back as a
// negative two's-complement number.
func derInt(v *big.Int) []byte {
	b := padWithZeros(v.Bytes(), 32)
	if b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return b
}

// Serialize encodes the signature in DER: two length-prefixed ASN.1 INTEGERs
// wrapped in an ASN.1 SEQUENCE. All length fields are single bytes, which is
// enough for this curve's 32-byte values plus at most one padding byte each.
func (sig *Signature) Serialize() []byte {
	rb := derInt(sig.R)
	sb := derInt(sig.S)

	body := make([]byte, 0, len(rb)+len(sb)+4)
	body = append(body, 0x02, byte(len(rb)))
	body = append(body, rb...)
	body = append(body, 0x02, byte(len(sb)))
	body = append(body, sb...)

	out := make([]byte, 0, len(body)+2)
	out = append(out, 0x30, byte(len(body)))
	return append(out, body...)
}

// ParseDERSignature parses a DER signature produced by Serialize. Multi-byte
// ASN.1 length encodings are deliberately not handled; values at this curve's
// magnitude never need them, and this is not a general DER parser.
func ParseDERSignature(der []byte) (*Signature, error) {
	if len(der) < 8 {
		return nil, ErrSigTooShort
	}
	if der[0] != 0x30 {
		return nil, ErrSigInvalidSeqID
	}
	if int(der[1]) != len(der)-2 {
		return nil, ErrSigInvalidDataLen
	}
	if der[2] != 0x02 {
		return nil, ErrSigInvalidRIntID
	}
	rLen := int(der[3])
	if len(der) < 6+rLen {
		return nil, ErrSigInvalidRLen
	}
	r := new(big.Int).SetBytes(der[4 : 4+rLen])
	if der[4+rLen] != 0x02 {
		return nil, ErrSigInvalidSIntID
	}
	sLen := int(der[5+rLen])
	if len(der) < 6+rLen+sLen {
		return nil, ErrSigInvalidSLen
	}
	s := new(big.Int).SetBytes(der[6+rLen : 6+rLen+sLen])
	return &Signature{R: r, S: s}, nil
}
