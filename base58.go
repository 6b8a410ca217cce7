package bitsig

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// The base58 alphabet: 58 glyphs, leaving out 0, O, I and l.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// Version bytes and markers used by the Bitcoin key encodings.
const (
	// AddressVersion is the version byte of a mainnet pay-to-pubkey-hash
	// address.
	AddressVersion byte = 0x00

	// WIFVersion is the version byte of a mainnet WIF private key.
	WIFVersion byte = 0x80

	// compressedMarker is the trailing byte of a WIF key whose public key
	// should be serialized compressed.
	compressedMarker byte = 0x01

	checksumLength = 4
)

var (
	// ErrInvalidBase58 is returned when a string contains a character
	// outside the base58 alphabet, or is too short to carry a checksum.
	ErrInvalidBase58 = errors.New("not a valid base58 string")

	// ErrChecksumMismatch is returned by Base58CheckDecode when the trailing
	// checksum does not match the payload. The decoded payload is still
	// returned alongside the error: the reference behavior is to warn and
	// keep going, and callers decide whether to be strict.
	ErrChecksumMismatch = errors.New("base58 checksum mismatch")
)

// Base58Encode converts b to base58. Each leading zero byte becomes one
// leading '1' glyph, since base58 digits cannot otherwise represent leading
// zeros.
func Base58Encode(b []byte) string {
	n := new(big.Int).SetBytes(b)
	radix := big.NewInt(58)
	mod := new(big.Int)
	var digits []byte
	for n.Sign() > 0 {
		n.DivMod(n, radix, mod)
		digits = append(digits, base58Alphabet[mod.Int64()])
	}
	// Digits come out least significant first.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	zeros := 0
	for zeros < len(b) && b[zeros] == 0x00 {
		zeros++
	}
	return strings.Repeat("1", zeros) + string(digits)
}

// Base58Decode reverses Base58Encode, mapping leading '1' glyphs back to
// leading zero bytes.
func Base58Decode(s string) ([]byte, error) {
	n := new(big.Int)
	radix := big.NewInt(58)
	for _, r := range s {
		idx := strings.IndexRune(base58Alphabet, r)
		if idx < 0 {
			return nil, fmt.Errorf("%w: unexpected character %q", ErrInvalidBase58, r)
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(idx)))
	}
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}
	return append(make([]byte, zeros), n.Bytes()...), nil
}

// Base58CheckEncode prefixes the version byte, appends the first four bytes
// of the double-SHA256 checksum and encodes the result in base58. Payloads
// that carry a trailing compression marker include it before calling this.
func Base58CheckEncode(version byte, payload []byte) string {
	b := append([]byte{version}, payload...)
	checksum := Hash256(b)[:checksumLength]
	return Base58Encode(append(b, checksum...))
}

// Base58CheckDecode decodes s and splits off the version byte and the
// trailing checksum. A wrong checksum returns the payload together with
// ErrChecksumMismatch rather than discarding it.
func Base58CheckDecode(s string) (version byte, payload []byte, err error) {
	b, err := Base58Decode(s)
	if err != nil {
		return 0, nil, err
	}
	if len(b) < checksumLength+1 {
		return 0, nil, fmt.Errorf("%w: too short for a checksum", ErrInvalidBase58)
	}
	content, checksum := b[:len(b)-checksumLength], b[len(b)-checksumLength:]
	if !bytes.Equal(Hash256(content)[:checksumLength], checksum) {
		err = ErrChecksumMismatch
	}
	return content[0], content[1:], err
}
