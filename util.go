package bitsig

import "encoding/base64"

// padWithZeros left-pads b with zero bytes to the given size. If b is already
// size bytes or longer it is returned unchanged.
func padWithZeros(b []byte, size int) []byte {
	if len(b) >= size {
		return b
	}
	padded := make([]byte, size)
	copy(padded[size-len(b):], b)
	return padded
}

// base64urlEncode encodes b using Base64url (Base64 without padding), the
// encoding JWK uses.
func base64urlEncode(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func base64urlDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
