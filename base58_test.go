package bitsig

import (
	"math/rand"
	"testing"

	"github.com/btcsuite/btcutil/base58"
	"github.com/stretchr/testify/assert"
)

func Test_Base58_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	payloads := [][]byte{
		{0x01},
		{0x00, 0x01},
		{0x00, 0x00, 0x00, 0xff, 0x01, 0x02},
		{0x00},
		{0x00, 0x00},
		{0x80, 0xff, 0xfe},
	}
	for _, p := range payloads {
		decoded, err := Base58Decode(Base58Encode(p))
		assert.NoError(err)
		assert.EqualValues(p, decoded)
	}
}

func Test_Base58_MatchesBtcutil(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		b := make([]byte, 1+rng.Intn(40))
		rng.Read(b)
		if rng.Intn(2) == 0 {
			b[0] = 0x00
		}
		assert.Equal(base58.Encode(b), Base58Encode(b))
	}
}

func Test_Base58Check_MatchesBtcutil(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(4))
	for _, version := range []byte{AddressVersion, WIFVersion, 0x6f} {
		payload := make([]byte, 20)
		rng.Read(payload)
		assert.Equal(base58.CheckEncode(payload, version),
			Base58CheckEncode(version, payload))
	}
}

func Test_Base58Check_EmptyPayloadVector(t *testing.T) {
	assert := assert.New(t)

	// The address of the empty public key string: hash160 of no bytes,
	// version 0x00. A fixed regression vector for the whole pipeline.
	addr := Base58CheckEncode(AddressVersion, Hash160(nil))
	assert.Equal("1HT7xU2Ngenf7D4yocz2SAcnNLW7rK8d4E", addr)
}

func Test_Base58Check_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	payload := []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	version, decoded, err := Base58CheckDecode(Base58CheckEncode(0x42, payload))
	assert.NoError(err)
	assert.EqualValues(0x42, version)
	assert.EqualValues(payload, decoded)
}

func Test_Base58_InvalidCharacter(t *testing.T) {
	assert := assert.New(t)

	for _, s := range []string{"0", "O", "I", "l", "abc0def", "hello world"} {
		_, err := Base58Decode(s)
		assert.ErrorIs(err, ErrInvalidBase58)
	}
	_, _, err := Base58CheckDecode("0000")
	assert.ErrorIs(err, ErrInvalidBase58)
}

func Test_Base58Check_TooShort(t *testing.T) {
	assert := assert.New(t)

	_, _, err := Base58CheckDecode("11")
	assert.ErrorIs(err, ErrInvalidBase58)
}

func Test_Base58Check_ChecksumMismatch(t *testing.T) {
	assert := assert.New(t)

	// Build an encoding with a deliberately corrupted checksum. The decode
	// must surface the mismatch and still hand the payload back.
	payload := []byte{0x01, 0x02, 0x03, 0x04}
	b := append([]byte{0x42}, payload...)
	checksum := Hash256(b)[:checksumLength]
	checksum[0] ^= 0xff
	tampered := Base58Encode(append(b, checksum...))

	version, decoded, err := Base58CheckDecode(tampered)
	assert.ErrorIs(err, ErrChecksumMismatch)
	assert.EqualValues(0x42, version)
	assert.EqualValues(payload, decoded)
}
