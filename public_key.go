package bitsig

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/ethereum/go-ethereum/crypto"
)

// PublicKey is a point on the curve, d·G for the matching private key.
type PublicKey struct {
	curve *Curve
	point Point
}

// NewPublicKey wraps a curve point as a public key.
func NewPublicKey(curve *Curve, point Point) *PublicKey {
	return &PublicKey{curve: curve, point: point}
}

// Point returns the underlying curve point.
func (pub *PublicKey) Point() Point {
	return pub.point
}

// X returns the X coordinate of the public key.
func (pub *PublicKey) X() *big.Int {
	return pub.point.X.Num()
}

// Y returns the Y coordinate of the public key.
func (pub *PublicKey) Y() *big.Int {
	return pub.point.Y.Num()
}

// Bytes returns the uncompressed SEC serialization, 0x04 ∥ x ∥ y, 65 bytes.
func (pub *PublicKey) Bytes() []byte {
	b := make([]byte, 0, 65)
	b = append(b, 0x04)
	b = append(b, padWithZeros(pub.point.X.Num().Bytes(), 32)...)
	return append(b, padWithZeros(pub.point.Y.Num().Bytes(), 32)...)
}

// CompressedBytes returns the compressed SEC serialization, 33 bytes: the x
// coordinate prefixed with 0x02 or 0x03 depending on the parity of y.
func (pub *PublicKey) CompressedBytes() []byte {
	prefix := byte(0x02)
	if pub.point.Y.Num().Bit(0) == 1 {
		prefix = 0x03
	}
	return append([]byte{prefix}, padWithZeros(pub.point.X.Num().Bytes(), 32)...)
}

// BitcoinAddress returns the mainnet pay-to-pubkey-hash address for this key:
// Base58Check over the hash160 of the chosen serialization.
func (pub *PublicKey) BitcoinAddress(compressed bool) string {
	serialized := pub.Bytes()
	if compressed {
		serialized = pub.CompressedBytes()
	}
	return Base58CheckEncode(AddressVersion, Hash160(serialized))
}

// EthereumAddress returns the Ethereum address for this key.
func (pub *PublicKey) EthereumAddress() string {
	return crypto.PubkeyToAddress(*pub.ToECDSA()).Hex()
}

// ToECDSA returns this key as a crypto/ecdsa public key on btcec's S256.
func (pub *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{Curve: btcec.S256(), X: pub.X(), Y: pub.Y()}
}

// Equal returns true if this key is equal to the other key.
func (pub *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pub.point.Equal(other.point)
}
