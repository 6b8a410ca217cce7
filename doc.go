/*
Package bitsig signs and verifies files using ECDSA over secp256k1, with keys
and signatures encoded the way the Bitcoin ecosystem encodes them.

The arithmetic is built from first principles on top of math/big: a modular
field element type, affine curve points with the chord-and-tangent group law,
binary double-and-add scalar multiplication, ECDSA signing with a
self-verifying retry loop, and signature verification via public key recovery.

On top of that sit the two Bitcoin wire encodings:

-- Base58Check for WIF private keys and addresses

-- DER for the (r, s) signature pair

Private keys can be created from a secret number, a WIF string, a password, a
BIP39 mnemonic, or a JWK file (optionally passphrase-protected).

None of the arithmetic here is constant time. This is a file signing tool,
not an HSM; do not use it where timing side channels matter.

See the examples and cmd/bitsig for usage.
*/
package bitsig
