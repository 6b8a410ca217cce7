package bitsig

import (
	"fmt"
	"log"
	"math/big"
)

func ExamplePrivateKey_Sign() {
	curve := Secp256k1()
	privateKey := NewPrivateKeyFromSecret(curve, big.NewInt(12345))
	publicKey, err := privateKey.PublicKey()
	if err != nil {
		log.Fatal(err)
	}

	digest := new(big.Int).SetBytes(Hash256([]byte("super secret message")))
	signature, err := privateKey.Sign(digest)
	if err != nil {
		log.Fatal(err)
	}

	ok, err := signature.VerifyAddress(curve, digest, publicKey.BitcoinAddress(true))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Signature verified: %v\n", ok)
	// Output: Signature verified: true
}

func ExamplePrivateKey_ToWIF() {
	privateKey := NewPrivateKeyFromSecret(Secp256k1(), big.NewInt(1))
	fmt.Println(privateKey.ToWIF(true))
	// Output: KwDiBf89QgGbjEhKnhXJuH7LrciVrZi3qYjgd9M7rFU73sVHnoWn
}

func ExamplePublicKey_BitcoinAddress() {
	privateKey := NewPrivateKeyFromSecret(Secp256k1(), big.NewInt(1))
	publicKey, err := privateKey.PublicKey()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(publicKey.BitcoinAddress(true))
	// Output: 1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH
}
