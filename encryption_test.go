package bitsig

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_EncryptSymmetric_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	curve := Secp256k1()
	key := NewPrivateKeyFromSecret(curve, big.NewInt(777777777))
	content := []byte("for my eyes only")

	encrypted, err := key.EncryptSymmetric(content)
	assert.NoError(err)
	assert.NotEqualValues(content, encrypted)

	decrypted, err := key.DecryptSymmetric(encrypted)
	assert.NoError(err)
	assert.EqualValues(content, decrypted)
}

func Test_EncryptSymmetric_WrongKey(t *testing.T) {
	assert := assert.New(t)

	curve := Secp256k1()
	key := NewPrivateKeyFromSecret(curve, big.NewInt(1000000007))
	other := NewPrivateKeyFromSecret(curve, big.NewInt(1000000009))

	encrypted, err := key.EncryptSymmetric([]byte("sealed"))
	assert.NoError(err)

	_, err = other.DecryptSymmetric(encrypted)
	assert.Error(err)
}

func Test_DecryptSymmetric_TruncatedContent(t *testing.T) {
	assert := assert.New(t)

	key := NewPrivateKeyFromSecret(Secp256k1(), big.NewInt(55555))
	_, err := key.DecryptSymmetric([]byte{0x01, 0x02})
	assert.Error(err)
}

func Test_PassphraseJWE_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	content := []byte(`{"hello":"world"}`)
	encrypted, err := encryptWithPassphraseJWE("opensesame", content)
	assert.NoError(err)

	decrypted, err := decryptWithPassphraseJWE("opensesame", encrypted)
	assert.NoError(err)
	assert.EqualValues(content, decrypted)

	_, err = decryptWithPassphraseJWE("wrong", encrypted)
	assert.Error(err)
}
