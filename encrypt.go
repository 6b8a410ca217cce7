package bitsig

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/sha256"
	"encoding/json"
	"fmt"

	jose "github.com/go-jose/go-jose/v3"
	"golang.org/x/crypto/scrypt"
)

// Key derivation parameters.
const (
	deriveKeyN      = 16384
	deriveKeyR      = 8
	deriveKeyP      = 1
	deriveKeyKeyLen = 32
)

// EncryptSymmetric encrypts content with AES-256-GCM under a key derived
// from this private key's secret. The same private key must be used for
// decryption.
func (pk *PrivateKey) EncryptSymmetric(content []byte) ([]byte, error) {
	key := sha256.Sum256(pk.d.Num().Bytes())
	return encrypt(key[:], content)
}

// DecryptSymmetric decrypts content previously encrypted with
// EncryptSymmetric.
func (pk *PrivateKey) DecryptSymmetric(content []byte) ([]byte, error) {
	key := sha256.Sum256(pk.d.Num().Bytes())
	return decrypt(key[:], content)
}

// encrypt encrypts the content using AES256-GCM.
func encrypt(key []byte, content []byte) ([]byte, error) {
	c, err := aes.NewCipher(key[:32]) // The key must be 32 bytes long.
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %v", err)
	}
	nonce := secureRandomBytes(gcm.NonceSize())
	return gcm.Seal(nonce, nonce, content, nil), nil
}

// decrypt decrypts the content using AES256-GCM.
func decrypt(key []byte, content []byte) ([]byte, error) {
	c, err := aes.NewCipher(key[:32]) // The key must be 32 bytes long.
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %v", err)
	}
	gcm, err := cipher.NewGCM(c)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %v", err)
	}
	nonceSize := gcm.NonceSize()
	if len(content) < nonceSize {
		return nil, fmt.Errorf("invalid content")
	}
	nonce, ciphertext := content[:nonceSize], content[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %v", err)
	}
	return plaintext, nil
}

// deriveKey creates a 32-byte symmetric encryption key from password and
// salt. Key derivation algorithm is described in
// https://www.tarsnap.com/scrypt/scrypt.pdf.
func deriveKey(password, salt []byte) ([]byte, error) {
	return scrypt.Key(password, salt, deriveKeyN, deriveKeyR, deriveKeyP,
		deriveKeyKeyLen)
}

func encryptJWE(key []byte, content []byte) (string, error) {
	encrypter, err := jose.NewEncrypter(jose.A256GCM,
		jose.Recipient{Algorithm: jose.DIRECT, Key: key}, nil)
	if err != nil {
		return "", err
	}
	object, err := encrypter.Encrypt(content)
	if err != nil {
		return "", err
	}
	return object.FullSerialize(), nil
}

func decryptJWE(key []byte, content string) ([]byte, error) {
	object, err := jose.ParseEncrypted(content)
	if err != nil {
		return nil, err
	}
	return object.Decrypt(key)
}

// addJSONField inserts a top level field into a serialized JSON object.
func addJSONField(content string, name string, value interface{}) (string, error) {
	var i interface{}
	if err := json.Unmarshal([]byte(content), &i); err != nil {
		return "", err
	}
	m, ok := i.(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid content")
	}
	m[name] = value
	b, err := json.Marshal(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encryptWithPassphraseJWE wraps content in a JWE envelope keyed from the
// passphrase. The scrypt salt rides along as an extra top level field.
func encryptWithPassphraseJWE(passphrase string, content []byte) (string, error) {
	salt := secureRandomBytes(32)
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return "", err
	}
	s, err := encryptJWE(key, content)
	if err != nil {
		return "", err
	}
	return addJSONField(s, "x-salt", base64urlEncode(salt))
}

// decryptWithPassphraseJWE reverses encryptWithPassphraseJWE.
func decryptWithPassphraseJWE(passphrase string, content string) ([]byte, error) {
	var i interface{}
	if err := json.Unmarshal([]byte(content), &i); err != nil {
		return nil, err
	}
	m, ok := i.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid content")
	}
	saltStr, ok := m["x-salt"].(string)
	if !ok {
		return nil, fmt.Errorf("invalid content")
	}
	salt, err := base64urlDecode(saltStr)
	if err != nil {
		return nil, err
	}
	key, err := deriveKey([]byte(passphrase), salt)
	if err != nil {
		return nil, err
	}
	return decryptJWE(key, content)
}
