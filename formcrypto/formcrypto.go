// Package formcrypto encrypts merchant data for the Solidgate payment form.
//
// The blob layout is base64url(iv || AES-256-CBC(pkcs7(plaintext))) with the
// standard padding retained. The payment form decrypts it with the same secret,
// so the layout must stay bit-exact.
package formcrypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
)

// KeySize is the number of secret key bytes used as the AES-256 key.
const KeySize = 32

// Encryption errors.
var (
	ErrInvalidKey       = errors.New("formcrypto: invalid key")
	ErrCiphertextShort  = errors.New("formcrypto: ciphertext too short")
	ErrInvalidPadding   = errors.New("formcrypto: invalid padding")
	ErrDecryptionFailed = errors.New("formcrypto: decryption failed")
)

// random is swapped in tests.
var random io.Reader = rand.Reader

// Encrypt encrypts plaintext with the first 32 bytes of secretKey.
func Encrypt(secretKey string, plaintext []byte) (string, error) {
	block, err := newCipher(secretKey)
	if err != nil {
		return "", err
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := io.ReadFull(random, iv); err != nil {
		return "", fmt.Errorf("formcrypto: generate iv: %w", err)
	}

	padded := pad(plaintext, aes.BlockSize)
	out := make([]byte, aes.BlockSize+len(padded))
	copy(out, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(out[aes.BlockSize:], padded)

	return base64.URLEncoding.EncodeToString(out), nil
}

// Decrypt reverses [Encrypt].
func Decrypt(secretKey, blob string) ([]byte, error) {
	block, err := newCipher(secretKey)
	if err != nil {
		return nil, err
	}

	raw, err := base64.URLEncoding.DecodeString(blob)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	if len(raw) < 2*aes.BlockSize {
		return nil, ErrCiphertextShort
	}
	iv, ciphertext := raw[:aes.BlockSize], raw[aes.BlockSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext is not a multiple of the block size", ErrDecryptionFailed)
	}

	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return unpad(plaintext, aes.BlockSize)
}

func newCipher(secretKey string) (cipher.Block, error) {
	if len(secretKey) < KeySize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrInvalidKey, KeySize, len(secretKey))
	}
	return aes.NewCipher([]byte(secretKey[:KeySize]))
}

// pad applies PKCS#7; a full block is added when the input is already aligned.
func pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize || n > len(data) {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}
	return data[:len(data)-n], nil
}
