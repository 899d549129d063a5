// Package keycipher encrypts license keys at rest with AES-256-CBC.
//
// Ciphertext and IV are hex encoded so they can be stored as text columns and
// stay readable by the earlier Node implementation (aes-256-cbc, PKCS#7).
package keycipher

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// KeySize is the required raw key length (AES-256).
const KeySize = 32

var (
	ErrKeySize      = errors.New("keycipher: key must be 32 bytes")
	ErrMalformed    = errors.New("keycipher: malformed ciphertext")
	ErrBadPadding   = errors.New("keycipher: invalid padding")
	ErrNilCipher    = errors.New("keycipher: cipher is not initialized")
	errShortEntropy = errors.New("keycipher: short read from random source")
)

// Sealed is one encryption result. Both fields are hex encoded.
type Sealed struct {
	Data string
	IV   string
}

// Cipher holds the process-wide key. It is safe for concurrent use.
type Cipher struct {
	block cipher.Block
	rand  io.Reader
}

// New builds a Cipher from a raw 32-byte key.
func New(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("keycipher: new cipher: %w", err)
	}
	return &Cipher{block: block, rand: rand.Reader}, nil
}

// NewFromHex builds a Cipher from a hex-encoded 32-byte key.
func NewFromHex(hexKey string) (*Cipher, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("keycipher: decode key: %w", err)
	}
	return New(key)
}

// Encrypt pads plaintext and encrypts it under a fresh random IV.
func (c *Cipher) Encrypt(plaintext string) (Sealed, error) {
	if c == nil || c.block == nil {
		return Sealed{}, ErrNilCipher
	}

	iv := make([]byte, aes.BlockSize)
	if n, err := io.ReadFull(c.rand, iv); err != nil || n != aes.BlockSize {
		if err == nil {
			err = errShortEntropy
		}
		return Sealed{}, fmt.Errorf("keycipher: read iv: %w", err)
	}

	padded := pad([]byte(plaintext))
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(out, padded)

	return Sealed{
		Data: hex.EncodeToString(out),
		IV:   hex.EncodeToString(iv),
	}, nil
}

// Decrypt reverses Encrypt for the given hex ciphertext and IV.
func (c *Cipher) Decrypt(dataHex, ivHex string) (string, error) {
	if c == nil || c.block == nil {
		return "", ErrNilCipher
	}

	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != aes.BlockSize {
		return "", ErrMalformed
	}
	data, err := hex.DecodeString(dataHex)
	if err != nil || len(data) == 0 || len(data)%aes.BlockSize != 0 {
		return "", ErrMalformed
	}

	out := make([]byte, len(data))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(out, data)

	plain, err := unpad(out)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

// Matches reports whether the stored ciphertext decrypts to candidate.
// A decryption failure counts as a mismatch.
func (c *Cipher) Matches(dataHex, ivHex, candidate string) bool {
	plain, err := c.Decrypt(dataHex, ivHex)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(plain), []byte(candidate)) == 1
}

// String keeps key material out of logs and fmt output.
func (c *Cipher) String() string {
	if c == nil {
		return "<nil>"
	}
	return "keycipher.Cipher{key: REDACTED}"
}

// GoString implements fmt.GoStringer.
func (c *Cipher) GoString() string {
	return c.String()
}

func pad(b []byte) []byte {
	n := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(n)}, n)...)
}

func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%aes.BlockSize != 0 {
		return nil, ErrBadPadding
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize {
		return nil, ErrBadPadding
	}
	for _, v := range b[len(b)-n:] {
		if int(v) != n {
			return nil, ErrBadPadding
		}
	}
	return b[:len(b)-n], nil
}
