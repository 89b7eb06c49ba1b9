package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
)

// Secrets (MercadoPago access tokens) are stored as AES-256-GCM envelopes in
// the form "iv.tag.ciphertext", each part base64. The format is fixed by the
// data already persisted in store meta, so it must not change.

const ivLength = 12

var hexKeyPattern = regexp.MustCompile(`^[0-9a-fA-F]{64}$`)

// Codec encrypts and decrypts secret strings with a 32-byte key supplied as
// hex or base64.
type Codec struct {
	key []byte
}

func NewCodec(rawKey string) (*Codec, error) {
	if rawKey == "" {
		return nil, fmt.Errorf("missing encryption key")
	}

	var key []byte
	var err error
	if hexKeyPattern.MatchString(rawKey) {
		key, err = hex.DecodeString(rawKey)
	} else {
		key, err = base64.StdEncoding.DecodeString(rawKey)
	}
	if err != nil {
		return nil, fmt.Errorf("decode encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes (base64 or hex)")
	}

	return &Codec{key: key}, nil
}

func (c *Codec) gcm() (cipher.AEAD, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

func (c *Codec) EncryptString(plaintext string) (string, error) {
	aead, err := c.gcm()
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	sealed := aead.Seal(nil, iv, []byte(plaintext), nil)
	// Seal appends the tag; the stored format keeps tag and data separate.
	tagSize := aead.Overhead()
	data := sealed[:len(sealed)-tagSize]
	tag := sealed[len(sealed)-tagSize:]

	return strings.Join([]string{
		base64.StdEncoding.EncodeToString(iv),
		base64.StdEncoding.EncodeToString(tag),
		base64.StdEncoding.EncodeToString(data),
	}, "."), nil
}

func (c *Codec) DecryptString(payload string) (string, error) {
	parts := strings.Split(payload, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("invalid encrypted payload")
	}

	iv, err := base64.StdEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("decode iv: %w", err)
	}
	tag, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", fmt.Errorf("decode tag: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(parts[2])
	if err != nil {
		return "", fmt.Errorf("decode data: %w", err)
	}

	aead, err := c.gcm()
	if err != nil {
		return "", err
	}

	plaintext, err := aead.Open(nil, iv, append(data, tag...), nil)
	if err != nil {
		return "", fmt.Errorf("decrypt payload: %w", err)
	}
	return string(plaintext), nil
}
