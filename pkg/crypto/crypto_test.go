package crypto

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHexKey = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestNewCodecKeyFormats(t *testing.T) {
	t.Run("hex key", func(t *testing.T) {
		codec, err := NewCodec(testHexKey)
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("base64 key", func(t *testing.T) {
		raw := base64.StdEncoding.EncodeToString(make([]byte, 32))
		codec, err := NewCodec(raw)
		require.NoError(t, err)
		assert.NotNil(t, codec)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := NewCodec("")
		assert.Error(t, err)
	})

	t.Run("wrong length", func(t *testing.T) {
		raw := base64.StdEncoding.EncodeToString(make([]byte, 16))
		_, err := NewCodec(raw)
		assert.Error(t, err)
	})

	t.Run("garbage key", func(t *testing.T) {
		_, err := NewCodec("not-a-key!!!")
		assert.Error(t, err)
	})
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	codec, err := NewCodec(testHexKey)
	require.NoError(t, err)

	plaintexts := []string{
		"APP_USR-1234567890-access-token",
		"",
		"texto con acentos: botella térmica ñ",
	}

	for _, plaintext := range plaintexts {
		payload, err := codec.EncryptString(plaintext)
		require.NoError(t, err)

		parts := strings.Split(payload, ".")
		require.Len(t, parts, 3, "payload must be iv.tag.data")

		iv, err := base64.StdEncoding.DecodeString(parts[0])
		require.NoError(t, err)
		assert.Len(t, iv, 12)

		decrypted, err := codec.DecryptString(payload)
		require.NoError(t, err)
		assert.Equal(t, plaintext, decrypted)
	}
}

func TestDecryptRejectsMalformedPayloads(t *testing.T) {
	codec, err := NewCodec(testHexKey)
	require.NoError(t, err)

	payload, err := codec.EncryptString("secreto")
	require.NoError(t, err)
	parts := strings.Split(payload, ".")

	tests := []struct {
		name    string
		payload string
	}{
		{"missing parts", "solo-una-parte"},
		{"two parts", parts[0] + "." + parts[1]},
		{"bad base64 iv", "!!!." + parts[1] + "." + parts[2]},
		{"swapped tag and data", parts[0] + "." + parts[2] + "." + parts[1]},
		{"truncated data", parts[0] + "." + parts[1] + "." + parts[2][:len(parts[2])/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.DecryptString(tt.payload)
			assert.Error(t, err)
		})
	}
}

func TestDecryptWithWrongKeyFails(t *testing.T) {
	codec, err := NewCodec(testHexKey)
	require.NoError(t, err)

	other, err := NewCodec(strings.Repeat("ff", 32))
	require.NoError(t, err)

	payload, err := codec.EncryptString("secreto")
	require.NoError(t, err)

	_, err = other.DecryptString(payload)
	assert.Error(t, err)
}
