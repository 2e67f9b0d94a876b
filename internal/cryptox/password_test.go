package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_Deterministic(t *testing.T) {
	password := []byte("secret-password")
	salt := []byte("fixed-salt")

	h1 := HashPassword(password, salt)
	h2 := HashPassword(password, salt)

	require.Len(t, h1, argonKeyLen)
	assert.Equal(t, h1, h2)
	assert.Equal(t, "34f7a1c64df63ab1ad5b5ee06e64db5713b35f81839823304db63e8e5e6a6a39", hex.EncodeToString(h1))
}

func TestHashPassword_SaltMatters(t *testing.T) {
	password := []byte("secret-password")

	assert.NotEqual(t,
		HashPassword(password, []byte("salt-1")),
		HashPassword(password, []byte("salt-2")),
	)
}

func TestVerifyPassword(t *testing.T) {
	salt := NewSalt()
	require.Len(t, salt, SaltSize)
	hash := HashPassword([]byte("pw"), salt)

	tests := []struct {
		name     string
		password string
		salt     []byte
		hash     []byte
		want     bool
	}{
		{"match", "pw", salt, hash, true},
		{"wrong password", "PW", salt, hash, false},
		{"wrong salt", "pw", []byte("other"), hash, false},
		{"empty hash", "pw", salt, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, VerifyPassword([]byte(tt.password), tt.salt, tt.hash))
		})
	}
}

func TestNewSalt_Random(t *testing.T) {
	assert.NotEqual(t, NewSalt(), NewSalt())
}
