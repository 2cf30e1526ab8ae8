package cryptox

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	secret := []byte("device-secret")
	salt := []byte("fixed-salt-16byt")

	k1 := DeriveKey(secret, salt)
	k2 := DeriveKey(secret, salt)

	require.Len(t, k1, KeySize)
	assert.Equal(t, k1, k2)
}

func TestDeriveKey_DifferentSalts(t *testing.T) {
	secret := []byte("device-secret")

	k1 := DeriveKey(secret, []byte("salt-1"))
	k2 := DeriveKey(secret, []byte("salt-2"))

	assert.False(t, bytes.Equal(k1, k2))
}

func TestSealOpen_RoundTrip(t *testing.T) {
	key := DeriveKey([]byte("s"), []byte("salt"))
	plain := []byte(`{"id":"1","email":"demo@gaming.com"}`)

	ct, nonce, err := Seal(plain, key, []byte("user_data"))
	require.NoError(t, err)
	assert.NotEqual(t, plain, ct)

	got, err := Open(ct, nonce, key, []byte("user_data"))
	require.NoError(t, err)
	assert.Equal(t, plain, got)
}

func TestSeal_FreshNoncePerCall(t *testing.T) {
	key := DeriveKey([]byte("s"), []byte("salt"))

	ct1, n1, err := Seal([]byte("same"), key, nil)
	require.NoError(t, err)
	ct2, n2, err := Seal([]byte("same"), key, nil)
	require.NoError(t, err)

	assert.NotEqual(t, n1, n2)
	assert.NotEqual(t, ct1, ct2)
}

func TestOpen_Failures(t *testing.T) {
	key := DeriveKey([]byte("s"), []byte("salt"))
	other := DeriveKey([]byte("other"), []byte("salt"))

	ct, nonce, err := Seal([]byte("token"), key, []byte("auth_token"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		key   []byte
		nonce []byte
		ad    []byte
	}{
		{name: "wrong key", key: other, nonce: nonce, ad: []byte("auth_token")},
		{name: "wrong additional data", key: key, nonce: nonce, ad: []byte("user_data")},
		{name: "wrong nonce", key: key, nonce: make([]byte, len(nonce)), ad: []byte("auth_token")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(ct, tt.nonce, tt.key, tt.ad)
			require.Error(t, err)
		})
	}
}

func TestSeal_BadKeySize(t *testing.T) {
	_, _, err := Seal([]byte("x"), []byte("short"), nil)
	require.ErrorIs(t, err, ErrKeySize)

	_, err = Open([]byte("x"), []byte("n"), []byte("short"), nil)
	require.ErrorIs(t, err, ErrKeySize)
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, CheckPassword(hash, []byte("password")))
	assert.False(t, CheckPassword(hash, []byte("wrongpassword")))
}
