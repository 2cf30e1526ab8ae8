// Package cryptox bundles the primitives the client needs to keep session
// material at rest: argon2id key derivation, AES-GCM sealing of individual
// values, and bcrypt hashes for credential checks.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/gamenews/internal/common"
)

// KeySize is the length of keys produced by DeriveKey (AES-256).
const KeySize = 32

// SaltSize is the recommended salt length for DeriveKey.
const SaltSize = 16

var ErrKeySize = errors.New("cryptox: key must be 16, 24 or 32 bytes")

// DeriveKey stretches secret with salt into a KeySize-byte key using argon2id.
// Same inputs always give the same key.
func DeriveKey(secret, salt []byte) []byte {
	return argon2.IDKey(secret, salt, 1, 64*1024, 4, KeySize)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, ErrKeySize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Seal encrypts plaintext with AES-GCM under key. A fresh random nonce is
// generated for every call and returned next to the ciphertext; both are
// needed by Open.
//
// additional is authenticated but not encrypted. The secure store passes the
// item key here so a sealed value cannot be moved under another key.
func Seal(plaintext, key, additional []byte) (ciphertext, nonce []byte, err error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}
	nonce = common.GenerateRandByteArray(aead.NonceSize())
	ciphertext = aead.Seal(nil, nonce, plaintext, additional)
	return ciphertext, nonce, nil
}

// Open reverses Seal. It fails when the key, nonce or additional data do not
// match the ones used for sealing.
func Open(ciphertext, nonce, key, additional []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}
	return aead.Open(nil, nonce, ciphertext, additional)
}

// HashPassword returns a bcrypt hash of password. A cost of 0 selects
// bcrypt.DefaultCost.
func HashPassword(password []byte, cost int) ([]byte, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return bcrypt.GenerateFromPassword(password, cost)
}

// CheckPassword reports whether password matches hash.
func CheckPassword(hash, password []byte) bool {
	return bcrypt.CompareHashAndPassword(hash, password) == nil
}
