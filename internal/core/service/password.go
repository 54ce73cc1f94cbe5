package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const saltBytes = 16

// HashPassword returns a salted password hash in the form "salt:digest".
// The salt is 16 random bytes rendered as hex, the digest is
// sha256(password || salt) in hex. A fresh salt is drawn on every call, so
// hashing the same password twice yields different results.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	digest := sha256.Sum256([]byte(password + saltHex))
	return saltHex + ":" + hex.EncodeToString(digest[:]), nil
}

// VerifyPassword checks a plaintext password against a stored "salt:digest"
// hash. It never fails loudly: a malformed stored value simply returns false.
// The digest comparison is constant-time.
func VerifyPassword(password, storedHash string) bool {
	salt, want, found := strings.Cut(storedHash, ":")
	if !found || salt == "" || want == "" {
		return false
	}
	digest := sha256.Sum256([]byte(password + salt))
	got := hex.EncodeToString(digest[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
