package service

import (
	"strings"
	"testing"
)

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	salt, digest, found := strings.Cut(hash, ":")
	if !found {
		t.Fatalf("expected salt:digest format, got %q", hash)
	}
	if len(salt) != saltBytes*2 {
		t.Fatalf("expected %d hex chars of salt, got %d", saltBytes*2, len(salt))
	}
	if len(digest) != 64 {
		t.Fatalf("expected 64 hex chars of digest, got %d", len(digest))
	}
}

func TestHashPassword_FreshSaltEachCall(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password, got %q twice", first)
	}
	if !VerifyPassword("same-password", first) || !VerifyPassword("same-password", second) {
		t.Fatalf("both hashes should verify against the original password")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if VerifyPassword("incorrect", hash) {
		t.Fatalf("wrong password should not verify")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	cases := []string{
		"",
		"nocolon",
		":digestonly",
		"saltonly:",
		":",
	}
	for _, stored := range cases {
		if VerifyPassword("whatever", stored) {
			t.Fatalf("malformed hash %q should not verify", stored)
		}
	}
}
