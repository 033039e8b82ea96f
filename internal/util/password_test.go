package util

import (
	"testing"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	if hash == "s3cret-password" {
		t.Error("Expected hash to differ from the plain password")
	}

	if !ComparePassword(hash, "s3cret-password") {
		t.Error("Expected password to match its own hash")
	}

	if ComparePassword(hash, "wrong-password") {
		t.Error("Expected wrong password to fail comparison")
	}
}

func TestComparePasswordEmptyHash(t *testing.T) {
	// OAuth accounts store no hash, login with any password must fail
	if ComparePassword("", "anything") {
		t.Error("Expected comparison against empty hash to fail")
	}
}
