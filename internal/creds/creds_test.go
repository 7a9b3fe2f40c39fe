package creds

import (
	"encoding/base64"
	"testing"
)

func TestEncryptProducesValidBase64(t *testing.T) {
	out, err := Encrypt("player@example.com")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(out)
	if err != nil {
		t.Fatalf("Encrypt output is not valid base64: %v", err)
	}
	if len(raw) != 128 {
		t.Fatalf("ciphertext length = %d, want 128 for a 1024-bit key", len(raw))
	}
}

func TestEncryptIsNonDeterministic(t *testing.T) {
	a, err := Encrypt("same-input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := Encrypt("same-input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if a == b {
		t.Fatalf("PKCS1v15 encryption should be randomized per call, got identical ciphertexts")
	}
}

func TestEncryptRejectsNothingEmptyStringIsValid(t *testing.T) {
	if _, err := Encrypt(""); err != nil {
		t.Fatalf("Encrypt(\"\") should succeed, got %v", err)
	}
}
