package utils

import "testing"

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-passphrase" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !CheckPasswordHash("s3cret-passphrase", hash) {
		t.Error("correct password should verify")
	}
	if CheckPasswordHash("wrong-passphrase", hash) {
		t.Error("wrong password must not verify")
	}
}
