package auth

import (
	"strings"
	"testing"
)

func TestPasswordServiceImpl_HashAndVerify(t *testing.T) {
	svc := NewPasswordService()

	hash, err := svc.Hash("Password1!")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if hash == "Password1!" {
		t.Fatal("hash must not equal the plaintext")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected bcrypt hash, got %q", hash)
	}

	if !svc.Verify(hash, "Password1!") {
		t.Error("expected correct password to verify")
	}
	if svc.Verify(hash, "WrongPassword1!") {
		t.Error("expected wrong password to fail")
	}
}

func TestPasswordServiceImpl_HashesAreSalted(t *testing.T) {
	svc := NewPasswordService()

	a, err := svc.Hash("Password1!")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	b, err := svc.Hash("Password1!")
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	if a == b {
		t.Error("expected distinct hashes for the same password")
	}
}

func TestPasswordServiceImpl_MalformedHashIsNonMatch(t *testing.T) {
	svc := NewPasswordService()

	if svc.Verify("not-a-bcrypt-hash", "Password1!") {
		t.Error("expected malformed hash to report non-match")
	}
	if svc.Verify("", "Password1!") {
		t.Error("expected empty hash to report non-match")
	}
}
