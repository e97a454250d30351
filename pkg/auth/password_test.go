package auth

import "testing"

func TestPlainVerifierStoresVerbatim(t *testing.T) {
	v := PlainVerifier{}
	stored, err := v.Hash("p1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if stored != "p1" {
		t.Fatalf("expected verbatim storage, got %q", stored)
	}
	if !v.Check("p1", stored) {
		t.Fatalf("expected plain check to pass")
	}
	if v.Check("p2", stored) {
		t.Fatalf("expected plain check to fail for wrong secret")
	}
}

func TestBcryptVerifier(t *testing.T) {
	v := BcryptVerifier{}
	stored, err := v.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if stored == "" || stored == "s3cret" {
		t.Fatalf("expected hashed storage, got %q", stored)
	}
	if !v.Check("s3cret", stored) {
		t.Fatalf("expected bcrypt check to pass")
	}
	if v.Check("wrong", stored) {
		t.Fatalf("expected bcrypt check to fail")
	}
}
