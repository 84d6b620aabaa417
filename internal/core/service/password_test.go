package service

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	h := NewBcryptHasher(4) // min cost keeps the test fast

	hash, err := h.Hash("s3cret!")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if hash == "s3cret!" {
		t.Fatalf("hash must not equal plaintext")
	}
	if !h.Verify("s3cret!", hash) {
		t.Fatalf("expected hash to verify against original plaintext")
	}
	if h.Verify("wrong", hash) {
		t.Fatalf("expected mismatch for wrong plaintext")
	}
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := NewBcryptHasher(4)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("expected random salt to produce distinct hashes")
	}
}

func TestBcryptHasher_MalformedHash(t *testing.T) {
	h := NewBcryptHasher(4)
	if h.Verify("anything", "not-a-bcrypt-hash") {
		t.Fatalf("malformed hash must verify as false")
	}
	if h.Verify("anything", "") {
		t.Fatalf("empty hash must verify as false")
	}
}

func TestNewBcryptHasher_CostClamped(t *testing.T) {
	h := NewBcryptHasher(99)
	if _, err := h.Hash("pw"); err != nil {
		t.Fatalf("out-of-range cost should fall back to default: %v", err)
	}
}
