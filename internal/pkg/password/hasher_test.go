package password

import "testing"

func TestHasher(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if hash == "s3cret" {
		t.Fatalf("hash must not equal the plaintext")
	}

	if !h.Verify(hash, "s3cret") {
		t.Fatalf("expected matching password to verify")
	}
	if h.Verify(hash, "wrong") {
		t.Fatalf("expected mismatch to fail verification")
	}
	if h.Verify("not-a-bcrypt-hash", "s3cret") {
		t.Fatalf("expected malformed hash to fail verification")
	}
}

func TestHasher_SaltedHashesDiffer(t *testing.T) {
	h := NewHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	if a == b {
		t.Fatalf("expected per-hash salts, got identical hashes")
	}
}
