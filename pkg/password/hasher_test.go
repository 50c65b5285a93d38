package password

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if digest == "s3cret" {
		t.Fatal("digest must not equal plaintext")
	}
	if !h.Verify("s3cret", digest) {
		t.Fatal("expected digest to verify")
	}
	if h.Verify("S3cret", digest) {
		t.Fatal("wrong plaintext must not verify")
	}
}

func TestHasher_SaltedPerCall(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	a, _ := h.Hash("same")
	b, _ := h.Hash("same")
	if a == b {
		t.Fatal("expected distinct digests for the same plaintext")
	}
}

func TestHasher_MutatedOrMalformedDigest(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	digest, _ := h.Hash("s3cret")

	// Index 40 sits inside the checksum part, away from the padded final characters.
	mutated := []byte(digest)
	if mutated[40] == 'A' {
		mutated[40] = 'z'
	} else {
		mutated[40] = 'A'
	}

	for _, d := range []string{string(mutated), "", "garbage", digest[:10]} {
		if h.Verify("s3cret", d) {
			t.Fatalf("digest %q must not verify", d)
		}
	}
}

func TestNewHasher_FallsBackToDefaultCost(t *testing.T) {
	if h := NewHasher(0); h.cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost, got %d", h.cost)
	}
}
