package security

import (
	"strings"
	"testing"
)

func TestHasher_RoundTrip(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if encoded == "secret123" || !strings.HasPrefix(encoded, "argon2id$") {
		t.Fatalf("unexpected encoded form: %s", encoded)
	}

	ok, err := h.Verify("secret123", encoded)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}
}

func TestHasher_WrongPassword(t *testing.T) {
	h := NewHasher()

	encoded, err := h.Hash("secret123")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	ok, err := h.Verify("wrong", encoded)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if ok {
		t.Fatalf("wrong password must not verify")
	}
}

func TestHasher_SaltsDiffer(t *testing.T) {
	h := NewHasher()

	a, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	b, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if a == b {
		t.Fatalf("identical passwords must yield different hashes")
	}
}

func TestHasher_MalformedHash(t *testing.T) {
	h := NewHasher()

	for _, encoded := range []string{
		"",
		"bcrypt$whatever",
		"argon2id$m=65536,t=3,p=1$only-two-parts",
		"argon2id$not-params$c2FsdA$a2V5",
	} {
		if _, err := h.Verify("pwd", encoded); err != ErrInvalidHash {
			t.Fatalf("encoded %q: expected ErrInvalidHash, got %v", encoded, err)
		}
	}
}
