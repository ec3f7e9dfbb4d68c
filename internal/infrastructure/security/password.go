package security

import (
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// hashPrefix marks hashes produced by PasswordHasher. The remainder is a
// standard bcrypt hash of the base64 SHA-256 digest of the password, which
// keeps the bcrypt input at 44 bytes regardless of password length.
const hashPrefix = "$bcrypt-sha256$"

// PasswordHasher hashes passwords with bcrypt over a SHA-256 pre-hash.
type PasswordHasher struct {
	cost  int
	dummy []byte
}

// NewPasswordHasher builds a hasher with the given bcrypt cost. Costs outside
// bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	dummy, err := bcrypt.GenerateFromPassword(prehash("dummy-password"), cost)
	if err != nil {
		return nil, fmt.Errorf("generate dummy hash: %w", err)
	}
	return &PasswordHasher{cost: cost, dummy: dummy}, nil
}

func (h *PasswordHasher) Hash(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword(prehash(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return hashPrefix + string(hash), nil
}

// Verify reports whether plain matches hash. Hashes in an unknown format are
// still compared against a dummy bcrypt hash so both failure paths cost the
// same.
func (h *PasswordHasher) Verify(plain, hash string) bool {
	digest := prehash(plain)
	encoded, ok := strings.CutPrefix(hash, hashPrefix)
	if !ok {
		_ = bcrypt.CompareHashAndPassword(h.dummy, digest)
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(encoded), digest) == nil
}

func prehash(plain string) []byte {
	sum := sha256.Sum256([]byte(plain))
	out := make([]byte, base64.StdEncoding.EncodedLen(len(sum)))
	base64.StdEncoding.Encode(out, sum[:])
	return out
}
