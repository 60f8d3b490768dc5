package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// passwordStrategy verifies a presented password against a stored
// credential. Two implementations exist: bcrypt for every row written
// by this codebase, and plain string equality for legacy rows that
// predate the hashing migration. The legacy path is known technical
// debt and must not be removed until those rows are migrated.
type passwordStrategy interface {
	Verify(stored, plain string) bool
}

type hashedStrategy struct{}

func (hashedStrategy) Verify(stored, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

type legacyPlaintextStrategy struct{}

func (legacyPlaintextStrategy) Verify(stored, plain string) bool {
	return stored == plain
}

func strategyFor(stored string) passwordStrategy {
	if strings.HasPrefix(stored, "$2a$") ||
		strings.HasPrefix(stored, "$2b$") ||
		strings.HasPrefix(stored, "$2y$") {
		return hashedStrategy{}
	}
	return legacyPlaintextStrategy{}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword selects the strategy by inspecting the stored value's
// prefix, then compares.
func VerifyPassword(stored, plain string) bool {
	return strategyFor(stored).Verify(stored, plain)
}
