package utils

import "github.com/google/uuid"

// TokenIDGenerator issues "jti" values for access tokens. Ids are
// time-ordered UUIDv7 so revocation entries sort by issue time.
type TokenIDGenerator struct{}

func NewTokenIDGenerator() TokenIDGenerator {
	return TokenIDGenerator{}
}

// Generate returns a new id. If the clock sequence cannot be read it falls
// back to a random UUIDv4, which is equally unique.
func (TokenIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
