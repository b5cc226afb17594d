package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into salted one-way hashes and
// checks candidates against them. Plaintext passwords are never stored.
type PasswordHasher interface {
	// Hash returns a salted hash of password. Two calls with the same
	// password produce different hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches hash. A malformed hash
	// never matches.
	Verify(password, hash string) bool
}
