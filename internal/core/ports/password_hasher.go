package ports

// PasswordHasher abstracts one-way password hashing.
type PasswordHasher interface {
	// Hash derives a salted hash from a plaintext password.
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches hash. A malformed hash
	// verifies as false, never as an error.
	Verify(plaintext, hash string) bool
}
