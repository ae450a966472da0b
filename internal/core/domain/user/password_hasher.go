package user

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	// ValidatePassword must compare in constant time.
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}
