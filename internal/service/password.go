package service

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a salted one-way hash of the plaintext. Each
// call salts freshly, so two hashes of the same password differ and
// must only be compared through CheckPassword.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored hash, using
// bcrypt's constant-time comparison.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
