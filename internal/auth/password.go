package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the cost the existing user records were hashed with.
const bcryptCost = 10

// HashPassword returns a salted bcrypt hash of the plaintext. The salt is
// embedded in the output, so hashing the same plaintext twice yields
// different strings that both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain hashes to the stored value under the
// salt and cost embedded in it. Length policy is the caller's concern.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
