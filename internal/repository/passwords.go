package repository

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// passwordMatches compares given with the stored password. Accounts created
// before hashing was introduced keep theirs as plain text.
func passwordMatches(stored, given string) bool {
	if _, err := bcrypt.Cost([]byte(stored)); err == nil {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(given)) == 1
}
