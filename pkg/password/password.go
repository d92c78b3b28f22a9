package password

import (
	"golang.org/x/crypto/bcrypt"
)

// Hash generates a bcrypt hash of the password.
func Hash(plaintext string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// Check compares a bcrypt hashed password with its possible plaintext
// equivalent. Returns true if they match.
func Check(plaintext, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext))
	return err == nil
}
