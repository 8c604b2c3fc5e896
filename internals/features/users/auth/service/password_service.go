package service

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword menghasilkan hash bcrypt bersalt (tidak reversible).
func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword membandingkan plaintext dengan hash via rutin bcrypt sendiri.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
