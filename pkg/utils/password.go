package utils

import "golang.org/x/crypto/bcrypt"

// PasswordMask replaces the stored hash in any response payload. Neither
// the plaintext nor the hash is ever echoed back to a caller.
const PasswordMask = "****"

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
