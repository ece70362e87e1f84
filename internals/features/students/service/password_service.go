package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var bcryptPrefixes = []string{"$2a$", "$2b$", "$2y$"}

const bcryptRounds = 12

func IsBcryptHash(value string) bool {
	for _, prefix := range bcryptPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

func HashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptRounds)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword mencocokkan password login dengan yang tersimpan.
// Kalau yang tersimpan belum berbentuk hash bcrypt, bandingkan apa adanya —
// kompatibilitas mundur selama migrasi dari password plaintext aplikasi lama.
func VerifyPassword(plain, stored string) bool {
	if IsBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
	}
	return stored == plain
}
