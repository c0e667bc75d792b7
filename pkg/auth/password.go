package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/kabsdesign/studio/pkg/apperr"
)

// passwordTooLongMessage is the client-facing rewrite of bcrypt's 72-byte
// input limit error.
const passwordTooLongMessage = "Password processing error. Please try a different password."

// fastDigest reduces a password of any length to a fixed-width hex string
// so the slow hash below never hits bcrypt's 72-byte input limit.
func fastDigest(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// HashPassword produces the stored credential: bcrypt over the sha256 hex
// digest of the password.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(fastDigest(password)), cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", apperr.Validation(passwordTooLongMessage)
		}
		return "", apperr.Internal(err)
	}
	return string(hash), nil
}

// VerifyPassword checks a candidate password against a stored hash. The
// two-stage digest form is tried first; credentials written before the
// digest stage was introduced are verified against the raw password.
func VerifyPassword(storedHash, password string) bool {
	if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(fastDigest(password))) == nil {
		return true
	}
	// Legacy fallback. Raw inputs over 72 bytes error out of the compare,
	// which reads as a mismatch.
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)) == nil
}
