package auth

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fixed process-wide salt. This is a local labeling tool, not a production
// credential store; the single-round salted digest matches that posture.
const passwordSalt = "lus-labeler-demo-salt"

// HashPassword returns the hex-encoded SHA-256 digest of the salted password.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(passwordSalt + password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether the password matches the stored hash.
func VerifyPassword(password, hashedPassword string) bool {
	return HashPassword(password) == hashedPassword
}
