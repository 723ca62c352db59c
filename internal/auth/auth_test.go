package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPassword_MatchesKnownDigest(t *testing.T) {
	// sha256("lus-labeler-demo-salt" + "secret123")
	assert.Equal(t,
		"0600aac13331c7acf79bacd89d513ab6d05c4d7d5081e5ff7339642bd2594ef6",
		HashPassword("secret123"))
}

func TestHashPassword_Deterministic(t *testing.T) {
	assert.Equal(t, HashPassword("pw"), HashPassword("pw"))
	assert.NotEqual(t, HashPassword("pw"), HashPassword("pw2"))
}

func TestVerifyPassword(t *testing.T) {
	hash := HashPassword("correct horse")

	assert.True(t, VerifyPassword("correct horse", hash))
	assert.False(t, VerifyPassword("wrong horse", hash))
	assert.False(t, VerifyPassword("correct horse", "not-a-hash"))
}
