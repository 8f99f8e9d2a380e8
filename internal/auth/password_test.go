package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	password := "password123"
	hashed, err := HashPassword(password, bcrypt.MinCost)

	assert.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, password, hashed)
	assert.True(t, VerifyPassword(password, hashed))
}

func TestHashPassword_FreshSaltPerCall(t *testing.T) {
	password := "password123"
	first, err := HashPassword(password, bcrypt.MinCost)
	assert.NoError(t, err)
	second, err := HashPassword(password, bcrypt.MinCost)
	assert.NoError(t, err)

	// Each call salts independently, so the strings differ but both verify.
	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword(password, first))
	assert.True(t, VerifyPassword(password, second))
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hashed, _ := HashPassword("password123", bcrypt.MinCost)

	assert.False(t, VerifyPassword("wrongpassword", hashed))
}

func TestVerifyPassword_CrossHashes(t *testing.T) {
	hashedOther, _ := HashPassword("otherpassword", bcrypt.MinCost)

	assert.False(t, VerifyPassword("password123", hashedOther))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	assert.False(t, VerifyPassword("password123", "invalidhash"))
	assert.False(t, VerifyPassword("password123", ""))
}
