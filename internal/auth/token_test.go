package auth

import (
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, expiresAt, err := tm.Generate("user-1")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	subject, err := tm.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", subject)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("secret", 0)

	_, expiresAt, err := tm.Generate("user-1")
	assert.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*7*time.Hour), expiresAt, 5*time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	tm := &TokenManager{secret: []byte("secret"), ttl: -time.Hour}

	token, _, err := tm.Generate("user-1")
	assert.NoError(t, err)

	_, err = tm.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	_, err := tm.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, _, err := tm.Generate("user-1")
	assert.NoError(t, err)

	last := token[len(token)-1]
	flipped := byte('A')
	if last == flipped {
		flipped = 'B'
	}
	tampered := token[:len(token)-1] + string(flipped)

	_, err = tm.Validate(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	tm1 := NewTokenManager("secret1", time.Hour)
	tm2 := NewTokenManager("secret2", time.Hour)

	token, _, _ := tm1.Generate("user-1")

	_, err := tm2.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingSubject(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = tm.Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongSigningMethod(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	claims := jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS384, claims)
	tokenString, err := token.SignedString([]byte("secret"))
	assert.NoError(t, err)

	_, err = tm.Validate(tokenString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_TokenShape(t *testing.T) {
	tm := NewTokenManager("secret", time.Hour)

	token, _, err := tm.Generate("user-1")
	assert.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)
}
