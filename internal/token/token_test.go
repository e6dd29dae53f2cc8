package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCreateAndVerify(t *testing.T) {
	adminID := uuid.New()

	signed, err := Create(adminID, "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)

	verified, err := Verify(signed, "secret")
	assert.NoError(t, err)

	claims, ok := verified.Claims.(*jwt.RegisteredClaims)
	assert.True(t, ok)
	assert.EqualValues(t, adminID.String(), claims.Subject)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	signed, err := Create(uuid.New(), "secret")
	assert.NoError(t, err)

	_, err = Verify(signed, "other-secret")
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := Verify("not-a-token", "secret")
	assert.Error(t, err)
}
