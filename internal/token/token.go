package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/readify/shop/internal/constants"
	inErrors "github.com/readify/shop/internal/errors"
)

func Create(adminID uuid.UUID, secret string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{constants.AudienceAdmin},
		Issuer:    constants.AppAdminService,
		Subject:   adminID.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(30 * time.Minute)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed signing token with error=%w", err)
	}
	return signed, nil
}

func Verify(tokenString string, secret string) (*jwt.Token, error) {
	jwtToken, err := jwt.ParseWithClaims(
		tokenString,
		&jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		},
		jwt.WithAudience(constants.AudienceAdmin),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithIssuer(constants.AppAdminService),
	)
	if err != nil {
		return nil, fmt.Errorf("failed parsing claims with error=%w", err)
	}
	if !jwtToken.Valid {
		return nil, inErrors.ErrTokenInvalid
	}
	return jwtToken, nil
}
