package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer issues and verifies access tokens.
//
// Tokens are JWTs signed with HMAC-SHA256. The subject is the ID of
// the authenticated user.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewIssuer(secret []byte, ttl time.Duration) Issuer {
	return Issuer{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Token is an issued access token.
type Token struct {
	AccessToken string    `json:"accessToken" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.e30.c2lnbmF0dXJl"` // The token to send as Bearer token
	TokenType   string    `json:"tokenType" example:"Bearer"`                                                  // Always "Bearer"
	ExpiresAt   time.Time `json:"expiresAt" example:"2024-02-01T12:00:00Z"`                                    // Time the token expires
}

// Issue creates a token for the user.
func (i Issuer) Issue(userID uuid.UUID) (Token, error) {
	now := i.now().UTC().Truncate(time.Second)
	expires := now.Add(i.ttl)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
		ID:        uuid.NewString(),
	}).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("could not sign token: %w", err)
	}

	return Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresAt:   expires,
	}, nil
}

// Parse verifies the token and returns the ID of its user.
func (i Issuer) Parse(token string) (uuid.UUID, error) {
	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrTokenInvalid
	}

	return id, nil
}
