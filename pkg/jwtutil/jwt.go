package jwtutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SupabaseClaims are the claims carried by a Supabase-issued access token.
// The subject is the Supabase user id that users.supabase_id refers to.
type SupabaseClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWTUtil validates (and, for tests, mints) Supabase HS256 tokens.
type JWTUtil struct {
	secret string
}

// NewJWTUtil creates a JWT utility for the given shared secret
func NewJWTUtil(secret string) *JWTUtil {
	return &JWTUtil{secret: secret}
}

// GenerateToken creates a signed token for the given Supabase user id
func (j *JWTUtil) GenerateToken(supabaseID, email string, ttl time.Duration) (string, error) {
	if j.secret == "" {
		return "", errors.New("JWT secret not configured")
	}

	claims := SupabaseClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   supabaseID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secret))
}

// ValidateToken validates and parses the token string
func (j *JWTUtil) ValidateToken(tokenString string) (*SupabaseClaims, error) {
	if j.secret == "" {
		return nil, errors.New("JWT secret not configured")
	}

	token, err := jwt.ParseWithClaims(
		tokenString,
		&SupabaseClaims{},
		func(token *jwt.Token) (interface{}, error) {
			// Validate the signing method
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(j.secret), nil
		},
	)
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SupabaseClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}
