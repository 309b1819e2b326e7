package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"taskapp/internal/core/domain"
)

// MinSecretLen is the HS256 floor: a key shorter than the hash output
// weakens the HMAC, so startup refuses it.
const MinSecretLen = 32

const DefaultTTL = time.Hour

// JWTCodec signs and verifies HS256 bearer tokens carrying the subject
// email plus issued-at and expiry claims.
type JWTCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTCodec(secret string, ttlMillis int64) (*JWTCodec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinSecretLen, len(secret))
	}

	ttl := time.Duration(ttlMillis) * time.Millisecond

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &JWTCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

func (j *JWTCodec) Issue(subject string) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(j.secret)
}

func (j *JWTCodec) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return j.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", domain.ErrTokenSignatureInvalid
		default:
			return "", domain.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return "", domain.ErrTokenSignatureInvalid
	}

	return claims.Subject, nil
}
