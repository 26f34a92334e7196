package utils

import (
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// NormalizeJWTSecret returns the HMAC key for a configured secret. HS256
// requires a key of at least 32 bytes; shorter secrets are stretched through
// sha256. Stretching is a stopgap for weak configuration, not key
// management: provision a real JWT_SECRET of 32+ bytes in production.
func NormalizeJWTSecret(secret string) []byte {
	if len(secret) < 32 {
		sum := sha256.Sum256([]byte(secret))
		return sum[:]
	}
	return []byte(secret)
}

// GenerateJWT issues an HS256 token with iat/exp claims and an optional
// subject. Used by the -generate-token flag and by tests.
func GenerateJWT(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(NormalizeJWTSecret(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// VerifyJWT parses and validates a raw HS256 token string.
func VerifyJWT(secret, raw string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %s", t.Method.Alg())
		}
		return NormalizeJWTSecret(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}
