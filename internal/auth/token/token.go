// Package token issues and verifies the HS256 tokens used by the API.
package token

import (
	"errors"
	"strings"
	"time"

	autherrors "go-sitebooks/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour

	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not configured")

type Subject struct {
	UserID    string
	CompanyID string
	Role      string
}

func Sign(secret []byte, sub Subject, tokenType string, ttl time.Duration, now time.Time) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}
	claims := jwt.MapClaims{
		"user_id":    sub.UserID,
		"company_id": sub.CompanyID,
		"role":       sub.Role,
		"type":       tokenType,
		"iat":        now.Unix(),
		"exp":        now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Parse verifies an HS256 token and returns its claims.
func Parse(secret []byte, tokenString string) (jwt.MapClaims, error) {
	tok, err := jwt.Parse(strings.TrimSpace(tokenString), func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, autherrors.ErrTokenExpired
		}
		return nil, autherrors.ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok || !tok.Valid {
		return nil, autherrors.ErrInvalidToken
	}
	return claims, nil
}
