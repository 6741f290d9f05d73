package mockserver

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chasewhiterabbit/rigger-go/internal/model"
	apperrors "github.com/chasewhiterabbit/rigger-go/pkg/errors"
)

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type tokenClaims struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	TokenType string `json:"tokenType"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and validates the HS256 tokens the mock server hands out.
type tokenIssuer struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func (i *tokenIssuer) issue(user model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:    user.ID,
		Email:     user.Email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(i.secret))
	if err != nil {
		return "", apperrors.Wrap("auth_error", "failed to sign token", err)
	}
	return signed, nil
}

func (i *tokenIssuer) issuePair(user model.User) (access, refresh string, err error) {
	access, err = i.issue(user, tokenTypeAccess, i.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = i.issue(user, tokenTypeRefresh, i.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (i *tokenIssuer) parse(token, wantType string) (tokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return []byte(i.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return tokenClaims{}, apperrors.Wrap("invalid_token", "token validation failed", err)
	}
	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid {
		return tokenClaims{}, apperrors.Wrap("invalid_token", "token invalid", nil)
	}
	if claims.TokenType != wantType {
		return tokenClaims{}, apperrors.Wrap("invalid_token", "token type mismatch", nil)
	}
	return *claims, nil
}
