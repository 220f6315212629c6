// api/util/token_service.go
package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
)

// IdentityContextKey is where the authentication gate stores the decoded
// identity in the gin context.
const IdentityContextKey = "identity"

const (
	tokenTypeAccess  = "access"
	tokenTypeRefresh = "refresh"
)

type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"typ"`
}

// TokenService signs and verifies the platform's HMAC access/refresh tokens.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssuePair mints an access and refresh token for a user.
func (t *TokenService) IssuePair(user *model.User) (access string, refresh string, err error) {
	access, err = t.sign(user, tokenTypeAccess, t.accessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = t.sign(user, tokenTypeRefresh, t.refreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func (t *TokenService) sign(user *model.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyAccess validates an access token and returns the embedded identity.
// Expiry and signature failures map to their own sentinels so the gate can
// answer with the right message.
func (t *TokenService) VerifyAccess(tokenString string) (model.Identity, error) {
	return t.verify(tokenString, tokenTypeAccess)
}

// VerifyRefresh validates a refresh token for the token rotation endpoint.
func (t *TokenService) VerifyRefresh(tokenString string) (model.Identity, error) {
	return t.verify(tokenString, tokenTypeRefresh)
}

func (t *TokenService) verify(tokenString, wantType string) (model.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Identity{}, pulse_errors.ErrTokenExpired
		}
		return model.Identity{}, pulse_errors.ErrInvalidToken
	}
	if !token.Valid || claims.TokenType != wantType {
		return model.Identity{}, pulse_errors.ErrInvalidToken
	}

	return model.Identity{
		ID:    claims.Subject,
		Email: claims.Email,
		Role:  claims.Role,
	}, nil
}
