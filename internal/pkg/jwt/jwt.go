package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gitops-dashboard/internal/pkg/config"
	"gitops-dashboard/pkg/constants"
	"gitops-dashboard/pkg/responses"
)

// UserClaims carries the authenticated identity.
type UserClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Type     string `json:"type"` // access or refresh
	jwt.RegisteredClaims
}

// GenerateAccessToken issues a short-lived access token.
func GenerateAccessToken(username, role string) (string, error) {
	return generate(username, role, constants.JWTTypeAccess, config.GlobalConfig.Auth.JWT.AccessTokenExpire)
}

// GenerateRefreshToken issues a refresh token.
func GenerateRefreshToken(username, role string) (string, error) {
	return generate(username, role, constants.JWTTypeRefresh, config.GlobalConfig.Auth.JWT.RefreshTokenExpire)
}

func generate(username, role, tokenType string, expireSeconds int) (string, error) {
	cfg := config.GlobalConfig.Auth.JWT

	claims := UserClaims{
		Username: username,
		Role:     role,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(expireSeconds) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// ParseToken verifies the signature and returns the claims.
func ParseToken(tokenString string) (*UserClaims, error) {
	cfg := config.GlobalConfig.Auth.JWT

	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})

	if err != nil {
		return nil, responses.Wrap(responses.CodeUnauthorized, "parse token failed", err)
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, responses.ErrInvalidToken
}

// ValidateToken parses the token and rejects expired claims.
func ValidateToken(tokenString string) (*UserClaims, error) {
	claims, err := ParseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, responses.ErrTokenExpired
	}

	return claims, nil
}
