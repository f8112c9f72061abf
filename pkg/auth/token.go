package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidClaims = errors.New("invalid session claims")

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenConfig signs and verifies HS256 session tokens.
type TokenConfig struct {
	SigningKey []byte
	Issuer     string
	TTL        time.Duration
}

func (cfg TokenConfig) CreateToken(subject uuid.UUID, role Role, now time.Time) (string, *Claims, error) {
	if _, ok := ParseRole(string(role)); !ok {
		return "", nil, fmt.Errorf("create token: %w: role %q", ErrInvalidClaims, role)
	}

	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject.String(),
			Issuer:    cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(cfg.TTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(cfg.SigningKey)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}
	return signed, claims, nil
}

func (cfg TokenConfig) ParseToken(tokenString string, now time.Time) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return cfg.SigningKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, ErrInvalidClaims
	}

	return claims, nil
}
