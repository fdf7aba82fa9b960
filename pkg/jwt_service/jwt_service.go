package jwtservice

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/kakune/internal/api"
	errorvalues "github.com/limbo/kakune/internal/error_values"
	"github.com/limbo/kakune/pkg/clock"
	"github.com/limbo/kakune/pkg/entity"
)

const (
	DefaultTokenTTL = time.Hour
	issuer          = "kakune"
)

type JWTService struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

func New(secret string, ttl time.Duration, clk clock.Clock) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if clk == nil {
		clk = clock.Real()
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		clock:  clk,
	}
}

func (s *JWTService) GenerateToken(user *entity.User) (string, error) {
	now := s.clock.Now()
	claims := &api.JWTClaims{
		UserID:   user.ID.String(),
		Username: user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.New("token signing error: " + err.Error())
	}
	return signed, nil
}

// ParseToken verifies signature, issuer and time claims. Every rejection
// matches ErrInvalidToken.
func (s *JWTService) ParseToken(tokenString string) (*api.JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &api.JWTClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil {
		return nil, errors.Join(errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*api.JWTClaims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
