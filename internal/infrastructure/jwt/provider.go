package jwtinfra

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/uni-match-api/internal/config"
	"github.com/uni-match-api/internal/domain"
)

// Issuer identifies this authenticator in credential claims, distinct from
// any other token-issuing authority.
const Issuer = "university-match-email-otp"

// Claims holds the verified-email credential payload.
type Claims struct {
	Email  string `json:"email"`
	Domain string `json:"domain"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 verified-email credentials. Credentials
// are stateless — validity is established by signature and expiry alone.
type Provider struct {
	secret []byte
	expiry time.Duration
}

func NewProvider(cfg *config.Config) (*Provider, error) {
	if cfg.EmailAuthSecret == "" {
		return nil, errors.New("EMAIL_AUTH_JWT_SECRET is not configured")
	}
	return &Provider{secret: []byte(cfg.EmailAuthSecret), expiry: cfg.CredentialTTL}, nil
}

func (p *Provider) Sign(email, domainName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email:  email,
		Domain: domainName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(p.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

func (p *Provider) Verify(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	}, jwt.WithIssuer(Issuer))
	if err != nil {
		return nil, fmt.Errorf("verify credential: %w", domain.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" || claims.Domain == "" {
		return nil, fmt.Errorf("invalid credential claims: %w", domain.ErrUnauthorized)
	}
	return claims, nil
}
