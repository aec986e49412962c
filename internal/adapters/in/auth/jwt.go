// Package auth validates the JWT identity tokens issued by the accounts
// service and turns them into principals the adapters can act on. Tokens are
// HS256 with a shared secret; the core trusts the resolved principal.
package auth

import (
	"errors"
	"strings"

	"chefbook/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Role is the marketplace side the caller acts from.
type Role string

const (
	// RoleCustomer books chefs and pays for orders.
	RoleCustomer Role = "customer"

	// RoleChef receives orders and decides on them.
	RoleChef Role = "chef"
)

// Principal is the authenticated caller resolved from a JWT.
type Principal struct {
	UserID kernel.UUID
	Role   Role
}

// IsChef reports whether the principal acts as a chef.
func (p Principal) IsChef() bool {
	return p.Role == RoleChef
}

// TokenParser validates JWTs against a shared secret.
type TokenParser struct {
	secret []byte
}

// NewTokenParser creates a parser for the given signing secret.
func NewTokenParser(secret string) (*TokenParser, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	return &TokenParser{secret: []byte(secret)}, nil
}

// ParseBearer extracts and validates the token of an Authorization header.
func (p *TokenParser) ParseBearer(header string) (Principal, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return Principal{}, errors.New("invalid authorization header")
	}
	return p.Parse(strings.TrimSpace(parts[1]))
}

// Parse validates a raw token string and returns its principal.
func (p *TokenParser) Parse(tokenStr string) (Principal, error) {
	type claims struct {
		Role string `json:"role"`
		jwt.RegisteredClaims
	}

	tok, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}
	if !tok.Valid {
		return Principal{}, errors.New("invalid token")
	}

	c, ok := tok.Claims.(*claims)
	if !ok || c.Subject == "" {
		return Principal{}, errors.New("invalid claims")
	}

	userID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return Principal{}, errors.New("subject is not a valid user id")
	}

	role := Role(strings.ToLower(c.Role))
	if role != RoleCustomer && role != RoleChef {
		return Principal{}, errors.New("unknown role claim")
	}

	return Principal{UserID: userID, Role: role}, nil
}
