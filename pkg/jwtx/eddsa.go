package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer mints signed access tokens.
type Signer interface {
	Sign(claims Claims) (string, error)
}

// Verifier checks token signatures and decodes claims. Expiry is validated
// separately via Claims.ValidateExpiry so callers can choose leeway.
type Verifier interface {
	Verify(raw string) (Claims, error)
}

// KeyPair holds an Ed25519 signing key and implements both Signer and
// Verifier. Keys are ephemeral: a restart invalidates outstanding tokens,
// which is acceptable because sessions are also tracked server-side.
type KeyPair struct {
	Issuer  string
	public  ed25519.PublicKey
	private ed25519.PrivateKey
}

// NewKeyPair generates a fresh Ed25519 key pair bound to an issuer.
func NewKeyPair(issuer string) (*KeyPair, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: failed to generate key: %w", err)
	}
	return &KeyPair{Issuer: issuer, public: pub, private: priv}, nil
}

// Sign produces an EdDSA-signed compact JWT from the claims.
func (k *KeyPair) Sign(claims Claims) (string, error) {
	mapClaims := jwt.MapClaims{
		"iss":   k.Issuer,
		"sub":   claims.Subject,
		"email": claims.Email,
		"sid":   claims.SessionID,
		"scope": strings.Join(claims.Scopes, " "),
		"iat":   claims.IssuedAt.Unix(),
		"exp":   claims.ExpiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, mapClaims)
	signed, err := token.SignedString(k.private)
	if err != nil {
		return "", fmt.Errorf("jwtx: failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and signature-checks a compact JWT, returning its claims.
func (k *KeyPair) Verify(raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return k.public, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil || !token.Valid {
		return Claims{}, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}

	claims := Claims{
		Subject:   stringClaim(mapClaims, "sub"),
		Email:     stringClaim(mapClaims, "email"),
		SessionID: stringClaim(mapClaims, "sid"),
		Issuer:    stringClaim(mapClaims, "iss"),
		Scopes:    splitScopes(stringClaim(mapClaims, "scope")),
	}
	if claims.Issuer != k.Issuer {
		return Claims{}, ErrWrongIssuer
	}

	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}

func stringClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func splitScopes(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return strings.Fields(s)
}
