// Package tokens issues and verifies the short-lived JWTs that unlock
// preview (unpublished) content.
package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	issuer       = "landing-services"
	previewScope = "preview"
)

var ErrNoSecret = errors.New("preview secret not configured")

// PreviewClaims are the claims carried by a preview token.
type PreviewClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// GeneratePreviewToken signs an HS256 preview token for subject, valid for
// ttl. Each token gets a unique id so it can be revoked on its own.
func GeneratePreviewToken(secret, subject string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", ErrNoSecret
	}
	now := time.Now()
	claims := PreviewClaims{
		Scope: previewScope,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParsePreviewToken verifies raw and returns its claims. Tokens signed with
// any algorithm other than HS256, expired tokens and tokens without the
// preview scope are rejected.
func ParsePreviewToken(secret, raw string) (*PreviewClaims, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	var claims PreviewClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return nil, fmt.Errorf("invalid preview token: %w", err)
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("invalid preview token: no expiry")
	}
	if claims.Scope != previewScope {
		return nil, fmt.Errorf("invalid preview token: scope %q", claims.Scope)
	}
	return &claims, nil
}
