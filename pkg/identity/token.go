package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// TokenPrefix identifies Bookstand tokens
	TokenPrefix = "bks_"
	// DefaultTokenTTL is the token lifetime when none is configured
	DefaultTokenTTL = time.Hour
)

var (
	// ErrMissingToken is returned when no token was presented at all.
	ErrMissingToken = errors.New("missing token")
	// ErrInvalidToken covers malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a well-signed token past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// Claims is the payload carried inside a token.
type Claims struct {
	Username  string `json:"username"`
	ExpiresAt int64  `json:"exp"`
}

// Issuer mints and verifies signed tokens with a process-wide secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer. A non-positive ttl falls back to
// DefaultTokenTTL.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue mints a token for the given username, expiring ttl from now.
func (i *Issuer) Issue(username string, now time.Time) (string, error) {
	if username == "" {
		return "", fmt.Errorf("username is required")
	}

	claims := Claims{
		Username:  username,
		ExpiresAt: now.Add(i.ttl).Unix(),
	}
	raw, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to encode claims: %w", err)
	}

	payload := base64.RawURLEncoding.EncodeToString(raw)
	return TokenPrefix + payload + "." + i.sign(payload), nil
}

// Verify checks the token signature and expiry at the given instant and
// returns the embedded claims. Validity is purely a function of
// (token, secret, now); no server-side state is consulted.
func (i *Issuer) Verify(token string, now time.Time) (Claims, error) {
	if token == "" {
		return Claims{}, ErrMissingToken
	}
	if !strings.HasPrefix(token, TokenPrefix) {
		return Claims{}, ErrInvalidToken
	}

	parts := strings.SplitN(strings.TrimPrefix(token, TokenPrefix), ".", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Claims{}, ErrInvalidToken
	}
	payload, sig := parts[0], parts[1]

	if !hmac.Equal([]byte(i.sign(payload)), []byte(sig)) {
		return Claims{}, ErrInvalidToken
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return Claims{}, ErrInvalidToken
	}
	var claims Claims
	if err := json.Unmarshal(raw, &claims); err != nil {
		return Claims{}, ErrInvalidToken
	}
	if claims.Username == "" {
		return Claims{}, ErrInvalidToken
	}

	if !now.Before(time.Unix(claims.ExpiresAt, 0)) {
		return Claims{}, ErrExpiredToken
	}
	return claims, nil
}

func (i *Issuer) sign(payload string) string {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
