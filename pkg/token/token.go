// Package token issues and verifies the HS256 bearer tokens used by the API.
//
// Tokens are stateless: the server keeps no session table, a token issued at t
// stays valid for [t, t+ttl). iat and exp are written with nanosecond
// fractions so no part of the window is lost to rounding.
package token

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func init() {
	jwt.TimePrecision = time.Nanosecond
}

const DefaultTTL = time.Hour

var (
	ErrMalformed        = errors.New("token malformed")
	ErrSignatureInvalid = errors.New("token signature invalid")
	ErrExpired          = errors.New("token expired")
)

// Claims is the payload carried by every token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Identity is what a successfully verified token yields.
type Identity struct {
	SubjectID string
	Role      string
}

// Manager signs and verifies tokens with a single server-held secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{secret: []byte(secret), ttl: ttl}
}

func (m *Manager) TTL() time.Duration { return m.ttl }

// Issue signs a token for subjectID/role valid from now for the manager's ttl.
func (m *Manager) Issue(subjectID, role string, now time.Time) (string, error) {
	if subjectID == "" || role == "" {
		return "", fmt.Errorf("issue token: %w", ErrMalformed)
	}
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks integrity first, then expiry against now. The signature is
// compared with hmac.Equal inside golang-jwt.
func (m *Manager) Verify(raw string, now time.Time) (Identity, error) {
	claims := &Claims{}
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	_, err := parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	})
	if err != nil {
		return Identity{}, classify(err)
	}
	if claims.Subject == "" || claims.Role == "" {
		return Identity{}, ErrMalformed
	}

	expiry, err := expiresAt(parser, raw)
	if err != nil {
		return Identity{}, err
	}
	if !now.Before(expiry) {
		return Identity{}, ErrExpired
	}
	return Identity{SubjectID: claims.Subject, Role: claims.Role}, nil
}

// expiresAt reads exp from the already verified payload as an exact decimal.
// jwt.NumericDate goes through float64, which can drop the last nanoseconds.
func expiresAt(parser *jwt.Parser, raw string) (time.Time, error) {
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		return time.Time{}, ErrMalformed
	}
	payload, err := parser.DecodeSegment(parts[1])
	if err != nil {
		return time.Time{}, ErrMalformed
	}
	var body struct {
		Exp json.Number `json:"exp"`
	}
	if err := json.Unmarshal(payload, &body); err != nil || body.Exp == "" {
		return time.Time{}, ErrMalformed
	}
	return parseNumericDate(body.Exp.String())
}

// parseNumericDate parses "seconds[.fraction]" without floating point.
func parseNumericDate(s string) (time.Time, error) {
	secPart, fracPart, _ := strings.Cut(s, ".")
	sec, err := strconv.ParseInt(secPart, 10, 64)
	if err != nil {
		return time.Time{}, ErrMalformed
	}
	var nsec int64
	if fracPart != "" {
		if len(fracPart) > 9 {
			fracPart = fracPart[:9]
		}
		fracPart += strings.Repeat("0", 9-len(fracPart))
		if nsec, err = strconv.ParseInt(fracPart, 10, 64); err != nil {
			return time.Time{}, ErrMalformed
		}
	}
	return time.Unix(sec, nsec), nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrTokenUnverifiable):
		return ErrSignatureInvalid
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	default:
		return ErrMalformed
	}
}
