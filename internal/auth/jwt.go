// Package auth issues and verifies the bearer tokens of the lesson API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/heartmarshall/lessonbell-backend/internal/domain"
)

// JWTManager issues and verifies HS256 access tokens. The subject is the
// teacher's username and the role travels as a custom claim.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256 security.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// Claims are the verified contents of an access token.
type Claims struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

// accessClaims extends standard JWT claims with the teacher's role.
type accessClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// IssueToken creates a signed token for username with the given role.
func (m *JWTManager) IssueToken(username, role string) (string, error) {
	if username == "" {
		return "", errors.New("issue token: username is empty")
	}

	now := m.now()
	claims := accessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Verify parses and validates a token. Every failure wraps domain.ErrAuthToken.
func (m *JWTManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("token is empty: %w", domain.ErrAuthToken)
	}

	token, err := jwt.ParseWithClaims(tokenString, &accessClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w: %w", domain.ErrAuthToken, err)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims: %w", domain.ErrAuthToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token has no subject: %w", domain.ErrAuthToken)
	}

	return &Claims{
		Username:  claims.Subject,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// ExtractUsername returns the username carried by a valid token.
func (m *JWTManager) ExtractUsername(tokenString string) (string, error) {
	c, err := m.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return c.Username, nil
}

// ExtractRole returns the role carried by a valid token.
func (m *JWTManager) ExtractRole(tokenString string) (string, error) {
	c, err := m.Verify(tokenString)
	if err != nil {
		return "", err
	}
	return c.Role, nil
}
