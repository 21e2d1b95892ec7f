package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/terraincognita07/dayglow/internal/security"
)

const (
	DefaultTokenTTL = 24 * time.Hour
	bearerPrefix    = "bearer "
	tokenIDLength   = 24
)

var (
	ErrMissingToken   = errors.New("missing bearer token")
	ErrInvalidToken   = errors.New("invalid token")
	ErrTokenExpired   = errors.New("token expired")
	ErrInvalidSubject = errors.New("token subject is not a user id")
	ErrMissingSecret  = errors.New("signing secret is empty")
)

// Verifier checks HS256 bearer tokens and yields the user id in the subject.
type Verifier struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewVerifier(secret []byte, issuer string) *Verifier {
	return &Verifier{secret: secret, issuer: strings.TrimSpace(issuer), now: time.Now}
}

// UserIDFromHeader reads an Authorization header value of the form "Bearer <token>".
func (verifier *Verifier) UserIDFromHeader(header string) (string, error) {
	header = strings.TrimSpace(header)
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", ErrMissingToken
	}
	return verifier.Verify(strings.TrimSpace(header[len(bearerPrefix):]))
}

func (verifier *Verifier) Verify(rawToken string) (string, error) {
	if rawToken == "" {
		return "", ErrMissingToken
	}

	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(verifier.now),
	}
	if verifier.issuer != "" {
		options = append(options, jwt.WithIssuer(verifier.issuer))
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(*jwt.Token) (interface{}, error) {
		return verifier.secret, nil
	}, options...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return "", ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return "", ErrInvalidSubject
	}
	return userID.String(), nil
}

// Issuer mints tokens that Verifier accepts. It backs the token command for
// local development.
type Issuer struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewIssuer(secret []byte, issuer string) *Issuer {
	return &Issuer{secret: secret, issuer: strings.TrimSpace(issuer), now: time.Now}
}

func (issuer *Issuer) Issue(userID string, ttl time.Duration) (string, error) {
	if len(issuer.secret) == 0 {
		return "", ErrMissingSecret
	}
	subject, err := uuid.Parse(strings.TrimSpace(userID))
	if err != nil {
		return "", ErrInvalidSubject
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	tokenID, err := security.RandomString(tokenIDLength, security.TokenAlphabet)
	if err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}

	now := issuer.now()
	claims := jwt.RegisteredClaims{
		ID:        tokenID,
		Subject:   subject.String(),
		Issuer:    issuer.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(issuer.secret)
}
