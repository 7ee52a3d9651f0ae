package auth

import (
	"fmt"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/golang-jwt/jwt/v4"
)

const issuer = "videotube"

var ErrInvalidToken = fmt.Errorf("%w: invalid access token", usecase.ErrUnauthorized)

// JWTIssuer signs and verifies HS256 access tokens whose subject is the user ID.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// compile-time check: *JWTIssuer must satisfy port.TokenIssuer
var _ port.TokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
		parser: jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})),
	}
}

func (j *JWTIssuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	now := j.now()
	exp := now.Add(j.ttl)
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(exp),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, exp, nil
}

func (j *JWTIssuer) Parse(raw string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := j.parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	})
	if err != nil || !tok.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	if !claims.VerifyIssuer(issuer, true) {
		return uuid.Nil, ErrInvalidToken
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil || id.IsZero() {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}
