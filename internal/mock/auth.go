package mock

import (
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

// Hasher "hashes" by prefixing, so tests can compare without bcrypt's cost.
type Hasher struct {
	HashErr    error
	CompareErr error
	Hashed     string
}

func (m *Hasher) Hash(password string) (string, error) {
	m.Hashed = password
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

func (m *Hasher) Compare(hash, password string) error {
	return m.CompareErr
}

type TokenIssuer struct {
	Token     string
	ExpiresAt time.Time
	IssueErr  error
	ParseOut  uuid.UUID
	ParseErr  error
	IssuedFor uuid.UUID
}

func (m *TokenIssuer) Issue(userID uuid.UUID) (string, time.Time, error) {
	m.IssuedFor = userID
	return m.Token, m.ExpiresAt, m.IssueErr
}

func (m *TokenIssuer) Parse(token string) (uuid.UUID, error) {
	return m.ParseOut, m.ParseErr
}
