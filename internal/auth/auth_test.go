package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("hunter22")
	if err != nil {
		t.Fatalf("Hash() err = %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash should not equal the password")
	}
	if err := h.Compare(hash, "hunter22"); err != nil {
		t.Errorf("Compare(correct) err = %v; want nil", err)
	}
	if err := h.Compare(hash, "wrong"); !errors.Is(err, usecase.ErrUnauthorized) {
		t.Errorf("Compare(wrong) err = %v; want ErrUnauthorized", err)
	}

	if _, err := h.Hash(strings.Repeat("x", 100)); !errors.Is(err, usecase.ErrValidation) {
		t.Errorf("Hash(too long) err = %v; want ErrValidation", err)
	}
}

func TestJWTIssuer_RoundTrip(t *testing.T) {
	j := NewJWTIssuer("secret", time.Hour)
	id := uuid.NewUUID()

	tok, exp, err := j.Issue(id)
	if err != nil {
		t.Fatalf("Issue() err = %v", err)
	}
	if time.Until(exp) < 59*time.Minute {
		t.Errorf("expiry = %v; want about one hour ahead", exp)
	}

	got, err := j.Parse(tok)
	if err != nil {
		t.Fatalf("Parse() err = %v", err)
	}
	if got != id {
		t.Errorf("got %v; want %v", got, id)
	}
}

func TestJWTIssuer_Rejects(t *testing.T) {
	j := NewJWTIssuer("secret", time.Hour)
	id := uuid.NewUUID().String()

	sign := func(method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	valid := func() jwt.RegisteredClaims {
		return jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   id,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		}
	}

	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	badIssuer := valid()
	badIssuer.Issuer = "core"
	badSub := valid()
	badSub.Subject = "not-a-uuid"

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "abc.def.ghi"},
		{"other secret", sign(jwt.SigningMethodHS256, []byte("other"), valid())},
		{"other method", sign(jwt.SigningMethodHS512, []byte("secret"), valid())},
		{"expired", sign(jwt.SigningMethodHS256, []byte("secret"), expired)},
		{"bad issuer", sign(jwt.SigningMethodHS256, []byte("secret"), badIssuer)},
		{"bad subject", sign(jwt.SigningMethodHS256, []byte("secret"), badSub)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := j.Parse(tc.token); !errors.Is(err, ErrInvalidToken) {
				t.Fatalf("err = %v; want ErrInvalidToken", err)
			}
		})
	}
}
