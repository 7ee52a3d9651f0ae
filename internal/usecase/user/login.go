package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fhuszti/videotube-ms-go/internal/auth"
	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

var ErrMissingIdentifier = fmt.Errorf("%w: username or email is required", usecase.ErrValidation)

type loginFields struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Username string `json:"username"`
	Password string `json:"password" validate:"required"`
}

// Login checks the credentials and issues an access token. An unknown account and a wrong
// password fail the same way.
func (s *userSrv) Login(ctx context.Context, in port.LoginInput) (port.LoginOutput, error) {
	fields := loginFields{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Username: strings.ToLower(strings.TrimSpace(in.Username)),
		Password: in.Password,
	}
	if fields.Email == "" && fields.Username == "" {
		return port.LoginOutput{}, ErrMissingIdentifier
	}
	if err := validation.ValidateStruct(fields); err != nil {
		return port.LoginOutput{}, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	u, err := s.users.GetByLogin(ctx, fields.Email, fields.Username)
	if errors.Is(err, usecase.ErrNotFound) {
		return port.LoginOutput{}, auth.ErrBadCredentials
	}
	if err != nil {
		return port.LoginOutput{}, err
	}
	if err := s.hasher.Compare(u.PasswordHash, fields.Password); err != nil {
		return port.LoginOutput{}, err
	}

	token, exp, err := s.tokens.Issue(u.ID)
	if err != nil {
		return port.LoginOutput{}, err
	}
	logger.Infof(ctx, "user #%s logged in", u.ID)
	return port.LoginOutput{User: u, AccessToken: token, ExpiresAt: exp.Unix()}, nil
}
