package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/validation"
)

type registerFields struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Email    string `json:"email" validate:"required,email"`
	FullName string `json:"fullName" validate:"required,notblank"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register creates an account. Optional avatar and cover image are uploaded first and removed
// again when the account cannot be stored.
func (s *userSrv) Register(ctx context.Context, in port.RegisterInput) (*model.User, error) {
	defer func() {
		for _, f := range []*port.StagedFile{in.Avatar, in.CoverImage} {
			if err := f.Remove(); err != nil {
				logger.Warnf(ctx, "failed to remove staged file %q: %v", f.Path, err)
			}
		}
	}()

	fields := registerFields{
		Username: strings.ToLower(strings.TrimSpace(in.Username)),
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		FullName: strings.TrimSpace(in.FullName),
		Password: in.Password,
	}
	if err := validation.ValidateStruct(fields); err != nil {
		return nil, fmt.Errorf("%w: %w", usecase.ErrValidation, err)
	}

	hash, err := s.hasher.Hash(fields.Password)
	if err != nil {
		return nil, err
	}

	var uploads []port.UploadResult
	upload := func(f *port.StagedFile) (string, error) {
		if f == nil {
			return "", nil
		}
		res, err := s.strg.Upload(ctx, f, port.MediaKindImage)
		if err != nil {
			return "", err
		}
		uploads = append(uploads, res)
		return res.ExternalRef, nil
	}

	avatar, err := upload(in.Avatar)
	if err != nil {
		return nil, err
	}
	cover, err := upload(in.CoverImage)
	if err != nil {
		s.discard(ctx, uploads)
		return nil, err
	}

	now := time.Now().UTC()
	u := &model.User{
		ID:           s.newID(),
		Username:     fields.Username,
		Email:        fields.Email,
		FullName:     fields.FullName,
		Avatar:       avatar,
		CoverImage:   cover,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.discard(ctx, uploads)
		return nil, err
	}
	logger.Infof(ctx, "user #%s registered", u.ID)
	return u, nil
}
