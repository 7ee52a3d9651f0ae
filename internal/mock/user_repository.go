package mock

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type UserRepo struct {
	Record    *model.User
	GetErr    error
	CreateErr error

	Created    *model.User
	LoginEmail string
	LoginUser  string
}

func (m *UserRepo) Create(ctx context.Context, u *model.User) error {
	m.Created = u
	return m.CreateErr
}

func (m *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	if m.GetErr == nil && m.Record == nil {
		return nil, notFound("user")
	}
	return m.Record, m.GetErr
}

func (m *UserRepo) GetByLogin(ctx context.Context, email, username string) (*model.User, error) {
	m.LoginEmail, m.LoginUser = email, username
	if m.GetErr == nil && m.Record == nil {
		return nil, notFound("user")
	}
	return m.Record, m.GetErr
}
