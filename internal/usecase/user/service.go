package user

import (
	"context"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/metrics"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type userSrv struct {
	users  port.UserRepository
	strg   port.ObjectStore
	hasher port.PasswordHasher
	tokens port.TokenIssuer
	newID  port.UUIDGen
}

// compile-time check: *userSrv must satisfy port.UserService
var _ port.UserService = (*userSrv)(nil)

func NewUserService(users port.UserRepository, strg port.ObjectStore, hasher port.PasswordHasher, tokens port.TokenIssuer, newID port.UUIDGen) port.UserService {
	if newID == nil {
		newID = uuid.NewUUID
	}
	return &userSrv{users: users, strg: strg, hasher: hasher, tokens: tokens, newID: newID}
}

func (s *userSrv) CurrentUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.users.GetByID(ctx, id)
}

// discard removes images uploaded for a registration that then failed.
func (s *userSrv) discard(ctx context.Context, uploads []port.UploadResult) {
	for _, res := range uploads {
		err := s.strg.Delete(ctx, res.PublicID, port.MediaKindImage)
		metrics.CompensationsTotal.WithLabelValues(metrics.Status(err)).Inc()
		if err != nil {
			logger.Errorf(ctx, "failed to remove orphaned image %q: %v", res.ExternalRef, err)
		}
	}
}
