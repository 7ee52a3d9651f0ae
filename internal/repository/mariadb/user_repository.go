package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, username, email, full_name, avatar, cover_image, password_hash, created_at, updated_at`

func scanUser(row rowScanner) (*model.User, error) {
	var u model.User
	if err := row.Scan(
		&u.ID, &u.Username, &u.Email,
		&u.FullName, &u.Avatar, &u.CoverImage,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	logger.Infof(ctx, "creating database record for user #%s...", u.ID)

	const query = `
      INSERT INTO users
        (id, username, email, full_name, avatar, cover_image, password_hash, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.Username, u.Email,
		u.FullName, u.Avatar, u.CoverImage,
		u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	)
	if isDuplicate(err) {
		return mapSQLErr(err, "user with this email or username")
	}
	return mapSQLErr(err, "user")
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLErr(err, "user")
	}
	return u, nil
}

// GetByLogin finds the user matching the email or the username. Empty values never match.
func (r *UserRepository) GetByLogin(ctx context.Context, email, username string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE (email = ? AND ? <> '') OR (username = ? AND ? <> '') LIMIT 1`
	u, err := scanUser(r.db.QueryRowContext(ctx, query, email, email, username, username))
	if err != nil {
		return nil, mapSQLErr(err, "user")
	}
	return u, nil
}
