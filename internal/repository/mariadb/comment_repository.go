package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type CommentRepository struct {
	db *sql.DB
}

// compile-time check: *CommentRepository must satisfy port.CommentRepository
var _ port.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

const commentColumns = `id, content, video_id, owner_id, created_at, updated_at`

func scanComment(row rowScanner) (*model.Comment, error) {
	var c model.Comment
	if err := row.Scan(&c.ID, &c.Content, &c.Video, &c.Owner, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	logger.Infof(ctx, "creating comment #%s on video #%s...", c.ID, c.Video)

	const query = `
      INSERT INTO comments (id, content, video_id, owner_id, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Content, c.Video, c.Owner, c.CreatedAt, c.UpdatedAt)
	return mapSQLErr(err, "comment")
}

func (r *CommentRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE id = ?`
	c, err := scanComment(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLErr(err, "comment")
	}
	return c, nil
}

func (r *CommentRepository) Update(ctx context.Context, c *model.Comment) error {
	const query = `UPDATE comments SET content = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, c.Content, c.UpdatedAt, c.ID)
	return mapSQLErr(err, "comment")
}

func (r *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	if err != nil {
		return mapSQLErr(err, "comment")
	}
	return affectedOrNotFound(res, "comment")
}

func (r *CommentRepository) ListByVideo(ctx context.Context, video uuid.UUID, page port.Page) ([]*model.Comment, error) {
	query := `SELECT ` + commentColumns + ` FROM comments WHERE video_id = ? ORDER BY created_at DESC, id DESC LIMIT ? OFFSET ?`
	rows, err := r.db.QueryContext(ctx, query, video, page.Limit, page.Offset())
	if err != nil {
		return nil, mapSQLErr(err, "comment")
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, mapSQLErr(err, "comment")
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "comment")
	}
	return comments, nil
}
