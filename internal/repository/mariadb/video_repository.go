package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, v *model.Video) error {
	logger.Infof(ctx, "creating database record for video #%s...", v.ID)

	const query = `
      INSERT INTO videos
        (id, video_file, thumbnail, title, description, owner_id, duration, views, is_published, thumbnail_optimised, created_at, updated_at)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.VideoFile, v.Thumbnail,
		v.Title, v.Description, v.Owner,
		v.Duration, v.Views, v.IsPublished,
		v.ThumbnailOptimised, v.CreatedAt, v.UpdatedAt,
	)
	return mapSQLErr(err, "video")
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	logger.Debugf(ctx, "fetching video #%s from the database...", id)

	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = ?`
	v, err := scanVideo(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLErr(err, "video")
	}
	return v, nil
}

func (r *VideoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM videos WHERE id = ?)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, mapSQLErr(err, "video")
	}
	return ok, nil
}

// IncrementViews adds one view in a single statement, so concurrent reads never lose a count.
func (r *VideoRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE videos SET views = views + 1 WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return mapSQLErr(err, "video")
	}
	return affectedOrNotFound(res, "video")
}

func (r *VideoRepository) Update(ctx context.Context, v *model.Video) error {
	logger.Infof(ctx, "updating database record for video #%s...", v.ID)

	const query = `
      UPDATE videos
      SET
        video_file          = ?,
        thumbnail           = ?,
        title               = ?,
        description         = ?,
        duration            = ?,
        is_published        = ?,
        thumbnail_optimised = ?,
        updated_at          = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		v.VideoFile,
		v.Thumbnail,
		v.Title,
		v.Description,
		v.Duration,
		v.IsPublished,
		v.ThumbnailOptimised,
		v.UpdatedAt,
		v.ID, // WHERE clause
	)
	return mapSQLErr(err, "video")
}

func (r *VideoRepository) SwapThumbnail(ctx context.Context, id uuid.UUID, from, to string) (bool, error) {
	const query = `UPDATE videos SET thumbnail = ?, thumbnail_optimised = 1 WHERE id = ? AND thumbnail = ?`
	res, err := r.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return false, mapSQLErr(err, "video")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapSQLErr(err, "video")
	}
	return n > 0, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	logger.Infof(ctx, "deleting database record for video #%s...", id)

	res, err := r.db.ExecContext(ctx, `DELETE FROM videos WHERE id = ?`, id)
	if err != nil {
		return mapSQLErr(err, "video")
	}
	return affectedOrNotFound(res, "video")
}

func (r *VideoRepository) List(ctx context.Context, filter port.VideoFilter, page port.Page) ([]*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE 1 = 1`
	var args []any
	if filter.Query != "" {
		query += ` AND title LIKE ?`
		args = append(args, "%"+escapeLike(filter.Query)+"%")
	}
	if filter.OwnerID != nil {
		query += ` AND owner_id = ?`
		args = append(args, *filter.OwnerID)
	}
	query += orderBy(filter.Sort) + ` LIMIT ? OFFSET ?`
	args = append(args, page.Limit, page.Offset())

	return r.queryVideos(ctx, query, args...)
}

func (r *VideoRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_id = ? ORDER BY created_at DESC, id DESC`
	return r.queryVideos(ctx, query, owner)
}

func (r *VideoRepository) ListUnoptimisedThumbnails(ctx context.Context) ([]uuid.UUID, error) {
	const query = `SELECT id FROM videos WHERE thumbnail_optimised = 0`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, mapSQLErr(err, "video")
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, mapSQLErr(err, "video")
		}
		ids = append(ids, id)
	}
	return ids, mapSQLErr(rows.Err(), "video")
}

func (r *VideoRepository) ChannelTotals(ctx context.Context, owner uuid.UUID) (int64, int64, error) {
	const query = `SELECT COUNT(*), COALESCE(SUM(views), 0) FROM videos WHERE owner_id = ?`
	var videos, views int64
	if err := r.db.QueryRowContext(ctx, query, owner).Scan(&videos, &views); err != nil {
		return 0, 0, mapSQLErr(err, "video")
	}
	return videos, views, nil
}

// MostViewed returns nil without error when owner has no video.
func (r *VideoRepository) MostViewed(ctx context.Context, owner uuid.UUID) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE owner_id = ? ORDER BY views DESC, created_at DESC LIMIT 1`
	v, err := scanVideo(r.db.QueryRowContext(ctx, query, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapSQLErr(err, "video")
	}
	return v, nil
}

func (r *VideoRepository) queryVideos(ctx context.Context, query string, args ...any) ([]*model.Video, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapSQLErr(err, "video")
	}
	defer func() { _ = rows.Close() }()

	videos := make([]*model.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, mapSQLErr(err, "video")
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "video")
	}
	return videos, nil
}

// orderBy only ever emits whitelisted columns; unknown fields fall back to created_at.
func orderBy(s port.Sort) string {
	col, ok := model.VideoSortFields[s.Field]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if s.Desc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir)
}
