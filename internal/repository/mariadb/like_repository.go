package mariadb

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/usecase"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type LikeRepository struct {
	db *sql.DB
}

// compile-time check: *LikeRepository must satisfy port.LikeRepository
var _ port.LikeRepository = (*LikeRepository)(nil)

func NewLikeRepository(db *sql.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

var likeColumnsByTarget = map[model.LikeTarget]string{
	model.LikeTargetVideo:   "video_id",
	model.LikeTargetComment: "comment_id",
	model.LikeTargetTweet:   "tweet_id",
}

// Toggle deletes the like of l.LikedBy on the subject first and only inserts l when nothing was
// deleted. The unique (subject, liked_by) keys make a racing insert fail with a duplicate,
// which still means the like exists.
func (r *LikeRepository) Toggle(ctx context.Context, l *model.Like, target model.LikeTarget) (bool, error) {
	col, ok := likeColumnsByTarget[target]
	if !ok {
		return false, fmt.Errorf("%w: unknown like target %q", usecase.ErrValidation, target)
	}
	subject := subjectOf(l, target)
	if subject == nil {
		return false, fmt.Errorf("%w: like has no %s", usecase.ErrValidation, target)
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM likes WHERE `+col+` = ? AND liked_by = ?`, *subject, l.LikedBy)
	if err != nil {
		return false, mapSQLErr(err, "like")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapSQLErr(err, "like")
	}
	if n > 0 {
		logger.Infof(ctx, "removed like on %s #%s", target, *subject)
		return false, nil
	}

	const insert = `
      INSERT INTO likes (id, video_id, comment_id, tweet_id, liked_by, created_at)
      VALUES (?, ?, ?, ?, ?, ?)
    `
	_, err = r.db.ExecContext(ctx, insert, l.ID, l.Video, l.Comment, l.Tweet, l.LikedBy, l.CreatedAt)
	if isDuplicate(err) {
		// a concurrent toggle inserted first: l takes over the stored row
		row := r.db.QueryRowContext(ctx, `SELECT id, created_at FROM likes WHERE `+col+` = ? AND liked_by = ?`, *subject, l.LikedBy)
		return storedRow(row.Scan(&l.ID, &l.CreatedAt), "like")
	}
	if err != nil {
		return false, mapSQLErr(err, string(target))
	}
	logger.Infof(ctx, "added like on %s #%s", target, *subject)
	return true, nil
}

func subjectOf(l *model.Like, target model.LikeTarget) *uuid.UUID {
	switch target {
	case model.LikeTargetVideo:
		return l.Video
	case model.LikeTargetComment:
		return l.Comment
	case model.LikeTargetTweet:
		return l.Tweet
	}
	return nil
}

func (r *LikeRepository) LikedVideos(ctx context.Context, user uuid.UUID) ([]*model.Video, error) {
	const query = `
      SELECT v.id, v.video_file, v.thumbnail, v.title, v.description, v.owner_id, v.duration, v.views, v.is_published, v.thumbnail_optimised, v.created_at, v.updated_at
      FROM likes l
      JOIN videos v ON v.id = l.video_id
      WHERE l.liked_by = ?
      ORDER BY l.created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, mapSQLErr(err, "like")
	}
	defer func() { _ = rows.Close() }()

	videos := make([]*model.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, mapSQLErr(err, "like")
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "like")
	}
	return videos, nil
}

func (r *LikeRepository) CountForOwnerVideos(ctx context.Context, owner uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes l JOIN videos v ON v.id = l.video_id WHERE v.owner_id = ?`
	var n int64
	if err := r.db.QueryRowContext(ctx, query, owner).Scan(&n); err != nil {
		return 0, mapSQLErr(err, "like")
	}
	return n, nil
}
