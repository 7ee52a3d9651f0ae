package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type TweetRepository struct {
	db *sql.DB
}

// compile-time check: *TweetRepository must satisfy port.TweetRepository
var _ port.TweetRepository = (*TweetRepository)(nil)

func NewTweetRepository(db *sql.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

const tweetColumns = `id, content, owner_id, created_at, updated_at`

func scanTweet(row rowScanner) (*model.Tweet, error) {
	var t model.Tweet
	if err := row.Scan(&t.ID, &t.Content, &t.Owner, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TweetRepository) Create(ctx context.Context, t *model.Tweet) error {
	const query = `INSERT INTO tweets (id, content, owner_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, t.ID, t.Content, t.Owner, t.CreatedAt, t.UpdatedAt)
	return mapSQLErr(err, "tweet")
}

func (r *TweetRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Tweet, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE id = ?`
	t, err := scanTweet(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		return nil, mapSQLErr(err, "tweet")
	}
	return t, nil
}

func (r *TweetRepository) Update(ctx context.Context, t *model.Tweet) error {
	const query = `UPDATE tweets SET content = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, t.Content, t.UpdatedAt, t.ID)
	return mapSQLErr(err, "tweet")
}

func (r *TweetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tweets WHERE id = ?`, id)
	if err != nil {
		return mapSQLErr(err, "tweet")
	}
	return affectedOrNotFound(res, "tweet")
}

func (r *TweetRepository) ListByOwner(ctx context.Context, owner uuid.UUID) ([]*model.Tweet, error) {
	query := `SELECT ` + tweetColumns + ` FROM tweets WHERE owner_id = ? ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, mapSQLErr(err, "tweet")
	}
	defer func() { _ = rows.Close() }()

	tweets := make([]*model.Tweet, 0)
	for rows.Next() {
		t, err := scanTweet(rows)
		if err != nil {
			return nil, mapSQLErr(err, "tweet")
		}
		tweets = append(tweets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "tweet")
	}
	return tweets, nil
}
