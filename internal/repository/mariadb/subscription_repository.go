package mariadb

import (
	"context"
	"database/sql"

	"github.com/fhuszti/videotube-ms-go/internal/logger"
	"github.com/fhuszti/videotube-ms-go/internal/model"
	"github.com/fhuszti/videotube-ms-go/internal/port"
	"github.com/fhuszti/videotube-ms-go/internal/uuid"
)

type SubscriptionRepository struct {
	db *sql.DB
}

// compile-time check: *SubscriptionRepository must satisfy port.SubscriptionRepository
var _ port.SubscriptionRepository = (*SubscriptionRepository)(nil)

func NewSubscriptionRepository(db *sql.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Toggle follows the same delete-then-insert sequence as likes, keyed on (channel, subscriber).
func (r *SubscriptionRepository) Toggle(ctx context.Context, s *model.Subscription) (bool, error) {
	const del = `DELETE FROM subscriptions WHERE channel_id = ? AND subscriber_id = ?`
	res, err := r.db.ExecContext(ctx, del, s.Channel, s.Subscriber)
	if err != nil {
		return false, mapSQLErr(err, "subscription")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, mapSQLErr(err, "subscription")
	}
	if n > 0 {
		logger.Infof(ctx, "unsubscribed from channel #%s", s.Channel)
		return false, nil
	}

	const insert = `INSERT INTO subscriptions (id, channel_id, subscriber_id, created_at) VALUES (?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, insert, s.ID, s.Channel, s.Subscriber, s.CreatedAt)
	if isDuplicate(err) {
		const query = `SELECT id, created_at FROM subscriptions WHERE channel_id = ? AND subscriber_id = ?`
		row := r.db.QueryRowContext(ctx, query, s.Channel, s.Subscriber)
		return storedRow(row.Scan(&s.ID, &s.CreatedAt), "subscription")
	}
	if err != nil {
		return false, mapSQLErr(err, "channel")
	}
	logger.Infof(ctx, "subscribed to channel #%s", s.Channel)
	return true, nil
}

func (r *SubscriptionRepository) SubscriberIDs(ctx context.Context, channel uuid.UUID) ([]uuid.UUID, error) {
	const query = `SELECT subscriber_id FROM subscriptions WHERE channel_id = ? ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query, channel)
	if err != nil {
		return nil, mapSQLErr(err, "subscription")
	}
	defer func() { _ = rows.Close() }()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, mapSQLErr(err, "subscription")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "subscription")
	}
	return ids, nil
}

func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriber uuid.UUID) ([]*model.Subscription, error) {
	const query = `
      SELECT id, channel_id, subscriber_id, created_at
      FROM subscriptions
      WHERE subscriber_id = ?
      ORDER BY created_at DESC
    `
	rows, err := r.db.QueryContext(ctx, query, subscriber)
	if err != nil {
		return nil, mapSQLErr(err, "subscription")
	}
	defer func() { _ = rows.Close() }()

	subs := make([]*model.Subscription, 0)
	for rows.Next() {
		var s model.Subscription
		if err := rows.Scan(&s.ID, &s.Channel, &s.Subscriber, &s.CreatedAt); err != nil {
			return nil, mapSQLErr(err, "subscription")
		}
		subs = append(subs, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapSQLErr(err, "subscription")
	}
	return subs, nil
}

func (r *SubscriptionRepository) CountSubscribers(ctx context.Context, channel uuid.UUID) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = ?`, channel).Scan(&n)
	if err != nil {
		return 0, mapSQLErr(err, "subscription")
	}
	return n, nil
}
