// api/dao/newsletter_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
)

type NewsletterDAO struct {
	pool *pgxpool.Pool
}

func NewNewsletterDAO(pool *pgxpool.Pool) *NewsletterDAO {
	return &NewsletterDAO{pool: pool}
}

func (d *NewsletterDAO) Insert(ctx context.Context, s *model.Subscriber) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO subscribers (id, email, name, subscribed_at) VALUES ($1, $2, $3, $4)`,
		s.ID, s.Email, s.Name, s.SubscribedAt)
	if isUniqueViolation(err) {
		return pulse_errors.ErrAlreadySubscribed
	}
	if err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}
	return nil
}

func (d *NewsletterDAO) DeleteByEmail(ctx context.Context, email string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM subscribers WHERE email = $1`, email)
	if err != nil {
		return fmt.Errorf("failed to delete subscriber: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrSubscriberMissing
	}
	return nil
}

func (d *NewsletterDAO) List(ctx context.Context, limit, offset int) ([]*model.Subscriber, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT id, email, name, subscribed_at FROM subscribers
		 ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []*model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Name, &s.SubscribedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}
		subscribers = append(subscribers, &s)
	}
	return subscribers, rows.Err()
}

func (d *NewsletterDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM subscribers`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return total, nil
}
