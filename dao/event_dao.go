// api/dao/event_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
)

type EventDAO struct {
	pool *pgxpool.Pool
}

func NewEventDAO(pool *pgxpool.Pool) *EventDAO {
	return &EventDAO{pool: pool}
}

const eventColumns = `id, title, venue, city, starts_at, ends_at, description,
	cover_image, ticket_url, published, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var e model.Event
	err := row.Scan(&e.ID, &e.Title, &e.Venue, &e.City, &e.StartsAt, &e.EndsAt,
		&e.Description, &e.CoverImage, &e.TicketURL, &e.Published, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrEventNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan event: %w", err)
	}
	return &e, nil
}

func (d *EventDAO) Create(ctx context.Context, e *model.Event) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO events (id, title, venue, city, starts_at, ends_at, description,
			cover_image, ticket_url, published, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		e.ID, e.Title, e.Venue, e.City, e.StartsAt, e.EndsAt, e.Description,
		e.CoverImage, e.TicketURL, e.Published, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert event: %w", err)
	}
	return nil
}

func (d *EventDAO) Update(ctx context.Context, e *model.Event) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE events SET title = $2, venue = $3, city = $4, starts_at = $5,
			ends_at = $6, description = $7, cover_image = $8, ticket_url = $9,
			published = $10, updated_at = now()
		 WHERE id = $1`,
		e.ID, e.Title, e.Venue, e.City, e.StartsAt, e.EndsAt, e.Description,
		e.CoverImage, e.TicketURL, e.Published)
	if err != nil {
		return fmt.Errorf("failed to update event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrEventNotFound
	}
	return nil
}

func (d *EventDAO) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrEventNotFound
	}
	return nil
}

func (d *EventDAO) GetByID(ctx context.Context, id string) (*model.Event, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
	return scanEvent(row)
}

func (d *EventDAO) List(ctx context.Context, filter model.EventFilter, limit, offset int) ([]*model.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE 1=1`
	if filter.PublishedOnly {
		query += ` AND published`
	}
	if filter.UpcomingOnly {
		query += ` AND starts_at >= now()`
	}
	query += ` ORDER BY starts_at ASC LIMIT $1 OFFSET $2`

	rows, err := d.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	defer rows.Close()

	var events []*model.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (d *EventDAO) Count(ctx context.Context, filter model.EventFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM events WHERE 1=1`
	if filter.PublishedOnly {
		query += ` AND published`
	}
	if filter.UpcomingOnly {
		query += ` AND starts_at >= now()`
	}

	var total int64
	if err := d.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return total, nil
}

func (d *EventDAO) ListUpcoming(ctx context.Context, n int) ([]*model.Event, error) {
	return d.List(ctx, model.EventFilter{PublishedOnly: true, UpcomingOnly: true}, n, 0)
}
