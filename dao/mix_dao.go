// api/dao/mix_dao.go
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

type MixDAO struct {
	pool *pgxpool.Pool
}

func NewMixDAO(pool *pgxpool.Pool) *MixDAO {
	return &MixDAO{pool: pool}
}

const mixColumns = `id, title, dj, description, audio_url, cover_image,
	duration_seconds, play_count, published_at, created_at, updated_at`

func scanMix(row pgx.Row) (*model.Mix, error) {
	var m model.Mix
	err := row.Scan(&m.ID, &m.Title, &m.DJ, &m.Description, &m.AudioURL, &m.CoverImage,
		&m.DurationSeconds, &m.PlayCount, &m.PublishedAt, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrMixNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan mix: %w", err)
	}
	return &m, nil
}

func (d *MixDAO) Create(ctx context.Context, m *model.Mix) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO mixes (id, title, dj, description, audio_url, cover_image,
			duration_seconds, play_count, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		m.ID, m.Title, m.DJ, m.Description, m.AudioURL, m.CoverImage,
		m.DurationSeconds, m.PlayCount, m.PublishedAt, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert mix: %w", err)
	}
	return nil
}

func (d *MixDAO) Update(ctx context.Context, m *model.Mix) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE mixes SET title = $2, dj = $3, description = $4, audio_url = $5,
			cover_image = $6, duration_seconds = $7, updated_at = now()
		 WHERE id = $1`,
		m.ID, m.Title, m.DJ, m.Description, m.AudioURL, m.CoverImage, m.DurationSeconds)
	if err != nil {
		return fmt.Errorf("failed to update mix: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrMixNotFound
	}
	return nil
}

func (d *MixDAO) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM mixes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete mix: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrMixNotFound
	}
	return nil
}

func (d *MixDAO) GetByID(ctx context.Context, id string) (*model.Mix, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+mixColumns+` FROM mixes WHERE id = $1`, id)
	return scanMix(row)
}

func (d *MixDAO) List(ctx context.Context, limit, offset int) ([]*model.Mix, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT `+mixColumns+` FROM mixes ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list mixes: %w", err)
	}
	defer rows.Close()

	var mixes []*model.Mix
	for rows.Next() {
		m, err := scanMix(rows)
		if err != nil {
			return nil, err
		}
		mixes = append(mixes, m)
	}
	return mixes, rows.Err()
}

func (d *MixDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM mixes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count mixes: %w", err)
	}
	return total, nil
}

// IncrementPlayCount bumps the play counter atomically.
func (d *MixDAO) IncrementPlayCount(ctx context.Context, id string) (int64, error) {
	var count int64
	err := d.pool.QueryRow(ctx,
		`UPDATE mixes SET play_count = play_count + 1 WHERE id = $1 RETURNING play_count`,
		id).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, pulse_errors.ErrMixNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to increment play count: %w", err)
	}
	return count, nil
}

func (d *MixDAO) ListLatest(ctx context.Context, n int) ([]*model.Mix, error) {
	return d.List(ctx, n, 0)
}
