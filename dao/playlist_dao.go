// api/dao/playlist_dao.go
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

type PlaylistDAO struct {
	pool *pgxpool.Pool
}

func NewPlaylistDAO(pool *pgxpool.Pool) *PlaylistDAO {
	return &PlaylistDAO{pool: pool}
}

const playlistColumns = `id, title, description, cover_image, track_count, spotify_url,
	curator, created_at, updated_at`

func scanPlaylist(row pgx.Row) (*model.Playlist, error) {
	var p model.Playlist
	err := row.Scan(&p.ID, &p.Title, &p.Description, &p.CoverImage, &p.TrackCount,
		&p.SpotifyURL, &p.Curator, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrPlaylistNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan playlist: %w", err)
	}
	return &p, nil
}

func (d *PlaylistDAO) Create(ctx context.Context, p *model.Playlist) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO playlists (id, title, description, cover_image, track_count,
			spotify_url, curator, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Description, p.CoverImage, p.TrackCount,
		p.SpotifyURL, p.Curator, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert playlist: %w", err)
	}
	return nil
}

func (d *PlaylistDAO) Update(ctx context.Context, p *model.Playlist) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE playlists SET title = $2, description = $3, cover_image = $4,
			track_count = $5, spotify_url = $6, curator = $7, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, p.CoverImage, p.TrackCount, p.SpotifyURL, p.Curator)
	if err != nil {
		return fmt.Errorf("failed to update playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrPlaylistNotFound
	}
	return nil
}

func (d *PlaylistDAO) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM playlists WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete playlist: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrPlaylistNotFound
	}
	return nil
}

func (d *PlaylistDAO) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+playlistColumns+` FROM playlists WHERE id = $1`, id)
	return scanPlaylist(row)
}

func (d *PlaylistDAO) List(ctx context.Context, limit, offset int) ([]*model.Playlist, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT `+playlistColumns+` FROM playlists ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list playlists: %w", err)
	}
	defer rows.Close()

	var playlists []*model.Playlist
	for rows.Next() {
		p, err := scanPlaylist(rows)
		if err != nil {
			return nil, err
		}
		playlists = append(playlists, p)
	}
	return playlists, rows.Err()
}

func (d *PlaylistDAO) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := d.pool.QueryRow(ctx, `SELECT COUNT(*) FROM playlists`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count playlists: %w", err)
	}
	return total, nil
}
