// api/dao/settings_dao.go
package dao

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pulsecollective/pulse/api/model"
)

type SettingsDAO struct {
	pool *pgxpool.Pool
}

func NewSettingsDAO(pool *pgxpool.Pool) *SettingsDAO {
	return &SettingsDAO{pool: pool}
}

func (d *SettingsDAO) GetAll(ctx context.Context) (model.Settings, error) {
	rows, err := d.pool.Query(ctx, `SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	defer rows.Close()

	settings := model.Settings{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan setting: %w", err)
		}
		settings[key] = value
	}
	return settings, rows.Err()
}

func (d *SettingsDAO) Upsert(ctx context.Context, values map[string]string) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin settings transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for key, value := range values {
		if _, err := tx.Exec(ctx,
			`INSERT INTO settings (key, value) VALUES ($1, $2)
			 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
			key, value); err != nil {
			return fmt.Errorf("failed to upsert setting %q: %w", key, err)
		}
	}
	return tx.Commit(ctx)
}
