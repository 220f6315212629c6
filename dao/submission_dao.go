// api/dao/submission_dao.go
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

type SubmissionDAO struct {
	pool *pgxpool.Pool
}

func NewSubmissionDAO(pool *pgxpool.Pool) *SubmissionDAO {
	return &SubmissionDAO{pool: pool}
}

const submissionColumns = `id, name, email, type, title, message, link, status,
	created_at, updated_at`

func scanSubmission(row pgx.Row) (*model.Submission, error) {
	var s model.Submission
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.Type, &s.Title, &s.Message,
		&s.Link, &s.Status, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrSubmissionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan submission: %w", err)
	}
	return &s, nil
}

func (d *SubmissionDAO) Insert(ctx context.Context, s *model.Submission) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO submissions (id, name, email, type, title, message, link, status,
			created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		s.ID, s.Name, s.Email, s.Type, s.Title, s.Message, s.Link, s.Status,
		s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}

func (d *SubmissionDAO) GetByID(ctx context.Context, id string) (*model.Submission, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id)
	return scanSubmission(row)
}

func (d *SubmissionDAO) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE submissions SET status = $2, updated_at = now() WHERE id = $1`,
		id, status)
	if err != nil {
		return fmt.Errorf("failed to update submission status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrSubmissionNotFound
	}
	return nil
}

func (d *SubmissionDAO) List(ctx context.Context, status string, limit, offset int) ([]*model.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` WHERE status = $1`
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	var submissions []*model.Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}

func (d *SubmissionDAO) Count(ctx context.Context, status string) (int64, error) {
	query := `SELECT COUNT(*) FROM submissions`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += ` WHERE status = $1`
	}

	var total int64
	if err := d.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count submissions: %w", err)
	}
	return total, nil
}
