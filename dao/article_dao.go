// api/dao/article_dao.go
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

type ArticleDAO struct {
	pool *pgxpool.Pool
}

func NewArticleDAO(pool *pgxpool.Pool) *ArticleDAO {
	return &ArticleDAO{pool: pool}
}

const articleColumns = `id, title, slug, excerpt, body, cover_image, tags, author,
	published, published_at, created_at, updated_at`

func scanArticle(row pgx.Row) (*model.Article, error) {
	var a model.Article
	err := row.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Body, &a.CoverImage,
		&a.Tags, &a.Author, &a.Published, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrArticleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan article: %w", err)
	}
	return &a, nil
}

func (d *ArticleDAO) Create(ctx context.Context, a *model.Article) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO articles (id, title, slug, excerpt, body, cover_image, tags, author,
			published, published_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverImage, a.Tags, a.Author,
		a.Published, a.PublishedAt, a.CreatedAt, a.UpdatedAt)
	if isUniqueViolation(err) {
		return pulse_errors.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert article: %w", err)
	}
	return nil
}

func (d *ArticleDAO) Update(ctx context.Context, a *model.Article) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE articles SET title = $2, slug = $3, excerpt = $4, body = $5,
			cover_image = $6, tags = $7, author = $8, published = $9,
			published_at = $10, updated_at = now()
		 WHERE id = $1`,
		a.ID, a.Title, a.Slug, a.Excerpt, a.Body, a.CoverImage, a.Tags, a.Author,
		a.Published, a.PublishedAt)
	if isUniqueViolation(err) {
		return pulse_errors.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrArticleNotFound
	}
	return nil
}

func (d *ArticleDAO) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete article: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrArticleNotFound
	}
	return nil
}

func (d *ArticleDAO) GetByID(ctx context.Context, id string) (*model.Article, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
	return scanArticle(row)
}

func (d *ArticleDAO) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	row := d.pool.QueryRow(ctx,
		`SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
	return scanArticle(row)
}

func (d *ArticleDAO) List(ctx context.Context, filter model.ArticleFilter, limit, offset int) ([]*model.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE 1=1`
	args := []any{}
	if filter.PublishedOnly {
		query += ` AND published`
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(` AND $%d = ANY(tags)`, len(args))
	}
	args = append(args, limit, offset)
	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := d.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	defer rows.Close()

	var articles []*model.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (d *ArticleDAO) Count(ctx context.Context, filter model.ArticleFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM articles WHERE 1=1`
	args := []any{}
	if filter.PublishedOnly {
		query += ` AND published`
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(` AND $%d = ANY(tags)`, len(args))
	}

	var total int64
	if err := d.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return total, nil
}

// ListLatest returns the newest published articles for the homepage.
func (d *ArticleDAO) ListLatest(ctx context.Context, n int) ([]*model.Article, error) {
	return d.List(ctx, model.ArticleFilter{PublishedOnly: true}, n, 0)
}
