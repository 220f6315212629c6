// api/dao/product_dao.go
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

type ProductDAO struct {
	pool *pgxpool.Pool
}

func NewProductDAO(pool *pgxpool.Pool) *ProductDAO {
	return &ProductDAO{pool: pool}
}

const productColumns = `id, name, slug, description, price_cents, currency, images,
	stock_quantity, featured, active, created_at, updated_at`

func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Slug, &p.Description, &p.PriceCents, &p.Currency,
		&p.Images, &p.StockQuantity, &p.Featured, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, pulse_errors.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan product: %w", err)
	}
	return &p, nil
}

func (d *ProductDAO) Create(ctx context.Context, p *model.Product) error {
	_, err := d.pool.Exec(ctx,
		`INSERT INTO products (id, name, slug, description, price_cents, currency, images,
			stock_quantity, featured, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		p.ID, p.Name, p.Slug, p.Description, p.PriceCents, p.Currency, p.Images,
		p.StockQuantity, p.Featured, p.Active, p.CreatedAt, p.UpdatedAt)
	if isUniqueViolation(err) {
		return pulse_errors.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}
	return nil
}

func (d *ProductDAO) Update(ctx context.Context, p *model.Product) error {
	tag, err := d.pool.Exec(ctx,
		`UPDATE products SET name = $2, slug = $3, description = $4, price_cents = $5,
			currency = $6, images = $7, stock_quantity = $8, featured = $9,
			active = $10, updated_at = now()
		 WHERE id = $1`,
		p.ID, p.Name, p.Slug, p.Description, p.PriceCents, p.Currency, p.Images,
		p.StockQuantity, p.Featured, p.Active)
	if isUniqueViolation(err) {
		return pulse_errors.ErrSlugTaken
	}
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrProductNotFound
	}
	return nil
}

func (d *ProductDAO) Delete(ctx context.Context, id string) error {
	tag, err := d.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrProductNotFound
	}
	return nil
}

func (d *ProductDAO) GetByID(ctx context.Context, id string) (*model.Product, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (d *ProductDAO) GetBySlug(ctx context.Context, slug string) (*model.Product, error) {
	row := d.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE slug = $1`, slug)
	return scanProduct(row)
}

func (d *ProductDAO) List(ctx context.Context, activeOnly bool, limit, offset int) ([]*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := d.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (d *ProductDAO) Count(ctx context.Context, activeOnly bool) (int64, error) {
	query := `SELECT COUNT(*) FROM products`
	if activeOnly {
		query += ` WHERE active`
	}

	var total int64
	if err := d.pool.QueryRow(ctx, query).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return total, nil
}

func (d *ProductDAO) ListFeatured(ctx context.Context, n int) ([]*model.Product, error) {
	rows, err := d.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE active AND featured
		 ORDER BY created_at DESC LIMIT $1`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	defer rows.Close()

	var products []*model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
