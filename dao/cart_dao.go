// api/dao/cart_dao.go
package dao

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/google/uuid"

	pulse_errors "github.com/pulsecollective/pulse/api/errors"
	"github.com/pulsecollective/pulse/api/model"
)

// Carts older than this are dropped lazily on access.
const staleCartAge = 30 * 24 * time.Hour

type CartDAO struct {
	pool *pgxpool.Pool
}

func NewCartDAO(pool *pgxpool.Pool) *CartDAO {
	return &CartDAO{pool: pool}
}

func (d *CartDAO) getOrCreate(ctx context.Context, tx pgx.Tx, sessionID string) (string, error) {
	var cartID string
	err := tx.QueryRow(ctx,
		`INSERT INTO carts (id, session_id, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (session_id) DO UPDATE SET updated_at = now()
		 RETURNING id`,
		uuid.NewString(), sessionID).Scan(&cartID)
	if err != nil {
		return "", fmt.Errorf("failed to upsert cart: %w", err)
	}
	return cartID, nil
}

// AddItem checks stock and upserts the line inside one transaction. The
// product row is locked so two concurrent adds cannot oversell.
func (d *CartDAO) AddItem(ctx context.Context, sessionID, productID string, quantity int) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin cart transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cartID, err := d.getOrCreate(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock_quantity FROM products WHERE id = $1 AND active FOR UPDATE`,
		productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return pulse_errors.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read product stock: %w", err)
	}

	var current int
	err = tx.QueryRow(ctx,
		`SELECT quantity FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID).Scan(&current)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to read cart line: %w", err)
	}

	if current+quantity > stock {
		return pulse_errors.ErrInsufficientStock
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO cart_items (cart_id, product_id, quantity) VALUES ($1, $2, $3)
		 ON CONFLICT (cart_id, product_id)
		 DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity`,
		cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to upsert cart line: %w", err)
	}

	return tx.Commit(ctx)
}

// SetItemQuantity replaces a line's quantity; zero removes the line.
func (d *CartDAO) SetItemQuantity(ctx context.Context, sessionID, productID string, quantity int) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin cart transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cartID, err := d.getOrCreate(ctx, tx, sessionID)
	if err != nil {
		return err
	}

	if quantity == 0 {
		tag, err := tx.Exec(ctx,
			`DELETE FROM cart_items WHERE cart_id = $1 AND product_id = $2`,
			cartID, productID)
		if err != nil {
			return fmt.Errorf("failed to remove cart line: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return pulse_errors.ErrCartItemNotFound
		}
		return tx.Commit(ctx)
	}

	var stock int
	err = tx.QueryRow(ctx,
		`SELECT stock_quantity FROM products WHERE id = $1 AND active FOR UPDATE`,
		productID).Scan(&stock)
	if errors.Is(err, pgx.ErrNoRows) {
		return pulse_errors.ErrProductNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to read product stock: %w", err)
	}
	if quantity > stock {
		return pulse_errors.ErrInsufficientStock
	}

	tag, err := tx.Exec(ctx,
		`UPDATE cart_items SET quantity = $3 WHERE cart_id = $1 AND product_id = $2`,
		cartID, productID, quantity)
	if err != nil {
		return fmt.Errorf("failed to update cart line: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return pulse_errors.ErrCartItemNotFound
	}

	return tx.Commit(ctx)
}

func (d *CartDAO) RemoveItem(ctx context.Context, sessionID, productID string) error {
	return d.SetItemQuantity(ctx, sessionID, productID, 0)
}

// Get loads the cart with product snapshots. A session without a cart yields
// an empty cart rather than an error.
func (d *CartDAO) Get(ctx context.Context, sessionID string) (*model.Cart, error) {
	// Opportunistic cleanup of abandoned carts.
	if _, err := d.pool.Exec(ctx,
		`DELETE FROM carts WHERE updated_at < now() - $1::interval`,
		fmt.Sprintf("%d seconds", int(staleCartAge.Seconds()))); err != nil {
		return nil, fmt.Errorf("failed to prune stale carts: %w", err)
	}

	cart := &model.Cart{SessionID: sessionID, Items: []model.CartItem{}}
	err := d.pool.QueryRow(ctx,
		`SELECT id, updated_at FROM carts WHERE session_id = $1`,
		sessionID).Scan(&cart.ID, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return cart, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	rows, err := d.pool.Query(ctx,
		`SELECT ci.product_id, p.name, p.price_cents, p.currency, ci.quantity
		 FROM cart_items ci JOIN products p ON p.id = ci.product_id
		 WHERE ci.cart_id = $1
		 ORDER BY p.name`, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart lines: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.CartItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.UnitCents,
			&item.Currency, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan cart line: %w", err)
		}
		cart.TotalCents += item.UnitCents * int64(item.Quantity)
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

func (d *CartDAO) Clear(ctx context.Context, sessionID string) error {
	_, err := d.pool.Exec(ctx,
		`DELETE FROM cart_items WHERE cart_id IN (SELECT id FROM carts WHERE session_id = $1)`,
		sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
