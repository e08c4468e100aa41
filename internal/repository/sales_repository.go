package repository

import (
	"context"
	"fmt"

	"resto-hub/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// salesRepository implements the SalesRepository interface using PostgreSQL.
type salesRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSalesRepository creates a new PostgreSQL-backed sales repository.
func NewSalesRepository(pool *pgxpool.Pool, logger zerolog.Logger) SalesRepository {
	return &salesRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "sales").Logger(),
	}
}

// TopSellers aggregates quantity and snapshot revenue per menu item
// across non-cancelled orders. Revenue uses each line item's frozen
// price, never the live catalog price. Computed fresh on every call.
func (r *salesRepository) TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error) {
	query := `
		SELECT oi.menu_item_id,
			COALESCE(mi.name, '') AS name,
			SUM(oi.quantity) AS total_quantity,
			SUM(oi.price * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON o.id = oi.order_id
		LEFT JOIN menu_items mi ON mi.id = oi.menu_item_id
		WHERE o.status <> $1
		GROUP BY oi.menu_item_id, mi.name
		ORDER BY SUM(oi.quantity) DESC, oi.menu_item_id
		LIMIT $2
	`

	rows, err := r.pool.Query(ctx, query, model.StatusCancelled, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query top sellers")
		return nil, fmt.Errorf("failed to query top sellers: %w", err)
	}
	defer rows.Close()

	var sellers []model.TopSeller
	for rows.Next() {
		var s model.TopSeller
		err := rows.Scan(&s.MenuItemID, &s.Name, &s.TotalQuantity, &s.TotalRevenue)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top seller row")
			return nil, fmt.Errorf("failed to scan top seller: %w", err)
		}
		sellers = append(sellers, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top seller rows")
		return nil, fmt.Errorf("error iterating top sellers: %w", err)
	}

	return sellers, nil
}
