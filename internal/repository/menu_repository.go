package repository

import (
	"context"
	"fmt"
	"time"

	"resto-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// menuRepository implements the MenuRepository interface using PostgreSQL.
type menuRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuRepository creates a new PostgreSQL-backed menu repository.
func NewMenuRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuRepository {
	return &menuRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu").Logger(),
	}
}

const menuColumns = `id, name, description, category, price, ingredients,
	is_available, preparation_time, image_url, created_at, updated_at`

// List retrieves menu items matching the filter, newest first.
func (r *menuRepository) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items`

	var args []any
	var conditions []string
	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.IsAvailable != nil {
		args = append(args, *filter.IsAvailable)
		conditions = append(conditions, fmt.Sprintf("is_available = $%d", len(args)))
	}
	if filter.MinPrice != nil {
		args = append(args, *filter.MinPrice)
		conditions = append(conditions, fmt.Sprintf("price >= $%d", len(args)))
	}
	if filter.MaxPrice != nil {
		args = append(args, *filter.MaxPrice)
		conditions = append(conditions, fmt.Sprintf("price <= $%d", len(args)))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

// Search retrieves menu items matching the free-text query against name
// and ingredients, ordered by descending relevance.
func (r *menuRepository) Search(ctx context.Context, query string) ([]model.MenuItem, error) {
	sql := `
		SELECT ` + menuColumns + `
		FROM menu_items
		WHERE to_tsvector('english', name || ' ' || array_to_string(ingredients, ' '))
			@@ plainto_tsquery('english', $1)
		ORDER BY ts_rank(
			to_tsvector('english', name || ' ' || array_to_string(ingredients, ' ')),
			plainto_tsquery('english', $1)
		) DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, sql, query)
	if err != nil {
		r.logger.Error().Err(err).Str("query", query).Msg("failed to search menu items")
		return nil, fmt.Errorf("failed to search menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows)
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1`

	var m model.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.Ingredients,
		&m.IsAvailable, &m.PreparationTime, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &m, nil
}

// Create inserts a new menu item.
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (` + menuColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Category, item.Price, item.Ingredients,
		item.IsAvailable, item.PreparationTime, item.ImageURL, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", item.ID.String()).Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().Str("menu_item_id", item.ID.String()).Msg("menu item created successfully")

	return nil
}

// Update overwrites all mutable columns of a menu item.
func (r *menuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	query := `
		UPDATE menu_items
		SET name = $2, description = $3, category = $4, price = $5, ingredients = $6,
			is_available = $7, preparation_time = $8, image_url = $9, updated_at = $10
		WHERE id = $1
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID, item.Name, item.Description, item.Category, item.Price, item.Ingredients,
		item.IsAvailable, item.PreparationTime, item.ImageURL, item.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", item.ID.String()).Msg("failed to update menu item")
		return fmt.Errorf("failed to update menu item: %w", err)
	}

	return nil
}

// Delete removes a menu item permanently. Historical orders keep their
// snapshots; nothing cascades.
func (r *menuRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to delete menu item")
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item not found")
		return false, nil
	}

	r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item deleted")

	return true, nil
}

// SetAvailability writes the availability flag. Last write wins.
func (r *menuRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool, updatedAt time.Time) error {
	query := `UPDATE menu_items SET is_available = $2, updated_at = $3 WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, available, updatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to set availability")
		return fmt.Errorf("failed to set availability: %w", err)
	}

	return nil
}

// scanMenuItems collects menu item rows.
func scanMenuItems(rows pgx.Rows) ([]model.MenuItem, error) {
	var items []model.MenuItem
	for rows.Next() {
		var m model.MenuItem
		err := rows.Scan(
			&m.ID, &m.Name, &m.Description, &m.Category, &m.Price, &m.Ingredients,
			&m.IsAvailable, &m.PreparationTime, &m.ImageURL, &m.CreatedAt, &m.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}
