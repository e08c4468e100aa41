package repository

import (
	"context"
	"time"

	"resto-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MenuRepository defines the interface for menu catalog data access.
type MenuRepository interface {
	// List retrieves menu items matching the filter, newest first.
	List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)

	// Search retrieves menu items matching the free-text query against
	// name and ingredients, ordered by descending relevance.
	Search(ctx context.Context, query string) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID. Returns nil when
	// the item does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)

	// Create inserts a new menu item.
	Create(ctx context.Context, item *model.MenuItem) error

	// Update overwrites all mutable columns of a menu item.
	Update(ctx context.Context, item *model.MenuItem) error

	// Delete removes a menu item permanently. Returns false when the
	// item does not exist.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)

	// SetAvailability writes the availability flag. Last write wins;
	// there is no compare-and-swap guard.
	SetAvailability(ctx context.Context, id uuid.UUID, available bool, updatedAt time.Time) error
}

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// List retrieves one page of orders, newest first, optionally
	// filtered by status, with line items and menu summaries resolved.
	List(ctx context.Context, status string, limit, offset int) ([]model.Order, error)

	// Count returns the number of orders matching the status filter.
	Count(ctx context.Context, status string) (int, error)

	// GetByID retrieves an order with its line items and menu summaries
	// resolved. Returns nil when the order does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus overwrites the order status unconditionally. Returns
	// false when the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status, updatedAt time.Time) (bool, error)
}

// SalesRepository defines read-only analytics over historical orders.
type SalesRepository interface {
	// TopSellers aggregates quantity and snapshot revenue per menu item
	// across non-cancelled orders, descending by quantity.
	TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error)
}
