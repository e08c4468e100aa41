package service

import (
	"context"

	"resto-hub/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for catalog management.
type MenuService interface {
	// List retrieves menu items matching the filter, newest first.
	List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error)

	// Search retrieves menu items ranked by relevance against name and
	// ingredients. Fails when the query is empty.
	Search(ctx context.Context, query string) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by ID.
	GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)

	// Create validates and persists a new menu item, returning the
	// canonical stored record.
	Create(ctx context.Context, req *model.CreateMenuItemRequest) (*model.MenuItem, error)

	// Update applies a partial update, re-validating touched fields.
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateMenuItemRequest) (*model.MenuItem, error)

	// Delete removes a menu item permanently.
	Delete(ctx context.Context, id uuid.UUID) error

	// ToggleAvailability flips the availability flag and returns the
	// post-toggle state.
	ToggleAvailability(ctx context.Context, id uuid.UUID) (*model.MenuItem, error)
}

// OrderService defines operations for order management.
type OrderService interface {
	// Create places a new order with snapshot-priced line items.
	Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error)

	// List retrieves one page of orders, optionally filtered by status.
	List(ctx context.Context, filter model.OrderFilter) (*model.OrderPage, error)

	// GetByID retrieves a full order with resolved line items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// UpdateStatus overwrites the order status after validating the
	// value is a member of the status enumeration.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Order, error)
}

// SalesService defines read-only analytics derived from orders.
type SalesService interface {
	// TopSellers returns up to limit ranked sellers across
	// non-cancelled orders.
	TopSellers(ctx context.Context, limit int) ([]model.TopSeller, error)
}
