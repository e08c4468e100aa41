package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status is the order lifecycle enumeration. Any status may transition
// to any other; membership in the enumeration is the only contract.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusPreparing Status = "Preparing"
	StatusReady     Status = "Ready"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

// Statuses lists all valid order statuses.
var Statuses = []Status{
	StatusPending,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
}

// Valid reports whether the status is a member of the enumeration.
func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// Order represents a customer order. TotalAmount is frozen at creation
// time and never recomputed, even when catalog prices change later.
type Order struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	OrderNumber  string          `json:"orderNumber" db:"order_number"`
	CustomerName string          `json:"customerName" db:"customer_name"`
	TableNumber  *int            `json:"tableNumber,omitempty" db:"table_number"`
	Status       Status          `json:"status" db:"status"`
	TotalAmount  decimal.Decimal `json:"totalAmount" db:"total_amount"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt" db:"updated_at"`
}

// OrderItem is a line item: a menu item reference, a quantity and the
// price snapshot captured when the order was placed.
type OrderItem struct {
	ID         uuid.UUID       `json:"-" db:"id"`
	OrderID    uuid.UUID       `json:"-" db:"order_id"`
	MenuItemID uuid.UUID       `json:"menuItemId" db:"menu_item_id"`
	Quantity   int             `json:"quantity" db:"quantity"`
	Price      decimal.Decimal `json:"price" db:"price"`

	// MenuItem is the live catalog projection for display; nil when the
	// catalog item has since been deleted.
	MenuItem *MenuItemSummary `json:"menuItem,omitempty"`
}

// MenuItemSummary is the catalog projection resolved onto order line
// items (current name and price, not the snapshot).
type MenuItemSummary struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CreateOrderRequest represents the request payload for placing an order.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	TableNumber  *int               `json:"tableNumber,omitempty"`
	Items        []OrderItemRequest `json:"items"`
}

// OrderItemRequest is a single requested line item. Price is the
// caller-supplied snapshot of the catalog price at ordering time.
type OrderItemRequest struct {
	MenuItemID uuid.UUID       `json:"menuItemId"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// OrderFilter narrows and paginates an order listing.
type OrderFilter struct {
	Status   string
	Page     int
	PageSize int
}

// OrderPage is one page of an order listing.
type OrderPage struct {
	Items      []Order `json:"items"`
	TotalCount int     `json:"totalCount"`
	TotalPages int     `json:"totalPages"`
	Page       int     `json:"page"`
	PageSize   int     `json:"pageSize"`
}

// UpdateStatusRequest represents the request payload for a status change.
type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// TopSeller is one row of the top-sellers aggregate: totals per menu
// item across all non-cancelled orders, revenue from price snapshots.
type TopSeller struct {
	MenuItemID    uuid.UUID       `json:"menuItemId"`
	Name          string          `json:"name"`
	TotalQuantity int             `json:"totalQuantity"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
}
