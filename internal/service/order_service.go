package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"resto-hub/internal/model"
	"resto-hub/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// orderService implements OrderService.
type orderService struct {
	orderRepo repository.OrderRepository
	logger    zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(orderRepo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		orderRepo: orderRepo,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Create places a new order. The total is the sum of snapshot price
// times quantity per line item; line-item prices are caller-supplied
// captures of the catalog price at ordering time and are never
// re-derived from the live catalog, so later catalog edits cannot alter
// this order's total. Order and items are written in one transaction.
func (s *orderService) Create(ctx context.Context, req *model.CreateOrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	totalAmount := decimal.Zero
	for _, item := range req.Items {
		totalAmount = totalAmount.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		ID:           uuid.New(),
		OrderNumber:  generateOrderNumber(now),
		CustomerName: req.CustomerName,
		TableNumber:  req.TableNumber,
		Status:       model.StatusPending,
		TotalAmount:  totalAmount,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			ID:         uuid.New(),
			OrderID:    order.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
			Price:      item.Price,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("order_id", order.ID.String()).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Re-read for the canonical state with menu summaries resolved.
	created, err := s.orderRepo.GetByID(ctx, order.ID)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to load created order")
		return nil, fmt.Errorf("failed to load created order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Str("total_amount", totalAmount.String()).
		Int("item_count", len(orderItems)).
		Msg("order created successfully")

	return created, nil
}

// List retrieves one page of orders, newest first. A page beyond the
// last returns an empty page, not an error.
func (s *orderService) List(ctx context.Context, filter model.OrderFilter) (*model.OrderPage, error) {
	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	offset := (page - 1) * pageSize

	orders, err := s.orderRepo.List(ctx, filter.Status, pageSize, offset)
	if err != nil {
		s.logger.Error().Err(err).Str("status", filter.Status).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}

	total, err := s.orderRepo.Count(ctx, filter.Status)
	if err != nil {
		s.logger.Error().Err(err).Str("status", filter.Status).Msg("failed to count orders")
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	totalPages := (total + pageSize - 1) / pageSize

	s.logger.Debug().
		Str("status", filter.Status).
		Int("page", page).
		Int("count", len(orders)).
		Int("total", total).
		Msg("listed orders")

	return &model.OrderPage{
		Items:      orders,
		TotalCount: total,
		TotalPages: totalPages,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}

// GetByID retrieves a full order with resolved line items.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	return order, nil
}

// UpdateStatus overwrites the order status. The value must be a member
// of the status enumeration, checked before touching the store; beyond
// that any transition is permitted, including reopening a cancelled
// order. Last write wins between concurrent callers.
func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status model.Status) (*model.Order, error) {
	if !status.Valid() {
		s.logger.Warn().
			Str("order_id", id.String()).
			Str("status", string(status)).
			Msg("invalid status")
		return nil, model.ErrInvalidStatus
	}

	updated, err := s.orderRepo.UpdateStatus(ctx, id, status, time.Now())
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}
	if !updated {
		s.logger.Debug().Str("order_id", id.String()).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to load updated order")
		return nil, fmt.Errorf("failed to load updated order: %w", err)
	}
	if order == nil {
		return nil, model.ErrOrderNotFound
	}

	s.logger.Info().
		Str("order_id", id.String()).
		Str("status", string(status)).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest validates the order request. Everything is
// checked before any write is attempted.
func (s *orderService) validateOrderRequest(req *model.CreateOrderRequest) error {
	if req == nil {
		return model.ErrEmptyOrderItems
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		s.logger.Warn().Msg("customer name is empty")
		return model.ErrEmptyCustomer
	}

	if len(req.Items) == 0 {
		s.logger.Warn().Msg("order has no items")
		return model.ErrEmptyOrderItems
	}

	for i, item := range req.Items {
		if item.MenuItemID == uuid.Nil {
			return model.NewDomainError(model.ErrCodeInvalidArgument,
				fmt.Sprintf("Item %d: menu item ID is required", i))
		}
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", item.MenuItemID.String()).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
		if item.Price.IsNegative() {
			s.logger.Warn().
				Int("item_index", i).
				Str("menu_item_id", item.MenuItemID.String()).
				Str("price", item.Price.String()).
				Msg("negative price")
			return model.ErrInvalidPrice
		}
	}

	return nil
}

// generateOrderNumber derives a human-readable order number from the
// creation instant. Millisecond resolution makes collisions negligible
// at back-office request rates.
func generateOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d", now.UnixMilli())
}
