package repository

import (
	"context"
	"testing"
	"time"

	"resto-hub/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedOrder writes an order with its line items through the repository's
// own transactional path and returns the stored order ID.
func seedOrder(t *testing.T, pool *pgxpool.Pool, customer string, status model.Status, createdAt time.Time, items []model.OrderItem) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	repo := NewOrderRepository(pool, zerolog.Nop())

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &model.Order{
		ID:           uuid.New(),
		OrderNumber:  "ORD-" + uuid.NewString(),
		CustomerName: customer,
		Status:       status,
		TotalAmount:  total,
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = order.ID
	}

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateOrder(ctx, tx, order))
	require.NoError(t, repo.CreateOrderItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	return order.ID
}

func TestOrderRepository_CreateAndGet(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	repo := NewOrderRepository(pool, logger)
	ctx := context.Background()

	salad := newMenuItem("Caesar Salad", model.CategoryAppetizer, "8.99", []string{"Lettuce"}, time.Now())
	salmon := newMenuItem("Grilled Salmon", model.CategoryMainCourse, "22.99", []string{"Salmon"}, time.Now())
	seedMenuItems(t, pool, []model.MenuItem{salad, salmon})

	orderID := seedOrder(t, pool, "Alice Johnson", model.StatusPending, time.Now(), []model.OrderItem{
		{MenuItemID: salad.ID, Quantity: 2, Price: decimal.RequireFromString("8.99")},
		{MenuItemID: salmon.ID, Quantity: 1, Price: decimal.RequireFromString("22.99")},
	})

	got, err := repo.GetByID(ctx, orderID)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Alice Johnson", got.CustomerName)
	assert.Equal(t, model.StatusPending, got.Status)
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("40.97")))
	require.Len(t, got.Items, 2)

	// Menu summaries are resolved from the live catalog
	for _, item := range got.Items {
		require.NotNil(t, item.MenuItem)
		assert.Equal(t, item.MenuItemID, item.MenuItem.ID)
		assert.NotEmpty(t, item.MenuItem.Name)
	}
}

func TestOrderRepository_GetByID_NotFound(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())

	got, err := repo.GetByID(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestOrderRepository_SnapshotSurvivesCatalogChanges(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	logger := zerolog.Nop()
	menuRepo := NewMenuRepository(pool, logger)
	orderRepo := NewOrderRepository(pool, logger)
	ctx := context.Background()

	cake := newMenuItem("Chocolate Cake", model.CategoryDessert, "7.99", []string{"Chocolate"}, time.Now())
	seedMenuItems(t, pool, []model.MenuItem{cake})

	orderID := seedOrder(t, pool, "Bob Smith", model.StatusDelivered, time.Now(), []model.OrderItem{
		{MenuItemID: cake.ID, Quantity: 3, Price: decimal.RequireFromString("7.99")},
	})

	// Raise the catalog price after the order was placed
	cake.Price = decimal.RequireFromString("9.99")
	cake.UpdatedAt = time.Now()
	require.NoError(t, menuRepo.Update(ctx, &cake))

	got, err := orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)

	// Snapshot price and total stay frozen; the summary shows the live price
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("7.99")))
	assert.True(t, got.TotalAmount.Equal(decimal.RequireFromString("23.97")))
	require.NotNil(t, got.Items[0].MenuItem)
	assert.True(t, got.Items[0].MenuItem.Price.Equal(decimal.RequireFromString("9.99")))

	// Deleting the catalog item leaves only the snapshot
	deleted, err := menuRepo.Delete(ctx, cake.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	got, err = orderRepo.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Items, 1)
	assert.Nil(t, got.Items[0].MenuItem)
	assert.True(t, got.Items[0].Price.Equal(decimal.RequireFromString("7.99")))
}

func TestOrderRepository_List(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	item := newMenuItem("Coffee", model.CategoryBeverage, "3.99", []string{"Coffee beans"}, time.Now())
	seedMenuItems(t, pool, []model.MenuItem{item})

	base := time.Now().Add(-time.Hour)
	statuses := []model.Status{
		model.StatusPending, model.StatusPending, model.StatusPreparing,
		model.StatusDelivered, model.StatusCancelled,
	}
	for i, status := range statuses {
		seedOrder(t, pool, "Customer", status, base.Add(time.Duration(i)*time.Minute), []model.OrderItem{
			{MenuItemID: item.ID, Quantity: 1, Price: decimal.RequireFromString("3.99")},
		})
	}

	tests := []struct {
		name     string
		status   string
		limit    int
		offset   int
		expected int
	}{
		{
			name:     "All orders",
			status:   "",
			limit:    10,
			offset:   0,
			expected: 5,
		},
		{
			name:     "Status filter",
			status:   "Pending",
			limit:    10,
			offset:   0,
			expected: 2,
		},
		{
			name:     "Unknown status matches nothing",
			status:   "Bogus",
			limit:    10,
			offset:   0,
			expected: 0,
		},
		{
			name:     "First page",
			status:   "",
			limit:    2,
			offset:   0,
			expected: 2,
		},
		{
			name:     "Offset beyond results",
			status:   "",
			limit:    10,
			offset:   10,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orders, err := repo.List(ctx, tt.status, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Len(t, orders, tt.expected)

			// Verify orders are newest first with items attached
			for i := range orders {
				assert.NotNil(t, orders[i].Items)
				if i > 0 {
					assert.True(t, !orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
				}
			}
		})
	}
}

func TestOrderRepository_Count(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	item := newMenuItem("Iced Tea", model.CategoryBeverage, "2.99", []string{"Tea"}, time.Now())
	seedMenuItems(t, pool, []model.MenuItem{item})

	for _, status := range []model.Status{model.StatusPending, model.StatusPending, model.StatusReady} {
		seedOrder(t, pool, "Customer", status, time.Now(), []model.OrderItem{
			{MenuItemID: item.ID, Quantity: 1, Price: decimal.RequireFromString("2.99")},
		})
	}

	total, err := repo.Count(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	pending, err := repo.Count(ctx, "Pending")
	require.NoError(t, err)
	assert.Equal(t, 2, pending)

	none, err := repo.Count(ctx, "Cancelled")
	require.NoError(t, err)
	assert.Equal(t, 0, none)
}

func TestOrderRepository_UpdateStatus(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	repo := NewOrderRepository(pool, zerolog.Nop())
	ctx := context.Background()

	item := newMenuItem("Spring Rolls", model.CategoryAppetizer, "6.99", []string{"Rice paper"}, time.Now())
	seedMenuItems(t, pool, []model.MenuItem{item})

	orderID := seedOrder(t, pool, "Carol White", model.StatusPending, time.Now(), []model.OrderItem{
		{MenuItemID: item.ID, Quantity: 1, Price: decimal.RequireFromString("6.99")},
	})

	updated, err := repo.UpdateStatus(ctx, orderID, model.StatusCancelled, time.Now())
	require.NoError(t, err)
	assert.True(t, updated)

	got, err := repo.GetByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, model.StatusCancelled, got.Status)

	// Cancelled is not terminal; any transition is allowed
	updated, err = repo.UpdateStatus(ctx, orderID, model.StatusPending, time.Now())
	require.NoError(t, err)
	assert.True(t, updated)

	// Unknown ID reports not found
	updated, err = repo.UpdateStatus(ctx, uuid.New(), model.StatusReady, time.Now())
	require.NoError(t, err)
	assert.False(t, updated)
}
