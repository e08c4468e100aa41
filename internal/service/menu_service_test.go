package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"resto-hub/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMenuRepository is a mock implementation of MenuRepository.
type MockMenuRepository struct {
	mock.Mock
}

func (m *MockMenuRepository) List(ctx context.Context, filter model.MenuFilter) ([]model.MenuItem, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Search(ctx context.Context, query string) ([]model.MenuItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MenuItem), args.Error(1)
}

func (m *MockMenuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Update(ctx context.Context, item *model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockMenuRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockMenuRepository) SetAvailability(ctx context.Context, id uuid.UUID, available bool, updatedAt time.Time) error {
	args := m.Called(ctx, id, available, updatedAt)
	return args.Error(0)
}

func testMenuItem(name string, price string) model.MenuItem {
	return model.MenuItem{
		ID:          uuid.New(),
		Name:        name,
		Category:    model.CategoryMainCourse,
		Price:       decimal.RequireFromString(price),
		Ingredients: []string{"Salt"},
		IsAvailable: true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

func TestMenuService_List(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.MenuItem{
		testMenuItem("Grilled Salmon", "22.99"),
		testMenuItem("Caesar Salad", "8.99"),
	}

	tests := []struct {
		name        string
		mockReturn  []model.MenuItem
		mockError   error
		expectError bool
		expectCount int
	}{
		{
			name:        "Success",
			mockReturn:  items,
			mockError:   nil,
			expectError: false,
			expectCount: 2,
		},
		{
			name:        "Empty catalog returns empty slice",
			mockReturn:  nil,
			mockError:   nil,
			expectError: false,
			expectCount: 0,
		},
		{
			name:        "Repository error",
			mockReturn:  nil,
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			service := NewMenuService(mockRepo, logger)

			mockRepo.On("List", ctx, model.MenuFilter{}).Return(tt.mockReturn, tt.mockError)

			got, err := service.List(ctx, model.MenuFilter{})

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, got)
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Len(t, got, tt.expectCount)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_List_PassesFilter(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	category := model.CategoryDessert
	available := true
	minPrice := decimal.RequireFromString("5.00")
	maxPrice := decimal.RequireFromString("10.00")
	filter := model.MenuFilter{
		Category:    &category,
		IsAvailable: &available,
		MinPrice:    &minPrice,
		MaxPrice:    &maxPrice,
	}

	mockRepo := new(MockMenuRepository)
	service := NewMenuService(mockRepo, logger)

	mockRepo.On("List", ctx, filter).Return([]model.MenuItem{}, nil)

	_, err := service.List(ctx, filter)

	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestMenuService_Search(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	items := []model.MenuItem{testMenuItem("Grilled Salmon", "22.99")}

	tests := []struct {
		name        string
		query       string
		mockReturn  []model.MenuItem
		mockError   error
		expectCall  bool
		expectError bool
		expectedErr error
		expectCount int
	}{
		{
			name:        "Success",
			query:       "salmon",
			mockReturn:  items,
			expectCall:  true,
			expectCount: 1,
		},
		{
			name:        "Empty query is invalid",
			query:       "",
			expectCall:  false,
			expectError: true,
			expectedErr: model.ErrEmptySearchQuery,
		},
		{
			name:        "Whitespace query is invalid",
			query:       "   ",
			expectCall:  false,
			expectError: true,
			expectedErr: model.ErrEmptySearchQuery,
		},
		{
			name:        "No matches returns empty slice, not error",
			query:       "nonexistent-token-xyz",
			mockReturn:  nil,
			expectCall:  true,
			expectCount: 0,
		},
		{
			name:        "Repository error",
			query:       "salmon",
			mockError:   errors.New("database error"),
			expectCall:  true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			service := NewMenuService(mockRepo, logger)

			if tt.expectCall {
				mockRepo.On("Search", ctx, tt.query).Return(tt.mockReturn, tt.mockError)
			}

			got, err := service.Search(ctx, tt.query)

			if tt.expectError {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, got)
				assert.Len(t, got, tt.expectCount)
			}

			if !tt.expectCall {
				mockRepo.AssertNotCalled(t, "Search")
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_GetByID(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	item := testMenuItem("Cheesecake", "8.99")

	tests := []struct {
		name        string
		mockReturn  *model.MenuItem
		mockError   error
		expectError bool
		expectedErr error
	}{
		{
			name:       "Success",
			mockReturn: &item,
		},
		{
			name:        "Not found",
			mockReturn:  nil,
			expectError: true,
			expectedErr: model.ErrMenuItemNotFound,
		},
		{
			name:        "Repository error",
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			service := NewMenuService(mockRepo, logger)

			id := uuid.New()
			mockRepo.On("GetByID", ctx, id).Return(tt.mockReturn, tt.mockError)

			got, err := service.GetByID(ctx, id)

			if tt.expectError {
				require.Error(t, err)
				assert.Nil(t, got)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.mockReturn, got)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_Create(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	valid := model.CreateMenuItemRequest{
		Name:        "Pasta Carbonara",
		Description: "Classic Italian pasta with creamy sauce",
		Category:    model.CategoryMainCourse,
		Price:       decimal.RequireFromString("16.99"),
		Ingredients: []string{"Pasta", "Eggs", "Bacon"},
	}

	t.Run("Success assigns identity, timestamps and defaults", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

		req := valid
		item, err := service.Create(ctx, &req)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.NotEqual(t, uuid.Nil, item.ID)
		assert.True(t, item.IsAvailable, "availability defaults to true")
		assert.True(t, item.Price.Equal(decimal.RequireFromString("16.99")))
		assert.False(t, item.CreatedAt.IsZero())
		assert.False(t, item.UpdatedAt.IsZero())

		mockRepo.AssertExpectations(t)
	})

	t.Run("Validation failures never touch the store", func(t *testing.T) {
		tests := []struct {
			name        string
			mutate      func(r *model.CreateMenuItemRequest)
			expectedErr error
		}{
			{
				name:        "Empty name",
				mutate:      func(r *model.CreateMenuItemRequest) { r.Name = "" },
				expectedErr: model.ErrEmptyName,
			},
			{
				name:        "Whitespace name",
				mutate:      func(r *model.CreateMenuItemRequest) { r.Name = "  " },
				expectedErr: model.ErrEmptyName,
			},
			{
				name:        "Unknown category",
				mutate:      func(r *model.CreateMenuItemRequest) { r.Category = "Snack" },
				expectedErr: model.ErrInvalidCategory,
			},
			{
				name:        "Negative price",
				mutate:      func(r *model.CreateMenuItemRequest) { r.Price = decimal.NewFromInt(-1) },
				expectedErr: model.ErrInvalidPrice,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := new(MockMenuRepository)
				service := NewMenuService(mockRepo, logger)

				req := valid
				tt.mutate(&req)

				item, err := service.Create(ctx, &req)

				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, item)
				mockRepo.AssertNotCalled(t, "Create")
			})
		}
	})

	t.Run("Zero price is valid", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

		req := valid
		req.Price = decimal.Zero
		item, err := service.Create(ctx, &req)

		require.NoError(t, err)
		assert.True(t, item.Price.IsZero())
	})
}

func TestMenuService_Update(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Partial update touches only provided fields", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		existing := testMenuItem("Coffee", "3.99")
		id := existing.ID
		newPrice := decimal.RequireFromString("4.49")

		mockRepo.On("GetByID", ctx, id).Return(&existing, nil)
		mockRepo.On("Update", ctx, mock.AnythingOfType("*model.MenuItem")).Return(nil)

		item, err := service.Update(ctx, id, &model.UpdateMenuItemRequest{Price: &newPrice})

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.True(t, item.Price.Equal(newPrice))
		assert.Equal(t, "Coffee", item.Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found is reported before mutation", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, nil)

		item, err := service.Update(ctx, id, &model.UpdateMenuItemRequest{})

		require.Error(t, err)
		assert.Equal(t, model.ErrMenuItemNotFound, err)
		assert.Nil(t, item)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Invalid touched fields fail before any read or write", func(t *testing.T) {
		badCategory := model.Category("Brunch")
		badPrice := decimal.NewFromInt(-5)
		emptyName := ""

		tests := []struct {
			name        string
			req         *model.UpdateMenuItemRequest
			expectedErr error
		}{
			{"Empty name", &model.UpdateMenuItemRequest{Name: &emptyName}, model.ErrEmptyName},
			{"Invalid category", &model.UpdateMenuItemRequest{Category: &badCategory}, model.ErrInvalidCategory},
			{"Negative price", &model.UpdateMenuItemRequest{Price: &badPrice}, model.ErrInvalidPrice},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mockRepo := new(MockMenuRepository)
				service := NewMenuService(mockRepo, logger)

				item, err := service.Update(ctx, uuid.New(), tt.req)

				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err)
				assert.Nil(t, item)
				mockRepo.AssertNotCalled(t, "GetByID")
				mockRepo.AssertNotCalled(t, "Update")
			})
		}
	})
}

func TestMenuService_Delete(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name        string
		deleted     bool
		mockError   error
		expectError bool
		expectedErr error
	}{
		{
			name:    "Success",
			deleted: true,
		},
		{
			name:        "Not found",
			deleted:     false,
			expectError: true,
			expectedErr: model.ErrMenuItemNotFound,
		},
		{
			name:        "Repository error",
			mockError:   errors.New("database error"),
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMenuRepository)
			service := NewMenuService(mockRepo, logger)

			id := uuid.New()
			mockRepo.On("Delete", ctx, id).Return(tt.deleted, tt.mockError)

			err := service.Delete(ctx, id)

			if tt.expectError {
				require.Error(t, err)
				if tt.expectedErr != nil {
					assert.Equal(t, tt.expectedErr, err)
				}
			} else {
				require.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMenuService_ToggleAvailability(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("Flips the flag and persists the new value", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		existing := testMenuItem("Iced Tea", "2.99")
		existing.IsAvailable = true
		id := existing.ID

		mockRepo.On("GetByID", ctx, id).Return(&existing, nil)
		mockRepo.On("SetAvailability", ctx, id, false, mock.AnythingOfType("time.Time")).Return(nil)

		item, err := service.ToggleAvailability(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, item)
		assert.False(t, item.IsAvailable)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Toggling twice restores the original value", func(t *testing.T) {
		logger := zerolog.Nop()

		state := testMenuItem("Iced Tea", "2.99")
		state.IsAvailable = true
		id := state.ID

		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		mockRepo.On("GetByID", ctx, id).Return(&state, nil)
		mockRepo.On("SetAvailability", ctx, id, mock.AnythingOfType("bool"), mock.AnythingOfType("time.Time")).
			Run(func(args mock.Arguments) {
				state.IsAvailable = args.Bool(2)
			}).
			Return(nil)

		first, err := service.ToggleAvailability(ctx, id)
		require.NoError(t, err)
		assert.False(t, first.IsAvailable)

		second, err := service.ToggleAvailability(ctx, id)
		require.NoError(t, err)
		assert.True(t, second.IsAvailable, "paired toggles restore the original availability")
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := new(MockMenuRepository)
		service := NewMenuService(mockRepo, logger)

		id := uuid.New()
		mockRepo.On("GetByID", ctx, id).Return(nil, nil)

		item, err := service.ToggleAvailability(ctx, id)

		require.Error(t, err)
		assert.Equal(t, model.ErrMenuItemNotFound, err)
		assert.Nil(t, item)
		mockRepo.AssertNotCalled(t, "SetAvailability")
	})
}
