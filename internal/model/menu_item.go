package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category is the fixed set of menu sections an item can belong to.
type Category string

const (
	CategoryAppetizer  Category = "Appetizer"
	CategoryMainCourse Category = "Main Course"
	CategoryDessert    Category = "Dessert"
	CategoryBeverage   Category = "Beverage"
)

// Categories lists all valid menu categories.
var Categories = []Category{
	CategoryAppetizer,
	CategoryMainCourse,
	CategoryDessert,
	CategoryBeverage,
}

// Valid reports whether the category is a member of the enumeration.
func (c Category) Valid() bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

// MenuItem represents a dish or drink in the live catalog.
type MenuItem struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Name            string          `json:"name" db:"name"`
	Description     string          `json:"description" db:"description"`
	Category        Category        `json:"category" db:"category"`
	Price           decimal.Decimal `json:"price" db:"price"`
	Ingredients     []string        `json:"ingredients" db:"ingredients"`
	IsAvailable     bool            `json:"isAvailable" db:"is_available"`
	PreparationTime *int            `json:"preparationTime,omitempty" db:"preparation_time"`
	ImageURL        *string         `json:"imageUrl,omitempty" db:"image_url"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time       `json:"updatedAt" db:"updated_at"`
}

// MenuFilter narrows a catalog listing. Nil fields are not applied.
// Price bounds are inclusive.
type MenuFilter struct {
	Category    *Category
	IsAvailable *bool
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
}

// CreateMenuItemRequest represents the request payload for creating a menu item.
type CreateMenuItemRequest struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Category        Category        `json:"category"`
	Price           decimal.Decimal `json:"price"`
	Ingredients     []string        `json:"ingredients"`
	IsAvailable     *bool           `json:"isAvailable,omitempty"`
	PreparationTime *int            `json:"preparationTime,omitempty"`
	ImageURL        *string         `json:"imageUrl,omitempty"`
}

// UpdateMenuItemRequest represents a partial update. Only non-nil fields
// are applied to the stored item.
type UpdateMenuItemRequest struct {
	Name            *string          `json:"name,omitempty"`
	Description     *string          `json:"description,omitempty"`
	Category        *Category        `json:"category,omitempty"`
	Price           *decimal.Decimal `json:"price,omitempty"`
	Ingredients     []string         `json:"ingredients,omitempty"`
	IsAvailable     *bool            `json:"isAvailable,omitempty"`
	PreparationTime *int             `json:"preparationTime,omitempty"`
	ImageURL        *string          `json:"imageUrl,omitempty"`
}
