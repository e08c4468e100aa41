package model

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON      = "INVALID_JSON"
	ErrCodeInvalidArgument  = "INVALID_ARGUMENT"
	ErrCodeEmptyName        = "EMPTY_NAME"
	ErrCodeInvalidCategory  = "INVALID_CATEGORY"
	ErrCodeInvalidPrice     = "INVALID_PRICE"
	ErrCodeEmptySearchQuery = "EMPTY_SEARCH_QUERY"
	ErrCodeEmptyCustomer    = "EMPTY_CUSTOMER_NAME"
	ErrCodeEmptyOrderItems  = "EMPTY_ORDER_ITEMS"
	ErrCodeInvalidQuantity  = "INVALID_QUANTITY"
	ErrCodeInvalidStatus    = "INVALID_STATUS"
	ErrCodeMenuItemNotFound = "MENU_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound    = "ORDER_NOT_FOUND"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// DomainError is a typed business error carrying a stable code and a
// human-readable message, so clients can render a specific notification.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NotFound reports whether the error targets a nonexistent entity.
func (e *DomainError) NotFound() bool {
	return e.Code == ErrCodeMenuItemNotFound || e.Code == ErrCodeOrderNotFound
}

// Common domain errors
var (
	ErrEmptyName        = NewDomainError(ErrCodeEmptyName, "Name must not be empty")
	ErrInvalidCategory  = NewDomainError(ErrCodeInvalidCategory, "Category must be one of Appetizer, Main Course, Dessert, Beverage")
	ErrInvalidPrice     = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrEmptySearchQuery = NewDomainError(ErrCodeEmptySearchQuery, "Search query must not be empty")
	ErrEmptyCustomer    = NewDomainError(ErrCodeEmptyCustomer, "Customer name must not be empty")
	ErrEmptyOrderItems  = NewDomainError(ErrCodeEmptyOrderItems, "Order must contain at least one item")
	ErrInvalidQuantity  = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus    = NewDomainError(ErrCodeInvalidStatus, "Status must be one of Pending, Preparing, Ready, Delivered, Cancelled")
	ErrMenuItemNotFound = NewDomainError(ErrCodeMenuItemNotFound, "Menu item not found")
	ErrOrderNotFound    = NewDomainError(ErrCodeOrderNotFound, "Order not found")
)
