package domain

import "errors"

var (
	MessageSuccessGetShoppingList   = "shopping list retrieved successfully"
	MessageSuccessAddShoppingItem   = "shopping item added successfully"
	MessageSuccessToggleShopping    = "shopping item toggled successfully"
	MessageSuccessDeleteShopping    = "shopping item deleted successfully"
	MessageSuccessClearShoppingList = "checked shopping items cleared"

	MessageFailedGetShoppingList   = "failed to retrieve shopping list"
	MessageFailedAddShoppingItem   = "failed to add shopping item"
	MessageFailedToggleShopping    = "failed to toggle shopping item"
	MessageFailedDeleteShopping    = "failed to delete shopping item"
	MessageFailedClearShoppingList = "failed to clear checked shopping items"

	ErrShoppingItemNotFound = errors.New("shopping item not found")
)

type (
	ShoppingItem struct {
		ID       string  `json:"id"`
		Name     string  `json:"name"`
		Quantity float64 `json:"quantity"`
		Unit     string  `json:"unit"`
		Checked  bool    `json:"checked"`
	}

	AddShoppingItemRequest struct {
		Name     string  `json:"name" validate:"required"`
		Quantity float64 `json:"quantity" validate:"omitempty,gt=0"`
		Unit     string  `json:"unit" validate:"omitempty"`
	}
)
