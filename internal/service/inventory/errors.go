package inventory

import "errors"

var (
	ErrItemNotFound       = errors.New("inventory item not found")
	ErrInvalidItemData    = errors.New("name and unit are required")
	ErrInvalidConsumption = errors.New("item id and a positive quantity are required")
)
