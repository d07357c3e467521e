package stockbook

import "errors"

// Error kinds returned by ledger operations. Operations wrap them with
// context, so callers test with errors.Is.
var (
	// ErrNotFound reports that a referenced id does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a duplicate category name (case-insensitive).
	ErrConflict = errors.New("already exists")
	// ErrInvalidOperation reports an operation forbidden by a business
	// rule, such as deleting the protected fallback category.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrInsufficientStock reports a stock-out larger than the item's
	// current stock. The ledger is left untouched.
	ErrInsufficientStock = errors.New("insufficient stock")
)
