// Package errors provides custom error types for product-related operations.
package errors

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrDuplicateID = errors.New("product ID already exists")
var ErrInvalidProduct = errors.New("invalid product data")

// ErrPersistFailed reports that the in-memory catalog was changed but the catalog file could not be rewritten.
// The change is kept in memory.
var ErrPersistFailed = errors.New("catalog changed in memory but could not be saved")
