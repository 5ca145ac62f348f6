// Package repository persists the product catalog to a delimited text file.
package repository

import "github.com/abgdnv/inventory/internal/product/store"

// CatalogRepository loads and saves the whole catalog.
type CatalogRepository interface {
	// EnsureExists creates an empty catalog holding only the header if none exists yet.
	// An existing catalog is left untouched, even if it is empty or malformed.
	EnsureExists() error

	// Load returns the decoded records of the catalog, header excluded.
	Load() ([][]string, error)

	// Save rewrites the whole catalog with the given products.
	Save(products []store.Product) error
}
