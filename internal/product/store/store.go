// Package store provides the in-memory product catalog.
package store

// ProductStore is an interface for product catalog operations.
// It owns the ordered product collection; persistence is handled by the caller.
type ProductStore interface {
	// Load replaces the catalog with the products parsed from records.
	// Records with fewer than four fields are skipped. Returns the number of products loaded.
	Load(records [][]string) int

	// All returns a copy of the catalog in insertion order.
	All() []Product

	// Count returns the number of products in the catalog.
	Count() int

	// At returns the product at index i of the catalog.
	At(i int) Product

	// FindIndexByID returns the catalog index of the product with the given ID.
	FindIndexByID(id string) (int, bool)

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id string) (*Product, error)

	// Search returns the indices of products whose ID or name contains keyword, ignoring case.
	// An empty keyword matches every product.
	Search(keyword string) []int

	// Add appends a new product.
	// Returns ErrInvalidProduct for an empty ID or a blank name and ErrDuplicateID if the ID is taken.
	Add(product Product) error

	// Update applies patch to the product with the given ID and returns the updated product.
	// Returns ErrInvalidProduct if the patch carries a blank name and ErrProductNotFound if the ID is unknown.
	Update(id string, patch Patch) (*Product, error)

	// Remove deletes the product with the given ID, keeping the order of the rest.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Remove(id string) error
}
