package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/inventory/internal/product/errors"
)

var _ ProductStore = (*InMemory)(nil)

// Unset marks a numeric Patch field that must not be changed.
const Unset = -1

// Product represents a product entity in the catalog.
type Product struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice int // Price in the currency minor unit
}

// Patch describes a partial update. A nil Name or a negative number leaves that field unchanged.
type Patch struct {
	Name      *string
	Quantity  int
	UnitPrice int
}

// NewPatch returns a Patch that changes nothing.
func NewPatch() Patch {
	return Patch{Quantity: Unset, UnitPrice: Unset}
}

// InMemory implements ProductStore using an ordered slice.
type InMemory struct {
	products []Product
}

// NewInMemoryStore creates an empty catalog.
func NewInMemoryStore() *InMemory {
	return &InMemory{}
}

// Load replaces the catalog with the products parsed from records.
func (s *InMemory) Load(records [][]string) int {
	products := make([]Product, 0, len(records))
	for _, fields := range records {
		if len(fields) < 4 {
			continue
		}
		products = append(products, Product{
			ID:        fields[0],
			Name:      fields[1],
			Quantity:  parseCount(fields[2]),
			UnitPrice: parseCount(fields[3]),
		})
	}
	s.products = products
	return len(products)
}

// parseCount never fails: anything that is not a non-negative integer becomes 0.
func parseCount(value string) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// All returns a copy of the catalog.
func (s *InMemory) All() []Product {
	list := make([]Product, len(s.products))
	copy(list, s.products)
	return list
}

// Count returns the number of products.
func (s *InMemory) Count() int {
	return len(s.products)
}

// At returns the product at index i.
func (s *InMemory) At(i int) Product {
	return s.products[i]
}

// FindIndexByID returns the index of the product with the given ID.
func (s *InMemory) FindIndexByID(id string) (int, bool) {
	for i := range s.products {
		if s.products[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// FindByID retrieves a product by its ID.
func (s *InMemory) FindByID(id string) (*Product, error) {
	i, ok := s.FindIndexByID(id)
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

// Search returns the indices of matching products in catalog order.
func (s *InMemory) Search(keyword string) []int {
	needle := strings.ToLower(keyword)
	matches := make([]int, 0, len(s.products))
	for i, p := range s.products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.ID), needle) ||
			strings.Contains(strings.ToLower(p.Name), needle) {
			matches = append(matches, i)
		}
	}
	return matches
}

// Add appends a product after checking the name and the ID uniqueness.
func (s *InMemory) Add(product Product) error {
	if product.ID == "" {
		return fmt.Errorf("product ID is empty: %w", errors.ErrInvalidProduct)
	}
	if IsBlank(product.Name) {
		return fmt.Errorf("product name is blank: %w", errors.ErrInvalidProduct)
	}
	if product.Quantity < 0 || product.UnitPrice < 0 {
		return fmt.Errorf("negative quantity or unit price: %w", errors.ErrInvalidProduct)
	}
	if _, exists := s.FindIndexByID(product.ID); exists {
		return fmt.Errorf("product %s: %w", product.ID, errors.ErrDuplicateID)
	}
	s.products = append(s.products, product)
	return nil
}

// Update applies the set fields of patch to the product with the given ID.
func (s *InMemory) Update(id string, patch Patch) (*Product, error) {
	if patch.Name != nil && IsBlank(*patch.Name) {
		return nil, fmt.Errorf("product name is blank: %w", errors.ErrInvalidProduct)
	}
	i, ok := s.FindIndexByID(id)
	if !ok {
		return nil, errors.ErrProductNotFound
	}
	p := &s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Quantity >= 0 {
		p.Quantity = patch.Quantity
	}
	if patch.UnitPrice >= 0 {
		p.UnitPrice = patch.UnitPrice
	}
	updated := *p
	return &updated, nil
}

// Remove deletes the product with the given ID.
func (s *InMemory) Remove(id string) error {
	i, ok := s.FindIndexByID(id)
	if !ok {
		return errors.ErrProductNotFound
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return nil
}

// IsBlank reports whether s has no non-whitespace character.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
