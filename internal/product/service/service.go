// Package service provides the implementation of product-related business logic.
package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/repository"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

const (
	// MaxIDLength is the longest accepted product ID, in characters.
	MaxIDLength = 19
	// MaxNameLength is the longest accepted product name, in characters.
	MaxNameLength = 99
)

// ProductService defines the methods for managing products.
// Every successful mutation rewrites the catalog file. When that rewrite fails the mutation is kept
// in memory and the returned error wraps ErrPersistFailed.
type ProductService interface {
	// Load creates the catalog file if needed and replaces the in-memory catalog with its content.
	Load() (int, error)

	// Count returns the number of products in the catalog.
	Count() int

	// FindByID retrieves a single product by its unique identifier.
	// Returns ErrProductNotFound if no product exists with the given ID.
	FindByID(id string) (*ProductDto, error)

	// FindAll returns all products in catalog order.
	FindAll() []ProductDto

	// Search returns the products whose ID or name contains keyword, ignoring case, in catalog order.
	Search(keyword string) []ProductDto

	// Create adds a new product to the catalog.
	Create(product ProductCreateDto) (*ProductDto, error)

	// Update changes the fields set in update on the product with the given ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	Update(id string, update ProductUpdateDto) (*ProductDto, error)

	// DeleteByID removes a product by its ID.
	// Returns ErrProductNotFound if no product exists with the given ID.
	DeleteByID(id string) error

	// ValidateID checks a candidate ID. original is the ID being edited, or empty for a new product.
	ValidateID(id, original string) error

	// ValidateName checks a candidate product name.
	ValidateName(name string) error

	// ParseAmount parses a non-negative quantity or unit price.
	ParseAmount(text string) (int, error)
}

// Service implements ProductService and provides methods to manage products.
type Service struct {
	store      store.ProductStore
	repository repository.CatalogRepository
	validate   *validator.Validate
	logger     *slog.Logger
}

// NewService creates a new instance of ProductService backed by the given catalog and repository.
func NewService(catalog store.ProductStore, repo repository.CatalogRepository, logger *slog.Logger) *Service {
	return &Service{
		store:      catalog,
		repository: repo,
		validate:   NewValidator(),
		logger:     logger.With("component", "service"),
	}
}

// NewValidator returns a validator with the notblank rule registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	return v
}

// ProductCreateDto represents the data transfer object for creating a new product.
type ProductCreateDto struct {
	ID        string `validate:"required,max=19"`
	Name      string `validate:"notblank,max=99"`
	Quantity  int    `validate:"min=0"`
	UnitPrice int    `validate:"min=0"`
}

// ProductUpdateDto carries a partial update. A nil Name or a negative number leaves the field unchanged.
type ProductUpdateDto struct {
	Name      *string
	Quantity  int
	UnitPrice int
}

// ProductDto represents the data transfer object for a product.
type ProductDto struct {
	ID        string
	Name      string
	Quantity  int
	UnitPrice int
}

// Load reads the catalog file into memory.
func (s *Service) Load() (int, error) {
	if err := s.repository.EnsureExists(); err != nil {
		return 0, fmt.Errorf("failed to prepare catalog: %w", err)
	}
	records, err := s.repository.Load()
	if err != nil {
		return 0, fmt.Errorf("failed to load catalog: %w", err)
	}
	loaded := s.store.Load(records)
	if skipped := len(records) - loaded; skipped > 0 {
		s.logger.Debug("Skipped malformed catalog lines", "count", skipped)
	}
	s.logger.Info("Catalog loaded", "products", loaded)
	return loaded, nil
}

// Count returns the number of products.
func (s *Service) Count() int {
	return s.store.Count()
}

// FindByID retrieves a product by its ID and returns it as a ProductDto.
func (s *Service) FindByID(id string) (*ProductDto, error) {
	product, err := s.store.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product by ID %s: %w", id, err)
	}
	return toDto(product), nil
}

// FindAll retrieves a list of all products and returns them as ProductDTOs.
func (s *Service) FindAll() []ProductDto {
	return s.Search("")
}

// Search returns the matching products as ProductDTOs.
func (s *Service) Search(keyword string) []ProductDto {
	matches := s.store.Search(keyword)
	productDTOs := make([]ProductDto, len(matches))
	for i, idx := range matches {
		p := s.store.At(idx)
		productDTOs[i] = *toDto(&p)
	}
	return productDTOs
}

// Create validates and appends a new product, then saves the catalog.
// On ErrPersistFailed the created product is returned together with the error.
func (s *Service) Create(product ProductCreateDto) (*ProductDto, error) {
	if err := s.validate.Struct(product); err != nil {
		s.logger.Warn("Rejected new product", "ID", product.ID, "error", err)
		return nil, validationError(err)
	}
	p := store.Product{ID: product.ID, Name: product.Name, Quantity: product.Quantity, UnitPrice: product.UnitPrice}
	if err := s.store.Add(p); err != nil {
		s.logger.Warn("Rejected new product", "ID", product.ID, "error", err)
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.Info("Product created", "ID", p.ID, "Name", p.Name)
	return toDto(&p), s.persist("create", p.ID)
}

// Update applies a partial update, then saves the catalog.
// On ErrPersistFailed the updated product is returned together with the error.
func (s *Service) Update(id string, update ProductUpdateDto) (*ProductDto, error) {
	if update.Name != nil {
		if err := s.ValidateName(*update.Name); err != nil {
			s.logger.Warn("Rejected product update", "ID", id, "error", err)
			return nil, err
		}
	}
	updated, err := s.store.Update(id, store.Patch{Name: update.Name, Quantity: update.Quantity, UnitPrice: update.UnitPrice})
	if err != nil {
		return nil, fmt.Errorf("failed to update product with ID %s: %w", id, err)
	}
	s.logger.Info("Product updated", "ID", updated.ID, "Name", updated.Name)
	return toDto(updated), s.persist("update", id)
}

// DeleteByID removes a product by its ID, then saves the catalog.
func (s *Service) DeleteByID(id string) error {
	if err := s.store.Remove(id); err != nil {
		return fmt.Errorf("failed to delete product with ID %s: %w", id, err)
	}
	s.logger.Info("Product deleted", "ID", id)
	return s.persist("delete", id)
}

// persist saves the current catalog. The in-memory change is not rolled back on failure.
func (s *Service) persist(op, id string) error {
	if err := s.repository.Save(s.store.All()); err != nil {
		s.logger.Error("Catalog save failed, memory and disk diverge", "op", op, "ID", id, "error", err)
		return fmt.Errorf("%w: %w", perrors.ErrPersistFailed, err)
	}
	return nil
}

// ValidateID checks emptiness, length and uniqueness of id. Keeping the original ID is always allowed.
func (s *Service) ValidateID(id, original string) error {
	if err := s.validate.Var(id, "required,max=19"); err != nil {
		return validationError(err)
	}
	if original != "" && id == original {
		return nil
	}
	if _, exists := s.store.FindIndexByID(id); exists {
		return fmt.Errorf("product %s: %w", id, perrors.ErrDuplicateID)
	}
	return nil
}

// ValidateName checks that name is not blank and not too long.
func (s *Service) ValidateName(name string) error {
	if err := s.validate.Var(name, "notblank,max=99"); err != nil {
		return validationError(err)
	}
	return nil
}

// ParseAmount parses a non-negative integer.
func (s *Service) ParseAmount(text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number: %w", text, perrors.ErrInvalidProduct)
	}
	if err := s.validate.Var(n, "min=0"); err != nil {
		return 0, validationError(err)
	}
	return n, nil
}

// validationError converts validator errors into ErrInvalidProduct with the failed rules listed.
func validationError(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", perrors.ErrInvalidProduct, err)
	}
	rules := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		rule := fieldErr.Tag()
		if fieldErr.Param() != "" {
			rule += "=" + fieldErr.Param()
		}
		if fieldErr.Field() != "" {
			rule = fieldErr.Field() + " failed on rule: " + rule
		} else {
			rule = "failed on rule: " + rule
		}
		rules = append(rules, rule)
	}
	return fmt.Errorf("%w: %s", perrors.ErrInvalidProduct, strings.Join(rules, ", "))
}

// toDto converts a store.Product to a ProductDto.
func toDto(product *store.Product) *ProductDto {
	return &ProductDto{
		ID:        product.ID,
		Name:      product.Name,
		Quantity:  product.Quantity,
		UnitPrice: product.UnitPrice,
	}
}
