package service

import (
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	perrors "github.com/abgdnv/inventory/internal/product/errors"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository is a mock implementation of the CatalogRepository interface
type mockRepository struct {
	records   [][]string
	saved     []store.Product
	saveCalls int
	loadError error
	saveError error
}

func (m *mockRepository) EnsureExists() error {
	return nil
}

func (m *mockRepository) Load() ([][]string, error) {
	return m.records, m.loadError
}

func (m *mockRepository) Save(products []store.Product) error {
	m.saveCalls++
	if m.saveError != nil {
		return m.saveError
	}
	m.saved = products
	return nil
}

func newTestService(repo *mockRepository, products ...store.Product) (*Service, *store.InMemory) {
	catalog := store.NewInMemoryStore()
	for _, p := range products {
		_ = catalog.Add(p)
	}
	return NewService(catalog, repo, slog.New(slog.NewTextHandler(io.Discard, nil))), catalog
}

func strPtr(s string) *string {
	return &s
}

func Test_ProductService_Load(t *testing.T) {
	ErrDisk := errors.New("disk error")
	testCases := []struct {
		name        string
		repo        *mockRepository
		expected    int
		expectError error
	}{
		{
			name:     "Success - empty catalog",
			repo:     &mockRepository{records: [][]string{}},
			expected: 0,
		},
		{
			name: "Success - malformed lines skipped",
			repo: &mockRepository{records: [][]string{
				{"A", "Widget", "1", "2"},
				{"broken"},
				{"B", "Gadget", "x", "4"},
			}},
			expected: 2,
		},
		{
			name:        "Error - load fails",
			repo:        &mockRepository{loadError: ErrDisk},
			expectError: ErrDisk,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, _ := newTestService(tc.repo)
			// when
			loaded, err := svc.Load()
			// then
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, loaded)
			assert.Equal(t, tc.expected, svc.Count())
		})
	}
}

func Test_ProductService_Create(t *testing.T) {
	ErrDisk := errors.New("disk full")
	testCases := []struct {
		name        string
		repo        *mockRepository
		seed        []store.Product
		product     ProductCreateDto
		expectCount int
		expectSaves int
		expectError error
	}{
		{
			name:        "Success - product created and saved",
			repo:        &mockRepository{},
			product:     ProductCreateDto{ID: "UT001", Name: "Test Widget", Quantity: 5, UnitPrice: 100},
			expectCount: 1,
			expectSaves: 1,
		},
		{
			name:        "Error - duplicate ID",
			repo:        &mockRepository{},
			seed:        []store.Product{{ID: "UT002", Name: "Initial", Quantity: 10, UnitPrice: 200}},
			product:     ProductCreateDto{ID: "UT002", Name: "Duplicate", Quantity: 5, UnitPrice: 50},
			expectCount: 1,
			expectError: perrors.ErrDuplicateID,
		},
		{
			name:        "Error - empty name",
			repo:        &mockRepository{},
			product:     ProductCreateDto{ID: "UT013", Name: "", Quantity: 1, UnitPrice: 1},
			expectError: perrors.ErrInvalidProduct,
		},
		{
			name:        "Error - whitespace name",
			repo:        &mockRepository{},
			product:     ProductCreateDto{ID: "UT014", Name: "   \t", Quantity: 1, UnitPrice: 1},
			expectError: perrors.ErrInvalidProduct,
		},
		{
			name:        "Error - ID too long",
			repo:        &mockRepository{},
			product:     ProductCreateDto{ID: strings.Repeat("A", MaxIDLength+1), Name: "Long", Quantity: 1, UnitPrice: 1},
			expectError: perrors.ErrInvalidProduct,
		},
		{
			name:        "Error - negative quantity",
			repo:        &mockRepository{},
			product:     ProductCreateDto{ID: "N1", Name: "Negative", Quantity: -1, UnitPrice: 1},
			expectError: perrors.ErrInvalidProduct,
		},
		{
			name:        "Error - save fails after memory change",
			repo:        &mockRepository{saveError: ErrDisk},
			product:     ProductCreateDto{ID: "UT015", Name: "Kept", Quantity: 1, UnitPrice: 1},
			expectCount: 1,
			expectSaves: 1,
			expectError: perrors.ErrPersistFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, _ := newTestService(tc.repo, tc.seed...)
			// when
			created, err := svc.Create(tc.product)
			// then
			assert.Equal(t, tc.expectCount, svc.Count())
			assert.Equal(t, tc.expectSaves, tc.repo.saveCalls)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				if errors.Is(err, perrors.ErrPersistFailed) {
					require.NotNil(t, created)
					assert.Equal(t, tc.product.ID, created.ID)
				} else {
					assert.Nil(t, created)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, &ProductDto{ID: tc.product.ID, Name: tc.product.Name, Quantity: tc.product.Quantity, UnitPrice: tc.product.UnitPrice}, created)
			assert.Equal(t, []store.Product{{ID: tc.product.ID, Name: tc.product.Name, Quantity: tc.product.Quantity, UnitPrice: tc.product.UnitPrice}}, tc.repo.saved)
		})
	}
}

func Test_ProductService_Create_MaxLengthStrings(t *testing.T) {
	// given
	repo := &mockRepository{}
	svc, _ := newTestService(repo)
	id := strings.Repeat("ABCDEFGHIJ", 2)[:MaxIDLength]
	name := strings.Repeat("abcdefghijklmnopqrstuvwxyz", 4)[:MaxNameLength]
	// when
	created, err := svc.Create(ProductCreateDto{ID: id, Name: name, Quantity: 9, UnitPrice: 99})
	// then
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
	assert.Equal(t, name, created.Name)
}

func Test_ProductService_Update(t *testing.T) {
	ErrDisk := errors.New("disk full")
	seed := store.Product{ID: "UT004", Name: "KeepName", Quantity: 7, UnitPrice: 70}
	testCases := []struct {
		name        string
		repo        *mockRepository
		id          string
		update      ProductUpdateDto
		expected    store.Product
		expectSaves int
		expectError error
	}{
		{
			name:        "Success - only unit price changes",
			repo:        &mockRepository{},
			id:          "UT004",
			update:      ProductUpdateDto{Quantity: store.Unset, UnitPrice: 90},
			expected:    store.Product{ID: "UT004", Name: "KeepName", Quantity: 7, UnitPrice: 90},
			expectSaves: 1,
		},
		{
			name:        "Success - all fields change",
			repo:        &mockRepository{},
			id:          "UT004",
			update:      ProductUpdateDto{Name: strPtr("Renamed"), Quantity: 1, UnitPrice: 2},
			expected:    store.Product{ID: "UT004", Name: "Renamed", Quantity: 1, UnitPrice: 2},
			expectSaves: 1,
		},
		{
			name:        "Error - blank name leaves product untouched",
			repo:        &mockRepository{},
			id:          "UT004",
			update:      ProductUpdateDto{Name: strPtr("  "), Quantity: 1, UnitPrice: 2},
			expected:    seed,
			expectError: perrors.ErrInvalidProduct,
		},
		{
			name:        "Error - product not found",
			repo:        &mockRepository{},
			id:          "MISSING",
			update:      ProductUpdateDto{Quantity: 1, UnitPrice: 1},
			expected:    seed,
			expectError: perrors.ErrProductNotFound,
		},
		{
			name:        "Error - save fails, update kept",
			repo:        &mockRepository{saveError: ErrDisk},
			id:          "UT004",
			update:      ProductUpdateDto{Quantity: 3, UnitPrice: store.Unset},
			expected:    store.Product{ID: "UT004", Name: "KeepName", Quantity: 3, UnitPrice: 70},
			expectSaves: 1,
			expectError: perrors.ErrPersistFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, catalog := newTestService(tc.repo, seed)
			// when
			_, err := svc.Update(tc.id, tc.update)
			// then
			assert.Equal(t, tc.expected, catalog.At(0))
			assert.Equal(t, tc.expectSaves, tc.repo.saveCalls)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_DeleteByID(t *testing.T) {
	ErrDisk := errors.New("disk full")
	testCases := []struct {
		name        string
		repo        *mockRepository
		id          string
		expectCount int
		expectError error
	}{
		{
			name:        "Success - product deleted",
			repo:        &mockRepository{},
			id:          "A",
			expectCount: 1,
		},
		{
			name:        "Error - product not found",
			repo:        &mockRepository{},
			id:          "Z",
			expectCount: 2,
			expectError: perrors.ErrProductNotFound,
		},
		{
			name:        "Error - save fails, deletion kept",
			repo:        &mockRepository{saveError: ErrDisk},
			id:          "B",
			expectCount: 1,
			expectError: perrors.ErrPersistFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			svc, _ := newTestService(tc.repo, store.Product{ID: "A", Name: "First"}, store.Product{ID: "B", Name: "Second"})
			// when
			err := svc.DeleteByID(tc.id)
			// then
			assert.Equal(t, tc.expectCount, svc.Count())
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func Test_ProductService_Search(t *testing.T) {
	// given
	svc, _ := newTestService(&mockRepository{},
		store.Product{ID: "E2E001", Name: "E2E Mechanical Keyboard"},
		store.Product{ID: "E2E002", Name: "E2E Precision Mouse Pro"},
	)
	// when
	found := svc.Search("pro")
	all := svc.FindAll()
	// then
	assert.Equal(t, []ProductDto{{ID: "E2E002", Name: "E2E Precision Mouse Pro"}}, found)
	assert.Len(t, all, 2)
	assert.Empty(t, svc.Search("nothing"))
}

func Test_ProductService_ValidateID(t *testing.T) {
	svc, _ := newTestService(&mockRepository{}, store.Product{ID: "TAKEN", Name: "Existing"})

	testCases := []struct {
		name        string
		id          string
		original    string
		expectError error
	}{
		{name: "Success - free ID", id: "FREE"},
		{name: "Success - unchanged original", id: "TAKEN", original: "TAKEN"},
		{name: "Error - empty", id: "", expectError: perrors.ErrInvalidProduct},
		{name: "Error - too long", id: strings.Repeat("X", MaxIDLength+1), expectError: perrors.ErrInvalidProduct},
		{name: "Error - duplicate", id: "TAKEN", expectError: perrors.ErrDuplicateID},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.ValidateID(tc.id, tc.original)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func Test_ProductService_ParseAmount(t *testing.T) {
	svc, _ := newTestService(&mockRepository{})

	testCases := []struct {
		name        string
		text        string
		expected    int
		expectError bool
	}{
		{name: "Success - zero", text: "0", expected: 0},
		{name: "Success - surrounding spaces", text: " 42 ", expected: 42},
		{name: "Error - negative", text: "-1", expectError: true},
		{name: "Error - not a number", text: "12abc", expectError: true},
		{name: "Error - empty", text: "", expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := svc.ParseAmount(tc.text)
			if tc.expectError {
				assert.ErrorIs(t, err, perrors.ErrInvalidProduct)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, n)
		})
	}
}
