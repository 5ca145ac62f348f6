package repository

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/abgdnv/inventory/internal/product/csvcodec"
	"github.com/abgdnv/inventory/internal/product/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// FileRepositorySuite runs the repository against a catalog in a fresh temporary directory.
type FileRepositorySuite struct {
	suite.Suite
	path string
	repo *FileRepository
}

func (s *FileRepositorySuite) SetupTest() {
	s.path = filepath.Join(s.T().TempDir(), "products.csv")
	s.repo = NewFileRepository(s.path, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *FileRepositorySuite) writeCatalog(content string) {
	require.NoError(s.T(), os.WriteFile(s.path, []byte(content), 0o644))
}

func (s *FileRepositorySuite) readCatalog() string {
	data, err := os.ReadFile(s.path)
	require.NoError(s.T(), err)
	return string(data)
}

func (s *FileRepositorySuite) TestEnsureExists_CreatesHeaderOnlyCatalog() {
	// when
	err := s.repo.EnsureExists()
	// then
	require.NoError(s.T(), err)
	assert.Equal(s.T(), csvcodec.Header+"\n", s.readCatalog())

	records, err := s.repo.Load()
	require.NoError(s.T(), err)
	assert.Empty(s.T(), records)
}

func (s *FileRepositorySuite) TestEnsureExists_LeavesExistingFileUntouched() {
	testCases := []struct {
		name    string
		content string
	}{
		{name: "empty file", content: ""},
		{name: "malformed file", content: "garbage without header"},
		{name: "populated file", content: csvcodec.Header + "\nA,B,1,2\n"},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// given
			s.writeCatalog(tc.content)
			// when
			err := s.repo.EnsureExists()
			// then
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.content, s.readCatalog())
		})
	}
}

func (s *FileRepositorySuite) TestLoad_MissingFileFails() {
	_, err := s.repo.Load()
	assert.ErrorIs(s.T(), err, os.ErrNotExist)
}

func (s *FileRepositorySuite) TestLoad_SkipsHeaderWithoutValidation() {
	// given
	s.writeCatalog("whatever,header\nA1,Widget,3,30\r\nB2,\"Bolt, hex\",1,2\n\n\n")
	// when
	records, err := s.repo.Load()
	// then
	require.NoError(s.T(), err)
	assert.Equal(s.T(), [][]string{
		{"A1", "Widget", "3", "30"},
		{"B2", "Bolt, hex", "1", "2"},
		{""},
		{""},
	}, records)
}

func (s *FileRepositorySuite) TestLoad_ToleratesStrayQuotes() {
	testCases := []struct {
		name     string
		content  string
		expected [][]string
	}{
		{
			name:    "quote inside an unquoted name",
			content: csvcodec.Header + "\nA1,5\" Floppy,1,100\nB2,Bolt,2,3\nC3,Cog,4,5\n",
			expected: [][]string{
				{"A1", `5" Floppy`, "1", "100"},
				{"B2", "Bolt", "2", "3"},
				{"C3", "Cog", "4", "5"},
			},
		},
		{
			name:    "unbalanced quote in the header",
			content: "ProductID,\"ProductName,Quantity,UnitPrice\nA1,Widget,3,30\nB2,Bolt,1,2\n",
			expected: [][]string{
				{"A1", "Widget", "3", "30"},
				{"B2", "Bolt", "1", "2"},
			},
		},
		{
			name:     "header without line terminator",
			content:  "ProductID,\"ProductName",
			expected: [][]string{},
		},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// given
			s.writeCatalog(tc.content)
			// when
			records, err := s.repo.Load()
			// then
			require.NoError(s.T(), err)
			assert.Equal(s.T(), tc.expected, records)
		})
	}
}

func (s *FileRepositorySuite) TestLoad_StrayQuoteKeepsLaterProductsOnSave() {
	// given
	s.writeCatalog(csvcodec.Header + "\nA1,5\" Floppy,1,100\nB2,Bolt,2,3\n")
	records, err := s.repo.Load()
	require.NoError(s.T(), err)
	catalog := store.NewInMemoryStore()
	catalog.Load(records)

	// when
	err = s.repo.Save(catalog.All())

	// then
	require.NoError(s.T(), err)
	assert.Equal(s.T(), csvcodec.Header+"\n"+
		"A1,\"5\"\" Floppy\",1,100\n"+
		"B2,Bolt,2,3\n", s.readCatalog())
}

func (s *FileRepositorySuite) TestSave_WritesHeaderAndRecords() {
	// given
	products := []store.Product{
		{ID: "UT010", Name: "Persist", Quantity: 3, UnitPrice: 30},
		{ID: "Q1", Name: `12" ruler, steel`, Quantity: 0, UnitPrice: 450},
	}
	// when
	err := s.repo.Save(products)
	// then
	require.NoError(s.T(), err)
	assert.Equal(s.T(), csvcodec.Header+"\n"+
		"UT010,Persist,3,30\n"+
		"Q1,\"12\"\" ruler, steel\",0,450\n", s.readCatalog())
}

func (s *FileRepositorySuite) TestSave_ThenLoad_RoundTrips() {
	// given
	products := []store.Product{
		{ID: "E2E002", Name: "E2E Precision Mouse Pro", Quantity: 25, UnitPrice: 2490},
		{ID: "ML", Name: "multi\nline, \"quoted\"", Quantity: 1, UnitPrice: 2},
		{ID: " padded ", Name: "\ttabs\t", Quantity: 7, UnitPrice: 8},
	}
	require.NoError(s.T(), s.repo.Save(products))

	// when
	records, err := s.repo.Load()
	require.NoError(s.T(), err)
	reloaded := store.NewInMemoryStore()
	reloaded.Load(records)

	// then
	assert.Equal(s.T(), products, reloaded.All())
}

func (s *FileRepositorySuite) TestSave_FailsWhenPathIsADirectory() {
	// given
	dir := filepath.Join(s.T().TempDir(), "catalog-dir")
	require.NoError(s.T(), os.Mkdir(dir, 0o755))
	repo := NewFileRepository(dir, slog.New(slog.NewTextHandler(io.Discard, nil)))
	// when
	err := repo.Save([]store.Product{{ID: "A", Name: "B"}})
	// then
	assert.Error(s.T(), err)
}

func TestFileRepositorySuite(t *testing.T) {
	suite.Run(t, new(FileRepositorySuite))
}
