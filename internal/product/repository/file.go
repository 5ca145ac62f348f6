package repository

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/abgdnv/inventory/internal/product/csvcodec"
	"github.com/abgdnv/inventory/internal/product/store"
)

var _ CatalogRepository = (*FileRepository)(nil)

// FileRepository implements CatalogRepository on top of a single catalog file.
// Every save is a full rewrite in place.
type FileRepository struct {
	path   string
	logger *slog.Logger
}

// NewFileRepository creates a FileRepository for the catalog at path.
func NewFileRepository(path string, logger *slog.Logger) *FileRepository {
	return &FileRepository{
		path:   path,
		logger: logger.With("component", "repository", "path", path),
	}
}

// Path returns the catalog file path.
func (r *FileRepository) Path() string {
	return r.path
}

// EnsureExists creates the catalog with only the header line if it does not exist.
func (r *FileRepository) EnsureExists() error {
	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("failed to create catalog %s: %w", r.path, err)
	}
	if _, err := io.WriteString(f, csvcodec.Header+"\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write catalog header: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog %s: %w", r.path, err)
	}
	r.logger.Info("Created empty catalog")
	return nil
}

// Load reads every record after the header line.
func (r *FileRepository) Load() ([][]string, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", r.path, err)
	}
	defer func() { _ = f.Close() }()

	// the header is the first physical line, dropped unparsed
	br := bufio.NewReader(f)
	if _, err := br.ReadString('\n'); err != nil {
		if errors.Is(err, io.EOF) {
			return [][]string{}, nil
		}
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	dec := csvcodec.NewDecoder(br)

	records := make([][]string, 0)
	for {
		fields, err := dec.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", r.path, err)
		}
		records = append(records, fields)
	}
	r.logger.Debug("Catalog read", "records", len(records))
	return records, nil
}

// Save truncates the catalog and writes the header followed by one line per product.
func (r *FileRepository) Save(products []store.Product) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("failed to open catalog %s for writing: %w", r.path, err)
	}

	w := bufio.NewWriter(f)
	_, _ = w.WriteString(csvcodec.Header + "\n")
	for _, p := range products {
		_, _ = w.WriteString(csvcodec.EncodeRecord(p.ID, p.Name, p.Quantity, p.UnitPrice) + "\n")
	}
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write catalog %s: %w", r.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close catalog %s: %w", r.path, err)
	}
	r.logger.Debug("Catalog saved", "products", len(products))
	return nil
}
