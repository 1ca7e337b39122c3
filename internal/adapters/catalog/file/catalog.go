package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/rxscan/internal/adapters/catalog/jsondoc"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
)

// Catalog serves lookups from a medicines.json document on disk.
type Catalog struct {
	path string
}

var (
	_ ports.Catalog       = (*Catalog)(nil)
	_ ports.CatalogLister = (*Catalog)(nil)
)

func NewCatalog(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}

	return &Catalog{path: filepath.Clean(absPath)}, nil
}

func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) Lookup(ctx context.Context, barcode domain.Barcode) (domain.MedicineRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.MedicineRecord{}, err
	}

	doc, err := c.load()
	if err != nil {
		return domain.MedicineRecord{}, err
	}

	return doc.Lookup(barcode)
}

func (c *Catalog) List(ctx context.Context) ([]domain.MedicineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := c.load()
	if err != nil {
		return nil, err
	}

	return doc.Records(), nil
}

func (c *Catalog) load() (jsondoc.Document, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return jsondoc.Document{}, fmt.Errorf("read catalog file: %w", err)
	}

	return jsondoc.Decode(data)
}
