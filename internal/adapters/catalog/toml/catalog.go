package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	catalogFileMode = 0o644
	catalogDirMode  = 0o755
	tempFilePattern = ".medicines-*.toml.tmp"
)

// Catalog reads medicines from a TOML file of [[medicines]] tables. The file
// is re-read on every call so edits apply to the next scan.
type Catalog struct {
	path string
	mu   *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var (
	_ ports.Catalog       = (*Catalog)(nil)
	_ ports.CatalogLister = (*Catalog)(nil)
	_ ports.CatalogWriter = (*Catalog)(nil)
)

func NewCatalog(path string) (*Catalog, error) {
	if path == "" {
		return nil, errors.New("catalog path is empty")
	}

	path, err := normalizePath(path)
	if err != nil {
		return nil, err
	}

	return &Catalog{path: path, mu: lockForPath(path)}, nil
}

func (c *Catalog) Path() string {
	return c.path
}

func (c *Catalog) Lookup(ctx context.Context, barcode domain.Barcode) (domain.MedicineRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.MedicineRecord{}, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	file, err := c.readSchema()
	if err != nil {
		return domain.MedicineRecord{}, err
	}

	for _, entry := range file.Medicines {
		if domain.NormalizeBarcode(entry.Barcode) == barcode {
			return fromSchema(entry), nil
		}
	}

	return domain.MedicineRecord{}, fmt.Errorf("%w: %s", domain.ErrMedicineNotFound, barcode)
}

func (c *Catalog) List(ctx context.Context) ([]domain.MedicineRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	file, err := c.readSchema()
	if err != nil {
		return nil, err
	}

	records := make([]domain.MedicineRecord, 0, len(file.Medicines))
	for _, entry := range file.Medicines {
		records = append(records, fromSchema(entry))
	}

	return records, nil
}

// Put inserts or replaces medicines by barcode and keeps the file sorted.
func (c *Catalog) Put(ctx context.Context, records ...domain.MedicineRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	file, err := c.readSchema()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	file.applyDefaults()

	index := make(map[string]int, len(file.Medicines))
	for i, entry := range file.Medicines {
		index[entry.Barcode] = i
	}

	for _, record := range records {
		if record.Barcode == "" {
			return errors.New("medicine barcode is empty")
		}

		encoded := toSchema(record)
		if i, ok := index[encoded.Barcode]; ok {
			file.Medicines[i] = encoded
			continue
		}
		index[encoded.Barcode] = len(file.Medicines)
		file.Medicines = append(file.Medicines, encoded)
	}

	sort.SliceStable(file.Medicines, func(i, j int) bool {
		return file.Medicines[i].Barcode < file.Medicines[j].Barcode
	})

	if err := ctx.Err(); err != nil {
		return err
	}

	return c.writeSchema(file)
}

func (c *Catalog) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fileSchema{}, fmt.Errorf("read catalog file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode catalog file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func (c *Catalog) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(c.path), catalogDirMode); err != nil {
		return fmt.Errorf("create catalog directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode catalog file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(c.path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp catalog file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp catalog file: %w", err)
	}

	if err := tempFile.Chmod(catalogFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp catalog file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp catalog file: %w", err)
	}

	if err := os.Rename(tempName, c.path); err != nil {
		return fmt.Errorf("replace catalog file: %w", err)
	}

	cleanup = false
	return nil
}

func normalizePath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve catalog path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}
