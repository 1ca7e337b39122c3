package toml

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogReadsMedicineTables(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "medicines.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[[medicines]]
barcode = "111"
name = "Warfarin"
strength = "5mg"
form = "tablet"
interactions = ["A", "B"]
formulary_code = "2.8.2"

[[medicines]]
barcode = " 222 "
name = "Aspirin"
interactions = ["B", "C"]
`), 0o600))

	catalog, err := NewCatalog(path)
	require.NoError(t, err)

	record, err := catalog.Lookup(context.Background(), "111")
	require.NoError(t, err)
	assert.Equal(t, domain.MedicineRecord{
		Barcode:       "111",
		Name:          "Warfarin",
		Strength:      "5mg",
		Form:          "tablet",
		Interactions:  []string{"A", "B"},
		FormularyCode: "2.8.2",
	}, record)

	padded, err := catalog.Lookup(context.Background(), "222")
	require.NoError(t, err)
	assert.Equal(t, "Aspirin", padded.Name)

	_, err = catalog.Lookup(context.Background(), "999")
	require.ErrorIs(t, err, domain.ErrMedicineNotFound)

	records, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestCatalogPutRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "medicines.toml")
	catalog, err := NewCatalog(path)
	require.NoError(t, err)

	aspirin := domain.MedicineRecord{Barcode: "222", Name: "Aspirin", Interactions: []string{"B", "C"}}
	warfarin := domain.MedicineRecord{Barcode: "111", Name: "Warfarin", Strength: "5mg", Interactions: []string{"A", "B"}}

	require.NoError(t, catalog.Put(context.Background(), aspirin, warfarin))

	updated := warfarin
	updated.Strength = "3mg"
	require.NoError(t, catalog.Put(context.Background(), updated))

	records, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.MedicineRecord{updated, aspirin}, records)
}

func TestCatalogPutRejectsEmptyBarcode(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(filepath.Join(t.TempDir(), "medicines.toml"))
	require.NoError(t, err)

	err = catalog.Put(context.Background(), domain.MedicineRecord{Name: "Nameless"})
	require.Error(t, err)
}

func TestCatalogMissingFileIsAnError(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	_, err = catalog.Lookup(context.Background(), "111")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrMedicineNotFound)
}

func TestCatalogRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "medicines.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 99\n"), 0o600))

	catalog, err := NewCatalog(path)
	require.NoError(t, err)

	_, err = catalog.List(context.Background())
	require.ErrorContains(t, err, "unsupported catalog schema version")
}

func TestCatalogHonoursCancelledContext(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(filepath.Join(t.TempDir(), "medicines.toml"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = catalog.Lookup(ctx, "111")
	require.ErrorIs(t, err, context.Canceled)
}

func TestCatalogConcurrentPutsShareOneLock(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "medicines.toml")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			catalog, err := NewCatalog(path)
			if !assert.NoError(t, err) {
				return
			}
			barcode := domain.Barcode(strconv.Itoa(100 + i))
			assert.NoError(t, catalog.Put(context.Background(), domain.MedicineRecord{Barcode: barcode, Name: "M" + string(barcode)}))
		}(i)
	}
	wg.Wait()

	catalog, err := NewCatalog(path)
	require.NoError(t, err)
	records, err := catalog.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 8)
}
