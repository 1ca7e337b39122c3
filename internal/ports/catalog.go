package ports

import (
	"context"

	"github.com/bnema/rxscan/internal/domain"
)

// Catalog resolves a barcode to a medicine record. A barcode missing from the
// catalog yields domain.ErrMedicineNotFound; any other error means the catalog
// itself could not be read.
type Catalog interface {
	Lookup(ctx context.Context, barcode domain.Barcode) (domain.MedicineRecord, error)
}

type CatalogLister interface {
	List(ctx context.Context) ([]domain.MedicineRecord, error)
}

type CatalogWriter interface {
	Put(ctx context.Context, records ...domain.MedicineRecord) error
}
