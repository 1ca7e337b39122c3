package application

import (
	"errors"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
)

var ErrCatalogNotListable = errors.New("catalog source does not support listing")

type LookupResult struct {
	Barcode domain.Barcode
	Status  ports.ScanStatus
	Record  *domain.MedicineRecord `json:",omitempty"`
}

type CheckReport struct {
	SessionID     domain.SessionID
	Scans         []LookupResult
	Medicines     []domain.MedicineRecord
	Interactions  domain.InteractionResult
	Severity      domain.Severity
	SeverityLabel string
	LookupErrors  []string `json:",omitempty"`
}
