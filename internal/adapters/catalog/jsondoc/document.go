package jsondoc

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/rxscan/internal/domain"
	json "github.com/goccy/go-json"
)

var ErrMissingBarcodes = errors.New("catalog document has no barcodes object")

// Document is the medicines.json layout: medicines keyed by barcode text.
// A barcode mapped to null has no medicine.
type Document struct {
	Barcodes map[string]*Entry `json:"barcodes"`
}

type Entry struct {
	Name         string   `json:"name"`
	Strength     string   `json:"strength"`
	Form         string   `json:"form"`
	Interactions []string `json:"interactions"`
	BNF          string   `json:"BNF"`
}

func Decode(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("decode catalog document: %w", err)
	}
	if doc.Barcodes == nil {
		return Document{}, ErrMissingBarcodes
	}

	return doc, nil
}

func (d Document) Lookup(barcode domain.Barcode) (domain.MedicineRecord, error) {
	entry, ok := d.Barcodes[string(barcode)]
	if !ok || entry == nil {
		return domain.MedicineRecord{}, fmt.Errorf("%w: %s", domain.ErrMedicineNotFound, barcode)
	}

	return entry.toRecord(barcode), nil
}

func (d Document) Records() []domain.MedicineRecord {
	barcodes := make([]string, 0, len(d.Barcodes))
	for barcode, entry := range d.Barcodes {
		if entry != nil {
			barcodes = append(barcodes, barcode)
		}
	}
	sort.Strings(barcodes)

	records := make([]domain.MedicineRecord, 0, len(barcodes))
	for _, barcode := range barcodes {
		records = append(records, d.Barcodes[barcode].toRecord(domain.Barcode(barcode)))
	}
	return records
}

func (e Entry) toRecord(barcode domain.Barcode) domain.MedicineRecord {
	interactions := make([]string, 0, len(e.Interactions))
	for _, interaction := range e.Interactions {
		if trimmed := strings.TrimSpace(interaction); trimmed != "" {
			interactions = append(interactions, trimmed)
		}
	}

	return domain.MedicineRecord{
		Barcode:       barcode,
		Name:          strings.TrimSpace(e.Name),
		Strength:      strings.TrimSpace(e.Strength),
		Form:          strings.TrimSpace(e.Form),
		Interactions:  interactions,
		FormularyCode: strings.TrimSpace(e.BNF),
	}
}
