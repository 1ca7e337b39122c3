package domain

import (
	"strings"
	"time"
)

type Barcode string

func NormalizeBarcode(raw string) Barcode {
	return Barcode(strings.TrimSpace(raw))
}

type MedicineRecord struct {
	Barcode       Barcode
	Name          string
	Strength      string
	Form          string
	Interactions  []string
	FormularyCode string
}

func (r MedicineRecord) Clone() MedicineRecord {
	clone := r
	if r.Interactions != nil {
		clone.Interactions = append([]string(nil), r.Interactions...)
	}
	return clone
}

type ScanEvent struct {
	Barcode Barcode
	At      time.Time
}
