package toml

import (
	"fmt"
	"strings"

	"github.com/bnema/rxscan/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version   int              `toml:"version"`
	Medicines []medicineSchema `toml:"medicines"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type medicineSchema struct {
	Barcode       string   `toml:"barcode"`
	Name          string   `toml:"name"`
	Strength      string   `toml:"strength,omitempty"`
	Form          string   `toml:"form,omitempty"`
	Interactions  []string `toml:"interactions"`
	FormularyCode string   `toml:"formulary_code,omitempty"`
}

func toSchema(record domain.MedicineRecord) medicineSchema {
	interactions := make([]string, 0, len(record.Interactions))
	interactions = append(interactions, record.Interactions...)

	return medicineSchema{
		Barcode:       string(record.Barcode),
		Name:          record.Name,
		Strength:      record.Strength,
		Form:          record.Form,
		Interactions:  interactions,
		FormularyCode: record.FormularyCode,
	}
}

func fromSchema(entry medicineSchema) domain.MedicineRecord {
	interactions := make([]string, 0, len(entry.Interactions))
	for _, interaction := range entry.Interactions {
		if trimmed := strings.TrimSpace(interaction); trimmed != "" {
			interactions = append(interactions, trimmed)
		}
	}

	return domain.MedicineRecord{
		Barcode:       domain.NormalizeBarcode(entry.Barcode),
		Name:          strings.TrimSpace(entry.Name),
		Strength:      strings.TrimSpace(entry.Strength),
		Form:          strings.TrimSpace(entry.Form),
		Interactions:  interactions,
		FormularyCode: strings.TrimSpace(entry.FormularyCode),
	}
}
