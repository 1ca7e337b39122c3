package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func medicine(barcode string, interactions ...string) MedicineRecord {
	return MedicineRecord{
		Barcode:      Barcode(barcode),
		Name:         "Medicine " + barcode,
		Interactions: interactions,
	}
}

func TestAggregateInteractions(t *testing.T) {
	tests := []struct {
		name    string
		records []MedicineRecord
		want    InteractionResult
	}{
		{
			name: "empty session",
			want: InteractionResult{},
		},
		{
			name:    "single medicine never interacts",
			records: []MedicineRecord{medicine("111", "A", "B")},
			want:    InteractionResult{},
		},
		{
			name:    "shared interaction between two medicines",
			records: []MedicineRecord{medicine("111", "A", "B"), medicine("222", "B", "C")},
			want:    InteractionResult{Common: []string{"B"}, Count: 1},
		},
		{
			name:    "same medicine scanned twice shares all its interactions",
			records: []MedicineRecord{medicine("111", "A", "B"), medicine("111", "A", "B")},
			want:    InteractionResult{Common: []string{"A", "B"}, Count: 2},
		},
		{
			name:    "partial overlap is not common",
			records: []MedicineRecord{medicine("111", "A", "B"), medicine("222", "B", "C"), medicine("333", "C")},
			want:    InteractionResult{},
		},
		{
			name:    "name must appear in every record",
			records: []MedicineRecord{medicine("111", "A", "B"), medicine("222", "B", "A"), medicine("333", "B")},
			want:    InteractionResult{Common: []string{"B"}, Count: 1},
		},
		{
			name:    "repeated name inside one record counts once",
			records: []MedicineRecord{medicine("111", "A", "A"), medicine("222", "B")},
			want:    InteractionResult{},
		},
		{
			name:    "record without interactions excludes everything",
			records: []MedicineRecord{medicine("111", "A"), medicine("222")},
			want:    InteractionResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateInteractions(tt.records))
		})
	}
}

func TestAggregateInteractionsMatchesEveryRecordRule(t *testing.T) {
	records := []MedicineRecord{
		medicine("1", "warfarin", "aspirin", "ssri"),
		medicine("2", "ssri", "warfarin"),
		medicine("3", "warfarin", "ssri", "nsaid"),
		medicine("4", "ssri", "alcohol", "warfarin"),
	}

	result := AggregateInteractions(records)

	for _, name := range []string{"warfarin", "ssri", "aspirin", "nsaid", "alcohol"} {
		inEvery := true
		for _, record := range records {
			if !contains(record.Interactions, name) {
				inEvery = false
			}
		}
		assert.Equal(t, inEvery, contains(result.Common, name), name)
	}
	assert.Equal(t, len(result.Common), result.Count)
}

func TestAggregateInteractionsDoesNotMutateRecords(t *testing.T) {
	records := []MedicineRecord{medicine("111", "A", "B"), medicine("222", "B", "A")}

	AggregateInteractions(records)

	assert.Equal(t, []string{"A", "B"}, records[0].Interactions)
	assert.Equal(t, []string{"B", "A"}, records[1].Interactions)
}

func contains(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
