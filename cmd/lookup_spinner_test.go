package cmd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupSpinnerDoneMessageSetsOutcomeLine(t *testing.T) {
	tests := []struct {
		name   string
		result application.LookupResult
		want   string
	}{
		{
			name:   "found",
			result: application.LookupResult{Barcode: "111", Status: ports.ScanFound, Record: &domain.MedicineRecord{Barcode: "111", Name: "Warfarin"}},
			want:   "✔ 111: Warfarin",
		},
		{
			name:   "not found",
			result: application.LookupResult{Barcode: "999", Status: ports.ScanNotFound},
			want:   "✘ 999: not in catalog",
		},
		{
			name:   "catalog unavailable",
			result: application.LookupResult{Barcode: "111", Status: ports.ScanLookupUnavailable},
			want:   "✘ 111: catalog unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := newLookupSpinnerModel(tt.result.Barcode, nil)
			assert.Contains(t, model.View(), "Looking up "+string(tt.result.Barcode))

			updated, cmd := model.Update(lookupDoneMsg{result: tt.result})
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())

			final, ok := updated.(lookupSpinnerModel)
			require.True(t, ok)
			assert.Equal(t, tt.result, final.result)
			assert.Contains(t, final.View(), tt.want)
			assert.NotContains(t, final.View(), "Looking up")
		})
	}
}

func TestRunLookupSpinnerReturnsLookupResult(t *testing.T) {
	record := domain.MedicineRecord{Barcode: "111", Name: "Warfarin"}
	var output bytes.Buffer

	result, err := runLookupSpinner(context.Background(), &output, "111",
		func(_ context.Context, barcode domain.Barcode) (application.LookupResult, error) {
			return application.LookupResult{Barcode: barcode, Status: ports.ScanFound, Record: &record}, nil
		})

	require.NoError(t, err)
	assert.Equal(t, ports.ScanFound, result.Status)
	require.NotNil(t, result.Record)
	assert.Equal(t, "Warfarin", result.Record.Name)
	assert.Contains(t, output.String(), "✔ 111: Warfarin")
}

func TestRunLookupSpinnerKeepsResultWithLookupError(t *testing.T) {
	var output bytes.Buffer
	failure := errors.New("catalog offline")

	result, err := runLookupSpinner(context.Background(), &output, "111",
		func(_ context.Context, barcode domain.Barcode) (application.LookupResult, error) {
			return application.LookupResult{Barcode: barcode, Status: ports.ScanLookupUnavailable}, failure
		})

	require.ErrorIs(t, err, failure)
	assert.Equal(t, ports.ScanLookupUnavailable, result.Status)
	assert.Contains(t, output.String(), "✘ 111: catalog unavailable")
}
