package status

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/bnema/rxscan/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	warfarin = domain.MedicineRecord{Barcode: "111", Name: "Warfarin", Strength: "5mg", Form: "tablet", Interactions: []string{"A", "B"}, FormularyCode: "2.8.2"}
	aspirin  = domain.MedicineRecord{Barcode: "222", Name: "Aspirin", Strength: "75mg", Form: "tablet", Interactions: []string{"B", "C"}}
)

func TestRenderFoundScanWithSharedInteractions(t *testing.T) {
	now := time.Date(2026, 10, 17, 14, 30, 5, 0, time.UTC)
	record := aspirin

	output, err := Render(ports.ScanOutcome{
		SessionID: "s-1",
		Barcode:   "222",
		Status:    ports.ScanFound,
		Record:    &record,
		Row:       &ports.SessionRow{Index: 2, Record: aspirin},
		Rows:      []ports.SessionRow{{Index: 1, Record: warfarin}, {Index: 2, Record: aspirin}},
		Result:    domain.InteractionResult{Common: []string{"B"}, Count: 1},
		Severity:  domain.SeverityFound,
	}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Medicine Found")
	assert.Contains(t, output, "barcode: 222")
	assert.Contains(t, output, "scanned: 14:30:05")
	assert.Contains(t, output, "Name: Aspirin")
	assert.Contains(t, output, "Interactions: B, C")
	assert.Contains(t, output, "BNF: not found")
	assert.Contains(t, output, "Warfarin")
	assert.Contains(t, output, "⚠ Interactions found")
	assert.Contains(t, output, "Shared interactions: B")
}

func TestRenderNotFoundScanKeepsSessionTable(t *testing.T) {
	output, err := Render(ports.ScanOutcome{
		Barcode:  "999",
		Status:   ports.ScanNotFound,
		Rows:     []ports.SessionRow{{Index: 1, Record: warfarin}},
		Severity: domain.SeverityNone,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Medicine not found")
	assert.Contains(t, output, "Warfarin")
	assert.Contains(t, output, "✔ No interactions found")
	assert.Contains(t, output, "Name: not found")
	assert.Contains(t, output, "Strength: not found")
	assert.Contains(t, output, "Form: not found")
	assert.Contains(t, output, "Interactions: not found")
	assert.Contains(t, output, "BNF: not found")
	assert.NotContains(t, output, "scanned:")
}

func TestRenderUnavailableLookupReadsAsNotFound(t *testing.T) {
	output, err := Render(ports.ScanOutcome{
		Barcode:  "111",
		Status:   ports.ScanLookupUnavailable,
		Severity: domain.SeverityNone,
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "Medicine not found")
	assert.Contains(t, output, "Name: not found")
	assert.Contains(t, output, "BNF: not found")
	assert.Contains(t, output, "No medicines scanned.")
}

func TestSeverityAffordancesAreDistinct(t *testing.T) {
	s := newStyles()

	noneIcon, _ := severityAffordance(domain.SeverityNone, s)
	foundIcon, _ := severityAffordance(domain.SeverityFound, s)
	assert.NotEqual(t, noneIcon, foundIcon)

	none := severityLine(domain.SeverityNone, domain.InteractionResult{}, s)
	found := severityLine(domain.SeverityFound, domain.InteractionResult{Common: []string{"B"}, Count: 1}, s)
	assert.NotContains(t, none, "Shared interactions")
	assert.Contains(t, found, "Shared interactions: B")
}

func TestRenderReport(t *testing.T) {
	output := RenderReport(application.CheckReport{
		Scans: []application.LookupResult{
			{Barcode: "111", Status: ports.ScanFound, Record: &warfarin},
			{Barcode: "999", Status: ports.ScanNotFound},
			{Barcode: "222", Status: ports.ScanFound, Record: &aspirin},
		},
		Medicines:    []domain.MedicineRecord{warfarin, aspirin},
		Interactions: domain.InteractionResult{Common: []string{"B"}, Count: 1},
		Severity:     domain.SeverityFound,
	})

	assert.Contains(t, output, "scanned: 3  matched: 2")
	assert.Contains(t, output, "Medicine not found 999")
	assert.Contains(t, output, "Aspirin")
	assert.Contains(t, output, "Interactions found")
}

func TestRenderLookupShowsMissingFields(t *testing.T) {
	output := RenderLookup(application.LookupResult{
		Barcode: "333",
		Status:  ports.ScanFound,
		Record:  &domain.MedicineRecord{Barcode: "333", Name: "Saline"},
	})

	assert.Contains(t, output, "Name: Saline")
	assert.Contains(t, output, "Strength: not found")
	assert.Contains(t, output, "Interactions: not found")
}

func TestRenderLookupNotFoundShowsEveryFieldMissing(t *testing.T) {
	output := RenderLookup(application.LookupResult{
		Barcode: "999",
		Status:  ports.ScanNotFound,
	})

	assert.Contains(t, output, "Medicine not found")
	assert.Contains(t, output, "barcode: 999")
	assert.Contains(t, output, "Name: not found")
	assert.Contains(t, output, "Interactions: not found")
	assert.Contains(t, output, "BNF: not found")
}

func TestRenderCatalog(t *testing.T) {
	assert.Contains(t, RenderCatalog(nil), "No medicines in catalog.")

	output := RenderCatalog([]domain.MedicineRecord{warfarin, aspirin})
	assert.Contains(t, output, "medicines: 2")
	assert.Contains(t, output, "111")
	assert.Contains(t, output, "Aspirin")
}

func TestRendererWritesStatesAndScans(t *testing.T) {
	clock := mocks.NewMockClock(t)
	clock.EXPECT().Now().Return(time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC))

	var out bytes.Buffer
	renderer := NewRenderer(&out, clock, RenderOptions{Bell: true})

	require.NoError(t, renderer.RenderState(domain.StateScanning))
	require.NoError(t, renderer.RenderScan(ports.ScanOutcome{Barcode: "999", Status: ports.ScanNotFound, Severity: domain.SeverityNone}))
	require.NoError(t, renderer.RenderClear("s-2"))
	require.NoError(t, renderer.RenderState(domain.StateIdle))

	written := out.String()
	assert.True(t, strings.HasPrefix(written, "Scanning..."))
	assert.Contains(t, written, bell+"Medicine not found")
	assert.Contains(t, written, "New patient session s-2")
	assert.Contains(t, written, "Enter :start to start scanning")
}

func TestRendererOmitsBellByDefault(t *testing.T) {
	var out bytes.Buffer
	renderer := NewRenderer(&out, nil, RenderOptions{})

	require.NoError(t, renderer.RenderScan(ports.ScanOutcome{Barcode: "999", Status: ports.ScanNotFound}))
	assert.NotContains(t, out.String(), bell)
}
