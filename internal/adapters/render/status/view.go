package status

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

const missingValue = "not found"

type RenderOptions struct {
	Now  time.Time
	Bell bool
}

func renderScanView(outcome ports.ScanOutcome, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("barcode: %s", outcome.Barcode)
	if !opts.Now.IsZero() {
		header += fmt.Sprintf("  scanned: %s", opts.Now.Format("15:04:05"))
	}

	lines := []string{
		statusLine(outcome.Status, s),
		s.header.Render(header),
	}

	lines = append(lines,
		s.section.Render(renderDetails(recordOrEmpty(outcome.Record), s)),
		s.section.Render(renderSessionTable(outcome.Rows, s)),
		s.section.Render(severityLine(outcome.Severity, outcome.Result, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderReportView(report application.CheckReport, s styles) string {
	lines := []string{
		s.title.Render("Medicine Interaction Check"),
		s.header.Render(fmt.Sprintf("scanned: %d  matched: %d", len(report.Scans), len(report.Medicines))),
	}

	for _, scan := range report.Scans {
		if scan.Status != ports.ScanFound {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
				statusLine(scan.Status, s), " ", s.header.Render(string(scan.Barcode))))
		}
	}

	rows := make([]ports.SessionRow, 0, len(report.Medicines))
	for i, record := range report.Medicines {
		rows = append(rows, ports.SessionRow{Index: i + 1, Record: record})
	}

	lines = append(lines,
		s.section.Render(renderSessionTable(rows, s)),
		s.section.Render(severityLine(report.Severity, report.Interactions, s)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderLookupView(result application.LookupResult, s styles) string {
	lines := []string{
		statusLine(result.Status, s),
		s.header.Render(fmt.Sprintf("barcode: %s", result.Barcode)),
	}
	lines = append(lines, s.section.Render(renderDetails(recordOrEmpty(result.Record), s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCatalogView(records []domain.MedicineRecord, s styles) string {
	lines := []string{
		s.title.Render("Medicine Catalog"),
		s.header.Render(fmt.Sprintf("medicines: %d", len(records))),
	}
	if len(records) == 0 {
		lines = append(lines, s.empty.Render("No medicines in catalog."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([]ports.SessionRow, 0, len(records))
	for i, record := range records {
		rows = append(rows, ports.SessionRow{Index: i + 1, Record: record})
	}
	lines = append(lines, renderSessionTable(rows, s))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func statusLine(status ports.ScanStatus, s styles) string {
	switch status {
	case ports.ScanFound:
		return s.found.Render("Medicine Found")
	case ports.ScanNotFound:
		return s.notFound.Render("Medicine not found")
	case ports.ScanLookupUnavailable:
		return s.notFound.Render("Medicine not found (catalog unavailable)")
	default:
		return s.header.Render(string(status))
	}
}

func stateLine(state domain.CaptureState, s styles) string {
	switch state {
	case domain.StateScanning:
		return s.scanning.Render("Scanning...")
	case domain.StateProcessing:
		return s.scanning.Render("Looking up...")
	default:
		return s.idle.Render("Enter :start to start scanning")
	}
}

func renderDetails(record domain.MedicineRecord, s styles) string {
	fields := []struct {
		label string
		value string
	}{
		{label: "Name", value: record.Name},
		{label: "Strength", value: record.Strength},
		{label: "Form", value: record.Form},
		{label: "Interactions", value: strings.Join(record.Interactions, ", ")},
		{label: "BNF", value: record.FormularyCode},
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, detailLine(field.label, field.value, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func detailLine(label, value string, s styles) string {
	rendered := s.value.Render(value)
	if strings.TrimSpace(value) == "" {
		rendered = s.missing.Render(missingValue)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, s.label.Render(label+":"), " ", rendered)
}

func renderSessionTable(rows []ports.SessionRow, s styles) string {
	if len(rows) == 0 {
		return s.empty.Render("No medicines scanned.")
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			strconv.Itoa(row.Index),
			string(row.Record.Barcode),
			orMissing(row.Record.Name),
			orMissing(row.Record.Strength),
			orMissing(row.Record.Form),
		})
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.tableBorder).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.tableHeader
			}
			return s.tableCell
		}).
		Headers("#", "Barcode", "Name", "Strength", "Form").
		Rows(cells...).
		Render()
}

// severityLine marks each severity with its own icon and colour.
func severityLine(severity domain.Severity, result domain.InteractionResult, s styles) string {
	icon, style := severityAffordance(severity, s)
	line := style.Render(fmt.Sprintf("%s %s", icon, severity.Label()))

	if result.IsEmpty() {
		return line
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		line,
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.label.Render("Shared interactions:"), " ",
			s.interaction.Render(strings.Join(result.Common, ", ")),
		),
	)
}

func severityAffordance(severity domain.Severity, s styles) (string, lipgloss.Style) {
	switch severity {
	case domain.SeverityFound:
		return "⚠", s.severityFound
	case domain.SeverityNone:
		return "✔", s.severityNone
	default:
		return "?", s.header
	}
}

// recordOrEmpty lets an unmatched scan render every detail field as missing.
func recordOrEmpty(record *domain.MedicineRecord) domain.MedicineRecord {
	if record == nil {
		return domain.MedicineRecord{}
	}
	return *record
}

func orMissing(value string) string {
	if strings.TrimSpace(value) == "" {
		return missingValue
	}
	return value
}
