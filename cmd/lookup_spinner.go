package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type lookupFunc func(context.Context, domain.Barcode) (application.LookupResult, error)

// lookupDoneMsg carries the catalog answer back into the spinner program.
type lookupDoneMsg struct {
	result application.LookupResult
	err    error
}

type lookupSpinnerModel struct {
	spinner  spinner.Model
	barcode  domain.Barcode
	lookup   tea.Cmd
	result   application.LookupResult
	err      error
	done     bool
	found    lipgloss.Style
	notFound lipgloss.Style
}

func newLookupSpinnerModel(barcode domain.Barcode, lookup tea.Cmd) lookupSpinnerModel {
	return lookupSpinnerModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		barcode:  barcode,
		lookup:   lookup,
		found:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		notFound: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (m lookupSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.lookup)
}

func (m lookupSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lookupDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m lookupSpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s Looking up %s...", m.spinner.View(), m.barcode)
	}

	switch m.result.Status {
	case ports.ScanFound:
		name := string(m.barcode)
		if m.result.Record != nil && m.result.Record.Name != "" {
			name = m.result.Record.Name
		}
		return m.found.Render(fmt.Sprintf("✔ %s: %s", m.barcode, name)) + "\n"
	case ports.ScanNotFound:
		return m.notFound.Render(fmt.Sprintf("✘ %s: not in catalog", m.barcode)) + "\n"
	case ports.ScanLookupUnavailable:
		return m.notFound.Render(fmt.Sprintf("✘ %s: catalog unavailable", m.barcode)) + "\n"
	}

	// Cancelled lookups carry no status; the command reports the error.
	return ""
}

// runLookupSpinner resolves barcode while a spinner runs on output and leaves
// a one-line outcome behind.
func runLookupSpinner(ctx context.Context, output io.Writer, barcode domain.Barcode, lookup lookupFunc) (application.LookupResult, error) {
	lookupCmd := func() tea.Msg {
		result, err := lookup(ctx, barcode)
		return lookupDoneMsg{result: result, err: err}
	}

	program := tea.NewProgram(
		newLookupSpinnerModel(barcode, lookupCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := program.Run()
	if err != nil {
		return application.LookupResult{}, err
	}

	model, ok := final.(lookupSpinnerModel)
	if !ok {
		return application.LookupResult{}, fmt.Errorf("unexpected final spinner model type %T", final)
	}

	return model.result, model.err
}
