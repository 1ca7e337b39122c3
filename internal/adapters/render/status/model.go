package status

import (
	"errors"
	"io"

	"github.com/bnema/rxscan/internal/application"
	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	outcome ports.ScanOutcome
	opts    RenderOptions
	styles  styles
	output  string
}

func newModel(outcome ports.ScanOutcome, opts RenderOptions) model {
	return model{
		outcome: outcome,
		opts:    opts,
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderScanView(m.outcome, m.opts, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render lays out one scan outcome: status line, medicine details, the
// session table and the interaction status.
func Render(outcome ports.ScanOutcome, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(outcome, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

func RenderReport(report application.CheckReport) string {
	return renderReportView(report, newStyles())
}

func RenderLookup(result application.LookupResult) string {
	return renderLookupView(result, newStyles())
}

func RenderCatalog(records []domain.MedicineRecord) string {
	return renderCatalogView(records, newStyles())
}
