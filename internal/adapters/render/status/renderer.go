package status

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
)

const bell = "\a"

// Renderer writes session updates to a terminal stream.
type Renderer struct {
	out    io.Writer
	clock  ports.Clock
	bell   bool
	styles styles
	mu     sync.Mutex
}

var _ ports.Renderer = (*Renderer)(nil)

func NewRenderer(out io.Writer, clock ports.Clock, opts RenderOptions) *Renderer {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Renderer{
		out:    out,
		clock:  clock,
		bell:   opts.Bell,
		styles: newStyles(),
	}
}

func (r *Renderer) RenderState(state domain.CaptureState) error {
	return r.writeln(stateLine(state, r.styles))
}

func (r *Renderer) RenderScan(outcome ports.ScanOutcome) error {
	view, err := Render(outcome, RenderOptions{Now: r.clock.Now()})
	if err != nil {
		return fmt.Errorf("render scan: %w", err)
	}

	if r.bell {
		view = bell + view
	}

	return r.writeln(view + "\n")
}

func (r *Renderer) RenderClear(id domain.SessionID) error {
	return r.writeln(r.styles.header.Render(fmt.Sprintf("New patient session %s", id)))
}

func (r *Renderer) writeln(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintln(r.out, text); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
