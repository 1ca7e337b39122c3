package wedge

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
)

const commandPrefix = ":"

var ErrUndecodable = errors.New("undecodable scan")

// Reader turns the line-per-scan output of a keyboard-wedge scanner into
// capture input. Lines starting with ":" are session commands.
type Reader struct {
	source io.Reader
	clock  ports.Clock
}

var _ ports.Capture = (*Reader)(nil)

func NewReader(source io.Reader, clock ports.Clock) *Reader {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Reader{source: source, clock: clock}
}

func (r *Reader) Start(ctx context.Context) (<-chan ports.Input, error) {
	if r.source == nil {
		return nil, errors.New("no input device")
	}

	inputs := make(chan ports.Input)
	go func() {
		defer close(inputs)

		scanner := bufio.NewScanner(r.source)
		for scanner.Scan() {
			input, ok := r.parse(scanner.Text())
			if !ok {
				continue
			}
			if !send(ctx, inputs, input) {
				return
			}
		}

		if err := scanner.Err(); err != nil {
			send(ctx, inputs, ports.Input{Fault: fmt.Errorf("read input device: %w", err)})
		}
	}()

	return inputs, nil
}

func (r *Reader) parse(line string) (ports.Input, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ports.Input{}, false
	}

	if command, ok := strings.CutPrefix(trimmed, commandPrefix); ok {
		parsed, err := domain.ParseCommand(command)
		if err != nil {
			return ports.Input{Err: err}, true
		}
		return ports.Input{Command: parsed}, true
	}

	if strings.IndexFunc(trimmed, notPrintable) >= 0 {
		return ports.Input{Err: fmt.Errorf("%w: %q", ErrUndecodable, trimmed)}, true
	}

	return ports.Input{Scan: &domain.ScanEvent{
		Barcode: domain.NormalizeBarcode(trimmed),
		At:      r.clock.Now(),
	}}, true
}

func notPrintable(r rune) bool {
	return r == unicode.ReplacementChar || !unicode.IsPrint(r)
}

func send(ctx context.Context, inputs chan<- ports.Input, input ports.Input) bool {
	select {
	case inputs <- input:
		return true
	case <-ctx.Done():
		return false
	}
}
