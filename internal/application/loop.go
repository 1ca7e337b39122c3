package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
	"github.com/rs/zerolog"
)

type completion struct {
	pending PendingLookup
	record  domain.MedicineRecord
	err     error
}

// Loop drives a Controller from capture input. All controller access happens
// on the goroutine running Run; catalog lookups run in their own goroutines
// and report back through the completions channel.
type Loop struct {
	controller  *Controller
	catalog     ports.Catalog
	renderer    ports.Renderer
	logger      zerolog.Logger
	completions chan completion
	inFlight    int
}

func NewLoop(controller *Controller, catalog ports.Catalog, renderer ports.Renderer, logger zerolog.Logger) *Loop {
	return &Loop{
		controller:  controller,
		catalog:     catalog,
		renderer:    renderer,
		logger:      logger,
		completions: make(chan completion),
	}
}

// Run starts capture and processes its input until the input channel is
// closed and every outstanding lookup has completed, or until ctx is done.
// A device fault ends the run with domain.ErrCaptureFault and leaves the
// session as it was.
func (l *Loop) Run(ctx context.Context, capture ports.Capture) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	inputs, err := capture.Start(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrCaptureFault, err)
	}

	l.handleCommand(domain.CommandStart)

	for {
		select {
		case <-ctx.Done():
			l.shutdown()
			return nil
		case input, ok := <-inputs:
			if !ok {
				inputs = nil
				if l.inFlight == 0 {
					l.shutdown()
					return nil
				}
				continue
			}
			if input.Fault != nil {
				l.logger.Error().Err(input.Fault).
					Str("session", string(l.controller.SessionID())).
					Msg("Capture device failed")
				return fmt.Errorf("%w: %w", domain.ErrCaptureFault, input.Fault)
			}
			l.handleInput(ctx, input)
		case done := <-l.completions:
			l.inFlight--
			l.handleCompletion(done)
			if inputs == nil && l.inFlight == 0 {
				l.shutdown()
				return nil
			}
		}
	}
}

func (l *Loop) handleInput(ctx context.Context, input ports.Input) {
	switch {
	case input.Err != nil:
		l.logger.Debug().Err(input.Err).Msg("Decode error")
	case input.Command != "":
		l.handleCommand(input.Command)
	case input.Scan != nil:
		pending, ok := l.controller.Decode(*input.Scan)
		if !ok {
			l.logger.Debug().
				Str("barcode", string(input.Scan.Barcode)).
				Str("state", string(l.controller.State())).
				Msg("Scan dropped")
			return
		}
		l.dispatch(ctx, pending)
	}
}

func (l *Loop) dispatch(ctx context.Context, pending PendingLookup) {
	l.inFlight++
	go func() {
		record, err := l.catalog.Lookup(ctx, pending.Barcode)
		select {
		case l.completions <- completion{pending: pending, record: record, err: err}:
		case <-ctx.Done():
		}
	}()
}

func (l *Loop) handleCompletion(done completion) {
	outcome, err := l.controller.Complete(done.pending, done.record, done.err)
	switch {
	case errors.Is(err, domain.ErrStaleCompletion):
		l.logger.Debug().Err(err).Uint64("epoch", done.pending.Epoch).Msg("Discarding stale lookup")
		return
	case errors.Is(err, domain.ErrLookupUnavailable):
		l.logger.Warn().Err(err).Msg("Catalog lookup failed, treating as not found")
	case err != nil:
		l.logger.Error().Err(err).Msg("Lookup completion failed")
		return
	}

	if err := l.renderer.RenderScan(outcome); err != nil {
		l.logger.Warn().Err(err).Msg("Failed to render scan")
	}
}

func (l *Loop) handleCommand(command domain.Command) {
	switch command {
	case domain.CommandStart:
		if err := l.controller.Start(); err != nil {
			l.logger.Info().Err(err).Msg("Start ignored")
			return
		}
		l.logger.Info().Str("session", string(l.controller.SessionID())).Msg("Scanning started")
		l.render(l.renderer.RenderState(domain.StateScanning))
	case domain.CommandStop:
		previous := l.controller.SessionID()
		if err := l.controller.Stop(); err != nil {
			l.logger.Debug().Err(err).Msg("Stop while idle")
		}
		l.logger.Info().Msg("Scanning stopped")
		l.renderClear(previous)
		l.render(l.renderer.RenderState(domain.StateIdle))
	case domain.CommandNextPatient:
		previous := l.controller.SessionID()
		l.controller.NextPatient()
		l.logger.Info().Str("session", string(l.controller.SessionID())).Msg("Next patient")
		l.renderClear(previous)
	default:
		l.logger.Warn().Str("command", string(command)).Msg("Unknown command")
	}
}

func (l *Loop) shutdown() {
	if l.controller.State() == domain.StateIdle {
		return
	}
	_ = l.controller.Stop()
	l.logger.Info().Msg("Capture closed")
	l.render(l.renderer.RenderState(domain.StateIdle))
}

// renderClear announces a new session only when the reset discarded one; an
// empty session keeps its ID.
func (l *Loop) renderClear(previous domain.SessionID) {
	current := l.controller.SessionID()
	if current == previous {
		l.logger.Debug().Str("session", string(current)).Msg("Session already empty")
		return
	}
	l.render(l.renderer.RenderClear(current))
}

func (l *Loop) render(err error) {
	if err != nil {
		l.logger.Warn().Err(err).Msg("Failed to render")
	}
}
