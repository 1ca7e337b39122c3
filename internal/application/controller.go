package application

import (
	"errors"
	"fmt"
	"time"

	"github.com/bnema/rxscan/internal/domain"
	"github.com/bnema/rxscan/internal/ports"
)

// PendingLookup identifies one accepted scan whose catalog lookup is in
// flight. Its completion is only applied while Epoch is still current.
type PendingLookup struct {
	Epoch   uint64
	Seq     uint64
	Barcode domain.Barcode
	At      time.Time
}

// Controller owns the session state for one scanning station. It is the only
// writer of that state and is not safe for concurrent use; Loop serialises
// access to it.
type Controller struct {
	clock     ports.Clock
	debouncer *domain.Debouncer
	session   *domain.Session
	result    domain.InteractionResult
	state     domain.CaptureState
	epoch     uint64
	seq       uint64
	pending   *PendingLookup
}

func NewController(debounce domain.DebounceConfig, clock ports.Clock) *Controller {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Controller{
		clock:     clock,
		debouncer: domain.NewDebouncer(debounce),
		session:   domain.NewSession(),
		state:     domain.StateIdle,
	}
}

func (c *Controller) State() domain.CaptureState {
	return c.state
}

func (c *Controller) Epoch() uint64 {
	return c.epoch
}

func (c *Controller) SessionID() domain.SessionID {
	return c.session.ID()
}

func (c *Controller) Records() []domain.MedicineRecord {
	return c.session.Snapshot()
}

func (c *Controller) Result() domain.InteractionResult {
	return c.result
}

func (c *Controller) Severity() domain.Severity {
	return domain.ClassifySeverity(c.result.Count)
}

func (c *Controller) Start() error {
	if c.state != domain.StateIdle {
		return domain.ErrAlreadyScanning
	}

	c.debouncer.Reset()
	c.state = domain.StateScanning
	return nil
}

// Stop ends capture and discards the session. Stopping an idle controller
// still resets the session and reports domain.ErrNotScanning.
func (c *Controller) Stop() error {
	wasIdle := c.state == domain.StateIdle

	c.state = domain.StateIdle
	c.pending = nil
	c.debouncer.Reset()
	c.reset()

	if wasIdle {
		return domain.ErrNotScanning
	}
	return nil
}

// NextPatient discards the session without leaving the current state. A
// lookup still in flight completes as stale.
func (c *Controller) NextPatient() {
	c.reset()
}

func (c *Controller) reset() {
	c.epoch++
	c.session.Reset()
	c.result = domain.InteractionResult{}
}

func (c *Controller) Decode(event domain.ScanEvent) (PendingLookup, bool) {
	if c.state != domain.StateScanning || event.Barcode == "" {
		return PendingLookup{}, false
	}
	if !c.debouncer.Accept(event.Barcode, event.At) {
		return PendingLookup{}, false
	}

	c.seq++
	pending := PendingLookup{
		Epoch:   c.epoch,
		Seq:     c.seq,
		Barcode: event.Barcode,
		At:      event.At,
	}
	c.pending = &pending
	c.state = domain.StateProcessing

	return pending, true
}

// Complete applies the result of a catalog lookup. It returns
// domain.ErrStaleCompletion when the session was reset or capture stopped
// after the scan was accepted. A failed lookup is reported as
// ports.ScanLookupUnavailable together with an error wrapping
// domain.ErrLookupUnavailable; the returned outcome is valid in that case.
func (c *Controller) Complete(pending PendingLookup, record domain.MedicineRecord, lookupErr error) (ports.ScanOutcome, error) {
	current := c.pending != nil && c.pending.Seq == pending.Seq
	if current {
		c.pending = nil
		c.debouncer.Complete(c.clock.Now())
		if c.state == domain.StateProcessing {
			c.state = domain.StateScanning
		}
	}

	if !current || pending.Epoch != c.epoch {
		return ports.ScanOutcome{}, fmt.Errorf("%w: barcode %s", domain.ErrStaleCompletion, pending.Barcode)
	}

	outcome := ports.ScanOutcome{
		Barcode: pending.Barcode,
	}

	var err error
	switch {
	case lookupErr == nil:
		if record.Barcode == "" {
			record.Barcode = pending.Barcode
		}
		c.session.Append(record, pending.At)
		c.result = domain.AggregateInteractions(c.session.Snapshot())

		found := record.Clone()
		outcome.Status = ports.ScanFound
		outcome.Record = &found
		outcome.Row = &ports.SessionRow{Index: c.session.Len(), Record: found}
	case errors.Is(lookupErr, domain.ErrMedicineNotFound):
		outcome.Status = ports.ScanNotFound
	default:
		outcome.Status = ports.ScanLookupUnavailable
		err = fmt.Errorf("%w: barcode %s: %w", domain.ErrLookupUnavailable, pending.Barcode, lookupErr)
	}

	outcome.SessionID = c.session.ID()
	outcome.Rows = sessionRows(c.session.Snapshot())
	outcome.Result = c.result
	outcome.Severity = domain.ClassifySeverity(c.result.Count)

	return outcome, err
}

func sessionRows(records []domain.MedicineRecord) []ports.SessionRow {
	rows := make([]ports.SessionRow, 0, len(records))
	for i, record := range records {
		rows = append(rows, ports.SessionRow{Index: i + 1, Record: record})
	}
	return rows
}
