package domain

import (
	"fmt"
	"strings"
	"time"
)

type DebounceMode string

const (
	DebounceCooldown  DebounceMode = "cooldown"
	DebounceSameValue DebounceMode = "same-value"
)

const (
	DefaultDebounceWindow       = time.Second
	DefaultDebounceReleaseDelay = time.Second
)

func ParseDebounceMode(raw string) (DebounceMode, error) {
	switch mode := DebounceMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case "":
		return DebounceCooldown, nil
	case DebounceCooldown, DebounceSameValue:
		return mode, nil
	default:
		return "", fmt.Errorf("unsupported debounce mode %q", raw)
	}
}

type DebounceConfig struct {
	Mode         DebounceMode
	Window       time.Duration
	ReleaseDelay time.Duration
}

func DefaultDebounceConfig() DebounceConfig {
	return DebounceConfig{}.withDefaults()
}

func (c DebounceConfig) withDefaults() DebounceConfig {
	if c.Mode == "" {
		c.Mode = DebounceCooldown
	}
	if c.Window <= 0 {
		c.Window = DefaultDebounceWindow
	}
	if c.ReleaseDelay <= 0 {
		c.ReleaseDelay = DefaultDebounceReleaseDelay
	}
	return c
}

// Debouncer turns a burst of decode events for one physical scan into a single
// accepted scan. It is not safe for concurrent use.
type Debouncer struct {
	cfg DebounceConfig

	hasLast    bool
	last       Barcode
	acceptedAt time.Time

	// in cooldown mode the window is measured from acceptedAt; in
	// same-value mode the lock is held from acceptance until releaseAt.
	inFlight  bool
	releaseAt time.Time
}

func NewDebouncer(cfg DebounceConfig) *Debouncer {
	return &Debouncer{cfg: cfg.withDefaults()}
}

func (d *Debouncer) Mode() DebounceMode {
	return d.cfg.Mode
}

func (d *Debouncer) Accept(barcode Barcode, now time.Time) bool {
	switch d.cfg.Mode {
	case DebounceSameValue:
		if d.hasLast && barcode == d.last && d.locked(now) {
			return false
		}
		d.inFlight = true
		d.releaseAt = time.Time{}
	default:
		if d.hasLast && now.Before(d.acceptedAt.Add(d.cfg.Window)) {
			return false
		}
	}

	d.hasLast = true
	d.last = barcode
	d.acceptedAt = now
	return true
}

// Complete marks the lookup for the last accepted scan as finished. In
// same-value mode the lock is released ReleaseDelay after now.
func (d *Debouncer) Complete(now time.Time) {
	if !d.inFlight {
		return
	}
	d.inFlight = false
	d.releaseAt = now.Add(d.cfg.ReleaseDelay)
}

func (d *Debouncer) Reset() {
	*d = Debouncer{cfg: d.cfg}
}

func (d *Debouncer) locked(now time.Time) bool {
	if d.inFlight {
		return true
	}
	return now.Before(d.releaseAt)
}
