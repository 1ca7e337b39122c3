package ports

import (
	"context"

	"github.com/bnema/rxscan/internal/domain"
)

// Input is one message from the capture device: a decoded scan, a session
// command, a decode error or a device fault. Decode errors are informational
// only. A fault is the last message on the channel.
type Input struct {
	Scan    *domain.ScanEvent
	Command domain.Command
	Err     error
	Fault   error
}

// Capture delivers decoded barcode text. The returned channel is closed when
// the device has no more input or ctx is done.
type Capture interface {
	Start(ctx context.Context) (<-chan Input, error)
}
