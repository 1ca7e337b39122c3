package domain

import "errors"

var (
	ErrMedicineNotFound  = errors.New("medicine not found")
	ErrLookupUnavailable = errors.New("catalog lookup unavailable")
	ErrCaptureFault      = errors.New("capture fault")
	ErrStaleCompletion   = errors.New("stale lookup completion")
	ErrNotScanning       = errors.New("capture is not active")
	ErrAlreadyScanning   = errors.New("capture is already active")
)
