package ports

import "github.com/bnema/rxscan/internal/domain"

type ScanStatus string

const (
	ScanFound             ScanStatus = "found"
	ScanNotFound          ScanStatus = "not_found"
	ScanLookupUnavailable ScanStatus = "lookup_unavailable"
)

type SessionRow struct {
	Index  int
	Record domain.MedicineRecord
}

type ScanOutcome struct {
	SessionID domain.SessionID
	Barcode   domain.Barcode
	Status    ScanStatus
	Record    *domain.MedicineRecord
	Row       *SessionRow
	Rows      []SessionRow
	Result    domain.InteractionResult
	Severity  domain.Severity
}

type Renderer interface {
	RenderState(state domain.CaptureState) error
	RenderScan(outcome ScanOutcome) error
	RenderClear(sessionID domain.SessionID) error
}
