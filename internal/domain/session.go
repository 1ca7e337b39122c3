package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionID string

// Session is the ordered set of medicines scanned for one patient encounter.
// Repeated scans of the same medicine are kept as separate entries.
type Session struct {
	id             SessionID
	records        []MedicineRecord
	count          int
	lastBarcode    Barcode
	lastAcceptedAt time.Time
}

func NewSession() *Session {
	return &Session{id: newSessionID()}
}

func newSessionID() SessionID {
	return SessionID(uuid.NewString())
}

func (s *Session) ID() SessionID {
	return s.id
}

func (s *Session) Append(record MedicineRecord, at time.Time) {
	s.records = append(s.records, record.Clone())
	s.count++
	s.lastBarcode = record.Barcode
	s.lastAcceptedAt = at
}

// Reset starts a new encounter. Resetting an empty session keeps its ID.
func (s *Session) Reset() {
	if s.IsEmpty() {
		return
	}

	s.id = newSessionID()
	s.records = nil
	s.count = 0
	s.lastBarcode = ""
	s.lastAcceptedAt = time.Time{}
}

func (s *Session) IsEmpty() bool {
	return s.count == 0 && s.lastBarcode == "" && s.lastAcceptedAt.IsZero()
}

func (s *Session) Len() int {
	return s.count
}

func (s *Session) Snapshot() []MedicineRecord {
	snapshot := make([]MedicineRecord, 0, len(s.records))
	for _, record := range s.records {
		snapshot = append(snapshot, record.Clone())
	}
	return snapshot
}

func (s *Session) LastAccepted() (Barcode, time.Time) {
	return s.lastBarcode, s.lastAcceptedAt
}
