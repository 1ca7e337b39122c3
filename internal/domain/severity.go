package domain

type Severity string

const (
	SeverityNone  Severity = "none"
	SeverityFound Severity = "found"
)

// ClassifySeverity treats any common interaction as maximal severity.
func ClassifySeverity(commonCount int) Severity {
	switch {
	case commonCount > 0:
		return SeverityFound
	default:
		return SeverityNone
	}
}

func (s Severity) Label() string {
	switch s {
	case SeverityFound:
		return "Interactions found"
	case SeverityNone:
		return "No interactions found"
	default:
		return "Unknown"
	}
}
