package diagnostics

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SeverityInfo is for informational diagnostics.
	SeverityInfo Severity = iota
	// SeverityWarning is for diagnostics that do not block generation.
	SeverityWarning
	// SeverityError is for diagnostics that abort generation for a candidate.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	}
	return "unknown"
}
