package diag

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	// SevWarning is for discouraged but possibly intended code.
	SevWarning Severity = iota + 1
	// SevError is for code that is wrong whenever the rule matches.
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}
