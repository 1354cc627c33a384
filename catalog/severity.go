package catalog

// Severity classifies an event for display purposes. It is a closed
// enumeration: every severity maps to exactly one embed color.
type Severity string

// Severity levels.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
	SeverityNeutral Severity = "neutral"
)

// Display color constants, as 24-bit RGB integers.
const (
	ColorInfo    = 0x3498db // blue
	ColorSuccess = 0x2ecc71 // green
	ColorWarning = 0xf1c40f // yellow
	ColorError   = 0xe74c3c // red
	ColorNeutral = 0x95a5a6 // gray
)

// Color returns the display color bound to this severity.
// Unknown severities fall back to the info color.
func (s Severity) Color() int {
	switch s {
	case SeveritySuccess:
		return ColorSuccess
	case SeverityWarning:
		return ColorWarning
	case SeverityError:
		return ColorError
	case SeverityNeutral:
		return ColorNeutral
	default:
		return ColorInfo
	}
}

// Valid reports whether s is one of the defined severity levels.
func (s Severity) Valid() bool {
	switch s {
	case SeverityInfo, SeveritySuccess, SeverityWarning, SeverityError, SeverityNeutral:
		return true
	default:
		return false
	}
}
