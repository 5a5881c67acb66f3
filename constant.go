// FILE: lixenwraith/joblog/constant.go
package joblog

// Severity is the tag word of a record. All severities are always emitted.
type Severity int

const (
	SeverityStatus Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

// severityLabels and severityPadding are indexed by Severity.
// Every label is left-padded to the width of the longest one (WARNING).
var (
	severityLabels  = [...]string{"STATUS", "INFO", "WARNING", "ERROR"}
	severityPadding = [...]string{" ", "   ", "", "  "}
)

// severityWidth is the column width all severity labels are aligned to
const severityWidth = 7

// String returns the tag word written to the log
func (s Severity) String() string {
	if s < SeverityStatus || s > SeverityError {
		return "UNKNOWN"
	}
	return severityLabels[s]
}

// padding returns the spaces placed before the record text so labels align
func (s Severity) padding() string {
	if s < SeverityStatus || s > SeverityError {
		return ""
	}
	return severityPadding[s]
}

// Outcome selects what happens after an ERROR record is written.
type Outcome int

const (
	// OutcomeRecoverable returns the message to the caller as a *UserError
	OutcomeRecoverable Outcome = iota
	// OutcomeFatal writes a blank line to every sink and exits the process with status 1
	OutcomeFatal
)

// String returns the outcome name
func (o Outcome) String() string {
	if o == OutcomeFatal {
		return "fatal"
	}
	return "recoverable"
}

// Record layout
const (
	// Width of the memory and disk usage fields
	usageFieldWidth = 6
	// Rendered in place of a usage value that could not be sampled
	usageUnavailable = "      "
	// Bytes per GiB for usage fields
	bytesPerGB = 1024 * 1024 * 1024
	// Exit status used by OutcomeFatal
	fatalExitCode = 1
)

// Section messages
const (
	sectionStarted   = "STARTED "
	sectionCompleted = "COMPLETED "
	noOpenSection    = "no section to complete"
)
