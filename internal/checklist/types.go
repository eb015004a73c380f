package checklist

// Entry is one checklist line that references an issue.
type Entry struct {
	Line     int    // Zero-based line index in the parsed text
	Start    int    // Byte offset of RawLine in the parsed text
	End      int    // Start + len(RawLine)
	RawLine  string // Original line, byte-for-byte
	IssueRef int    // Referenced issue IID, 0 when none could be read
	Open     bool   // true if the line shows an unchecked box
}

// IssueState is the authoritative state of a referenced issue.
type IssueState int

const (
	// StateUnknown means the tracker could not be asked; it reconciles as open.
	StateUnknown IssueState = iota
	StateOpen
	StateClosed
)

// ShouldBeOpen is false only for StateClosed.
func (s IssueState) ShouldBeOpen() bool {
	return s != StateClosed
}

func (s IssueState) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// Mismatch records an entry whose local box disagrees with the tracker.
type Mismatch struct {
	IssueRef     int  `json:"issue_ref"`
	Line         int  `json:"line"`
	WasOpen      bool `json:"was_open"`
	ShouldBeOpen bool `json:"should_be_open"`
	Unknown      bool `json:"unknown"` // State came from a failed lookup
	Applied      bool `json:"applied"` // The checkbox token was rewritten
}

// Result is the outcome of Reconcile.
type Result struct {
	Text       string
	Changed    bool
	Mismatches []Mismatch
}

// Stats represents checklist progress
type Stats struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Pending   int     `json:"pending"`
	Progress  float64 `json:"progress"` // Completion percentage (0-100)
}

// Options configures the checklist Service.
type Options struct {
	Grammar       string // GrammarLegacy (default) or GrammarStrict
	LineSeparator string // Defaults to DefaultLineSeparator
}
