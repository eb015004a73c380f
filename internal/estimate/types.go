package estimate

// Config is the estimate section of the service configuration.
type Config struct {
	MilestoneID        int
	SkipLabels         []string
	RecalculateDueDate bool
	DeveloperCount     int
	WorkHoursPerDay    float64
	CalendarID         string // Used only when a CalendarPublisher is configured
}

// RunInput controls one estimate run. Zero values fall back to Config.
type RunInput struct {
	MilestoneID        int
	RecalculateDueDate bool
	DryRun             bool
}

// IssueEstimate is the outcome for one considered issue.
type IssueEstimate struct {
	IID       int     `json:"iid"`
	Title     string  `json:"title"`
	Estimates int     `json:"estimates"` // Number of parsable estimate notes
	Hours     float64 `json:"hours"`     // Mean of the estimates, 0 without any
	Changed   bool    `json:"changed"`   // The footer had to be added or rewritten
}

// RunOutput summarises an estimate run.
type RunOutput struct {
	MilestoneID int             `json:"milestone_id"`
	Issues      []IssueEstimate `json:"issues"`
	TotalHours  float64         `json:"total_hours"`
	DueDate     string          `json:"due_date,omitempty"` // YYYY-MM-DD when recalculated
}
