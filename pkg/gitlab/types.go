package gitlab

// Issue is the GitLab REST v4 issue object (fields used by this service only).
type Issue struct {
	ID          int        `json:"id"`
	IID         int        `json:"iid"`
	ProjectID   int        `json:"project_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	State       string     `json:"state"`
	Labels      []string   `json:"labels"`
	Milestone   *Milestone `json:"milestone"`
	WebURL      string     `json:"web_url"`
}

// Milestone is the GitLab REST v4 milestone object.
type Milestone struct {
	ID      int    `json:"id"`
	IID     int    `json:"iid"`
	Title   string `json:"title"`
	DueDate string `json:"due_date"`
	State   string `json:"state"`
}

// Note is a GitLab issue note (comment).
type Note struct {
	ID        int    `json:"id"`
	Body      string `json:"body"`
	System    bool   `json:"system"`
	CreatedAt string `json:"created_at"`
	Author    struct {
		ID       int    `json:"id"`
		Username string `json:"username"`
		Name     string `json:"name"`
	} `json:"author"`
}

// UpdateIssueRequest is the body for PUT /projects/:id/issues/:iid.
type UpdateIssueRequest struct {
	Description *string `json:"description,omitempty"`
}

// UpdateMilestoneRequest is the body for PUT /projects/:id/milestones/:milestone_id.
type UpdateMilestoneRequest struct {
	DueDate string `json:"due_date,omitempty"`
}
