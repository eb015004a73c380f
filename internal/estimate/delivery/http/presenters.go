package http

import (
	"errors"

	"gitlab-master-sync/internal/estimate"
)

// --- Request DTOs ---

type runReq struct {
	MilestoneID        int  `json:"milestone_id"`
	RecalculateDueDate bool `json:"recalculate_due_date"`
	DryRun             bool `json:"dry_run"`
}

func (r runReq) validate() error {
	if r.MilestoneID < 0 {
		return errors.New("milestone_id must not be negative")
	}
	return nil
}

func (r runReq) toInput() estimate.RunInput {
	return estimate.RunInput{
		MilestoneID:        r.MilestoneID,
		RecalculateDueDate: r.RecalculateDueDate,
		DryRun:             r.DryRun,
	}
}

// --- Response DTOs ---

type issueResp struct {
	IID       int     `json:"iid"`
	Title     string  `json:"title"`
	Estimates int     `json:"estimates"`
	Hours     float64 `json:"hours"`
	Changed   bool    `json:"changed"`
}

type runResp struct {
	MilestoneID int         `json:"milestone_id"`
	Issues      []issueResp `json:"issues"`
	TotalHours  float64     `json:"total_hours"`
	DueDate     string      `json:"due_date,omitempty"`
}

func (h *handler) newRunResp(out estimate.RunOutput) runResp {
	issues := make([]issueResp, len(out.Issues))
	for i, est := range out.Issues {
		issues[i] = issueResp{
			IID:       est.IID,
			Title:     est.Title,
			Estimates: est.Estimates,
			Hours:     est.Hours,
			Changed:   est.Changed,
		}
	}
	return runResp{
		MilestoneID: out.MilestoneID,
		Issues:      issues,
		TotalHours:  out.TotalHours,
		DueDate:     out.DueDate,
	}
}
