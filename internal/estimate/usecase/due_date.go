package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"gitlab-master-sync/internal/estimate"
	"gitlab-master-sync/pkg/gcalendar"
)

// dueDate spreads hours over the team and counts the resulting working days from today.
func (uc *implUseCase) dueDate(hours float64) (time.Time, error) {
	if uc.cfg.DeveloperCount <= 0 || uc.cfg.WorkHoursPerDay <= 0 {
		return time.Time{}, estimate.ErrInvalidWorkload
	}

	perDeveloper := math.Ceil(hours / float64(uc.cfg.DeveloperCount))
	days := int(math.Ceil(perDeveloper / uc.cfg.WorkHoursPerDay))
	return uc.calendar.AddWeekdays(uc.now(), days), nil
}

func (uc *implUseCase) updateDueDate(ctx context.Context, milestoneID int, hours float64, dryRun bool) (string, error) {
	due, err := uc.dueDate(hours)
	if err != nil {
		return "", err
	}
	formatted := uc.calendar.Format(due)
	if dryRun {
		return formatted, nil
	}

	if err := uc.repo.UpdateMilestoneDueDate(ctx, milestoneID, due); err != nil {
		return "", fmt.Errorf("estimate.usecase.updateDueDate: milestone %d: %w", milestoneID, err)
	}

	if uc.events != nil {
		// Calendar errors are not fatal, the milestone is already updated.
		_, err := uc.events.UpsertAllDayEvent(ctx, gcalendar.AllDayEventRequest{
			CalendarID:  uc.cfg.CalendarID,
			EventID:     fmt.Sprintf("glmilestone%ddue", milestoneID),
			Summary:     fmt.Sprintf("Milestone %d due", milestoneID),
			Description: fmt.Sprintf("Estimated %sh of open work.", estimate.FormatHours(hours)),
			Date:        due,
		})
		if err != nil {
			uc.l.Warnf(ctx, "estimate.usecase.updateDueDate: calendar: %v", err)
		}
	}

	return formatted, nil
}
