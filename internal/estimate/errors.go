package estimate

import "errors"

var (
	ErrNoMilestone     = errors.New("no milestone configured")
	ErrInvalidWorkload = errors.New("developer count and work hours per day must be positive")
)
