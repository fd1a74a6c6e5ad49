package plan

import "errors"

var (
	ErrPlanNotFound     = errors.New("plan not found")
	ErrPlanNameRequired = errors.New("plan name is required")
	ErrPlanNameTooLong  = errors.New("plan name too long (max 100 characters)")
	ErrPlanNameExists   = errors.New("plan name already exists")
	ErrNegativePrice    = errors.New("plan price cannot be negative")
	ErrInvalidQuota     = errors.New("invalid interview limit")
	ErrPlanInactive     = errors.New("plan is not active")
	ErrPlanContactSales = errors.New("plan requires contacting sales")
)
