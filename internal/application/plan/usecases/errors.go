package usecases

import (
	"errors"

	"github.com/talento-hq/talento/internal/domain/plan"
	apperrors "github.com/talento-hq/talento/internal/shared/errors"
)

// mapPlanError converts domain validation failures into client errors and
// leaves anything else untouched.
func mapPlanError(err error) error {
	switch {
	case errors.Is(err, plan.ErrPlanNotFound):
		return apperrors.NewNotFoundError("Plan not found")
	case errors.Is(err, plan.ErrPlanNameExists):
		return apperrors.NewValidationError("Plan with this name already exists")
	case errors.Is(err, plan.ErrPlanNameRequired),
		errors.Is(err, plan.ErrPlanNameTooLong),
		errors.Is(err, plan.ErrNegativePrice),
		errors.Is(err, plan.ErrInvalidQuota):
		return apperrors.NewValidationError(err.Error())
	}
	return err
}
