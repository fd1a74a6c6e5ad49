package account

import (
	"context"

	"github.com/talento-hq/talento/internal/shared/authorization"
)

// ListFilter narrows account listings.
type ListFilter struct {
	Role     authorization.UserRole
	Page     int
	PageSize int
}

type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id uint) (*Account, error)
	// GetByIDForUpdate is GetByID with a row lock held until the enclosing
	// transaction ends.
	GetByIDForUpdate(ctx context.Context, id uint) (*Account, error)
	GetBySID(ctx context.Context, sid string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context, filter ListFilter) ([]*Account, int64, error)
	ListRecent(ctx context.Context, role authorization.UserRole, limit int) ([]*Account, error)
	CountByRole(ctx context.Context, role authorization.UserRole) (int64, error)
	CountByPlanID(ctx context.Context, planID uint) (int64, error)
	UpdateRole(ctx context.Context, id uint, role authorization.UserRole) error

	// IncrementUsage atomically consumes one unit of quota. The increment
	// only happens while the account still points at planID and, for a
	// finite limit, while usage is below it. A negative limit means
	// unlimited. It reports whether the increment happened.
	IncrementUsage(ctx context.Context, id, planID uint, limit int) (bool, error)

	// ApplyPlan sets the plan reference, resets usage to zero and marks the
	// payment status active.
	ApplyPlan(ctx context.Context, id, planID uint) error
}
