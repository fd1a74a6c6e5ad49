package plan

import "context"

type Repository interface {
	Create(ctx context.Context, plan *Plan) error
	Update(ctx context.Context, plan *Plan) error
	// Delete removes the plan only while no account and no pending payment
	// references it, and reports how many still do when it refuses.
	Delete(ctx context.Context, planID uint) (inUse int64, err error)
	GetByID(ctx context.Context, id uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	GetByName(ctx context.Context, name string) (*Plan, error)
	// GetDefault returns the active, non-custom, zero-price plan with the
	// lowest display order, or nil when none exists.
	GetDefault(ctx context.Context) (*Plan, error)
	GetByIDs(ctx context.Context, ids []uint) ([]*Plan, error)
	ListAll(ctx context.Context) ([]*Plan, error)
	ListActive(ctx context.Context) ([]*Plan, error)
	MaxDisplayOrder(ctx context.Context) (int, error)
}
