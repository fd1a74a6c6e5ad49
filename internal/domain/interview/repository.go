package interview

import "context"

type Stats struct {
	Total     int64
	Completed int64
	Pending   int64
}

type Repository interface {
	Create(ctx context.Context, interview *Interview) error
	Update(ctx context.Context, interview *Interview) error
	GetBySID(ctx context.Context, sid string) (*Interview, error)
	GetByLink(ctx context.Context, link string) (*Interview, error)
	ListByAccount(ctx context.Context, accountID uint, limit int) ([]*Interview, error)
	// StatsByAccount counts the account's interviews; accountID 0 counts all.
	StatsByAccount(ctx context.Context, accountID uint) (Stats, error)
}
