package usecases

import (
	"context"

	"github.com/talento-hq/talento/internal/application/plan/dto"
)

// PublicPlanCache caches the public plan list. A miss returns ok=false.
type PublicPlanCache interface {
	Get(ctx context.Context) (plans []*dto.PlanDTO, ok bool)
	Set(ctx context.Context, plans []*dto.PlanDTO)
	Invalidate(ctx context.Context)
}

type nopCache struct{}

func (nopCache) Get(context.Context) ([]*dto.PlanDTO, bool) { return nil, false }
func (nopCache) Set(context.Context, []*dto.PlanDTO)       {}
func (nopCache) Invalidate(context.Context)                {}

func cacheOrNop(c PublicPlanCache) PublicPlanCache {
	if c == nil {
		return nopCache{}
	}
	return c
}
