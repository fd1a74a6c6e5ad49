package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/domain/plan"
	"github.com/talento-hq/talento/internal/domain/shared/valueobjects"
	"github.com/talento-hq/talento/internal/testdata"
)

func createPlan(t *testing.T, repo plan.Repository, opts testdata.PlanOptions) *plan.Plan {
	t.Helper()
	p, err := testdata.Plan(opts)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestPlanRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	p := createPlan(t, repo, testdata.PlanOptions{PriceCents: 1800, Quota: 30})
	assert.NotZero(t, p.ID())

	found, err := repo.GetBySID(ctx, p.SID())
	require.NoError(t, err)
	assert.Equal(t, p.Name(), found.Name())
	assert.Equal(t, int64(1800), found.Price().AmountInCents())
	assert.Equal(t, 30, found.InterviewQuota().Int())
	assert.Equal(t, p.Features(), found.Features())

	_, err = repo.GetByID(ctx, 9999)
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestPlanRepository_ZeroValuesSurviveCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())

	p := createPlan(t, repo, testdata.PlanOptions{PriceCents: 900, Quota: 0, Inactive: true})

	found, err := repo.GetByID(context.Background(), p.ID())
	require.NoError(t, err)
	assert.Equal(t, 0, found.InterviewQuota().Int())
	assert.False(t, found.IsActive())
}

func TestPlanRepository_DuplicateName(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())

	p := createPlan(t, repo, testdata.PlanOptions{Quota: 5})

	dup, err := plan.NewPlan(p.Name(), valueobjects.NewMoney(0, "USD"), plan.InterviewQuota(5), plan.Options{IsActive: true})
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(context.Background(), dup), plan.ErrPlanNameExists)
}

func TestPlanRepository_UnlimitedQuotaRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())

	p := createPlan(t, repo, testdata.PlanOptions{PriceCents: 3000, Quota: int(plan.Unlimited)})

	found, err := repo.GetByID(context.Background(), p.ID())
	require.NoError(t, err)
	assert.True(t, found.InterviewQuota().IsUnlimited())
}

func TestPlanRepository_GetDefault(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	def, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	assert.Nil(t, def, "no plans yet")

	createPlan(t, repo, testdata.PlanOptions{PriceCents: 900, Quota: 10, Order: 0})
	createPlan(t, repo, testdata.PlanOptions{Quota: -1, IsCustom: true, Order: 0})
	createPlan(t, repo, testdata.PlanOptions{Quota: 1, Inactive: true, Order: 0})
	free := createPlan(t, repo, testdata.PlanOptions{Quota: 5, Order: 1})

	def, err = repo.GetDefault(ctx)
	require.NoError(t, err)
	require.NotNil(t, def)
	assert.Equal(t, free.ID(), def.ID())
}

func TestPlanRepository_ListAndOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	b := createPlan(t, repo, testdata.PlanOptions{Quota: 5, Order: 2})
	a := createPlan(t, repo, testdata.PlanOptions{Quota: 5, Order: 1})
	createPlan(t, repo, testdata.PlanOptions{Quota: 5, Order: 3, Inactive: true})

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, a.ID(), active[0].ID())
	assert.Equal(t, b.ID(), active[1].ID())

	maxOrder, err := repo.MaxDisplayOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, maxOrder)

	byIDs, err := repo.GetByIDs(ctx, []uint{a.ID(), b.ID()})
	require.NoError(t, err)
	assert.Len(t, byIDs, 2)
}

func TestPlanRepository_MaxDisplayOrderEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())

	maxOrder, err := repo.MaxDisplayOrder(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, maxOrder)
}

func TestPlanRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlanRepository(db, testLogger())
	ctx := context.Background()

	p := createPlan(t, repo, testdata.PlanOptions{Quota: 5})
	require.NoError(t, p.Rename("Renamed"))
	require.NoError(t, p.UpdateQuota(plan.InterviewQuota(12)))
	p.SetRecommended(true)
	require.NoError(t, repo.Update(ctx, p))

	found, err := repo.GetByID(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Renamed", found.Name())
	assert.Equal(t, 12, found.InterviewQuota().Int())
	assert.True(t, found.IsRecommended())
}

func TestPlanRepository_DeleteGuard(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	accountRepo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	used := createPlan(t, planRepo, testdata.PlanOptions{Quota: 5})
	unused := createPlan(t, planRepo, testdata.PlanOptions{Quota: 5})

	planID := used.ID()
	for i := 0; i < 2; i++ {
		a, err := testdata.Account(&planID)
		require.NoError(t, err)
		require.NoError(t, accountRepo.Create(ctx, a))
	}

	inUse, err := planRepo.Delete(ctx, used.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(2), inUse)
	_, err = planRepo.GetByID(ctx, used.ID())
	assert.NoError(t, err, "referenced plan survives")

	inUse, err = planRepo.Delete(ctx, unused.ID())
	require.NoError(t, err)
	assert.Zero(t, inUse)
	_, err = planRepo.GetByID(ctx, unused.ID())
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)

	_, err = planRepo.Delete(ctx, 4242)
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}

func TestPlanRepository_DeleteGuardCountsPendingPayments(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	paymentRepo := NewPaymentRepository(db, testLogger())
	ctx := context.Background()

	target := createPlan(t, planRepo, testdata.PlanOptions{PriceCents: 4900, Quota: 50})
	pending := createManualPayment(t, paymentRepo, 1, target.ID(), 4900)

	inUse, err := planRepo.Delete(ctx, target.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(1), inUse)
	_, err = planRepo.GetByID(ctx, target.ID())
	require.NoError(t, err, "a plan awaiting approval survives")

	require.NoError(t, pending.Reject("duplicate"))
	ok, err := paymentRepo.TransitionFromPending(ctx, pending)
	require.NoError(t, err)
	require.True(t, ok)

	inUse, err = planRepo.Delete(ctx, target.ID())
	require.NoError(t, err)
	assert.Zero(t, inUse, "finalized payments do not block deletion")
	_, err = planRepo.GetByID(ctx, target.ID())
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
}
