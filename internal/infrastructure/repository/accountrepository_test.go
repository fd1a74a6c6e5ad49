package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/domain/account"
	"github.com/talento-hq/talento/internal/shared/authorization"
	"github.com/talento-hq/talento/internal/testdata"
)

func createAccount(t *testing.T, repo *AccountRepository, planID *uint) *account.Account {
	t.Helper()
	a, err := testdata.Account(planID)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), a))
	return a
}

func TestAccountRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	a := createAccount(t, repo, nil)
	assert.NotZero(t, a.ID())

	bySID, err := repo.GetBySID(ctx, a.SID())
	require.NoError(t, err)
	assert.Equal(t, a.Email(), bySID.Email())
	assert.Nil(t, bySID.PlanID())
	assert.Equal(t, authorization.RoleMember, bySID.Role())

	byEmail, err := repo.GetByEmail(ctx, "  "+a.Email()+" ")
	require.NoError(t, err)
	assert.Equal(t, a.ID(), byEmail.ID())

	_, err = repo.GetByID(ctx, 777)
	assert.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestAccountRepository_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAccountRepository(db, testLogger())

	a := createAccount(t, repo, nil)

	dup, err := account.NewAccount(a.Email(), "hash", "Other", "Other Co", authorization.RoleMember, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, repo.Create(context.Background(), dup), account.ErrEmailExists)
}

func TestAccountRepository_IncrementUsage(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	p := createPlan(t, planRepo, testdata.PlanOptions{Quota: 2})
	planID := p.ID()
	a := createAccount(t, repo, &planID)

	ok, err := repo.IncrementUsage(ctx, a.ID(), planID, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.IncrementUsage(ctx, a.ID(), planID, 2)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.IncrementUsage(ctx, a.ID(), planID, 2)
	require.NoError(t, err)
	assert.False(t, ok, "limit reached")

	stored, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, stored.InterviewsUsed())

	ok, err = repo.IncrementUsage(ctx, a.ID(), planID+100, -1)
	require.NoError(t, err)
	assert.False(t, ok, "stale plan reference never increments")
}

func TestAccountRepository_IncrementUsageUnlimited(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	p := createPlan(t, planRepo, testdata.PlanOptions{Quota: -1})
	planID := p.ID()
	a := createAccount(t, repo, &planID)

	for i := 0; i < 25; i++ {
		ok, err := repo.IncrementUsage(ctx, a.ID(), planID, -1)
		require.NoError(t, err)
		require.True(t, ok)
	}

	stored, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, 25, stored.InterviewsUsed())
}

func TestAccountRepository_IncrementUsageConcurrent(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	const limit = 5
	const workers = 20

	p := createPlan(t, planRepo, testdata.PlanOptions{Quota: limit})
	planID := p.ID()
	a := createAccount(t, repo, &planID)

	var granted atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.IncrementUsage(ctx, a.ID(), planID, limit)
			assert.NoError(t, err)
			if ok {
				granted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(limit), granted.Load())
	stored, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	assert.Equal(t, limit, stored.InterviewsUsed())
}

func TestAccountRepository_ApplyPlan(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	free := createPlan(t, planRepo, testdata.PlanOptions{Quota: 5})
	pro := createPlan(t, planRepo, testdata.PlanOptions{PriceCents: 1800, Quota: 30})
	freeID := free.ID()
	a := createAccount(t, repo, &freeID)

	_, err := repo.IncrementUsage(ctx, a.ID(), freeID, 5)
	require.NoError(t, err)

	require.NoError(t, repo.ApplyPlan(ctx, a.ID(), pro.ID()))

	stored, err := repo.GetByID(ctx, a.ID())
	require.NoError(t, err)
	require.NotNil(t, stored.PlanID())
	assert.Equal(t, pro.ID(), *stored.PlanID())
	assert.Zero(t, stored.InterviewsUsed())
	assert.Equal(t, account.PaymentStatusActive, stored.PaymentStatus())
}

func TestAccountRepository_ListAndCount(t *testing.T) {
	db := setupTestDB(t)
	planRepo := NewPlanRepository(db, testLogger())
	repo := NewAccountRepository(db, testLogger())
	ctx := context.Background()

	p := createPlan(t, planRepo, testdata.PlanOptions{Quota: 5})
	planID := p.ID()
	for i := 0; i < 7; i++ {
		createAccount(t, repo, &planID)
	}
	admin := createAccount(t, repo, nil)
	require.NoError(t, repo.UpdateRole(ctx, admin.ID(), authorization.RoleSuperAdmin))

	members, total, err := repo.List(ctx, account.ListFilter{Role: authorization.RoleMember, Page: 2, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(7), total)
	assert.Len(t, members, 2)

	count, err := repo.CountByRole(ctx, authorization.RoleSuperAdmin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	onPlan, err := repo.CountByPlanID(ctx, planID)
	require.NoError(t, err)
	assert.Equal(t, int64(7), onPlan)

	recent, err := repo.ListRecent(ctx, authorization.RoleMember, 5)
	require.NoError(t, err)
	assert.Len(t, recent, 5)
}
