package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hq/talento/internal/domain/interview"
	"github.com/talento-hq/talento/internal/testdata"
)

func createInterview(t *testing.T, repo *InterviewRepository, accountID uint) *interview.Interview {
	t.Helper()
	i, err := interview.NewInterview(accountID, testdata.JobTitle(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), i))
	return i
}

func TestInterviewRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db, testLogger())
	ctx := context.Background()

	i := createInterview(t, repo, 1)
	assert.NotZero(t, i.ID())

	byLink, err := repo.GetByLink(ctx, i.Link())
	require.NoError(t, err)
	assert.Equal(t, i.SID(), byLink.SID())
	assert.Equal(t, interview.StatusPending, byLink.Status())
	assert.Nil(t, byLink.Analysis())
	assert.Empty(t, byLink.Questions())

	_, err = repo.GetBySID(ctx, "itv_missing")
	assert.ErrorIs(t, err, interview.ErrInterviewNotFound)
}

func TestInterviewRepository_LifecycleUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db, testLogger())
	ctx := context.Background()

	i := createInterview(t, repo, 1)
	require.NoError(t, i.Start("Ada Lovelace", "ada@example.com", []string{"Q1", "Q2"}))
	require.NoError(t, repo.Update(ctx, i))
	require.NoError(t, i.Complete([]interview.Answer{{Question: "Q1", Answer: "A1"}}, interview.Analysis{
		Summary:         "solid",
		ConfidenceScore: 80,
		Strengths:       []string{"clarity"},
	}))
	require.NoError(t, repo.Update(ctx, i))

	stored, err := repo.GetBySID(ctx, i.SID())
	require.NoError(t, err)
	assert.Equal(t, interview.StatusCompleted, stored.Status())
	assert.Equal(t, "ada@example.com", stored.CandidateEmail())
	assert.Len(t, stored.Questions(), 2)
	require.Len(t, stored.Answers(), 1)
	assert.Equal(t, "A1", stored.Answers()[0].Answer)
	require.NotNil(t, stored.Analysis())
	assert.Equal(t, 80, stored.Analysis().ConfidenceScore)
	assert.NotNil(t, stored.CompletedAt())
}

func TestInterviewRepository_LinkCollisionRegenerates(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db, testLogger())
	ctx := context.Background()

	first := createInterview(t, repo, 1)

	second, err := interview.NewInterview(1, "Designer", nil)
	require.NoError(t, err)
	forced := interview.ReconstructInterview(0, second.SID(), 1, "Designer", first.Link(), "", "",
		[]interview.Question{}, []interview.Answer{}, nil, interview.StatusPending, nil, nil, nil,
		second.CreatedAt(), second.UpdatedAt())

	require.NoError(t, repo.Create(ctx, forced))
	assert.NotEqual(t, first.Link(), forced.Link())
	assert.NotZero(t, forced.ID())
}

func TestInterviewRepository_ListAndStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewInterviewRepository(db, testLogger())
	ctx := context.Background()

	var last *interview.Interview
	for k := 0; k < 4; k++ {
		last = createInterview(t, repo, 1)
	}
	createInterview(t, repo, 2)

	require.NoError(t, last.Start("Ada", "ada@example.com", []string{"Q"}))
	require.NoError(t, last.Complete([]interview.Answer{{Question: "Q", Answer: "A"}}, interview.Analysis{}))
	require.NoError(t, repo.Update(ctx, last))

	list, err := repo.ListByAccount(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, last.ID(), list[0].ID(), "newest first")

	limited, err := repo.ListByAccount(ctx, 1, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	stats, err := repo.StatsByAccount(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, interview.Stats{Total: 4, Completed: 1, Pending: 3}, stats)

	all, err := repo.StatsByAccount(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), all.Total)
}
