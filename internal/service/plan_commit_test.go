package service

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/scheduler"
	"github.com/alexanderramin/drift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommit_ExistingPlanInsideTransaction(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	existing := testutil.NewTestPlan(planDay, domain.CapacityLow)
	require.NoError(t, f.plans.Create(ctx, existing))

	committer := NewPlanCommitter(testutil.NewTestUoW(f.db), nil)
	_, err := committer.Commit(ctx, CommitInput{
		Day:      scheduler.NewDay(planDay, time.UTC),
		Capacity: domain.CapacityHigh,
		Response: &intelligence.PlanResponse{},
	})
	require.Error(t, err)
	assert.Equal(t, contract.ErrPlanExists, contract.PlanErrorCode(err))

	plan, err := f.plans.GetByDate(ctx, planDay)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, plan.ID)
}

func TestCommit_ReplaceDeletesOldEntries(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	cat := testutil.NewTestCategory("Home", 1)
	require.NoError(t, f.categories.Create(ctx, cat))

	old := testutil.NewTestPlan(planDay, domain.CapacityLow)
	require.NoError(t, f.plans.Create(ctx, old))
	require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry(old.ID, "Old one")))
	require.NoError(t, f.entries.Create(ctx, testutil.NewTestEntry(old.ID, "Old two")))

	committer := NewPlanCommitter(testutil.NewTestUoW(f.db), nil)
	res, err := committer.Commit(ctx, CommitInput{
		Day:      scheduler.NewDay(planDay, time.UTC),
		Capacity: domain.CapacityMedium,
		Response: &intelligence.PlanResponse{Entries: []intelligence.ProposedEntry{
			{Category: "Home", Title: "Tidy desk", Originated: true},
		}},
		Replace: true,
	})
	require.NoError(t, err)
	assert.True(t, res.Replaced)
	assert.Equal(t, 1, res.EntryCount)

	entries, err := f.entries.ListByPlan(ctx, res.Plan.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Tidy desk", entries[0].Title)
	assert.Equal(t, 1, f.count(t, "schedule_entries"))
}

func TestCommit_MatchesByPoolItemID(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	cat := testutil.NewTestCategory("Home", 1)
	require.NoError(t, f.categories.Create(ctx, cat))
	item := testutil.NewTestPoolItem(domain.PoolTask, "Water plants", testutil.WithPoolCategory(cat.ID))
	require.NoError(t, f.pool.Create(ctx, item))

	committer := NewPlanCommitter(testutil.NewTestUoW(f.db), nil)
	res, err := committer.Commit(ctx, CommitInput{
		Day:      scheduler.NewDay(planDay, time.UTC),
		Capacity: domain.CapacityMedium,
		Response: &intelligence.PlanResponse{Entries: []intelligence.ProposedEntry{
			{Category: "Home", Title: "Give the ferns a drink", PoolItemID: item.ID},
		}},
		Availability: scheduler.Availability{Tasks: []domain.PoolItem{*item}},
	})
	require.NoError(t, err)

	entries, err := f.entries.ListByPlan(ctx, res.Plan.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].PoolItemID)
	assert.Equal(t, item.ID, *entries[0].PoolItemID)

	got, err := f.pool.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UseCount)
}

func TestCommit_OriginatedEntriesNeverLink(t *testing.T) {
	f := newPlanFixture(t)
	ctx := context.Background()
	cat := testutil.NewTestCategory("Home", 1)
	require.NoError(t, f.categories.Create(ctx, cat))
	item := testutil.NewTestPoolItem(domain.PoolTask, "Water plants")
	require.NoError(t, f.pool.Create(ctx, item))

	committer := NewPlanCommitter(testutil.NewTestUoW(f.db), nil)
	res, err := committer.Commit(ctx, CommitInput{
		Day:      scheduler.NewDay(planDay, time.UTC),
		Capacity: domain.CapacityMedium,
		Response: &intelligence.PlanResponse{Entries: []intelligence.ProposedEntry{
			{Category: "Home", Title: "water plants", Originated: true},
		}},
		Availability: scheduler.Availability{Tasks: []domain.PoolItem{*item}},
	})
	require.NoError(t, err)

	entries, err := f.entries.ListByPlan(ctx, res.Plan.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].PoolItemID)

	got, err := f.pool.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.Zero(t, got.UseCount)
	assert.Nil(t, got.LastUsedAt)
}
