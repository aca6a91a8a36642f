package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanRepo_CreateAndGetByDate(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityMedium)
	plan.Summary = "steady day"
	require.NoError(t, repo.Create(ctx, plan))

	got, err := repo.GetByDate(ctx, testutil.Day(2026, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, domain.CapacityMedium, got.Capacity)
	assert.Equal(t, "steady day", got.Summary)

	_, err = repo.GetByDate(ctx, testutil.Day(2026, 3, 3))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanRepo_OnePlanPerDate(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewSQLitePlanRepo(database)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityLow)))
	err := repo.Create(ctx, testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityHigh))
	require.Error(t, err)
}

func TestPlanRepo_Delete(t *testing.T) {
	repo := NewSQLitePlanRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityLow)
	require.NoError(t, repo.Create(ctx, plan))
	require.NoError(t, repo.Delete(ctx, plan.ID))

	_, err := repo.GetByID(ctx, plan.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScheduleEntryRepo_ListByPlan_Ordering(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plans := NewSQLitePlanRepo(database)
	entries := NewSQLiteScheduleEntryRepo(database)

	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityMedium)
	require.NoError(t, plans.Create(ctx, plan))

	late := testutil.NewTestEntry(plan.ID, "Evening walk",
		testutil.WithScheduledAt(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC)))
	early := testutil.NewTestEntry(plan.ID, "Stretch",
		testutil.WithScheduledAt(time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)))
	loose := testutil.NewTestEntry(plan.ID, "Read")
	for _, e := range []*domain.ScheduleEntry{late, loose, early} {
		require.NoError(t, entries.Create(ctx, e))
	}

	list, err := entries.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Stretch", "Evening walk", "Read"},
		[]string{list[0].Title, list[1].Title, list[2].Title})
}

func TestScheduleEntryRepo_UpdateStatusAndOriginated(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plans := NewSQLitePlanRepo(database)
	entries := NewSQLiteScheduleEntryRepo(database)

	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityMedium)
	require.NoError(t, plans.Create(ctx, plan))

	e := testutil.NewTestEntry(plan.ID, "Sketch something")
	e.Originated = true
	require.NoError(t, entries.Create(ctx, e))

	now := time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)
	require.NoError(t, e.SetStatus(domain.EntryCompleted, now))
	e.Notes = "fun"
	require.NoError(t, entries.Update(ctx, e))

	got, err := entries.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, got.Originated)
	assert.Equal(t, domain.EntryCompleted, got.Status)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, now.Equal(*got.CompletedAt))
	assert.Equal(t, "fun", got.Notes)
}

func TestScheduleEntryRepo_DeleteByPlan(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plans := NewSQLitePlanRepo(database)
	entries := NewSQLiteScheduleEntryRepo(database)

	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 2), domain.CapacityMedium)
	require.NoError(t, plans.Create(ctx, plan))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(plan.ID, "A")))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(plan.ID, "B")))

	require.NoError(t, entries.DeleteByPlan(ctx, plan.ID))
	list, err := entries.ListByPlan(ctx, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestScheduleEntryRepo_CompletionStatsBetween(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plans := NewSQLitePlanRepo(database)
	entries := NewSQLiteScheduleEntryRepo(database)

	inWindow := testutil.NewTestPlan(testutil.Day(2026, 3, 5), domain.CapacityMedium)
	outside := testutil.NewTestPlan(testutil.Day(2026, 3, 10), domain.CapacityMedium)
	require.NoError(t, plans.Create(ctx, inWindow))
	require.NoError(t, plans.Create(ctx, outside))

	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(inWindow.ID, "a",
		testutil.WithEntryStatus(domain.EntryCompleted))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(inWindow.ID, "b")))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(inWindow.ID, "c",
		testutil.WithEntryStatus(domain.EntrySkipped))))
	require.NoError(t, entries.Create(ctx, testutil.NewTestEntry(outside.ID, "d",
		testutil.WithEntryStatus(domain.EntryCompleted))))

	stats, err := entries.CompletionStatsBetween(ctx, testutil.Day(2026, 3, 3), testutil.Day(2026, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, CompletionStats{Scheduled: 3, Completed: 1}, stats)

	empty, err := entries.CompletionStatsBetween(ctx, testutil.Day(2026, 1, 1), testutil.Day(2026, 1, 8))
	require.NoError(t, err)
	assert.Equal(t, CompletionStats{}, empty)
}
