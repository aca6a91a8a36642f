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

func at(day, hour int) time.Time {
	return time.Date(2026, 3, day, hour, 0, 0, 0, time.UTC)
}

func TestJournalRepo_ListBetween_HalfOpen(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	before := testutil.NewTestJournal("too early", at(1, 23))
	first := testutil.NewTestJournal("first", at(2, 0), testutil.WithEnergy(6))
	second := testutil.NewTestJournal("second", at(4, 8), testutil.WithSleep(3))
	boundary := testutil.NewTestJournal("on boundary", at(9, 0))
	for _, j := range []*domain.JournalEntry{second, boundary, before, first} {
		require.NoError(t, repo.Create(ctx, j))
	}

	list, err := repo.ListBetween(ctx, at(2, 0), at(9, 0))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Content)
	require.NotNil(t, list[0].Energy)
	assert.Equal(t, 6, *list[0].Energy)
	assert.Nil(t, list[0].Sleep)
	assert.Equal(t, "second", list[1].Content)
	require.NotNil(t, list[1].Sleep)
	assert.Equal(t, 3, *list[1].Sleep)
}

func TestJournalRepo_ListRecentBefore(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	for i, day := range []int{1, 2, 3, 4, 5} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestJournal(string(rune('a'+i)), at(day, 12))))
	}

	list, err := repo.ListRecentBefore(ctx, at(5, 0), 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"d", "c", "b"}, []string{list[0].Content, list[1].Content, list[2].Content})
}

func TestJournalRepo_RatingOutOfRangeRejected(t *testing.T) {
	repo := NewSQLiteJournalRepo(testutil.NewTestDB(t))
	j := testutil.NewTestJournal("x", at(1, 1), testutil.WithEnergy(11))
	assert.Error(t, repo.Create(context.Background(), j))
}

func TestFeedbackRepo_ListRecentBetween(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	plans := NewSQLitePlanRepo(database)
	cats := NewSQLiteCategoryRepo(database)
	repo := NewSQLiteFeedbackRepo(database)

	cat := testutil.NewTestCategory("Body", 1)
	require.NoError(t, cats.Create(ctx, cat))
	plan := testutil.NewTestPlan(testutil.Day(2026, 3, 3), domain.CapacityHigh)
	require.NoError(t, plans.Create(ctx, plan))

	old := testutil.NewTestFeedback(plan, domain.FeedbackAboutRight, "old", at(1, 9))
	mid := testutil.NewTestFeedback(plan, domain.FeedbackTooMuch, "a lot", at(3, 21))
	recent := testutil.NewTestFeedback(plan, domain.FeedbackOneArea, "more body", at(4, 21))
	recent.CategoryID = &cat.ID
	for _, f := range []*domain.DailyFeedback{old, mid, recent} {
		require.NoError(t, repo.Create(ctx, f))
	}

	list, err := repo.ListRecentBetween(ctx, at(2, 0), at(10, 0), 5)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, recent.ID, list[0].ID)
	assert.Equal(t, "Body", list[0].CategoryName)
	assert.Equal(t, "2026-03-03", list[0].PlanDate.Format(domain.DateLayout))
	assert.Equal(t, domain.FeedbackTooMuch, list[1].Rating)
	assert.Equal(t, "", list[1].CategoryName)

	limited, err := repo.ListRecentBetween(ctx, at(1, 0), at(10, 0), 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
