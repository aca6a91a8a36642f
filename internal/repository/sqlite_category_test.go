package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/drift/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepo_CreateAndGetByName_CaseInsensitive(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	c := testutil.NewTestCategory("Health", 1)
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByName(ctx, "HEALTH")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, "Health", got.Name)
	assert.True(t, got.Enabled)
}

func TestCategoryRepo_DuplicateNameRejected(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestCategory("Work", 1)))
	err := repo.Create(ctx, testutil.NewTestCategory("work", 2))
	require.Error(t, err)
}

func TestCategoryRepo_ListEnabled_OrderedByRankThenName(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	b := testutil.NewTestCategory("Body", 2)
	a := testutil.NewTestCategory("Art", 2)
	h := testutil.NewTestCategory("Home", 1)
	off := testutil.NewTestCategory("Admin", 0)
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, h))
	require.NoError(t, repo.Create(ctx, off))
	require.NoError(t, repo.SetEnabled(ctx, off.ID, false))

	list, err := repo.ListEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Home", "Art", "Body"}, []string{list[0].Name, list[1].Name, list[2].Name})

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestCategoryRepo_SetEnabled_NotFound(t *testing.T) {
	repo := NewSQLiteCategoryRepo(testutil.NewTestDB(t))
	err := repo.SetEnabled(context.Background(), "missing", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
