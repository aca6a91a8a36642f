package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var planDay = testutil.Day(2026, time.March, 10)

const planDate = "2026-03-10"

func intPtr(n int) *int { return &n }

// planFixture is an in-memory store with the repositories a plan run needs.
type planFixture struct {
	db         *sql.DB
	categories *repository.SQLiteCategoryRepo
	pool       *repository.SQLitePoolItemRepo
	journal    *repository.SQLiteJournalRepo
	feedback   *repository.SQLiteFeedbackRepo
	plans      *repository.SQLitePlanRepo
	entries    *repository.SQLiteScheduleEntryRepo
}

func newPlanFixture(t *testing.T) *planFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &planFixture{
		db:         database,
		categories: repository.NewSQLiteCategoryRepo(database),
		pool:       repository.NewSQLitePoolItemRepo(database),
		journal:    repository.NewSQLiteJournalRepo(database),
		feedback:   repository.NewSQLiteFeedbackRepo(database),
		plans:      repository.NewSQLitePlanRepo(database),
		entries:    repository.NewSQLiteScheduleEntryRepo(database),
	}
}

func testPlanSettings() PlanSettings {
	s := DefaultPlanSettings()
	s.Location = time.UTC
	return s
}

// service builds a plan service over the fixture. A nil uow uses the real one.
func (f *planFixture) service(client *testutil.ScriptedLLM, uow db.UnitOfWork, logger *zap.Logger, observers ...UseCaseObserver) PlanService {
	if uow == nil {
		uow = testutil.NewTestUoW(f.db)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return NewPlanService(PlanDeps{
		Pool:       f.pool,
		Categories: f.categories,
		Journal:    f.journal,
		Feedback:   f.feedback,
		Plans:      f.plans,
		Entries:    f.entries,
		UoW:        uow,
		LLM:        client,
		Logger:     logger,
	}, testPlanSettings(), observers...)
}

// seeded holds the rows created by seedPool.
type seeded struct {
	exercise, home, work        *domain.Category
	walk, water, piano, dentist *domain.PoolItem
	paused                      *domain.PoolItem
}

// seedPool stores three categories (Work disabled) and a pool where Walk
// and Water plants are available, Learn piano is cooling down, Taxes is
// paused and Dentist is an event on planDay.
func (f *planFixture) seedPool(t *testing.T) seeded {
	t.Helper()
	ctx := context.Background()

	s := seeded{
		exercise: testutil.NewTestCategory("Exercise", 1),
		home:     testutil.NewTestCategory("Home", 2),
		work:     testutil.NewTestCategory("Work", 3),
	}
	s.work.Enabled = false
	for _, c := range []*domain.Category{s.exercise, s.home, s.work} {
		require.NoError(t, f.categories.Create(ctx, c))
	}

	s.walk = testutil.NewTestPoolItem(domain.PoolTask, "Walk",
		testutil.WithPoolCategory(s.exercise.ID), testutil.WithLastUsed(planDay.AddDate(0, 0, -2)),
		testutil.WithUseCount(4), testutil.WithCooldown(1))
	s.water = testutil.NewTestPoolItem(domain.PoolTask, "Water plants", testutil.WithPoolCategory(s.home.ID))
	s.piano = testutil.NewTestPoolItem(domain.PoolAspiration, "Learn piano",
		testutil.WithLastUsed(planDay.AddDate(0, 0, -1)), testutil.WithUseCount(2))
	s.paused = testutil.NewTestPoolItem(domain.PoolTask, "Taxes", testutil.WithPoolStatus(domain.PoolPaused))
	s.dentist = testutil.NewTestEvent("Dentist", planDay.Add(11*time.Hour), time.Hour)
	for _, p := range []*domain.PoolItem{s.walk, s.water, s.piano, s.paused, s.dentist} {
		require.NoError(t, f.pool.Create(ctx, p))
	}
	return s
}

func (f *planFixture) count(t *testing.T, table string) int {
	t.Helper()
	var n int
	require.NoError(t, f.db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

// fenced wraps body the way models usually answer.
func fenced(body string) string {
	return "Here is your day.\n```json\n" + body + "\n```"
}

// fullResponse exercises every commit path against seedPool.
var fullResponse = fenced(`{
  "capacity_note": "A medium day.",
  "mental_state_note": "Go gently.",
  "entries": [
    {"category": "Exercise", "title": "  WALK ", "time": "morning", "duration_min": 30},
    {"category": "home", "title": "Water plants", "time": "18:30", "suggested_order": 2},
    {"category": "Creative", "title": "Doodle", "originated": true},
    {"category": "Work", "title": "Emails", "time": "afternoon"},
    {"category": "Home", "title": "dentist", "time": "11:00"},
    {"category": "Exercise", "title": "Stretch", "time": "evening", "originated": true}
  ]
}`)
