package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_AddsOriginatedColumn simulates a database created
// before schedule entries tracked originated suggestions. Existing rows must
// survive and pick up the column default.
func TestMigrate_UpgradePath_AddsOriginatedColumn(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`CREATE TABLE daily_plans (
			id         TEXT PRIMARY KEY,
			plan_date  TEXT NOT NULL,
			capacity   TEXT NOT NULL,
			summary    TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL
		)`,
		`CREATE TABLE schedule_entries (
			id              TEXT PRIMARY KEY,
			plan_id         TEXT NOT NULL REFERENCES daily_plans(id) ON DELETE CASCADE,
			category_id     TEXT,
			pool_item_id    TEXT,
			title           TEXT NOT NULL,
			description     TEXT NOT NULL DEFAULT '',
			scheduled_at    TEXT,
			duration_min    INTEGER,
			suggested_order INTEGER NOT NULL DEFAULT 3,
			status          TEXT NOT NULL DEFAULT 'pending',
			completed_at    TEXT,
			notes           TEXT NOT NULL DEFAULT '',
			created_at      TEXT NOT NULL,
			updated_at      TEXT NOT NULL
		)`,
		`INSERT INTO daily_plans (id, plan_date, capacity, created_at) VALUES ('p1', '2025-01-02', 'medium', '2025-01-01T20:00:00Z')`,
		`INSERT INTO schedule_entries (id, plan_id, title, created_at, updated_at) VALUES ('e1', 'p1', 'Walk', '2025-01-01T20:00:00Z', '2025-01-01T20:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var title string
	var originated int
	require.NoError(t, db.QueryRow(`SELECT title, originated FROM schedule_entries WHERE id = 'e1'`).Scan(&title, &originated))
	assert.Equal(t, "Walk", title)
	assert.Equal(t, 0, originated)

	// Second run hits the duplicate column path and must still succeed.
	require.NoError(t, Migrate(db))
}

// TestMigrate_UpgradePath_FeedbackKeepsPlanDate simulates a database whose
// feedback rows cascaded with their plan. The rebuild must copy each row with
// its plan date and stop deleting feedback when the plan goes away.
func TestMigrate_UpgradePath_FeedbackKeepsPlanDate(t *testing.T) {
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	legacy := []string{
		`DROP TABLE daily_feedback`,
		`CREATE TABLE daily_feedback (
			id          TEXT PRIMARY KEY,
			plan_id     TEXT NOT NULL REFERENCES daily_plans(id) ON DELETE CASCADE,
			rating      TEXT NOT NULL,
			comment     TEXT NOT NULL DEFAULT '',
			category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
			created_at  TEXT NOT NULL
		)`,
		`CREATE INDEX idx_daily_feedback_created ON daily_feedback(created_at)`,
		`INSERT INTO daily_plans (id, plan_date, capacity, created_at) VALUES ('p1', '2025-01-02', 'medium', '2025-01-01T20:00:00Z')`,
		`INSERT INTO daily_feedback (id, plan_id, rating, comment, created_at) VALUES ('f1', 'p1', 'too_much', 'long day', '2025-01-02T21:00:00Z')`,
	}
	for _, stmt := range legacy {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	require.NoError(t, Migrate(db))

	var planDate, comment string
	require.NoError(t, db.QueryRow(`SELECT plan_date, comment FROM daily_feedback WHERE id = 'f1'`).Scan(&planDate, &comment))
	assert.Equal(t, "2025-01-02", planDate)
	assert.Equal(t, "long day", comment)

	var idx string
	require.NoError(t, db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_daily_feedback_created'`).Scan(&idx))

	_, err = db.Exec(`DELETE FROM daily_plans WHERE id = 'p1'`)
	require.NoError(t, err)
	var planID sql.NullString
	require.NoError(t, db.QueryRow(`SELECT plan_id FROM daily_feedback WHERE id = 'f1'`).Scan(&planID))
	assert.False(t, planID.Valid)

	require.NoError(t, Migrate(db))
}
