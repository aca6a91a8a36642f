package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if err := upgradeFeedbackTable(db); err != nil {
		return fmt.Errorf("upgrading daily_feedback: %w", err)
	}
	return nil
}

// upgradeFeedbackTable rebuilds a daily_feedback table created before feedback
// carried its own plan date. Rows older than that cascaded with their plan;
// the rebuilt table keeps them when a plan is replaced.
func upgradeFeedbackTable(db *sql.DB) error {
	hasPlanDate, err := columnExists(db, "daily_feedback", "plan_date")
	if err != nil || hasPlanDate {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`ALTER TABLE daily_feedback RENAME TO daily_feedback_legacy`,
		feedbackTable,
		`INSERT INTO daily_feedback (id, plan_id, plan_date, rating, comment, category_id, created_at)
			SELECT f.id, f.plan_id, p.plan_date, f.rating, f.comment, f.category_id, f.created_at
			FROM daily_feedback_legacy f
			JOIN daily_plans p ON p.id = f.plan_id`,
		`DROP TABLE daily_feedback_legacy`,
		feedbackCreatedIndex,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func columnExists(db *sql.DB, table, column string) (bool, error) {
	rows, err := db.Query(`SELECT name FROM pragma_table_info(?)`, table)
	if err != nil {
		return false, err
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

const feedbackTable = `CREATE TABLE IF NOT EXISTS daily_feedback (
		id          TEXT PRIMARY KEY,
		plan_id     TEXT REFERENCES daily_plans(id) ON DELETE SET NULL,
		plan_date   TEXT NOT NULL,
		rating      TEXT NOT NULL
		            CHECK(rating IN ('about_right','too_much','one_area')),
		comment     TEXT NOT NULL DEFAULT '',
		category_id TEXT REFERENCES categories(id) ON DELETE SET NULL,
		created_at  TEXT NOT NULL
	)`

const feedbackCreatedIndex = `CREATE INDEX IF NOT EXISTS idx_daily_feedback_created ON daily_feedback(created_at)`

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS categories (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		rank       INTEGER NOT NULL DEFAULT 0,
		enabled    INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name COLLATE NOCASE)`,

	`CREATE TABLE IF NOT EXISTS pool_items (
		id            TEXT PRIMARY KEY,
		type          TEXT NOT NULL
		              CHECK(type IN ('task','event','aspiration')),
		title         TEXT NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		category_id   TEXT REFERENCES categories(id) ON DELETE SET NULL,
		status        TEXT NOT NULL DEFAULT 'active'
		              CHECK(status IN ('active','paused','completed')),
		last_used_at  TEXT,
		use_count     INTEGER NOT NULL DEFAULT 0,
		cooldown_days INTEGER,
		starts_at     TEXT,
		ends_at       TEXT,
		created_at    TEXT NOT NULL,
		updated_at    TEXT NOT NULL,
		CHECK(type = 'event' OR (starts_at IS NULL AND ends_at IS NULL))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_pool_items_status ON pool_items(status)`,

	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		content    TEXT NOT NULL,
		energy     INTEGER CHECK(energy IS NULL OR energy BETWEEN 1 AND 10),
		sleep      INTEGER CHECK(sleep IS NULL OR sleep BETWEEN 1 AND 10),
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_created ON journal_entries(created_at)`,

	`CREATE TABLE IF NOT EXISTS daily_plans (
		id         TEXT PRIMARY KEY,
		plan_date  TEXT NOT NULL,
		capacity   TEXT NOT NULL
		           CHECK(capacity IN ('low','medium','high')),
		summary    TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_plans_date ON daily_plans(plan_date)`,

	`CREATE TABLE IF NOT EXISTS schedule_entries (
		id              TEXT PRIMARY KEY,
		plan_id         TEXT NOT NULL REFERENCES daily_plans(id) ON DELETE CASCADE,
		category_id     TEXT REFERENCES categories(id) ON DELETE SET NULL,
		pool_item_id    TEXT REFERENCES pool_items(id) ON DELETE SET NULL,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		scheduled_at    TEXT,
		duration_min    INTEGER,
		suggested_order INTEGER NOT NULL DEFAULT 3
		                CHECK(suggested_order BETWEEN 1 AND 5),
		status          TEXT NOT NULL DEFAULT 'pending'
		                CHECK(status IN ('pending','in_progress','completed','skipped')),
		completed_at    TEXT,
		notes           TEXT NOT NULL DEFAULT '',
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_plan ON schedule_entries(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_schedule_entries_pool_item ON schedule_entries(pool_item_id)`,

	feedbackTable,
	feedbackCreatedIndex,

	// Originated entries were added after the first release.
	`ALTER TABLE schedule_entries ADD COLUMN originated INTEGER NOT NULL DEFAULT 0`,
}
