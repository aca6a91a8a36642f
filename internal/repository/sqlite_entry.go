package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
)

// SQLiteScheduleEntryRepo implements ScheduleEntryRepo using a SQLite database.
type SQLiteScheduleEntryRepo struct {
	db db.DBTX
}

func NewSQLiteScheduleEntryRepo(conn db.DBTX) *SQLiteScheduleEntryRepo {
	return &SQLiteScheduleEntryRepo{db: conn}
}

const entryColumns = `id, plan_id, category_id, pool_item_id, title, description, scheduled_at,
	duration_min, suggested_order, status, completed_at, notes, originated, created_at, updated_at`

func (r *SQLiteScheduleEntryRepo) Create(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `INSERT INTO schedule_entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.PlanID,
		nullableStringToValue(e.CategoryID),
		nullableStringToValue(e.PoolItemID),
		e.Title,
		e.Description,
		nullableTimeToString(e.ScheduledAt, time.RFC3339),
		nullableIntToValue(e.DurationMin),
		e.SuggestedOrder,
		string(e.Status),
		nullableTimeToString(e.CompletedAt, time.RFC3339),
		e.Notes,
		boolToInt(e.Originated),
		timestamp(e.CreatedAt),
		timestamp(e.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule entry: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleEntryRepo) GetByID(ctx context.Context, id string) (*domain.ScheduleEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+entryColumns+` FROM schedule_entries WHERE id = ?`, id)
	e, err := scanEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("schedule entry: %w", ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// ListByPlan orders entries by scheduled time (unscheduled last), then suggested order.
func (r *SQLiteScheduleEntryRepo) ListByPlan(ctx context.Context, planID string) ([]*domain.ScheduleEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM schedule_entries
		WHERE plan_id = ?
		ORDER BY scheduled_at IS NULL, scheduled_at, suggested_order, title`
	rows, err := r.db.QueryContext(ctx, query, planID)
	if err != nil {
		return nil, fmt.Errorf("listing schedule entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.ScheduleEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedule entries: %w", err)
	}
	return entries, nil
}

func (r *SQLiteScheduleEntryRepo) Update(ctx context.Context, e *domain.ScheduleEntry) error {
	query := `UPDATE schedule_entries SET category_id = ?, title = ?, description = ?, scheduled_at = ?,
		duration_min = ?, suggested_order = ?, status = ?, completed_at = ?, notes = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableStringToValue(e.CategoryID),
		e.Title,
		e.Description,
		nullableTimeToString(e.ScheduledAt, time.RFC3339),
		nullableIntToValue(e.DurationMin),
		e.SuggestedOrder,
		string(e.Status),
		nullableTimeToString(e.CompletedAt, time.RFC3339),
		e.Notes,
		timestamp(e.UpdatedAt),
		e.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("schedule entry: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteScheduleEntryRepo) DeleteByPlan(ctx context.Context, planID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM schedule_entries WHERE plan_id = ?`, planID); err != nil {
		return fmt.Errorf("deleting schedule entries: %w", err)
	}
	return nil
}

func (r *SQLiteScheduleEntryRepo) CompletionStatsBetween(ctx context.Context, from, to time.Time) (CompletionStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(CASE WHEN e.status = 'completed' THEN 1 ELSE 0 END), 0)
		FROM schedule_entries e
		JOIN daily_plans p ON p.id = e.plan_id
		WHERE p.plan_date >= ? AND p.plan_date < ?`
	var stats CompletionStats
	if err := r.db.QueryRowContext(ctx, query, dateString(from), dateString(to)).Scan(&stats.Scheduled, &stats.Completed); err != nil {
		return CompletionStats{}, fmt.Errorf("counting completed entries: %w", err)
	}
	return stats, nil
}

func scanEntry(s rowScanner) (*domain.ScheduleEntry, error) {
	var e domain.ScheduleEntry
	var status, createdAt, updatedAt string
	var categoryID, poolItemID, scheduledAt, completedAt sql.NullString
	var duration sql.NullInt64
	var originated int

	err := s.Scan(
		&e.ID, &e.PlanID, &categoryID, &poolItemID, &e.Title, &e.Description, &scheduledAt,
		&duration, &e.SuggestedOrder, &status, &completedAt, &e.Notes, &originated, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning schedule entry: %w", err)
	}

	e.Status = domain.EntryStatus(status)
	e.CategoryID = nullableString(categoryID)
	e.PoolItemID = nullableString(poolItemID)
	e.ScheduledAt = parseNullableTime(scheduledAt, time.RFC3339)
	e.CompletedAt = parseNullableTime(completedAt, time.RFC3339)
	e.DurationMin = nullableInt(duration)
	e.Originated = intToBool(originated)

	if e.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if e.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &e, nil
}
