package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
)

// SQLiteJournalRepo implements JournalRepo using a SQLite database.
type SQLiteJournalRepo struct {
	db db.DBTX
}

func NewSQLiteJournalRepo(conn db.DBTX) *SQLiteJournalRepo {
	return &SQLiteJournalRepo{db: conn}
}

func (r *SQLiteJournalRepo) Create(ctx context.Context, j *domain.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, content, energy, sleep, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		j.ID, j.Content, nullableIntToValue(j.Energy), nullableIntToValue(j.Sleep), timestamp(j.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting journal entry: %w", err)
	}
	return nil
}

func (r *SQLiteJournalRepo) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.JournalEntry, error) {
	query := `SELECT id, content, energy, sleep, created_at FROM journal_entries
		WHERE created_at >= ? AND created_at < ?
		ORDER BY created_at`
	return r.list(ctx, query, timestamp(from), timestamp(to))
}

func (r *SQLiteJournalRepo) ListRecentBefore(ctx context.Context, before time.Time, limit int) ([]*domain.JournalEntry, error) {
	query := `SELECT id, content, energy, sleep, created_at FROM journal_entries
		WHERE created_at < ?
		ORDER BY created_at DESC
		LIMIT ?`
	return r.list(ctx, query, timestamp(before), limit)
}

func (r *SQLiteJournalRepo) list(ctx context.Context, query string, args ...any) ([]*domain.JournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing journal entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.JournalEntry
	for rows.Next() {
		var j domain.JournalEntry
		var energy, sleep sql.NullInt64
		var createdAt string
		if err := rows.Scan(&j.ID, &j.Content, &energy, &sleep, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning journal entry: %w", err)
		}
		j.Energy = nullableInt(energy)
		j.Sleep = nullableInt(sleep)
		if j.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating journal entries: %w", err)
	}
	return entries, nil
}
