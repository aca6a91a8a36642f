package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
)

// SQLitePoolItemRepo implements PoolItemRepo using a SQLite database.
type SQLitePoolItemRepo struct {
	db db.DBTX
}

func NewSQLitePoolItemRepo(conn db.DBTX) *SQLitePoolItemRepo {
	return &SQLitePoolItemRepo{db: conn}
}

const poolItemColumns = `id, type, title, notes, category_id, status, last_used_at,
	use_count, cooldown_days, starts_at, ends_at, created_at, updated_at`

func (r *SQLitePoolItemRepo) Create(ctx context.Context, p *domain.PoolItem) error {
	query := `INSERT INTO pool_items (` + poolItemColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		string(p.Type),
		p.Title,
		p.Notes,
		nullableStringToValue(p.CategoryID),
		string(p.Status),
		nullableTimeToString(p.LastUsedAt, domain.DateLayout),
		p.UseCount,
		nullableIntToValue(p.CooldownDays),
		nullableTimeToString(p.StartsAt, time.RFC3339),
		nullableTimeToString(p.EndsAt, time.RFC3339),
		timestamp(p.CreatedAt),
		timestamp(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting pool item: %w", err)
	}
	return nil
}

func (r *SQLitePoolItemRepo) GetByID(ctx context.Context, id string) (*domain.PoolItem, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+poolItemColumns+` FROM pool_items WHERE id = ?`, id)
	p, err := scanPoolItem(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("pool item: %w", ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

func (r *SQLitePoolItemRepo) List(ctx context.Context) ([]*domain.PoolItem, error) {
	return r.list(ctx, `SELECT `+poolItemColumns+` FROM pool_items ORDER BY type, title, id`)
}

func (r *SQLitePoolItemRepo) ListByStatus(ctx context.Context, status domain.PoolItemStatus) ([]*domain.PoolItem, error) {
	return r.list(ctx,
		`SELECT `+poolItemColumns+` FROM pool_items WHERE status = ? ORDER BY type, title, id`,
		string(status))
}

func (r *SQLitePoolItemRepo) Update(ctx context.Context, p *domain.PoolItem) error {
	query := `UPDATE pool_items SET type = ?, title = ?, notes = ?, category_id = ?, status = ?,
		last_used_at = ?, use_count = ?, cooldown_days = ?, starts_at = ?, ends_at = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(p.Type),
		p.Title,
		p.Notes,
		nullableStringToValue(p.CategoryID),
		string(p.Status),
		nullableTimeToString(p.LastUsedAt, domain.DateLayout),
		p.UseCount,
		nullableIntToValue(p.CooldownDays),
		nullableTimeToString(p.StartsAt, time.RFC3339),
		nullableTimeToString(p.EndsAt, time.RFC3339),
		timestamp(p.UpdatedAt),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pool item: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("pool item: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLitePoolItemRepo) MarkUsed(ctx context.Context, ids []string, day time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, 0, len(ids)+2)
	args = append(args, dateString(day), timestamp(time.Now()))
	for _, id := range ids {
		args = append(args, id)
	}
	query := `UPDATE pool_items
		SET last_used_at = ?, use_count = use_count + 1, updated_at = ?
		WHERE id IN (` + placeholders(len(ids)) + `)`
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("marking pool items used: %w", err)
	}
	return nil
}

func (r *SQLitePoolItemRepo) list(ctx context.Context, query string, args ...any) ([]*domain.PoolItem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pool items: %w", err)
	}
	defer rows.Close()

	var items []*domain.PoolItem
	for rows.Next() {
		p, err := scanPoolItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pool items: %w", err)
	}
	return items, nil
}

func scanPoolItem(s rowScanner) (*domain.PoolItem, error) {
	var p domain.PoolItem
	var itemType, status, createdAt, updatedAt string
	var categoryID, lastUsedAt, startsAt, endsAt sql.NullString
	var cooldown sql.NullInt64

	err := s.Scan(
		&p.ID, &itemType, &p.Title, &p.Notes, &categoryID, &status, &lastUsedAt,
		&p.UseCount, &cooldown, &startsAt, &endsAt, &createdAt, &updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pool item: %w", err)
	}

	p.Type = domain.PoolItemType(itemType)
	p.Status = domain.PoolItemStatus(status)
	p.CategoryID = nullableString(categoryID)
	p.CooldownDays = nullableInt(cooldown)
	p.LastUsedAt = parseNullableTime(lastUsedAt, domain.DateLayout)
	p.StartsAt = parseNullableTime(startsAt, time.RFC3339)
	p.EndsAt = parseNullableTime(endsAt, time.RFC3339)

	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
