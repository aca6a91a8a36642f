package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
)

// SQLitePlanRepo implements PlanRepo using a SQLite database.
type SQLitePlanRepo struct {
	db db.DBTX
}

func NewSQLitePlanRepo(conn db.DBTX) *SQLitePlanRepo {
	return &SQLitePlanRepo{db: conn}
}

func (r *SQLitePlanRepo) Create(ctx context.Context, p *domain.DailyPlan) error {
	query := `INSERT INTO daily_plans (id, plan_date, capacity, summary, created_at) VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, dateString(p.Date), string(p.Capacity), p.Summary, timestamp(p.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting daily plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) GetByID(ctx context.Context, id string) (*domain.DailyPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, plan_date, capacity, summary, created_at FROM daily_plans WHERE id = ?`, id)
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) GetByDate(ctx context.Context, day time.Time) (*domain.DailyPlan, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, plan_date, capacity, summary, created_at FROM daily_plans WHERE plan_date = ?`, dateString(day))
	return r.scanPlan(row)
}

func (r *SQLitePlanRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM daily_plans WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting daily plan: %w", err)
	}
	return nil
}

func (r *SQLitePlanRepo) scanPlan(row *sql.Row) (*domain.DailyPlan, error) {
	var p domain.DailyPlan
	var planDate, capacity, createdAt string
	if err := row.Scan(&p.ID, &planDate, &capacity, &p.Summary, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("daily plan: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning daily plan: %w", err)
	}
	p.Capacity = domain.Capacity(capacity)

	var err error
	if p.Date, err = time.Parse(domain.DateLayout, planDate); err != nil {
		return nil, fmt.Errorf("parsing plan_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &p, nil
}
