package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
)

// SQLiteFeedbackRepo implements FeedbackRepo using a SQLite database.
type SQLiteFeedbackRepo struct {
	db db.DBTX
}

func NewSQLiteFeedbackRepo(conn db.DBTX) *SQLiteFeedbackRepo {
	return &SQLiteFeedbackRepo{db: conn}
}

func (r *SQLiteFeedbackRepo) Create(ctx context.Context, f *domain.DailyFeedback) error {
	query := `INSERT INTO daily_feedback (id, plan_id, plan_date, rating, comment, category_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, nullableStringToValue(f.PlanID), dateString(f.PlanDate), string(f.Rating), f.Comment, nullableStringToValue(f.CategoryID), timestamp(f.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting feedback: %w", err)
	}
	return nil
}

func (r *SQLiteFeedbackRepo) ListRecentBetween(ctx context.Context, from, to time.Time, limit int) ([]domain.FeedbackRecord, error) {
	query := `SELECT f.id, f.plan_id, f.plan_date, f.rating, f.comment, f.category_id, f.created_at,
			COALESCE(c.name, '')
		FROM daily_feedback f
		LEFT JOIN categories c ON c.id = f.category_id
		WHERE f.created_at >= ? AND f.created_at < ?
		ORDER BY f.created_at DESC
		LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, timestamp(from), timestamp(to), limit)
	if err != nil {
		return nil, fmt.Errorf("listing feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.FeedbackRecord
	for rows.Next() {
		var rec domain.FeedbackRecord
		var rating, createdAt, planDate string
		var planID, categoryID sql.NullString
		if err := rows.Scan(&rec.ID, &planID, &planDate, &rating, &rec.Comment, &categoryID, &createdAt,
			&rec.CategoryName); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		rec.PlanID = nullableString(planID)
		rec.Rating = domain.FeedbackRating(rating)
		rec.CategoryID = nullableString(categoryID)
		if rec.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		if rec.PlanDate, err = time.Parse(domain.DateLayout, planDate); err != nil {
			return nil, fmt.Errorf("parsing plan_date: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating feedback: %w", err)
	}
	return out, nil
}
