package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/scheduler"
	"github.com/google/uuid"
)

type feedbackService struct {
	feedback   repository.FeedbackRepo
	plans      repository.PlanRepo
	categories repository.CategoryRepo
	loc        *time.Location
}

func NewFeedbackService(feedback repository.FeedbackRepo, plans repository.PlanRepo, categories repository.CategoryRepo, loc *time.Location) FeedbackService {
	return &feedbackService{feedback: feedback, plans: plans, categories: categories, loc: loc}
}

func (s *feedbackService) Add(ctx context.Context, date string, rating domain.FeedbackRating, comment, categoryName string) (*domain.DailyFeedback, error) {
	day, err := scheduler.ParseDay(date, s.loc)
	if err != nil {
		return nil, err
	}
	plan, err := s.plans.GetByDate(ctx, day.Date())
	if err != nil {
		return nil, fmt.Errorf("plan for %s: %w", day, err)
	}

	f := &domain.DailyFeedback{
		ID:        uuid.New().String(),
		PlanID:    &plan.ID,
		PlanDate:  plan.Date,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now().UTC(),
	}
	if categoryName != "" {
		cat, err := s.categories.GetByName(ctx, categoryName)
		if err != nil {
			return nil, fmt.Errorf("feedback category: %w", err)
		}
		f.CategoryID = &cat.ID
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}
