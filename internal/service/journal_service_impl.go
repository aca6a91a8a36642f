package service

import (
	"context"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/google/uuid"
)

type journalService struct {
	journal repository.JournalRepo
}

func NewJournalService(journal repository.JournalRepo) JournalService {
	return &journalService{journal: journal}
}

func (s *journalService) Add(ctx context.Context, j *domain.JournalEntry) error {
	if j.ID == "" {
		j.ID = uuid.New().String()
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	if err := j.Validate(); err != nil {
		return err
	}
	return s.journal.Create(ctx, j)
}

func (s *journalService) ListRecent(ctx context.Context, limit int) ([]*domain.JournalEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.journal.ListRecentBefore(ctx, time.Now().UTC().Add(time.Second), limit)
}
