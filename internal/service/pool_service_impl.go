package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/google/uuid"
)

type poolService struct {
	pool       repository.PoolItemRepo
	categories repository.CategoryRepo
}

func NewPoolService(pool repository.PoolItemRepo, categories repository.CategoryRepo) PoolService {
	return &poolService{pool: pool, categories: categories}
}

func (s *poolService) Create(ctx context.Context, p *domain.PoolItem) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = domain.PoolActive
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	if err := p.Validate(); err != nil {
		return err
	}
	if p.CategoryID != nil {
		if _, err := s.categories.GetByID(ctx, *p.CategoryID); err != nil {
			return fmt.Errorf("pool item category: %w", err)
		}
	}
	return s.pool.Create(ctx, p)
}

func (s *poolService) GetByID(ctx context.Context, id string) (*domain.PoolItem, error) {
	return s.pool.GetByID(ctx, id)
}

func (s *poolService) List(ctx context.Context, status *domain.PoolItemStatus) ([]*domain.PoolItem, error) {
	if status != nil {
		return s.pool.ListByStatus(ctx, *status)
	}
	return s.pool.List(ctx)
}

func (s *poolService) SetStatus(ctx context.Context, id string, status domain.PoolItemStatus) error {
	p, err := s.pool.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := p.SetStatus(status, time.Now().UTC()); err != nil {
		return err
	}
	return s.pool.Update(ctx, p)
}
