package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/google/uuid"
)

type categoryService struct {
	categories repository.CategoryRepo
}

func NewCategoryService(categories repository.CategoryRepo) CategoryService {
	return &categoryService{categories: categories}
}

func (s *categoryService) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	c.Name = strings.TrimSpace(c.Name)
	c.CreatedAt = time.Now().UTC()
	if err := c.Validate(); err != nil {
		return err
	}
	if err := s.categories.Create(ctx, c); err != nil {
		if db.IsUniqueViolation(err) {
			return fmt.Errorf("category %q already exists", c.Name)
		}
		return err
	}
	return nil
}

func (s *categoryService) List(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *categoryService) SetEnabled(ctx context.Context, name string, enabled bool) error {
	c, err := s.categories.GetByName(ctx, name)
	if err != nil {
		return err
	}
	return s.categories.SetEnabled(ctx, c.ID, enabled)
}
