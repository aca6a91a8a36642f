package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/importer"
	"github.com/alexanderramin/drift/internal/repository"
)

type seedService struct {
	uow      db.UnitOfWork
	loc      *time.Location
	observer UseCaseObserver
}

func NewSeedService(uow db.UnitOfWork, loc *time.Location, observers ...UseCaseObserver) SeedService {
	if loc == nil {
		loc = time.Local
	}
	return &seedService{uow: uow, loc: loc, observer: useCaseObserverOrNoop(observers)}
}

func (s *seedService) SeedFromFile(ctx context.Context, filePath string) (*SeedResult, error) {
	schema, err := importer.LoadSeedSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}
	return s.SeedFromSchema(ctx, schema)
}

func (s *seedService) SeedFromSchema(ctx context.Context, schema *importer.SeedSchema) (result *SeedResult, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		fields := map[string]any{}
		if result != nil {
			fields["categories"] = result.CategoryCount
			fields["pool_items"] = result.PoolItemCount
		}
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "seed",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
		})
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		categories := repository.NewSQLiteCategoryRepo(tx)
		pool := repository.NewSQLitePoolItemRepo(tx)

		stored, err := categories.List(ctx)
		if err != nil {
			return fmt.Errorf("loading categories: %w", err)
		}
		known := make(map[string]bool, len(stored))
		existing := make(map[string]string, len(stored))
		for _, c := range stored {
			key := domain.NormalizeName(c.Name)
			known[key] = true
			existing[key] = c.ID
		}

		if errs := importer.ValidateSeedSchema(schema, known, s.loc); len(errs) > 0 {
			return formatValidationErrors(errs)
		}

		seed, err := importer.Convert(schema, existing, s.loc, startedAt)
		if err != nil {
			return fmt.Errorf("converting seed: %w", err)
		}

		for _, c := range seed.Categories {
			if err := categories.Create(ctx, c); err != nil {
				return fmt.Errorf("creating category %q: %w", c.Name, err)
			}
		}
		for _, p := range seed.PoolItems {
			if err := pool.Create(ctx, p); err != nil {
				return fmt.Errorf("creating pool item %q: %w", p.Title, err)
			}
		}

		result = &SeedResult{
			CategoryCount:     len(seed.Categories),
			PoolItemCount:     len(seed.PoolItems),
			SkippedCategories: seed.SkippedCategories,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("seed validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return fmt.Errorf("%s", msg)
}
