package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/contract"
	"github.com/alexanderramin/drift/internal/db"
	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/intelligence"
	"github.com/alexanderramin/drift/internal/repository"
	"github.com/alexanderramin/drift/internal/scheduler"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CommitInput is a validated model answer ready to be persisted for Day.
type CommitInput struct {
	Day          scheduler.Day
	Capacity     domain.Capacity
	Response     *intelligence.PlanResponse
	Availability scheduler.Availability
	Replace      bool
}

// CommitResult reports what was persisted.
type CommitResult struct {
	Plan       domain.DailyPlan
	EntryCount int
	Dropped    []contract.DroppedEntry
	Replaced   bool
}

// PlanCommitter turns a validated answer into a plan, its entries and the
// pool usage updates, all in one unit of work.
type PlanCommitter struct {
	uow db.UnitOfWork
	log *zap.Logger
}

func NewPlanCommitter(uow db.UnitOfWork, log *zap.Logger) *PlanCommitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &PlanCommitter{uow: uow, log: log}
}

// Commit persists in.Response for in.Day. An existing plan for the day is a
// PLAN_EXISTS error unless in.Replace is set, in which case it is deleted in
// the same transaction. Any failure rolls back every write.
func (c *PlanCommitter) Commit(ctx context.Context, in CommitInput) (*CommitResult, error) {
	var result *CommitResult

	err := c.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		plans := repository.NewSQLitePlanRepo(tx)
		entries := repository.NewSQLiteScheduleEntryRepo(tx)
		pool := repository.NewSQLitePoolItemRepo(tx)
		categories := repository.NewSQLiteCategoryRepo(tx)

		replaced, err := c.clearExisting(ctx, plans, entries, in)
		if err != nil {
			return err
		}

		enabled, err := categories.ListEnabled(ctx)
		if err != nil {
			return fmt.Errorf("loading categories: %w", err)
		}
		categoryByName := make(map[string]*domain.Category, len(enabled))
		for _, cat := range enabled {
			categoryByName[domain.NormalizeName(cat.Name)] = cat
		}

		now := time.Now().UTC()
		plan := domain.DailyPlan{
			ID:        uuid.New().String(),
			Date:      in.Day.Date(),
			Capacity:  in.Capacity,
			Summary:   in.Response.Summary(),
			CreatedAt: now,
		}
		if err := plans.Create(ctx, &plan); err != nil {
			if db.IsUniqueViolation(err) {
				return planExists(in.Day)
			}
			return err
		}

		res := &CommitResult{Plan: plan, Replaced: replaced}
		consumed := newIDSet()
		matcher := scheduler.NewPoolMatcher(in.Availability)

		for _, proposed := range in.Response.Entries {
			cat, ok := categoryByName[domain.NormalizeName(proposed.Category)]
			if !ok {
				res.Dropped = append(res.Dropped, c.drop(in.Day, proposed, contract.DropUnknownCategory))
				continue
			}

			var poolItemID *string
			if !proposed.Originated {
				item, kind := matcher.Match(proposed.Title, proposed.PoolItemID)
				switch kind {
				case scheduler.MatchEvent:
					res.Dropped = append(res.Dropped, c.drop(in.Day, proposed, contract.DropDuplicateEvent))
					continue
				case scheduler.MatchCandidate:
					id := item.ID
					poolItemID = &id
					consumed.add(id)
				}
			}

			scheduledAt := scheduler.ResolveTimeSlot(proposed.Time, in.Day)
			entry := &domain.ScheduleEntry{
				ID:             uuid.New().String(),
				PlanID:         plan.ID,
				CategoryID:     &cat.ID,
				PoolItemID:     poolItemID,
				Title:          strings.TrimSpace(proposed.Title),
				Description:    strings.TrimSpace(proposed.Description),
				ScheduledAt:    &scheduledAt,
				DurationMin:    proposed.DurationMin,
				SuggestedOrder: domain.IntFromPtrWithDefault(domain.OrderDefault, proposed.SuggestedOrder),
				Status:         domain.EntryPending,
				Originated:     proposed.Originated,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := entries.Create(ctx, entry); err != nil {
				return err
			}
			res.EntryCount++
		}

		for _, ev := range in.Availability.Events {
			id := ev.ID
			entry := &domain.ScheduleEntry{
				ID:             uuid.New().String(),
				PlanID:         plan.ID,
				CategoryID:     ev.CategoryID,
				PoolItemID:     &id,
				Title:          ev.Title,
				Description:    ev.Notes,
				ScheduledAt:    ev.StartsAt,
				DurationMin:    ev.DurationMin(),
				SuggestedOrder: domain.OrderFirst,
				Status:         domain.EntryPending,
				CreatedAt:      now,
				UpdatedAt:      now,
			}
			if err := entries.Create(ctx, entry); err != nil {
				return err
			}
			consumed.add(id)
			res.EntryCount++
		}

		if err := pool.MarkUsed(ctx, consumed.ids, in.Day.Date()); err != nil {
			return err
		}

		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// clearExisting enforces one plan per day inside the transaction.
func (c *PlanCommitter) clearExisting(ctx context.Context, plans *repository.SQLitePlanRepo, entries *repository.SQLiteScheduleEntryRepo, in CommitInput) (bool, error) {
	existing, err := plans.GetByDate(ctx, in.Day.Date())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("checking existing plan: %w", err)
	}
	if !in.Replace {
		return false, planExists(in.Day)
	}
	if err := entries.DeleteByPlan(ctx, existing.ID); err != nil {
		return false, err
	}
	if err := plans.Delete(ctx, existing.ID); err != nil {
		return false, err
	}
	c.log.Info("plan_replaced", zap.String("date", in.Day.String()), zap.String("old_plan_id", existing.ID))
	return true, nil
}

func (c *PlanCommitter) drop(day scheduler.Day, e intelligence.ProposedEntry, reason contract.DropReason) contract.DroppedEntry {
	c.log.Warn("plan_entry_dropped",
		zap.String("date", day.String()),
		zap.String("title", e.Title),
		zap.String("category", e.Category),
		zap.String("reason", string(reason)),
	)
	return contract.DroppedEntry{Title: e.Title, Category: e.Category, Reason: reason}
}

func planExists(day scheduler.Day) error {
	return &contract.GeneratePlanError{
		Code:    contract.ErrPlanExists,
		Message: fmt.Sprintf("a plan already exists for %s (use --replace to regenerate it)", day),
	}
}

// idSet keeps insertion order so the usage update is deterministic.
type idSet struct {
	seen map[string]bool
	ids  []string
}

func newIDSet() *idSet { return &idSet{seen: map[string]bool{}} }

func (s *idSet) add(id string) {
	if s.seen[id] {
		return
	}
	s.seen[id] = true
	s.ids = append(s.ids, id)
}
