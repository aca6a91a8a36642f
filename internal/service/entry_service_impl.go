package service

import (
	"context"
	"strings"
	"time"

	"github.com/alexanderramin/drift/internal/domain"
	"github.com/alexanderramin/drift/internal/repository"
)

type entryService struct {
	entries repository.ScheduleEntryRepo
}

func NewEntryService(entries repository.ScheduleEntryRepo) EntryService {
	return &entryService{entries: entries}
}

func (s *entryService) SetStatus(ctx context.Context, id string, status domain.EntryStatus) (*domain.ScheduleEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := e.SetStatus(status, time.Now().UTC()); err != nil {
		return nil, err
	}
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *entryService) SetNotes(ctx context.Context, id string, notes string) (*domain.ScheduleEntry, error) {
	e, err := s.entries.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Notes = strings.TrimSpace(notes)
	e.UpdatedAt = time.Now().UTC()
	if err := s.entries.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}
