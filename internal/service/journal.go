package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"journal_monitor/internal/domain"
)

// JournalService registers user-submitted journals after validating their
// ISSN against the registry, and manages follows.
type JournalService struct {
	registry Registry
	journals JournalStore
	follows  FollowStore
	logger   *slog.Logger
}

func NewJournalService(registry Registry, journals JournalStore, follows FollowStore, logger *slog.Logger) *JournalService {
	return &JournalService{
		registry: registry,
		journals: journals,
		follows:  follows,
		logger:   logger,
	}
}

// RegisterCustom validates an ISSN against the registry and creates a
// custom journal for it. Returns the existing journal when the catalog
// already carries the ISSN.
func (s *JournalService) RegisterCustom(ctx context.Context, issn string) (*domain.Journal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(issn), " ", "")
	if clean == "" {
		return nil, fmt.Errorf("issn is required")
	}

	existing, err := s.journals.FindByISSN(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("find journal: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	title, err := s.registry.LookupJournal(ctx, clean)
	if err != nil {
		return nil, fmt.Errorf("validate issn %s: %w", clean, err)
	}

	field := "Custom"
	journal := &domain.Journal{
		Title:     title,
		PrintISSN: &clean,
		Field:     &field,
		IsCustom:  true,
	}

	id, err := s.journals.Create(ctx, journal)
	if err != nil {
		return nil, fmt.Errorf("create journal: %w", err)
	}
	journal.ID = id

	s.logger.Info("registered custom journal", "journal_id", id, "issn", clean, "title", title)
	return journal, nil
}

// Follow subscribes a user to a journal. The persistence layer enforces the
// per-user follow limit.
func (s *JournalService) Follow(ctx context.Context, userID string, journalID int64) error {
	return s.follows.Follow(ctx, userID, journalID)
}

func (s *JournalService) Unfollow(ctx context.Context, userID string, journalID int64) error {
	return s.follows.Unfollow(ctx, userID, journalID)
}
