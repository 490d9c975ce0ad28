package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"journal_monitor/internal/domain"
)

// SyncOptions bounds one orchestrator invocation. BatchSize limits how many
// followed journals a single call processes so time-limited callers can
// split a pass across invocations; <= 0 processes the whole follow list.
// IgnoreCursor starts the batch at the top of the list instead of the
// persisted cursor position.
type SyncOptions struct {
	BatchSize    int
	IgnoreCursor bool
}

// SyncService is the batch orchestrator: it pulls a bounded batch of a
// user's followed journals, fetches each from the registry, persists
// articles and per-user state idempotently, and advances the sync cursor.
type SyncService struct {
	registry      Registry
	follows       FollowStore
	articles      ArticleStore
	userArticles  UserArticleStore
	settings      SettingsStore
	txManager     TransactionManager
	publisher     Publisher
	logger        *slog.Logger
	maxConcurrent int
}

func NewSyncService(
	registry Registry,
	follows FollowStore,
	articles ArticleStore,
	userArticles UserArticleStore,
	settings SettingsStore,
	txManager TransactionManager,
	publisher Publisher,
	logger *slog.Logger,
	maxConcurrent int,
) *SyncService {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &SyncService{
		registry:      registry,
		follows:       follows,
		articles:      articles,
		userArticles:  userArticles,
		settings:      settings,
		txManager:     txManager,
		publisher:     publisher,
		logger:        logger,
		maxConcurrent: maxConcurrent,
	}
}

// SyncUser runs one sync batch for a user and returns the articles that are
// new for that user, each joined with its journal. Per-journal failures are
// logged and isolated; the cursor is advanced only after the batch's writes
// have committed.
func (s *SyncService) SyncUser(ctx context.Context, userID string, opts SyncOptions) ([]domain.JournalArticle, error) {
	startTime := time.Now()
	logger := s.logger.With("user_id", userID)

	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	follows, err := s.follows.ListFollowed(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list follows: %w", err)
	}

	total := len(follows)
	cursor := domain.Cursor{Index: settings.CheckIndex}
	start := cursor.Start(total, opts.IgnoreCursor)

	end := total
	if opts.BatchSize > 0 && start+opts.BatchSize < total {
		end = start + opts.BatchSize
	}
	batch := follows[start:end]

	logger.Info("starting sync batch",
		"follows", total,
		"start_index", start,
		"batch", len(batch),
	)

	results := make([][]domain.JournalArticle, len(batch))
	stats := &domain.SyncStats{UserID: userID, Journals: len(batch)}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for i, journal := range batch {
		g.Go(func() error {
			results[i] = s.syncJournal(gctx, logger, userID, journal, stats)
			return nil
		})
	}
	_ = g.Wait()

	// An interrupted batch must not advance the cursor: the same slice is
	// retried on the next invocation.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next, completed := domain.Advance(start, opts.BatchSize, total)
	if err := s.settings.UpdateCursor(ctx, userID, next.Index, completed); err != nil {
		return nil, fmt.Errorf("update cursor: %w", err)
	}

	newArticles := make([]domain.JournalArticle, 0)
	for _, r := range results {
		newArticles = append(newArticles, r...)
	}

	stats.New = len(newArticles)
	stats.Complete = completed
	stats.Duration = time.Since(startTime)

	logger.Info("sync batch completed",
		"journals", stats.Journals,
		"fetched", stats.Fetched,
		"new", stats.New,
		"errors", stats.Errors,
		"next_index", next.Index,
		"full_pass", completed,
		"duration", stats.Duration,
	)

	return newArticles, nil
}

// syncJournal runs one journal pipeline: fetch candidates, persist each
// idempotently, collect the ones new for this user. It never fails the
// batch; a registry or persistence error costs this journal one pass.
func (s *SyncService) syncJournal(ctx context.Context, logger *slog.Logger, userID string, journal domain.Journal, stats *domain.SyncStats) []domain.JournalArticle {
	issn := journal.ISSN()
	if issn == "" {
		logger.Debug("journal has no ISSN, skipping", "journal_id", journal.ID, "title", journal.Title)
		return nil
	}

	pubs, err := s.registry.FetchRecent(ctx, issn, time.Time{})
	if err != nil {
		logger.Warn("registry fetch failed",
			"journal_id", journal.ID,
			"issn", issn,
			"error", err,
		)
		stats.AddErrors(1)
		return nil
	}
	stats.AddFetched(len(pubs))

	var fresh []domain.JournalArticle
	for _, pub := range pubs {
		article := domain.Article{
			DOI:             pub.DOI,
			Title:           pub.Title,
			Authors:         pub.Authors,
			Abstract:        pub.Abstract,
			PublicationDate: pub.CreatedAt,
			URL:             pub.URL,
			JournalID:       journal.ID,
		}

		var isNew bool
		err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
			id, _, err := s.articles.FindOrCreate(txCtx, &article)
			if err != nil {
				return fmt.Errorf("article: %w", err)
			}
			article.ID = id

			created, err := s.userArticles.FindOrCreate(txCtx, userID, id)
			if err != nil {
				return fmt.Errorf("user article: %w", err)
			}
			isNew = created
			return nil
		})
		if err != nil {
			logger.Warn("failed to persist publication", "doi", pub.DOI, "error", err)
			stats.AddErrors(1)
			continue
		}

		if !isNew {
			continue
		}

		ja := domain.JournalArticle{Article: article, Journal: journal}

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, userID, &ja); err != nil {
				logger.Warn("failed to publish new article event", "doi", pub.DOI, "error", err)
			}
		}

		fresh = append(fresh, ja)
	}

	return fresh
}
