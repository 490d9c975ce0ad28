package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"journal_monitor/internal/domain"
)

type Registry interface {
	FetchRecent(ctx context.Context, issn string, since time.Time) ([]domain.Publication, error)
	LookupJournal(ctx context.Context, issn string) (string, error)
}

type JournalStore interface {
	FindByISSN(ctx context.Context, issn string) (*domain.Journal, error)
	Create(ctx context.Context, journal *domain.Journal) (int64, error)
}

type FollowStore interface {
	ListFollowed(ctx context.Context, userID string) ([]domain.Journal, error)
	Follow(ctx context.Context, userID string, journalID int64) error
	Unfollow(ctx context.Context, userID string, journalID int64) error
}

type ArticleStore interface {
	FindOrCreate(ctx context.Context, article *domain.Article) (int64, bool, error)
	ListByJournals(ctx context.Context, journalIDs []int64) ([]domain.JournalArticle, error)
}

type UserArticleStore interface {
	FindOrCreate(ctx context.Context, userID string, articleID int64) (bool, error)
	MarkRead(ctx context.Context, userID string, articleIDs []int64, read bool) error
}

type SettingsStore interface {
	Get(ctx context.Context, userID string) (*domain.UserSettings, error)
	UpdateCursor(ctx context.Context, userID string, index int, completed bool) error
	ListUserIDs(ctx context.Context) ([]string, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, userID string, article *domain.JournalArticle) error
	Close() error
}
