package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"journal_monitor/internal/domain"
)

type FollowStore struct {
	db *sqlx.DB
}

func NewFollowStore(db *sqlx.DB) *FollowStore {
	return &FollowStore{db: db}
}

// ListFollowed returns the journals a user follows, ordered by journal id.
// The cursor indexes into this ordering, so it must stay stable.
func (s *FollowStore) ListFollowed(ctx context.Context, userID string) ([]domain.Journal, error) {
	query := `
		SELECT j.id, j.title, j.print_issn, j.e_issn, j.ajg_ranking, j.field,
		       j.is_ft50, j.is_utd24, j.is_custom, j.created_at
		FROM journals j
		INNER JOIN user_journal_follows f ON f.journal_id = j.id
		WHERE f.user_id = $1
		ORDER BY j.id`

	var journals []domain.Journal
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &journals, query, userID)
	return journals, err
}

// Follow creates the (user, journal) relation, enforcing the per-user
// follow limit. Following an already-followed journal is a no-op.
func (s *FollowStore) Follow(ctx context.Context, userID string, journalID int64) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO user_journal_follows (user_id, journal_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, journal_id) DO NOTHING`,
		userID, journalID,
	)
	if err != nil {
		return fmt.Errorf("insert follow: %w", err)
	}

	var count int
	if err := tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM user_journal_follows WHERE user_id = $1", userID,
	); err != nil {
		return fmt.Errorf("count follows: %w", err)
	}

	if count > domain.MaxFollowedJournals {
		return domain.ErrFollowLimit
	}

	return tx.Commit()
}

func (s *FollowStore) Unfollow(ctx context.Context, userID string, journalID int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM user_journal_follows WHERE user_id = $1 AND journal_id = $2",
		userID, journalID,
	)
	return err
}

func (s *FollowStore) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM user_journal_follows WHERE user_id = $1", userID,
	)
	return count, err
}
