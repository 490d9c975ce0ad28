package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type UserArticleStore struct {
	db *sqlx.DB
}

func NewUserArticleStore(db *sqlx.DB) *UserArticleStore {
	return &UserArticleStore{db: db}
}

// FindOrCreate records that an article has been surfaced to a user,
// defaulting to unread. The returned flag reports whether the row was
// created by this call, which is the engine's "new to this user" signal.
func (s *UserArticleStore) FindOrCreate(ctx context.Context, userID string, articleID int64) (bool, error) {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		INSERT INTO user_articles (user_id, article_id, is_read)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id, article_id) DO NOTHING`,
		userID, articleID,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected == 1, nil
}

func (s *UserArticleStore) MarkRead(ctx context.Context, userID string, articleIDs []int64, read bool) error {
	if len(articleIDs) == 0 {
		return nil
	}

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE user_articles
		SET is_read = $3
		WHERE user_id = $1 AND article_id = ANY($2)`,
		userID, pq.Array(articleIDs), read,
	)
	return err
}

func (s *UserArticleStore) CountUnread(ctx context.Context, userID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM user_articles WHERE user_id = $1 AND is_read = FALSE", userID,
	)
	return count, err
}
