package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"journal_monitor/internal/domain"
)

type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the user's settings, or a default row for users that never
// saved any. The default carries a zero cursor so the first sync starts at
// the top of the follow list.
func (s *SettingsStore) Get(ctx context.Context, userID string) (*domain.UserSettings, error) {
	query := `
		SELECT user_id, email_enabled, target_email, smtp_config,
		       zotero_user_id, zotero_api_key,
		       check_index, last_check_time, preferred_hour, updated_at
		FROM user_settings
		WHERE user_id = $1`

	var settings domain.UserSettings
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &settings, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.UserSettings{
			UserID:        userID,
			PreferredHour: 8,
		}, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *SettingsStore) Save(ctx context.Context, settings *domain.UserSettings) error {
	query := `
		INSERT INTO user_settings (
			user_id, email_enabled, target_email, smtp_config,
			zotero_user_id, zotero_api_key, check_index, preferred_hour, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		ON CONFLICT (user_id) DO UPDATE SET
			email_enabled = EXCLUDED.email_enabled,
			target_email = EXCLUDED.target_email,
			smtp_config = EXCLUDED.smtp_config,
			zotero_user_id = EXCLUDED.zotero_user_id,
			zotero_api_key = EXCLUDED.zotero_api_key,
			check_index = EXCLUDED.check_index,
			preferred_hour = EXCLUDED.preferred_hour,
			updated_at = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query,
		settings.UserID,
		settings.EmailEnabled,
		settings.TargetEmail,
		settings.SMTPConfig,
		settings.ZoteroUserID,
		settings.ZoteroAPIKey,
		settings.CheckIndex,
		settings.PreferredHour,
	)
	return err
}

// UpdateCursor advances the user's sync cursor. The last-check timestamp is
// stamped only when the batch completed a full pass over the follow list;
// downstream scheduling uses it to avoid re-triggering the same user.
func (s *SettingsStore) UpdateCursor(ctx context.Context, userID string, index int, completed bool) error {
	query := `
		INSERT INTO user_settings (user_id, check_index, last_check_time, updated_at)
		VALUES ($1, $2, CASE WHEN $3 THEN now() ELSE NULL END, now())
		ON CONFLICT (user_id) DO UPDATE SET
			check_index = EXCLUDED.check_index,
			last_check_time = CASE WHEN $3 THEN now() ELSE user_settings.last_check_time END,
			updated_at = now()`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, userID, index, completed)
	return err
}

// ListUserIDs returns every user with a settings row, for all-users runs.
func (s *SettingsStore) ListUserIDs(ctx context.Context) ([]string, error) {
	var ids []string
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &ids,
		"SELECT user_id FROM user_settings ORDER BY user_id",
	)
	return ids, err
}
