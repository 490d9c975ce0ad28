package domain

import "time"

// UserSettings holds per-user configuration, including the embedded sync
// cursor. There is one row per user; a user without a row behaves as if
// they had a default one.
type UserSettings struct {
	UserID        string     `db:"user_id"`
	EmailEnabled  bool       `db:"email_enabled"`
	TargetEmail   *string    `db:"target_email"`
	SMTPConfig    *string    `db:"smtp_config"`
	ZoteroUserID  *string    `db:"zotero_user_id"`
	ZoteroAPIKey  *string    `db:"zotero_api_key"`
	CheckIndex    int        `db:"check_index"`
	LastCheckTime *time.Time `db:"last_check_time"`
	PreferredHour int        `db:"preferred_hour"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

// HasZoteroCredentials reports whether the user configured the remote
// library integration.
func (s UserSettings) HasZoteroCredentials() bool {
	return s.ZoteroUserID != nil && *s.ZoteroUserID != "" &&
		s.ZoteroAPIKey != nil && *s.ZoteroAPIKey != ""
}
