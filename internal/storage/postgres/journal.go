package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"journal_monitor/internal/domain"
)

type JournalStore struct {
	db *sqlx.DB
}

func NewJournalStore(db *sqlx.DB) *JournalStore {
	return &JournalStore{db: db}
}

// FindByISSN matches either the print or electronic ISSN. Returns (nil, nil)
// when no journal carries the identifier.
func (s *JournalStore) FindByISSN(ctx context.Context, issn string) (*domain.Journal, error) {
	query := `
		SELECT id, title, print_issn, e_issn, ajg_ranking, field, is_ft50, is_utd24, is_custom, created_at
		FROM journals
		WHERE print_issn = $1 OR e_issn = $1
		LIMIT 1`

	var journal domain.Journal
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &journal, query, issn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &journal, nil
}

func (s *JournalStore) GetByID(ctx context.Context, id int64) (*domain.Journal, error) {
	query := `
		SELECT id, title, print_issn, e_issn, ajg_ranking, field, is_ft50, is_utd24, is_custom, created_at
		FROM journals
		WHERE id = $1`

	var journal domain.Journal
	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &journal, query, id); err != nil {
		return nil, err
	}
	return &journal, nil
}

func (s *JournalStore) Create(ctx context.Context, journal *domain.Journal) (int64, error) {
	query := `
		INSERT INTO journals (title, print_issn, e_issn, ajg_ranking, field, is_ft50, is_utd24, is_custom)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		journal.Title,
		journal.PrintISSN,
		journal.EISSN,
		journal.AJGRanking,
		journal.Field,
		journal.IsFT50,
		journal.IsUTD24,
		journal.IsCustom,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}
