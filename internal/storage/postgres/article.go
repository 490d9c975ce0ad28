package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"journal_monitor/internal/domain"
)

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// FindOrCreate inserts the canonical article row for a DOI, or fetches the
// existing one. Article rows are append-only; a concurrent insert for the
// same DOI resolves to the winner's row. The returned flag reports whether
// this call created the row.
func (s *ArticleStore) FindOrCreate(ctx context.Context, article *domain.Article) (int64, bool, error) {
	exec := GetExecutor(ctx, s.db)

	query := `
		INSERT INTO articles (doi, title, authors, abstract, publication_date, url, journal_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (doi) DO NOTHING
		RETURNING id`

	var id int64
	err := exec.QueryRowxContext(ctx, query,
		article.DOI,
		article.Title,
		article.Authors,
		article.Abstract,
		article.PublicationDate,
		article.URL,
		article.JournalID,
	).Scan(&id)
	if err == nil {
		return id, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, false, err
	}

	err = sqlx.GetContext(ctx, exec, &id, "SELECT id FROM articles WHERE doi = $1", article.DOI)
	if err != nil {
		return 0, false, err
	}

	return id, false, nil
}

// ListByJournals returns every article belonging to the given journals,
// joined with its journal and ordered by creation time descending. Used by
// the Zotero exporter.
func (s *ArticleStore) ListByJournals(ctx context.Context, journalIDs []int64) ([]domain.JournalArticle, error) {
	if len(journalIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT a.id, a.doi, a.title, a.authors, a.abstract, a.publication_date, a.url,
		       a.journal_id, a.created_at,
		       j.id, j.title, j.print_issn, j.e_issn, j.ajg_ranking, j.field,
		       j.is_ft50, j.is_utd24, j.is_custom, j.created_at
		FROM articles a
		INNER JOIN journals j ON j.id = a.journal_id
		WHERE a.journal_id = ANY($1)
		ORDER BY a.created_at DESC`

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx, query, pq.Array(journalIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.JournalArticle
	for rows.Next() {
		var ja domain.JournalArticle
		err := rows.Scan(
			&ja.ID, &ja.DOI, &ja.Article.Title, &ja.Authors, &ja.Abstract,
			&ja.PublicationDate, &ja.URL, &ja.JournalID, &ja.Article.CreatedAt,
			&ja.Journal.ID, &ja.Journal.Title, &ja.Journal.PrintISSN, &ja.Journal.EISSN,
			&ja.Journal.AJGRanking, &ja.Journal.Field, &ja.Journal.IsFT50,
			&ja.Journal.IsUTD24, &ja.Journal.IsCustom, &ja.Journal.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, ja)
	}

	return result, rows.Err()
}
