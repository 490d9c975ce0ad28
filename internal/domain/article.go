package domain

import "time"

// Article is the canonical record for a publication, keyed by DOI.
// Rows are append-only: created once by whichever sync run first observes
// the DOI, never mutated afterwards.
type Article struct {
	ID              int64     `db:"id"`
	DOI             string    `db:"doi"`
	Title           string    `db:"title"`
	Authors         string    `db:"authors"`
	Abstract        string    `db:"abstract"`
	PublicationDate time.Time `db:"publication_date"`
	URL             string    `db:"url"`
	JournalID       int64     `db:"journal_id"`
	CreatedAt       time.Time `db:"created_at"`
}

// JournalArticle is an article joined with its journal, as returned by the
// sync engine and consumed by the notifier and the Zotero exporter.
type JournalArticle struct {
	Article
	Journal Journal
}

// Publication is a candidate record fetched from the bibliographic registry,
// validated at the client boundary.
type Publication struct {
	DOI       string
	Title     string
	Authors   string
	Abstract  string
	CreatedAt time.Time
	URL       string
}
