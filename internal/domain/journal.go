package domain

import (
	"errors"
	"time"
)

// MaxFollowedJournals is the upper bound on active follows per user.
const MaxFollowedJournals = 30

// ErrFollowLimit is returned when a user tries to follow more than
// MaxFollowedJournals journals.
var ErrFollowLimit = errors.New("follow limit reached")

type Journal struct {
	ID         int64     `db:"id"`
	Title      string    `db:"title"`
	PrintISSN  *string   `db:"print_issn"`
	EISSN      *string   `db:"e_issn"`
	AJGRanking *string   `db:"ajg_ranking"`
	Field      *string   `db:"field"`
	IsFT50     bool      `db:"is_ft50"`
	IsUTD24    bool      `db:"is_utd24"`
	IsCustom   bool      `db:"is_custom"`
	CreatedAt  time.Time `db:"created_at"`
}

// ISSN returns the identifier used for registry polling, preferring the
// print ISSN. Empty when the journal carries neither variant.
func (j Journal) ISSN() string {
	if j.PrintISSN != nil && *j.PrintISSN != "" {
		return *j.PrintISSN
	}
	if j.EISSN != nil && *j.EISSN != "" {
		return *j.EISSN
	}
	return ""
}
