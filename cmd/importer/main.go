// Command importer loads a journal catalog CSV into the journals table.
// Expected columns: title, print_issn, e_issn, field, ajg_2024, is_ft50,
// is_utd24. Rows that fail are logged and skipped.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"journal_monitor/internal/config"
	"journal_monitor/internal/domain"
	"journal_monitor/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	filePath := flag.String("file", "journals.csv", "path to the catalog CSV")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Error("failed to open catalog file", "error", err)
		os.Exit(1)
	}
	defer f.Close()

	ctx := context.Background()
	store := postgres.NewJournalStore(db)

	count, skipped, err := importCatalog(ctx, store, f, logger)
	if err != nil {
		logger.Error("import failed", "error", err)
		os.Exit(1)
	}

	logger.Info("import complete", "imported", count, "skipped", skipped)
}

func importCatalog(ctx context.Context, store *postgres.JournalStore, r io.Reader, logger *slog.Logger) (int, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return 0, 0, err
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	field := func(record []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	count, skipped := 0, 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Warn("malformed row, skipping", "error", err)
			skipped++
			continue
		}

		title := field(record, "title")
		if title == "" {
			skipped++
			continue
		}

		journal := &domain.Journal{
			Title:   title,
			IsFT50:  truthy(field(record, "is_ft50")),
			IsUTD24: truthy(field(record, "is_utd24")),
		}
		if v := field(record, "print_issn"); v != "" {
			journal.PrintISSN = &v
		}
		if v := field(record, "e_issn"); v != "" {
			journal.EISSN = &v
		}
		if v := field(record, "ajg_2024"); v != "" {
			journal.AJGRanking = &v
		}
		if v := field(record, "field"); v != "" {
			journal.Field = &v
		}

		// Skip rows whose ISSN is already in the catalog so re-imports stay
		// idempotent.
		if issn := journal.ISSN(); issn != "" {
			existing, err := store.FindByISSN(ctx, issn)
			if err != nil {
				return count, skipped, err
			}
			if existing != nil {
				skipped++
				continue
			}
		}

		if _, err := store.Create(ctx, journal); err != nil {
			logger.Warn("failed to import journal", "title", title, "error", err)
			skipped++
			continue
		}
		count++
	}

	return count, skipped, nil
}

func truthy(s string) bool {
	switch strings.ToLower(s) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}
