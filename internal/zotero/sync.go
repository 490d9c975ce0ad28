package zotero

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"journal_monitor/internal/domain"
)

// rootCollectionName is the fixed name of the top-level collection owned by
// this integration; matching on it is what makes repeated syncs idempotent.
const rootCollectionName = "Journal Monitor"

// Result aggregates what a sync call created remotely.
type Result struct {
	CollectionsCreated int
	ItemsCreated       int
}

// Exporter mirrors followed journals into remote collections and their
// articles into items.
type Exporter struct {
	client *Client
	logger *slog.Logger
}

func NewExporter(client *Client, logger *slog.Logger) *Exporter {
	return &Exporter{client: client, logger: logger}
}

// Sync resolves or creates the root collection and one child collection per
// journal title, then creates one item per article under its journal's
// collection. Re-running with the same inputs creates no duplicate
// collections; item duplicates are left to the remote service's own
// handling. Any failed remote batch aborts the sync with an error.
func (e *Exporter) Sync(ctx context.Context, userID, apiKey string, journals []domain.Journal, articles []domain.JournalArticle) (Result, error) {
	var result Result

	existing, err := e.client.ListCollections(ctx, userID, apiKey)
	if err != nil {
		return result, fmt.Errorf("list collections: %w", err)
	}

	rootKey := ""
	for _, col := range existing {
		if col.Data.Name == rootCollectionName && col.Data.ParentCollection == "" {
			rootKey = col.Data.Key
			break
		}
	}

	if rootKey == "" {
		created, err := e.client.CreateCollections(ctx, userID, apiKey, []NewCollection{
			{Name: rootCollectionName},
		})
		if err != nil {
			return result, fmt.Errorf("create root collection: %w", err)
		}
		if len(created) == 0 {
			return result, fmt.Errorf("create root collection: service accepted no objects")
		}
		rootKey = created[0].Data.Key
		result.CollectionsCreated++
	}

	// Journal title -> collection key, seeded from existing children of the
	// root so reruns reuse collections instead of duplicating them.
	collectionKeys := make(map[string]string)
	for _, col := range existing {
		if string(col.Data.ParentCollection) == rootKey {
			collectionKeys[col.Data.Name] = col.Data.Key
		}
	}

	var toCreate []NewCollection
	seen := make(map[string]bool)
	for _, journal := range journals {
		if _, ok := collectionKeys[journal.Title]; ok || seen[journal.Title] {
			continue
		}
		seen[journal.Title] = true
		toCreate = append(toCreate, NewCollection{
			Name:             journal.Title,
			ParentCollection: ParentKey(rootKey),
		})
	}

	if len(toCreate) > 0 {
		created, err := e.client.CreateCollections(ctx, userID, apiKey, toCreate)
		if err != nil {
			return result, fmt.Errorf("create journal collections: %w", err)
		}
		for _, col := range created {
			collectionKeys[col.Data.Name] = col.Data.Key
			result.CollectionsCreated++
		}
	}

	var items []Item
	for _, article := range articles {
		key, ok := collectionKeys[article.Journal.Title]
		if !ok {
			e.logger.Warn("no collection for journal, skipping article",
				"journal", article.Journal.Title,
				"doi", article.DOI,
			)
			continue
		}
		items = append(items, itemFromArticle(article, key))
	}

	count, err := e.client.CreateItems(ctx, userID, apiKey, items)
	result.ItemsCreated = count
	if err != nil {
		return result, fmt.Errorf("create items: %w", err)
	}

	e.logger.Info("library sync completed",
		"collections_created", result.CollectionsCreated,
		"items_created", result.ItemsCreated,
		"articles", len(articles),
	)

	return result, nil
}

func itemFromArticle(article domain.JournalArticle, collectionKey string) Item {
	date := ""
	if !article.PublicationDate.IsZero() {
		date = article.PublicationDate.Format("2006-01-02")
	}

	return Item{
		ItemType:         "journalArticle",
		Title:            article.Article.Title,
		DOI:              article.DOI,
		URL:              article.URL,
		AbstractNote:     article.Abstract,
		PublicationTitle: article.Journal.Title,
		Date:             date,
		ISSN:             article.Journal.ISSN(),
		Creators:         ParseAuthors(article.Authors),
		Collections:      []string{collectionKey},
	}
}

// ParseAuthors splits a semicolon-separated author string into structured
// creators. "Last, First" splits on the comma; otherwise the final
// whitespace-delimited token is the family name; a single token becomes a
// bare family name.
func ParseAuthors(authors string) []Creator {
	var creators []Creator

	for _, name := range strings.Split(authors, ";") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if i := strings.Index(name, ","); i >= 0 {
			creators = append(creators, Creator{
				CreatorType: "author",
				LastName:    strings.TrimSpace(name[:i]),
				FirstName:   strings.TrimSpace(name[i+1:]),
			})
			continue
		}

		words := strings.Fields(name)
		if len(words) >= 2 {
			creators = append(creators, Creator{
				CreatorType: "author",
				LastName:    words[len(words)-1],
				FirstName:   strings.Join(words[:len(words)-1], " "),
			})
			continue
		}

		creators = append(creators, Creator{
			CreatorType: "author",
			LastName:    name,
		})
	}

	return creators
}
