package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"journal_monitor/internal/domain"
)

// ErrJournalNotFound is returned by LookupJournal when the registry has no
// journal for the given ISSN.
var ErrJournalNotFound = errors.New("journal not found in registry")

// Config holds registry client configuration.
type Config struct {
	BaseURL        string
	ContactEmail   string
	PageSize       int
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Client fetches candidate publications from a CrossRef-compatible registry.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	userAgent      string
	pageSize       int
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new registry client. Every outbound call carries a
// contact-identifying User-Agent per the registry's usage policy.
func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      fmt.Sprintf("JournalMonitor/1.0 (mailto:%s)", cfg.ContactEmail),
		pageSize:       cfg.PageSize,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", "crossref"),
	}
}

// FetchRecent returns publications in the journal identified by issn created
// since the given cutoff. A zero cutoff defaults to one month before now.
// Results are sorted by creation date descending and capped at the
// configured page size.
func (c *Client) FetchRecent(ctx context.Context, issn string, since time.Time) ([]domain.Publication, error) {
	if since.IsZero() {
		since = time.Now().AddDate(0, -1, 0)
	}

	filter := fmt.Sprintf("issn:%s,from-created-date:%s", issn, since.Format("2006-01-02"))

	params := url.Values{}
	params.Set("filter", filter)
	params.Set("rows", fmt.Sprint(c.pageSize))
	params.Set("sort", "created")
	params.Set("order", "desc")

	reqURL := fmt.Sprintf("%s/works?%s", c.baseURL, params.Encode())

	var resp worksResponse
	if err := c.getWithRetry(ctx, reqURL, &resp); err != nil {
		return nil, fmt.Errorf("fetch works for issn %s: %w", issn, err)
	}

	return c.transform(issn, resp.Message.Items), nil
}

// LookupJournal resolves an ISSN to the registry's journal title, used to
// validate user-submitted ISSNs.
func (c *Client) LookupJournal(ctx context.Context, issn string) (string, error) {
	reqURL := fmt.Sprintf("%s/journals/%s", c.baseURL, url.PathEscape(issn))

	var resp journalResponse
	if err := c.get(ctx, reqURL, &resp); err != nil {
		var se *statusError
		if errors.As(err, &se) && se.code == http.StatusNotFound {
			return "", ErrJournalNotFound
		}
		return "", fmt.Errorf("lookup journal %s: %w", issn, err)
	}

	if resp.Message.Title == "" {
		return "", ErrJournalNotFound
	}
	return resp.Message.Title, nil
}

func (c *Client) getWithRetry(ctx context.Context, reqURL string, out any) error {
	var err error

	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		err = c.get(ctx, reqURL, out)
		if err == nil {
			return nil
		}

		if attempt == c.maxAttempts {
			break
		}

		backoff := c.calculateBackoff(attempt)
		c.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}

	return fmt.Errorf("after %d attempts: %w", c.maxAttempts, err)
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status: %d", e.code)
}

func (c *Client) get(ctx context.Context, reqURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) calculateBackoff(attempt int) time.Duration {
	backoff := c.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > c.maxBackoff {
		backoff = c.maxBackoff
	}
	return backoff
}

func (c *Client) transform(issn string, works []Work) []domain.Publication {
	pubs := make([]domain.Publication, 0, len(works))

	for _, w := range works {
		if w.DOI == "" {
			c.logger.Warn("work without DOI, skipping", "issn", issn)
			continue
		}

		createdAt, err := time.Parse(time.RFC3339, w.Created.DateTime)
		if err != nil {
			c.logger.Warn("failed to parse created date",
				"doi", w.DOI,
				"date", w.Created.DateTime,
			)
			continue
		}

		title := "No Title"
		if len(w.Title) > 0 && w.Title[0] != "" {
			title = w.Title[0]
		}

		pubs = append(pubs, domain.Publication{
			DOI:       w.DOI,
			Title:     title,
			Authors:   joinAuthors(w.Author),
			Abstract:  w.Abstract,
			CreatedAt: createdAt,
			URL:       w.URL,
		})
	}

	return pubs
}

// joinAuthors flattens the registry's structured author list into a
// semicolon-separated "Given Family" string, the format the Zotero exporter
// parses back into name parts.
func joinAuthors(authors []WorkAuthor) string {
	parts := make([]string, 0, len(authors))
	for _, a := range authors {
		name := strings.TrimSpace(a.Given + " " + a.Family)
		if name == "" {
			continue
		}
		parts = append(parts, name)
	}
	return strings.Join(parts, "; ")
}
