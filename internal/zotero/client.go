package zotero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	apiVersion = "3"

	// maxBatchSize is the remote service's own per-call object limit.
	maxBatchSize = 50

	// pageLimit is the page size used when listing collections.
	pageLimit = 100
)

// Config holds remote library client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to a Zotero-compatible library API. All calls go through a
// single request wrapper that honors the service's Backoff and Retry-After
// headers before the next outbound request, on top of a courtesy pacer.
type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), 1),
		logger:  logger.With("component", "zotero"),
	}
}

// do issues one API request. It waits for the pacer first, then sleeps out
// any rate-limit hint the response carries so the next call never jumps the
// server's backoff window.
func (c *Client) do(ctx context.Context, method, path, apiKey string, body any) (*http.Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Zotero-API-Version", apiVersion)
	req.Header.Set("Zotero-API-Key", apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}

	if err := c.honorBackoff(ctx, resp.Header); err != nil {
		resp.Body.Close()
		return nil, err
	}

	return resp, nil
}

// honorBackoff sleeps for the duration indicated by the Backoff or
// Retry-After header, if either is present.
func (c *Client) honorBackoff(ctx context.Context, header http.Header) error {
	raw := header.Get("Backoff")
	if raw == "" {
		raw = header.Get("Retry-After")
	}
	if raw == "" {
		return nil
	}

	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds <= 0 {
		seconds = 5
	}

	wait := time.Duration(seconds) * time.Second
	c.logger.Debug("honoring rate-limit hint", "wait", wait)

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
		return nil
	}
}

func apiError(op string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("%s: status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(body)))
}

// ListCollections returns every collection in the user's library, following
// the Total-Results header across pages.
func (c *Client) ListCollections(ctx context.Context, userID, apiKey string) ([]Collection, error) {
	var all []Collection
	start := 0

	for {
		path := fmt.Sprintf("/users/%s/collections?limit=%d&start=%d", userID, pageLimit, start)
		resp, err := c.do(ctx, http.MethodGet, path, apiKey, nil)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			return nil, apiError("list collections", resp)
		}

		var page []Collection
		if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decode collections: %w", err)
		}
		resp.Body.Close()

		all = append(all, page...)

		total, _ := strconv.Atoi(resp.Header.Get("Total-Results"))
		start += pageLimit
		if start >= total || len(page) == 0 {
			break
		}
	}

	return all, nil
}

// CreateCollections creates collections in batches of up to maxBatchSize
// and returns the created objects. A failed batch call is a hard error.
func (c *Client) CreateCollections(ctx context.Context, userID, apiKey string, collections []NewCollection) ([]Collection, error) {
	var created []Collection

	for i := 0; i < len(collections); i += maxBatchSize {
		batch := collections[i:min(i+maxBatchSize, len(collections))]

		resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/collections", userID), apiKey, batch)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			return nil, apiError("create collections", resp)
		}

		var result writeResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			return nil, fmt.Errorf("decode create response: %w", err)
		}
		resp.Body.Close()

		for _, col := range result.Successful {
			created = append(created, col)
		}
	}

	return created, nil
}

// CreateItems creates items in batches of up to maxBatchSize and returns
// how many the service accepted. A failed batch call is a hard error;
// per-object failures (the service's own duplicate handling included) only
// reduce the count.
func (c *Client) CreateItems(ctx context.Context, userID, apiKey string, items []Item) (int, error) {
	count := 0

	for i := 0; i < len(items); i += maxBatchSize {
		batch := items[i:min(i+maxBatchSize, len(items))]

		resp, err := c.do(ctx, http.MethodPost, fmt.Sprintf("/users/%s/items", userID), apiKey, batch)
		if err != nil {
			return count, err
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			return count, apiError("create items", resp)
		}

		var result writeResponse
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			resp.Body.Close()
			return count, fmt.Errorf("decode create response: %w", err)
		}
		resp.Body.Close()

		count += len(result.Successful)
	}

	return count, nil
}

// TestConnection probes the API with the given credentials.
func (c *Client) TestConnection(ctx context.Context, userID, apiKey string) error {
	resp, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/users/%s/collections?limit=1", userID), apiKey, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("api key rejected: check the key's read/write permissions")
	default:
		return apiError("test connection", resp)
	}
}
