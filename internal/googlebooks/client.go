package googlebooks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"pilealire/internal/logger"
)

const (
	baseURL = "https://www.googleapis.com/books/v1"
	appName = "PileALire"
)

var ErrVolumeNotFound = errors.New("volume not found")

var volumeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{12}$`)

// Client is a client for the Google Books API.

type Client struct {
	BaseURL      string
	APIKey       string
	HTTPClient   *http.Client
	MaxRetries   int
	RetryBackoff time.Duration

	limiter *rate.Limiter
}

// NewClient creates a new Google Books API client. apiKey may be empty.

func NewClient(apiKey string) *Client {
	return &Client{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		MaxRetries:   3,
		RetryBackoff: time.Second,
		limiter:      rate.NewLimiter(rate.Every(200*time.Millisecond), 1),
	}
}

// FetchJSON fetches JSON data from the given URL, retrying throttled and
// server-side failures with exponential backoff.

func (c *Client) FetchJSON(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	attempts := max(c.MaxRetries, 1)

	for i := 0; i < attempts; i++ {
		if i > 0 {
			backoff := c.RetryBackoff * time.Duration(1<<uint(i-1))
			logger.LogMsg(logger.LogInfo, "Retry %d/%d for URL: %s", i+1, attempts, rawURL)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		body, retry, err := c.fetchOnce(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		if !retry {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("failed after %d attempts. Last error: %w", attempts, lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("User-Agent", fmt.Sprintf("%s/1.0", appName))
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("error making request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("error reading response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrVolumeNotFound
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		if resp.StatusCode == http.StatusTooManyRequests {
			logger.LogMsg(logger.LogWarning, "Rate limit hit, waiting before retry")
		}
		return nil, true, fmt.Errorf("API returned status code %d: %s", resp.StatusCode, string(body))
	default:
		return nil, false, fmt.Errorf("API returned status code %d: %s", resp.StatusCode, string(body))
	}

	if !json.Valid(body) {
		return nil, true, fmt.Errorf("invalid JSON response")
	}
	return body, false, nil
}

// GetVolume looks up a single volume by its identifier.
func (c *Client) GetVolume(ctx context.Context, volumeID string) (*Volume, error) {
	u := fmt.Sprintf("%s/volumes/%s", c.BaseURL, url.PathEscape(volumeID))
	if c.APIKey != "" {
		u += "?key=" + url.QueryEscape(c.APIKey)
	}

	body, err := c.FetchJSON(ctx, u)
	if err != nil {
		return nil, err
	}

	var v Volume
	if err := json.Unmarshal(body, &v); err != nil {
		return nil, err
	}
	if v.ID == "" {
		return nil, ErrVolumeNotFound
	}
	return &v, nil
}

// ExtractVolumeID accepts a raw volume ID or a Google Books link
// (books.google.*/books?id=<id> or google.*/books/edition/<slug>/<id>).
func ExtractVolumeID(text string) (string, error) {
	text = strings.TrimSpace(text)
	if volumeIDPattern.MatchString(text) {
		return text, nil
	}
	return ExtractVolumeIDFromURL(text)
}

// ExtractVolumeIDFromURL only accepts Google Books links. Free text that
// happens to look like a bare ID is rejected.
func ExtractVolumeIDFromURL(text string) (string, error) {
	text = strings.TrimSpace(text)
	u, err := url.Parse(text)
	if err != nil || u.Host == "" || !strings.Contains(u.Hostname(), "google.") {
		return "", fmt.Errorf("not a Google Books URL: %q", text)
	}
	if id := u.Query().Get("id"); volumeIDPattern.MatchString(id) {
		return id, nil
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) >= 3 && parts[0] == "books" && parts[1] == "edition" {
		if id := parts[len(parts)-1]; volumeIDPattern.MatchString(id) {
			return id, nil
		}
	}

	return "", fmt.Errorf("no volume ID found in %q", text)
}
