package feedhouse

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"creative_syncer/internal/domain"
	"creative_syncer/internal/source"
)

const (
	SourceID   = "feedhouse"
	SourceName = "FeedHouse"
)

// Config holds FeedHouse source configuration.
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	RateLimitDelay time.Duration
	Formats        []string
	AdNetworks     []string
	Retry          source.RetryPolicy
}

// Source is the cursor-paginated FeedHouse API client. Pages are requested
// with a limit and an optional lastId resume token; the response is a flat
// JSON array and an empty array signals end-of-data.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	formats        []string
	adNetworks     []string
	rateLimitDelay time.Duration
	retry          source.RetryPolicy
	logger         *slog.Logger
}

// New creates a new FeedHouse source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		formats:        cfg.Formats,
		adNetworks:     cfg.AdNetworks,
		rateLimitDelay: cfg.RateLimitDelay,
		retry:          cfg.Retry,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns the human-readable source name.
func (s *Source) Name() string {
	return SourceName
}

// FetchPage fetches one page of campaigns after lastID and normalizes it.
func (s *Source) FetchPage(ctx context.Context, lastID *int64, limit int) (*domain.Page, error) {
	reqURL := s.pageURL(lastID, limit)

	var campaigns []Campaign
	err := s.retry.Do(ctx, s.logger, func() error {
		var opErr error
		campaigns, opErr = s.doRequest(ctx, reqURL)
		return opErr
	})
	if err != nil {
		return nil, &domain.FetchError{SourceID: SourceID, Err: err}
	}

	page := s.normalizePage(campaigns)

	s.logger.Debug("fetched page",
		"last_id", lastIDValue(lastID),
		"limit", limit,
		"raw", page.RawCount,
		"valid", len(page.Creatives),
	)

	return page, nil
}

// RateLimit sleeps the configured inter-page delay.
func (s *Source) RateLimit(ctx context.Context) error {
	return source.Wait(ctx, s.rateLimitDelay)
}

// TestConnection performs a minimal authenticated fetch.
func (s *Source) TestConnection(ctx context.Context) error {
	_, err := s.doRequest(ctx, s.pageURL(nil, 5))
	return err
}

func (s *Source) pageURL(lastID *int64, limit int) string {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("formats", strings.Join(s.formats, ","))
	params.Set("adNetworks", strings.Join(s.adNetworks, ","))
	if lastID != nil {
		params.Set("lastId", strconv.FormatInt(*lastID, 10))
	}
	return s.baseURL + "?" + params.Encode()
}

func (s *Source) doRequest(ctx context.Context, reqURL string) ([]Campaign, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, source.Terminal(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CreativeSyncer/1.0")
	if s.apiKey != "" {
		req.Header.Set("X-Api-Key", s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var campaigns []Campaign
	if err := json.NewDecoder(resp.Body).Decode(&campaigns); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return campaigns, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return source.Terminal(source.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return source.RateLimited(retryAfter(resp))
	case resp.StatusCode >= 500:
		return fmt.Errorf("server error: %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return source.Terminal(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body))
	}
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Minute
}

func (s *Source) normalizePage(campaigns []Campaign) *domain.Page {
	page := &domain.Page{
		RawCount: len(campaigns),
	}

	for _, c := range campaigns {
		if c.ID > page.MaxID {
			page.MaxID = c.ID
		}

		creative, err := normalize(c)
		if err != nil {
			s.logger.Debug("dropping invalid campaign",
				"external_id", c.ID,
				"error", err,
			)
			page.Invalid++
			continue
		}

		page.Creatives = append(page.Creatives, *creative)
	}

	return page
}

// normalize validates one raw campaign and converts it to a creative.
func normalize(c Campaign) (*domain.Creative, error) {
	if c.ID == 0 {
		return nil, fmt.Errorf("missing external id")
	}
	if c.Title == "" && c.Text == "" {
		return nil, fmt.Errorf("both title and text empty")
	}
	if c.CountryISO == "" {
		return nil, fmt.Errorf("missing country code")
	}

	creative := &domain.Creative{
		SourceID:          SourceID,
		ExternalID:        c.ID,
		Title:             c.Title,
		Text:              c.Text,
		CountryCode:       strings.ToUpper(c.CountryISO),
		AdNetwork:         normalizeNetwork(c.AdNetwork),
		Format:            normalizeFormat(c.Format),
		Status:            domain.StatusActive,
		IconURL:           c.IconURL,
		ImageURL:          c.ImageURL,
		TargetURL:         c.TargetURL,
		IsAdult:           c.IsAdult,
		ExternalCreatedAt: parseCreatedAt(c.CreatedAt),
	}
	creative.ContentHash = domain.ContentHash(creative)

	return creative, nil
}

func normalizeNetwork(network string) string {
	if network == "" {
		return "unknown"
	}
	return strings.ToLower(network)
}

func normalizeFormat(format string) domain.Format {
	switch strings.ToLower(format) {
	case "inpage", "in-page":
		return domain.FormatInpage
	default:
		return domain.FormatPush
	}
}

// parseCreatedAt tolerates the malformed dates FeedHouse occasionally
// emits: empty values, epoch zero, and far-future timestamps all fall
// back to now.
func parseCreatedAt(value string) time.Time {
	if value == "" {
		return time.Now()
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now()
	}
	if parsed.Year() <= 1970 || parsed.After(time.Now().AddDate(1, 0, 0)) {
		return time.Now()
	}

	return parsed
}

func lastIDValue(lastID *int64) int64 {
	if lastID == nil {
		return 0
	}
	return *lastID
}
