package pushhouse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"
	"time"

	"creative_syncer/internal/domain"
	"creative_syncer/internal/source"
)

const (
	SourceID   = "pushhouse"
	SourceName = "Push.House"

	networkName = "pushhouse"
)

// Config holds Push.House source configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	RateLimitDelay time.Duration
	Status         string
	MaxPages       int
	Retry          source.RetryPolicy
}

// Source is the path-paginated Push.House API client. Each run crawls the
// ads listing from the start page to exhaustion so the resulting snapshot
// can be reconciled against persisted state by set difference.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	status         string
	maxPages       int
	rateLimitDelay time.Duration
	retry          source.RetryPolicy
	logger         *slog.Logger
}

// New creates a new Push.House source.
func New(cfg Config, logger *slog.Logger) *Source {
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		status:         cfg.Status,
		maxPages:       cfg.MaxPages,
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

// FetchAll crawls every page starting at startPage and returns the full
// snapshot. The snapshot is marked complete only when the terminal page was
// actually observed: an empty page, or a 404 past the first page. A
// transient failure past the first page truncates the crawl to partial
// results instead of discarding fetched pages; the incomplete flag then
// blocks set-difference reconciliation downstream.
func (s *Source) FetchAll(ctx context.Context, startPage int) (*domain.Snapshot, error) {
	if startPage < 1 {
		startPage = 1
	}

	snapshot := &domain.Snapshot{}

	s.logger.Info("starting full crawl",
		"status", s.status,
		"start_page", startPage,
		"max_pages", s.maxPages,
	)

	for page := startPage; page <= s.maxPages; page++ {
		ads, err := s.fetchPage(ctx, page)
		if err != nil {
			if errors.Is(err, source.ErrNotFound) && page > startPage {
				// Past-the-end page; upstream signals exhaustion with 404.
				snapshot.Complete = true
				break
			}
			if page == startPage {
				return nil, &domain.FetchError{SourceID: SourceID, Page: page, Err: err}
			}

			s.logger.Warn("page fetch failed, truncating crawl to partial results",
				"page", page,
				"error", err,
			)
			break
		}

		if len(ads) == 0 {
			snapshot.Complete = true
			break
		}

		snapshot.Pages++
		for _, ad := range ads {
			creative, nerr := normalize(ad)
			if nerr != nil {
				s.logger.Debug("dropping invalid ad",
					"page", page,
					"external_id", ad.ID,
					"error", nerr,
				)
				snapshot.Invalid++
				continue
			}
			snapshot.Creatives = append(snapshot.Creatives, *creative)
		}

		s.logger.Debug("page fetched",
			"page", page,
			"items", len(ads),
			"total", len(snapshot.Creatives),
		)

		if err := source.Wait(ctx, s.rateLimitDelay); err != nil {
			return nil, err
		}
	}

	s.logger.Info("crawl finished",
		"pages", snapshot.Pages,
		"items", len(snapshot.Creatives),
		"invalid", snapshot.Invalid,
		"complete", snapshot.Complete,
	)

	return snapshot, nil
}

// TestConnection fetches the first page without retries beyond the policy.
func (s *Source) TestConnection(ctx context.Context) error {
	_, err := s.fetchPage(ctx, 1)
	return err
}

func (s *Source) fetchPage(ctx context.Context, page int) ([]Ad, error) {
	var ads []Ad
	err := s.retry.Do(ctx, s.logger, func() error {
		var opErr error
		ads, opErr = s.doRequest(ctx, page)
		return opErr
	})
	return ads, err
}

func (s *Source) doRequest(ctx context.Context, page int) ([]Ad, error) {
	reqURL := s.baseURL + path.Join("/v1/ads", strconv.Itoa(page), s.status)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, source.Terminal(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "CreativeSyncer/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, source.Terminal(source.ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, source.RateLimited(retryAfter(resp))
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("server error: %d", resp.StatusCode)
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, source.Terminal(fmt.Errorf("unexpected status %d: %s", resp.StatusCode, body))
	}

	var ads []Ad
	if err := json.NewDecoder(resp.Body).Decode(&ads); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return ads, nil
}

func retryAfter(resp *http.Response) time.Duration {
	if v := resp.Header.Get("Retry-After"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return time.Minute
}

// normalize validates one raw ad and converts it to a creative. The ad
// format is inferred from which image slots carry a real file: a main
// image means push, an icon alone means inpage.
func normalize(ad Ad) (*domain.Creative, error) {
	if ad.ID == 0 {
		return nil, fmt.Errorf("missing external id")
	}
	if ad.Country == "" {
		return nil, fmt.Errorf("missing country code")
	}

	hasIcon := hasImageFile(ad.IconURL)
	hasImage := hasImageFile(ad.ImageURL)
	if !hasIcon && !hasImage {
		return nil, fmt.Errorf("no usable image")
	}

	status := domain.StatusActive
	if !ad.IsActive {
		status = domain.StatusInactive
	}

	creative := &domain.Creative{
		SourceID:          SourceID,
		ExternalID:        ad.ID,
		Title:             ad.Title,
		Text:              ad.Text,
		CountryCode:       strings.ToUpper(ad.Country),
		AdNetwork:         networkName,
		Format:            inferFormat(hasIcon, hasImage),
		Status:            status,
		IconURL:           ad.IconURL,
		ImageURL:          ad.ImageURL,
		TargetURL:         ad.TargetURL,
		CPC:               ad.CPC,
		IsAdult:           ad.IsAdult,
		ExternalCreatedAt: parseCreatedAt(ad.CreatedAt),
	}
	creative.ContentHash = domain.ContentHash(creative)

	return creative, nil
}

func inferFormat(hasIcon, hasImage bool) domain.Format {
	if hasIcon && !hasImage {
		return domain.FormatInpage
	}
	return domain.FormatPush
}

// hasImageFile reports whether the URL ends in an actual file name, not a
// bare directory path.
func hasImageFile(imageURL string) bool {
	if imageURL == "" || strings.HasSuffix(imageURL, "/") {
		return false
	}
	name := path.Base(imageURL)
	return name != "" && strings.Contains(name, ".")
}

// parseCreatedAt tolerates empty, epoch-zero, and far-future dates.
func parseCreatedAt(value string) time.Time {
	if value == "" {
		return time.Now()
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		if parsed, err = time.Parse("2006-01-02 15:04:05", value); err != nil {
			return time.Now()
		}
	}
	if parsed.Year() <= 1970 || parsed.After(time.Now().AddDate(1, 0, 0)) {
		return time.Now()
	}

	return parsed
}
