package statsfeed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"

	"github.com/scoutschool/daily-shift/internal/infrastructure/dataset"
	"github.com/scoutschool/daily-shift/internal/platform/logging"
	"github.com/scoutschool/daily-shift/internal/platform/resilience"
	"github.com/scoutschool/daily-shift/internal/usecase"
)

const (
	defaultTimeout = 20 * time.Second
	maxBodyBytes   = 6 << 20
)

var errStatsFeedTransient = crerr.New("stats feed transient failure")

// ErrFileUnavailable marks an optional feed file the provider does not
// publish. Sync tolerates it for everything except the player file.
var ErrFileUnavailable = crerr.New("stats feed file unavailable")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	Token          string
	Timeout        time.Duration
	MaxRetries     int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client pulls the canonical dataset files from the upstream stats feed.
// Parsing stays in the dataset loader; the client only verifies payloads
// are well formed before handing them over.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	token          string
	maxRetries     int
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		token:          strings.TrimSpace(cfg.Token),
		maxRetries:     maxInt(cfg.MaxRetries, 0),
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg),
		circuitEnabled: breakerCfg.Enabled,
	}
}

// SyncResult reports which dataset files a Sync call refreshed.
type SyncResult struct {
	Fetched []string
	Skipped []string
}

// Sync downloads the dataset files into destDir. The player file is
// mandatory; the goalie CSV pair and the line-structure file are fetched
// when the feed publishes them. Goalie ratings and the biographical
// lookup travel together, so a missing half skips the pair.
func (c *Client) Sync(ctx context.Context, destDir string) (SyncResult, error) {
	if strings.TrimSpace(destDir) == "" {
		return SyncResult{}, fmt.Errorf("%w: destination directory is required", usecase.ErrInvalidInput)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return SyncResult{}, crerr.Wrapf(err, "create dataset dir %s", destDir)
	}

	result := SyncResult{}

	players, err := c.fetchFile(ctx, dataset.PlayersFile)
	if err != nil {
		return SyncResult{}, fmt.Errorf("fetch %s: %w", dataset.PlayersFile, err)
	}
	if !sonic.Valid(players) {
		return SyncResult{}, crerr.Newf("player payload is not valid JSON (%d bytes)", len(players))
	}
	if err := writeFileAtomic(destDir, dataset.PlayersFile, players); err != nil {
		return SyncResult{}, err
	}
	result.Fetched = append(result.Fetched, dataset.PlayersFile)

	ratings, ratingsErr := c.fetchFile(ctx, dataset.GoalieRatingsFile)
	lookup, lookupErr := c.fetchFile(ctx, dataset.GoalieLookupFile)
	switch {
	case ratingsErr == nil && lookupErr == nil:
		if err := writeFileAtomic(destDir, dataset.GoalieRatingsFile, ratings); err != nil {
			return SyncResult{}, err
		}
		if err := writeFileAtomic(destDir, dataset.GoalieLookupFile, lookup); err != nil {
			return SyncResult{}, err
		}
		result.Fetched = append(result.Fetched, dataset.GoalieRatingsFile, dataset.GoalieLookupFile)
	case crerr.Is(ratingsErr, ErrFileUnavailable) || crerr.Is(lookupErr, ErrFileUnavailable):
		c.logger.WarnContext(ctx, "goalie file pair incomplete on feed, skipping both",
			"ratings_err", ratingsErr,
			"lookup_err", lookupErr,
		)
		result.Skipped = append(result.Skipped, dataset.GoalieRatingsFile, dataset.GoalieLookupFile)
	case ratingsErr != nil:
		return SyncResult{}, fmt.Errorf("fetch %s: %w", dataset.GoalieRatingsFile, ratingsErr)
	default:
		return SyncResult{}, fmt.Errorf("fetch %s: %w", dataset.GoalieLookupFile, lookupErr)
	}

	structures, err := c.fetchFile(ctx, dataset.StructuresFile)
	switch {
	case err == nil:
		if !sonic.Valid(structures) {
			return SyncResult{}, crerr.Newf("line structure payload is not valid JSON (%d bytes)", len(structures))
		}
		if err := writeFileAtomic(destDir, dataset.StructuresFile, structures); err != nil {
			return SyncResult{}, err
		}
		result.Fetched = append(result.Fetched, dataset.StructuresFile)
	case crerr.Is(err, ErrFileUnavailable):
		result.Skipped = append(result.Skipped, dataset.StructuresFile)
	default:
		return SyncResult{}, fmt.Errorf("fetch %s: %w", dataset.StructuresFile, err)
	}

	return result, nil
}

func (c *Client) fetchFile(ctx context.Context, name string) ([]byte, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("%w: stats feed base url is not configured", usecase.ErrDependencyUnavailable)
	}

	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "stats feed circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: stats feed is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	fullURL := c.baseURL + "/" + name
	out, err, _ := c.flight.Do(fullURL, func() (any, error) {
		raw, reqErr := c.executeRequest(ctx, fullURL)
		if c.circuitEnabled {
			if reqErr != nil && crerr.Is(reqErr, errStatsFeedTransient) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		return raw, reqErr
	})
	if err != nil {
		return nil, err
	}

	raw, ok := out.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected response payload type %T", out)
	}

	return raw, nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("accept", "application/json, text/csv")
		if c.token != "" {
			req.Header.Set("authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("%w: send request: %s", errStatsFeedTransient, c.sanitize(err.Error()))
		} else {
			buf := bytebufferpool.Get()
			_, readErr := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()

			switch {
			case readErr != nil:
				bytebufferpool.Put(buf)
				lastErr = fmt.Errorf("%w: read response body: %v", errStatsFeedTransient, readErr)
			case resp.StatusCode == http.StatusNotFound:
				bytebufferpool.Put(buf)
				return nil, fmt.Errorf("%w: status=404", ErrFileUnavailable)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				raw := append([]byte(nil), buf.B...)
				bytebufferpool.Put(buf)
				return raw, nil
			default:
				body := abbreviateBody(buf.B)
				bytebufferpool.Put(buf)
				if isRetryableStatus(resp.StatusCode) {
					lastErr = fmt.Errorf("%w: feed status=%d body=%s", errStatsFeedTransient, resp.StatusCode, body)
				} else {
					return nil, fmt.Errorf("feed status=%d body=%s", resp.StatusCode, body)
				}
			}
		}

		if attempt == c.maxRetries {
			break
		}
		backoff := time.Duration(attempt+1) * time.Second
		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("feed request failed")
	}
	c.logger.WarnContext(ctx, "stats feed request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func (c *Client) sanitize(value string) string {
	value = strings.TrimSpace(value)
	if c.token != "" {
		value = strings.ReplaceAll(value, c.token, "REDACTED")
	}
	return value
}

func writeFileAtomic(dir, name string, data []byte) error {
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", name)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return crerr.Wrapf(err, "write %s", name)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return crerr.Wrapf(err, "close %s", name)
	}
	if err := os.Rename(tmpPath, filepath.Join(dir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return crerr.Wrapf(err, "replace %s", name)
	}

	return nil
}

func isRetryableStatus(status int) bool {
	if status == http.StatusTooManyRequests || status == http.StatusRequestTimeout {
		return true
	}
	return status >= 500
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}

func maxInt(left, right int) int {
	if left > right {
		return left
	}
	return right
}
