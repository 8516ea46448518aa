package sportsdata

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
	"github.com/sourcegraph/conc/pool"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL           = "https://api.sportsdata.io/v3/nfl"
	defaultStatsSeason       = "2024"
	defaultProjectionsSeason = "2025"
	maxResponseBytes         = 32 << 20
)

var keyParamRegex = regexp.MustCompile(`key=[^&\s"']+`)
var errSportsDataTransient = crerr.New("sportsdata transient failure")

type ClientConfig struct {
	HTTPClient        *http.Client
	BaseURL           string
	APIKey            string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
	StatsSeason       string
	ProjectionsSeason string
	Logger            *logging.Logger
	CircuitBreaker    resilience.CircuitBreakerConfig
}

// Client reads the NFL player universe from SportsData.io. It implements player.Catalog.
type Client struct {
	httpClient        *http.Client
	baseURL           string
	apiKey            string
	maxRetries        int
	statsSeason       string
	projectionsSeason string
	limiter           *rate.Limiter
	logger            *logging.Logger
	breaker           *resilience.CircuitBreaker
	flight            resilience.SingleFlight[[]byte]
	flightTimeout     time.Duration
	retryDelay        func(attempt int) time.Duration
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
		httpClient.Timeout = 30 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	breaker := resilience.NewCircuitBreaker("sportsdata", cfg.CircuitBreaker,
		resilience.WithStateChange(func(name string, from, to resilience.CircuitState) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
		}))
	retries := max(cfg.MaxRetries, 0)

	return &Client{
		httpClient:        httpClient,
		baseURL:           baseURL,
		apiKey:            strings.TrimSpace(cfg.APIKey),
		maxRetries:        retries,
		statsSeason:       firstNonEmpty(cfg.StatsSeason, defaultStatsSeason),
		projectionsSeason: firstNonEmpty(cfg.ProjectionsSeason, defaultProjectionsSeason),
		limiter:           rate.NewLimiter(limit, 1),
		logger:            logger,
		breaker:           breaker,
		flightTimeout:     time.Duration(retries+1) * (httpClient.Timeout + time.Duration(retries+1)*time.Second),
		retryDelay: func(attempt int) time.Duration {
			return time.Duration(attempt+1) * time.Second
		},
	}
}

// ListPlayers fetches players, season stats and season projections
// concurrently and merges the stat lines onto players by PlayerID.
func (c *Client) ListPlayers(ctx context.Context) ([]player.Player, error) {
	var (
		players     []playerItem
		stats       []map[string]any
		projections []map[string]any
	)

	p := pool.New().WithContext(ctx).WithCancelOnError()
	p.Go(func(ctx context.Context) error {
		if err := c.doJSON(ctx, "/scores/json/Players", &players); err != nil {
			return crerr.Wrap(err, "fetch players")
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		path := "/stats/json/PlayerSeasonStats/" + url.PathEscape(c.statsSeason)
		if err := c.doJSON(ctx, path, &stats); err != nil {
			return crerr.Wrapf(err, "fetch season stats season=%s", c.statsSeason)
		}
		return nil
	})
	p.Go(func(ctx context.Context) error {
		path := "/projections/json/PlayerSeasonProjectionStats/" + url.PathEscape(c.projectionsSeason)
		if err := c.doJSON(ctx, path, &projections); err != nil {
			return crerr.Wrapf(err, "fetch season projections season=%s", c.projectionsSeason)
		}
		return nil
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	return mergeCatalog(players, indexByPlayerID(stats), indexByPlayerID(projections)), nil
}

// ListNews returns the provider's news items for playerID, newest first as delivered.
func (c *Client) ListNews(ctx context.Context, playerID int64) ([]player.News, error) {
	if playerID <= 0 {
		return nil, fmt.Errorf("%w: player id must be greater than zero", usecase.ErrInvalidInput)
	}

	var items []newsItem
	path := "/scores/json/NewsByPlayerID/" + strconv.FormatInt(playerID, 10)
	if err := c.doJSON(ctx, path, &items); err != nil {
		return nil, crerr.Wrapf(err, "fetch news player_id=%d", playerID)
	}

	out := make([]player.News, 0, len(items))
	for _, item := range items {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) doJSON(ctx context.Context, path string, target any) error {
	if c.apiKey == "" {
		return fmt.Errorf("%w: sportsdata api key is not configured", usecase.ErrDependencyUnavailable)
	}
	values := url.Values{}
	values.Set("key", c.apiKey)
	fullURL := c.baseURL + path + "?" + values.Encode()

	// Only the flight leader takes a breaker slot. The shared request ignores
	// the leader's cancellation and is bounded by flightTimeout.
	raw, err, _ := c.flight.Do(path, func() ([]byte, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.flightTimeout)
		defer cancel()

		var raw []byte
		err := c.breaker.Guard(func() error {
			var reqErr error
			raw, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isSportsDataCircuitFailure)
		return raw, err
	})
	if stderrors.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "sportsdata circuit breaker rejected request", "state", c.breaker.State())
		return fmt.Errorf("%w: player data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrap(err, "decode provider payload")
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "wait for rate limiter")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = crerr.Wrapf(errSportsDataTransient, "send request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(errSportsDataTransient, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.Wrapf(errSportsDataTransient, "provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			default:
				return nil, crerr.Newf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(c.retryDelay(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if lastErr == nil {
		lastErr = crerr.New("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportsdata request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

func isSportsDataCircuitFailure(err error) bool {
	if err == nil {
		return false
	}
	return stderrors.Is(err, errSportsDataTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func sanitizeSensitiveText(value, key string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if key != "" {
		value = strings.ReplaceAll(value, key, "REDACTED")
	}
	return keyParamRegex.ReplaceAllString(value, "key=REDACTED")
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	if query.Has("key") {
		query.Set("key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
