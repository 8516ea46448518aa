package draftapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/fantasy-draft/internal/domain/player"
	"github.com/riskibarqy/fantasy-draft/internal/domain/query"
	"github.com/riskibarqy/fantasy-draft/internal/platform/logging"
	"github.com/riskibarqy/fantasy-draft/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-draft/internal/usecase"
	"github.com/valyala/fasthttp"
)

const (
	statusSuccess  = "success"
	statusError    = "error"
	defaultTimeout = 15 * time.Second
)

type ClientConfig struct {
	BaseURL        string
	Timeout        time.Duration
	PageSize       int
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client talks to the player catalog HTTP API. It implements usecase.PlayerProvider.
type Client struct {
	http     *fasthttp.Client
	baseURL  string
	timeout  time.Duration
	pageSize int
	logger   *logging.Logger
	breaker  *resilience.CircuitBreaker
}

func NewClient(cfg ClientConfig) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("draft api base url is required")
	}
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		return nil, fmt.Errorf("draft api base url must start with http:// or https://, got %q", baseURL)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	breaker := resilience.NewCircuitBreaker("draftapi", cfg.CircuitBreaker,
		resilience.WithStateChange(logStateChange(logger)))

	return &Client{
		http: &fasthttp.Client{
			Name:                     "fantasy-draft",
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxIdleConnDuration:      time.Minute,
			NoDefaultUserAgentHeader: true,
		},
		baseURL:  baseURL,
		timeout:  timeout,
		pageSize: cfg.PageSize,
		logger:   logger,
		breaker:  breaker,
	}, nil
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type listData struct {
	Players    []player.Player `json:"players"`
	TotalPages int             `json:"totalPages"`
}

func (c *Client) ListPlayers(ctx context.Context, params query.Parameters) (player.Page, error) {
	path := "/api/players?" + params.Encode(c.pageSize).Encode()

	var data listData
	if err := c.get(ctx, path, &data); err != nil {
		return player.Page{}, err
	}
	if data.Players == nil {
		data.Players = []player.Player{}
	}
	if data.TotalPages < 0 {
		return player.Page{}, fmt.Errorf("decode player page: negative totalPages %d", data.TotalPages)
	}
	return player.Page{Players: data.Players, TotalPages: data.TotalPages}, nil
}

func (c *Client) GetPlayerDetail(ctx context.Context, playerID int64) (player.Detail, error) {
	path := "/api/player/" + strconv.FormatInt(playerID, 10)

	var detail player.Detail
	if err := c.get(ctx, path, &detail); err != nil {
		return player.Detail{}, err
	}
	if detail.News == nil {
		detail.News = []player.News{}
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, path string, target any) error {
	err := c.breaker.Guard(func() error {
		return c.do(ctx, path, target)
	}, func(err error) bool {
		return errors.Is(err, usecase.ErrTransport)
	})
	if errors.Is(err, resilience.ErrCircuitOpen) {
		return fmt.Errorf("%w: draft api is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return err
}

func (c *Client) do(ctx context.Context, path string, target any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.DoTimeout(req, resp, c.timeout)
	}
	if err != nil {
		c.logger.WarnContext(ctx, "draft api request failed", "path", path, "error", err)
		return fmt.Errorf("%w: GET %s: %v", usecase.ErrTransport, path, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)

	var env envelope
	decodeErr := sonic.Unmarshal(body, &env)
	if decodeErr == nil && strings.EqualFold(env.Status, statusError) {
		return &usecase.ProviderError{Message: strings.TrimSpace(env.Message)}
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("%w: GET %s: status=%d", usecase.ErrTransport, path, status)
	}
	if decodeErr != nil {
		return fmt.Errorf("decode draft api response: %w", decodeErr)
	}
	if !strings.EqualFold(env.Status, statusSuccess) {
		return fmt.Errorf("decode draft api response: unexpected status %q", env.Status)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return fmt.Errorf("decode draft api response: missing data")
	}
	if err := sonic.Unmarshal(env.Data, target); err != nil {
		return fmt.Errorf("decode draft api data: %w", err)
	}
	return nil
}

func logStateChange(logger *logging.Logger) resilience.StateChangeFunc {
	return func(name string, from, to resilience.CircuitState) {
		logger.Warn("circuit breaker state changed", "breaker", name, "from", from, "to", to)
	}
}
