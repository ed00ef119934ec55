package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"plutusgrip-client/internal/config"
	"plutusgrip-client/internal/dto"
	apierrors "plutusgrip-client/internal/errors"
	"plutusgrip-client/internal/session"
	"plutusgrip-client/internal/validation"
)

const (
	loginEndpoint    = "/auth/login"
	registerEndpoint = "/auth/register"
	refreshEndpoint  = "/auth/refresh"
)

// Client is the authenticated PlutusGrip API client. Tokens are read
// from the session store on every dispatch, never from a cached copy.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	store      session.StoreInterface
	validator  *validation.Validator
	limiter    *rate.Limiter
	breaker    *CircuitBreaker
	metrics    *Metrics
	logger     *slog.Logger

	// refreshMu serializes token refresh so concurrent 401s trigger
	// a single refresh call.
	refreshMu sync.Mutex
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithRegisterer(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetrics(reg)
	}
}

func WithBreakerConfig(cfg CircuitBreakerConfig) Option {
	return func(c *Client) {
		c.breaker = NewCircuitBreaker(cfg)
	}
}

func New(cfg config.APIConfig, store session.StoreInterface, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		store:     store,
		validator: validation.GetValidator(),
		limiter:   rate.NewLimiter(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		breaker:   NewCircuitBreaker(DefaultCircuitBreakerConfig()),
		logger:    logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.metrics == nil {
		c.metrics = NewMetrics(nil)
	}

	return c
}

// IsAuthenticated reports whether a persisted session exists.
func (c *Client) IsAuthenticated() bool {
	return c.store.IsAuthenticated()
}

// request describes one API call. The resource field is a low
// cardinality label used for metrics, never the raw path.
type request struct {
	method   string
	path     string
	resource string
	query    url.Values
	body     interface{}
	out      interface{}
}

// do runs the full dispatch cycle: rate limit, circuit breaker,
// optional proactive refresh, one attempt, and on 401 exactly one
// refresh followed by one identical retry.
func (c *Client) do(ctx context.Context, req request) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apierrors.NewTransportError(err)
	}

	if c.breaker.IsOpen() {
		c.metrics.SetBreakerState(c.breaker.GetState())
		return apierrors.NewCircuitOpen()
	}

	payload, err := marshalBody(req.body)
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("encode request body: %v", err))
	}

	// Refresh ahead of the call when the stored access token is a JWT
	// that has already expired. Opaque tokens are sent as-is.
	if !isAuthExempt(req.path) {
		token := c.store.AccessToken()
		if token != "" && session.TokenIsExpired(token, time.Now()) && c.store.RefreshToken() != "" {
			if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
				return refreshErr
			}
		}
	}

	status, body, err := c.send(ctx, req, payload)
	if err != nil {
		return err
	}

	if status == http.StatusUnauthorized && !isAuthExempt(req.path) {
		if c.store.RefreshToken() == "" {
			if clearErr := c.store.ClearTokens(); clearErr != nil {
				c.logger.Error("failed to clear session", "error", clearErr)
			}
			c.metrics.RecordSessionEvent("session_expired")
			return apierrors.NewSessionExpired()
		}

		if refreshErr := c.refreshAccessToken(ctx); refreshErr != nil {
			c.metrics.RecordSessionEvent("session_expired")
			return apierrors.NewSessionExpired()
		}

		status, body, err = c.send(ctx, req, payload)
		if err != nil {
			return err
		}

		if status == http.StatusUnauthorized {
			if clearErr := c.store.ClearTokens(); clearErr != nil {
				c.logger.Error("failed to clear session", "error", clearErr)
			}
			c.metrics.RecordSessionEvent("session_expired")
			return apierrors.NewSessionExpired()
		}
	}

	if status < 200 || status > 299 {
		return apierrors.FromResponse(status, http.StatusText(status), body)
	}

	if req.out == nil || status == http.StatusNoContent || len(body) == 0 {
		return nil
	}

	if err := json.Unmarshal(body, req.out); err != nil {
		return apierrors.NewTransportError(fmt.Errorf("decode response body: %w", err))
	}

	return nil
}

// send performs a single HTTP attempt and fully reads the response
// body. A transport level failure trips the breaker and is returned
// as an APIError; HTTP error statuses are left to the caller.
func (c *Client) send(ctx context.Context, req request, payload []byte) (int, []byte, error) {
	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, apierrors.NewTransportError(err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", uuid.NewString())

	if !isAuthExempt(req.path) {
		if token := c.store.AccessToken(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if err != nil {
		c.breaker.RecordFailure()
		c.metrics.SetBreakerState(c.breaker.GetState())
		c.metrics.ObserveRequest(req.resource, req.method, 0, duration)
		c.logger.Warn("request failed",
			"method", req.method,
			"path", req.path,
			"error", err,
		)
		return 0, nil, apierrors.NewTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.breaker.RecordFailure()
		c.metrics.SetBreakerState(c.breaker.GetState())
		c.metrics.ObserveRequest(req.resource, req.method, resp.StatusCode, duration)
		return 0, nil, apierrors.NewTransportError(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		c.breaker.RecordFailure()
	} else {
		c.breaker.RecordSuccess()
	}
	c.metrics.SetBreakerState(c.breaker.GetState())
	c.metrics.ObserveRequest(req.resource, req.method, resp.StatusCode, duration)

	c.logger.Debug("request completed",
		"method", req.method,
		"path", req.path,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)

	return resp.StatusCode, body, nil
}

// refreshAccessToken exchanges the stored refresh token for a new
// access token. Any failure clears the session so stale credentials
// are never retried.
func (c *Client) refreshAccessToken(ctx context.Context) error {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	refreshToken := c.store.RefreshToken()
	if refreshToken == "" {
		return apierrors.NewRefreshFailed(fmt.Errorf("no refresh token available"))
	}

	payload, err := json.Marshal(dto.RefreshTokenRequest{RefreshToken: refreshToken})
	if err != nil {
		return apierrors.NewRefreshFailed(err)
	}

	status, body, err := c.send(ctx, request{
		method:   http.MethodPost,
		path:     refreshEndpoint,
		resource: "auth",
	}, payload)
	if err != nil {
		c.clearOnRefreshFailure()
		return apierrors.NewRefreshFailed(err)
	}

	if status < 200 || status > 299 {
		c.clearOnRefreshFailure()
		return apierrors.NewRefreshFailed(apierrors.FromResponse(status, http.StatusText(status), body))
	}

	var refreshResp dto.RefreshTokenResponse
	if err := json.Unmarshal(body, &refreshResp); err != nil || refreshResp.AccessToken == "" {
		c.clearOnRefreshFailure()
		return apierrors.NewRefreshFailed(fmt.Errorf("malformed refresh response"))
	}

	if err := c.store.SetAccessToken(refreshResp.AccessToken); err != nil {
		return apierrors.NewRefreshFailed(err)
	}

	c.metrics.RecordRefresh(true)
	c.logger.Debug("access token refreshed")
	return nil
}

func (c *Client) clearOnRefreshFailure() {
	c.metrics.RecordRefresh(false)
	if err := c.store.ClearTokens(); err != nil {
		c.logger.Error("failed to clear session after refresh failure", "error", err)
	}
}

// isAuthExempt reports whether the endpoint carries its own
// credentials and must not receive an Authorization header.
func isAuthExempt(path string) bool {
	return path == loginEndpoint || path == registerEndpoint || path == refreshEndpoint
}

func marshalBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	return json.Marshal(body)
}
