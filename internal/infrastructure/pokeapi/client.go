package pokeapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dexview/backend/internal/domain"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2"

	// DefaultTimeout bounds a single upstream request
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent is sent with every request
	DefaultUserAgent = "dexview/1.0"

	// maxErrorBody caps how much of a failed response body ends up in an error
	maxErrorBody = 512
)

// Endpoint labels reported to the Observer
const (
	EndpointList   = "list"
	EndpointDetail = "detail"
)

// Outcome labels reported to the Observer
const (
	OutcomeOK          = "ok"
	OutcomeNotFound    = "not_found"
	OutcomeStatus      = "status"
	OutcomeTransport   = "transport"
	OutcomeMalformed   = "malformed"
	OutcomeRateLimited = "rate_limited"
)

// Observer receives one notification per upstream request
type Observer interface {
	ObserveUpstream(endpoint, outcome string, elapsed time.Duration)
}

// Client handles communication with the PokeAPI catalog.
// It issues GET requests only and never retries.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	rateLimiter *rate.Limiter
	observer    Observer
	logger      zerolog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout sets the per-request timeout of the default HTTP client
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithRateLimit throttles outbound requests to perSecond with the given burst.
// A non-positive perSecond disables throttling.
func WithRateLimit(perSecond float64, burst int) ClientOption {
	return func(c *Client) {
		if perSecond <= 0 {
			c.rateLimiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.rateLimiter = rate.NewLimiter(rate.Limit(perSecond), burst)
	}
}

// WithUserAgent overrides the User-Agent header
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithObserver reports request outcomes to o
func WithObserver(o Observer) ClientOption {
	return func(c *Client) {
		c.observer = o
	}
}

// WithLogger sets the client logger
func WithLogger(l zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = l.With().Str("component", "pokeapi").Logger()
	}
}

// NewClient creates a new catalog client rooted at baseURL
func NewClient(baseURL string, opts ...ClientOption) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: DefaultUserAgent,
		logger:    zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ListReferences fetches the reference list. A non-positive limit leaves the
// page size to the upstream default.
func (c *Client) ListReferences(ctx context.Context, limit int) ([]domain.Reference, error) {
	reqURL := c.baseURL + "/pokemon"
	if limit > 0 {
		params := url.Values{}
		params.Set("limit", strconv.Itoa(limit))
		reqURL = reqURL + "?" + params.Encode()
	}

	var payload listResponse
	if err := c.getJSON(ctx, EndpointList, reqURL, &payload); err != nil {
		return nil, err
	}

	c.logger.Debug().Int("count", len(payload.Results)).Msg("fetched reference list")
	return MapToReferences(payload.Results), nil
}

// GetRecord fetches the full record for an identifier (numeric id or name)
func (c *Client) GetRecord(ctx context.Context, id string) (*domain.Record, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("%w: empty identifier", domain.ErrInvalidRequest)
	}

	return c.GetRecordByURL(ctx, c.baseURL+"/pokemon/"+url.PathEscape(id))
}

// GetRecordByURL fetches the full record behind an opaque locator taken from a Reference
func (c *Client) GetRecordByURL(ctx context.Context, recordURL string) (*domain.Record, error) {
	if recordURL == "" {
		return nil, fmt.Errorf("%w: empty record url", domain.ErrInvalidRequest)
	}

	var payload pokemonResponse
	if err := c.getJSON(ctx, EndpointDetail, recordURL, &payload); err != nil {
		return nil, err
	}

	return MapToRecord(&payload), nil
}

// getJSON performs a single GET and decodes a 200 response into out
func (c *Client) getJSON(ctx context.Context, endpoint, reqURL string, out interface{}) error {
	start := time.Now()
	outcome := OutcomeOK
	defer func() {
		if c.observer != nil {
			c.observer.ObserveUpstream(endpoint, outcome, time.Since(start))
		}
	}()

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			outcome = OutcomeRateLimited
			return fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}
	}

	resp, err := c.doRequest(ctx, reqURL)
	if err != nil {
		outcome = OutcomeTransport
		c.logger.Warn().Err(err).Str("url", reqURL).Msg("upstream request failed")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		outcome = OutcomeNotFound
		return fmt.Errorf("%w: %s", domain.ErrNotFound, reqURL)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		outcome = OutcomeStatus
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.Warn().Int("status", resp.StatusCode).Str("url", reqURL).Msg("upstream returned error status")
		return fmt.Errorf("%w: status %d, body: %s", domain.ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = OutcomeMalformed
		return fmt.Errorf("%w: %v", domain.ErrMalformedResponse, err)
	}

	c.logger.Debug().Str("url", reqURL).Dur("elapsed", time.Since(start)).Msg("upstream request complete")
	return nil
}

// doRequest executes an HTTP GET request with proper headers
func (c *Client) doRequest(ctx context.Context, reqURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", domain.ErrInvalidRequest, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	return resp, nil
}
