package pinnacle

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/trypinnacle/pinnacle-go/internal/constants"
)

const (
	// DefaultBaseURL is the production endpoint of the API.
	DefaultBaseURL = "https://api.pinnacle.sh"
	// DefaultMaxRetries is the number of retries of a failed request when Config.MaxRetries is not set.
	DefaultMaxRetries = 2
	// DefaultTimeout bounds a single attempt when Config.Timeout is not set.
	DefaultTimeout = 60 * time.Second

	// APIKeyEnv is the environment variable read when Config.APIKey is empty.
	APIKeyEnv = "PINNACLE_API_KEY"
	// SigningSecretEnv is the environment variable read by Process when no secret is given.
	SigningSecretEnv = "PINNACLE_SIGNING_SECRET"

	apiKeyHeader         = "PINNACLE-API-KEY"
	idempotencyKeyHeader = "Idempotency-Key"

	baseRetryPeriod = 500 * time.Millisecond
	maxRetryPeriod  = 8 * time.Second
)

// Config represents the parameters of a Client.
type Config struct {
	APIKey  string
	BaseURL string

	// MaxRetries is the number of retries of a request failing with a transport error, a 408,
	// a 429 or a 5xx status. A negative value disables retries.
	MaxRetries int
	// Timeout bounds every attempt of a request.
	Timeout time.Duration

	HTTPClient *http.Client // Optional HTTP client, if not set, a new one will be created.
	Logger     *slog.Logger // Optional logger, if not set, the default slog logger will be used.
}

// Resolve returns a copy of the config with default values filled in where necessary.
//
// If APIKey is not set, the PINNACLE_API_KEY environment variable is used.
// If Logger is not set, the global default slog Logger will be used.
func (c Config) Resolve() Config {
	if c.APIKey == "" {
		c.APIKey = os.Getenv(APIKeyEnv)
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.MaxRetries == 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	return c
}

// Client calls the Pinnacle API. It is safe for concurrent use.
type Client struct {
	conf    Config
	baseURL *url.URL
	log     *slog.Logger

	Messages      *MessagesService
	Contacts      *ContactsService
	Conversations *ConversationsService
	PhoneNumbers  *PhoneNumbersService
	Webhooks      *WebhooksService
	Brands        *BrandsService
	Campaigns     *CampaignsService
	Status        *StatusService
	Tools         *ToolsService
	RCS           *RCSService
	Audiences     *AudiencesService
}

// New returns a Client for the resolved config.
func New(c Config) (*Client, error) {
	c = c.Resolve()
	if c.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	u, err := url.Parse(strings.TrimSuffix(c.BaseURL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %v", c.BaseURL, err)
	}

	cl := &Client{
		conf:    c,
		baseURL: u,
		log:     c.Logger,
	}
	cl.Messages = &MessagesService{c: cl}
	cl.Contacts = &ContactsService{c: cl}
	cl.Conversations = &ConversationsService{c: cl}
	cl.PhoneNumbers = &PhoneNumbersService{c: cl}
	cl.Webhooks = &WebhooksService{c: cl}
	cl.Brands = &BrandsService{c: cl}
	cl.Campaigns = &CampaignsService{
		DLC:      newCampaignService[DLCCampaign, DLCCampaignDetails](cl, "dlc"),
		TollFree: newCampaignService[TollFreeCampaign, TollFreeCampaignDetails](cl, "toll-free"),
		RCS:      newCampaignService[RCSCampaign, RCSCampaignDetails](cl, "rcs"),
	}
	cl.Status = &StatusService{c: cl}
	cl.Tools = &ToolsService{c: cl}
	cl.RCS = &RCSService{c: cl}
	cl.Audiences = &AudiencesService{c: cl}
	return cl, nil
}

// do sends the request and decodes the response body into out when out is not nil.
// body is encoded with encoding/json, so that models go through their MarshalJSON.
func (c *Client) do(ctx context.Context, method, p string, query url.Values, body, out any) error {
	u := c.baseURL.JoinPath(p)
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("could not encode %s %s request: %w", method, p, err)
		}
	}

	// All attempts of a write share its idempotency key.
	var idempotencyKey string
	if method == http.MethodPost {
		idempotencyKey = uuid.NewString()
	}

	var attempt int
	for {
		resp, err := c.send(ctx, method, u.String(), payload, idempotencyKey)
		if err == nil && resp.status >= 200 && resp.status < 300 {
			if out == nil || len(bytes.TrimSpace(resp.body)) == 0 {
				return nil
			}
			if err := json.Unmarshal(resp.body, out); err != nil {
				return fmt.Errorf("could not decode %s %s response: %w", method, p, err)
			}
			return nil
		}
		if err == nil {
			err = &APIError{StatusCode: resp.status, Method: method, Path: p, Body: resp.body}
		}

		if attempt >= max(c.conf.MaxRetries, 0) || !retryable(ctx, resp, err) {
			return err
		}

		wait := backoff(attempt, resp.retryAfter)
		attempt++
		c.log.Debug("Retrying request after backoff period", "method", method, "path", p, "attempt", attempt, "seconds", wait.Seconds(), "error", err)
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(wait):
		}
	}
}

// call is do for a response decoded into a new T.
func call[T any](ctx context.Context, c *Client, method, p string, query url.Values, body any) (T, error) {
	var res T
	err := c.do(ctx, method, p, query, body, &res)
	return res, err
}

type response struct {
	status     int
	body       []byte
	retryAfter time.Duration
}

// send performs a single attempt.
func (c *Client) send(ctx context.Context, method, u string, payload []byte, idempotencyKey string) (response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.conf.Timeout)
	defer cancel()

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return response{}, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set(apiKeyHeader, c.conf.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "pinnacle-go/"+constants.Version)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if idempotencyKey != "" {
		req.Header.Set(idempotencyKeyHeader, idempotencyKey)
	}

	c.log.Debug("Sending request", "method", method, "url", u)
	resp, err := c.conf.HTTPClient.Do(req)
	if err != nil {
		return response{}, fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return response{status: resp.StatusCode}, fmt.Errorf("failed to read response body: %w", err)
	}
	return response{
		status:     resp.StatusCode,
		body:       data,
		retryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
	}, nil
}

// retryable reports whether a failed attempt can be retried.
func retryable(ctx context.Context, resp response, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		// Transport error.
		return true
	}
	switch {
	case resp.status == http.StatusRequestTimeout, resp.status == http.StatusTooManyRequests:
		return true
	case resp.status >= http.StatusInternalServerError:
		return true
	}
	return false
}

// backoff returns the wait before the retry following attempt, as an exponential backoff
// with full jitter. A Retry-After hint from the API takes precedence when it is shorter than
// the maximum retry period.
func backoff(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 && retryAfter <= maxRetryPeriod {
		return retryAfter
	}
	exp := min(baseRetryPeriod*(1<<attempt), maxRetryPeriod)
	return time.Duration(rand.Int63n(int64(max(exp, 1)))) // #nosec:G404 We don't need cryptographic randomness.
}

func parseRetryAfter(v string) time.Duration {
	if v == "" {
		return 0
	}
	if d, err := time.ParseDuration(v + "s"); err == nil && d > 0 {
		return d
	}
	if t, err := http.ParseTime(v); err == nil {
		return time.Until(t)
	}
	return 0
}

// pathEscape escapes a caller provided identifier used as a path segment.
func pathEscape(s string) string {
	return url.PathEscape(s)
}
