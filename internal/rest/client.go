package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"reststate/internal/utils"
)

// ErrorResponse is the error body shape the API returns on failures.
type ErrorResponse struct {
	Code    string  `json:"Code"`
	Message string  `json:"Message"`
	Origin  *string `json:"Origin"`
}

// Client is the generic HTTP capability the action creators are built on:
// GET/POST/PUT/DELETE against a base URL, JSON in and out, failures
// surfaced as *utils.AppError.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	token   string
	metrics *utils.MetricsCollector
}

// Options configures a Client beyond its base URL.
type Options struct {
	// Timeout bounds each request; zero means 10s.
	Timeout time.Duration
	// RequestsPerSecond enables client-side throttling when positive.
	RequestsPerSecond float64
	// BearerToken, when set, is attached as an Authorization header.
	BearerToken string
	// Metrics receives request counts and latencies; nil disables recording.
	Metrics *utils.MetricsCollector
}

func NewClient(baseURL string, opts Options) *Client {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}

	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
		limiter: limiter,
		token:   opts.BearerToken,
		metrics: opts.Metrics,
	}
}

func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

func (c *Client) Post(ctx context.Context, path string, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, data)
}

func (c *Client) Put(ctx context.Context, path string, data any) ([]byte, error) {
	return c.do(ctx, http.MethodPut, path, data)
}

func (c *Client) Delete(ctx context.Context, path string) ([]byte, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, data any) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, utils.NewRequestFailedError(method, c.baseURL+path, err)
		}
	}

	var body []byte
	var err error

	if data != nil {
		body, err = json.Marshal(data)
		if err != nil {
			return nil, utils.NewAppError(utils.ErrInvalidInput, "failed to encode request body", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, utils.NewRequestFailedError(method, c.baseURL+path, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		if tokenExpired(c.token) {
			log.Printf("Client: bearer token expired, sending request unauthenticated")
		} else {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	}

	if c.metrics != nil {
		c.metrics.IncrementRequests()
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if c.metrics != nil {
		c.metrics.AddOperationLatency(method+" "+path, time.Since(start))
	}

	if err != nil {
		if c.metrics != nil {
			c.metrics.IncrementErrors()
		}
		return nil, utils.NewRequestFailedError(method, c.baseURL+path, err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)

	if resp.StatusCode >= 400 {
		if c.metrics != nil {
			c.metrics.IncrementErrors()
		}
		return nil, c.errorFromResponse(resp.StatusCode, respBody)
	}

	if readErr != nil {
		return nil, utils.NewRequestFailedError(method, c.baseURL+path, readErr)
	}
	return respBody, nil
}

// errorFromResponse prefers the server's own error body when it parses as
// an ErrorResponse; the HTTP status supplies the code either way.
func (c *Client) errorFromResponse(status int, body []byte) *utils.AppError {
	code := utils.HTTPStatusToErrorCode(status)

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		if errResp.Code != "" {
			code = errResp.Code
		}
		return utils.NewAppError(code, errResp.Message, nil)
	}

	return utils.NewAppError(code, fmt.Sprintf("request failed with status: %d", status), nil)
}
