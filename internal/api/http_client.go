package api

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TokenSource supplies the bearer token of the current session, or "".
type TokenSource interface {
	Token() string
}

// RESTClient is a thin wrapper over http.Client bound to the backend base URL.
type RESTClient struct {
	baseURL string
	client  *http.Client
	tokens  TokenSource
	log     *slog.Logger
}

func NewRESTClient(baseURL string, timeout time.Duration, client *http.Client, tokens TokenSource, log *slog.Logger) *RESTClient {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = "http://localhost:3000"
	}
	trimmed = strings.TrimRight(trimmed, "/")
	if client == nil {
		client = &http.Client{Timeout: timeoutOrDefault(timeout)}
	} else if timeout > 0 {
		client.Timeout = timeout
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &RESTClient{baseURL: trimmed, client: client, tokens: tokens, log: log}
}

// BaseURL returns the normalized base URL, without a trailing slash.
func (c *RESTClient) BaseURL() string { return c.baseURL }

// NewRequest builds a request against endpoint with the JSON accept header,
// a fresh X-Request-ID and the session bearer token when one is present.
func (c *RESTClient) NewRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	url := c.baseURL + "/" + strings.TrimLeft(endpoint, "/")
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if c.tokens != nil {
		if token := strings.TrimSpace(c.tokens.Token()); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	return req, nil
}

func (c *RESTClient) Do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	res, err := c.client.Do(req)
	if err != nil {
		c.log.Error("api request error",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("request_id", req.Header.Get("X-Request-ID")),
			slog.Any("error", err))
		return nil, err
	}
	c.log.Debug("api response",
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.Int("status", res.StatusCode),
		slog.Duration("elapsed", time.Since(start)))
	return res, nil
}

// checkStatus maps non-2xx responses onto the package sentinel errors.
func checkStatus(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	switch res.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	body, _ := io.ReadAll(io.LimitReader(res.Body, 2048))
	return &StatusError{Code: res.StatusCode, Body: strings.TrimSpace(string(body))}
}

func timeoutOrDefault(value time.Duration) time.Duration {
	if value <= 0 {
		return 10 * time.Second
	}
	return value
}
