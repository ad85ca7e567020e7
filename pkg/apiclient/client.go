package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"movie-booking-client/internal/dto/response"
	"movie-booking-client/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Doer interface untuk abstraction backend API
type Doer interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// TokenSource yields the bearer token of the current session ("" when logged out).
type TokenSource interface {
	Token() string
}

// Client is the shared HTTP client every repository goes through.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	log     *zap.Logger
	flight  singleflight.Group
}

// InitClient validates the base URL and builds the client
func InitClient(config utils.APIConfig, tokens TokenSource, log *zap.Logger) (*Client, error) {
	parsed, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("api base url must be http or https, got %q", config.BaseURL)
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return NewClient(config.BaseURL, &http.Client{Timeout: timeout}, tokens, log), nil
}

func NewClient(baseURL string, httpClient *http.Client, tokens TokenSource, log *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		tokens:  tokens,
		log:     log.With(zap.String("component", "apiclient")),
	}
}

// Get coalesces identical in-flight GETs made with the same token. The
// shared call runs detached from any single caller; each caller stops
// waiting when its own ctx is done.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	target := c.url(path, query)
	if err := ctx.Err(); err != nil {
		return &TransportError{Op: http.MethodGet + " " + target, Err: err}
	}
	key := http.MethodGet + " " + target + " " + c.token()

	shared := context.WithoutCancel(ctx)
	ch := c.flight.DoChan(key, func() (interface{}, error) {
		return c.do(shared, http.MethodGet, target, nil, true)
	})

	select {
	case <-ctx.Done():
		return &TransportError{Op: http.MethodGet + " " + target, Err: ctx.Err()}
	case res := <-ch:
		if res.Shared {
			c.log.Debug("Shared in-flight request", zap.String("url", target))
		}
		if res.Err != nil {
			return res.Err
		}
		return decodeData(res.Val.(json.RawMessage), out)
	}
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPost, c.url(path, nil), body, out != nil)
	if err != nil {
		return err
	}
	return decodeData(raw, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	raw, err := c.do(ctx, http.MethodPut, c.url(path, nil), body, out != nil)
	if err != nil {
		return err
	}
	return decodeData(raw, out)
}

func (c *Client) Delete(ctx context.Context, path string, out any) error {
	raw, err := c.do(ctx, http.MethodDelete, c.url(path, nil), nil, false)
	if err != nil {
		return err
	}
	return decodeData(raw, out)
}

func (c *Client) url(path string, query url.Values) string {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return target
}

func (c *Client) token() string {
	if c.tokens == nil {
		return ""
	}
	return c.tokens.Token()
}

// do performs one call and returns the envelope data of a successful answer.
// expectData rejects a successful answer with an empty body.
func (c *Client) do(ctx context.Context, method, target string, body any, expectData bool) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &TransportError{Op: "encode request", Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &TransportError{Op: "build request", Err: err}
	}

	requestID := utils.GetRequestIDFromContext(ctx)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("API request failed",
			zap.String("method", method),
			zap.String("url", target),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return nil, &TransportError{Op: method + " " + target, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: "read response", Err: err}
	}

	c.log.Debug("API request",
		zap.String("method", method),
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(data)),
		zap.Duration("duration", time.Since(start)),
		zap.String("request_id", requestID),
	)

	return parseEnvelope(resp.StatusCode, data, expectData)
}

func parseEnvelope(status int, data []byte, expectData bool) (json.RawMessage, error) {
	var envelope response.Envelope[json.RawMessage]
	decodeErr := errors.New("empty body")
	if len(bytes.TrimSpace(data)) > 0 {
		decodeErr = json.Unmarshal(data, &envelope)
	}

	if status >= http.StatusBadRequest {
		apiErr := &APIError{Status: status}
		if decodeErr == nil {
			apiErr.Message = envelope.Message
		}
		return nil, apiErr
	}

	if decodeErr != nil {
		if len(bytes.TrimSpace(data)) == 0 && !expectData {
			return nil, nil
		}
		return nil, &TransportError{Op: "decode response", Err: decodeErr}
	}
	if !envelope.Success {
		return nil, &APIError{Status: status, Message: envelope.Message}
	}
	return envelope.Data, nil
}

func decodeData(raw json.RawMessage, out any) error {
	if out == nil || len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &TransportError{Op: "decode data", Err: err}
	}
	return nil
}
