// Package api talks to the date night ideas REST backend.
//
// Every endpoint maps to one method. Non-2xx responses become *HTTPError,
// network and decode problems become *TransportError, and the documented
// 204 on the random endpoint becomes ErrNoContent. Nothing is retried.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/Makepad-fr/datenight/internal/model"
)

// DefaultBaseURL is where the backend listens when nothing is configured.
const DefaultBaseURL = "http://localhost:9090/api/date-night-ideas"

// RequestIDHeader carries a per-request id so client and server logs line up.
const RequestIDHeader = "X-Request-ID"

// Client is a thin REST client. The zero timeout of the default http.Client is kept
// unless the caller passes its own.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.log = l
		}
	}
}

// New returns a Client for baseURL. A trailing slash is ignored.
func New(baseURL string, opts ...Option) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL returns the configured base URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// AllIdeas fetches the full collection.
func (c *Client) AllIdeas(ctx context.Context) ([]model.Idea, error) {
	const op = "all ideas"
	resp, err := c.do(ctx, op, http.MethodGet, "/allIdeas", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(op, resp); err != nil {
		return nil, err
	}
	var ideas []model.Idea
	if err := json.NewDecoder(resp.Body).Decode(&ideas); err != nil {
		return nil, c.transportErr(op, fmt.Errorf("decode: %w", err))
	}
	if ideas == nil {
		ideas = []model.Idea{}
	}
	return ideas, nil
}

// RandomIdea asks for one idea in budget. A 204 answer returns ErrNoContent
// without reading the body.
func (c *Client) RandomIdea(ctx context.Context, budget string) (model.Idea, error) {
	const op = "random idea"
	resp, err := c.do(ctx, op, http.MethodGet, "/random/"+url.PathEscape(budget), nil)
	if err != nil {
		return model.Idea{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNoContent {
		c.log.Info("no idea left for budget", "op", op, "budget", budget)
		return model.Idea{}, ErrNoContent
	}
	if err := c.checkStatus(op, resp); err != nil {
		return model.Idea{}, err
	}
	var idea model.Idea
	if err := json.NewDecoder(resp.Body).Decode(&idea); err != nil {
		return model.Idea{}, c.transportErr(op, fmt.Errorf("decode: %w", err))
	}
	return idea, nil
}

// AddIdea creates a new idea.
func (c *Client) AddIdea(ctx context.Context, in model.IdeaInput) error {
	return c.send(ctx, "add idea", http.MethodPost, "/addIdea", in)
}

// UpdateIdea replaces the editable fields of idea id.
func (c *Client) UpdateIdea(ctx context.Context, id int64, in model.IdeaInput) error {
	return c.send(ctx, "update idea", http.MethodPut, "/updateIdea/"+strconv.FormatInt(id, 10), in)
}

// DeleteIdea removes idea id.
func (c *Client) DeleteIdea(ctx context.Context, id int64) error {
	return c.send(ctx, "delete idea", http.MethodDelete, "/deleteIdea/"+strconv.FormatInt(id, 10), nil)
}

// Reset restores the backend collection to its default state and returns the
// backend's message as-is.
func (c *Client) Reset(ctx context.Context) (string, error) {
	const op = "reset"
	resp, err := c.do(ctx, op, http.MethodPost, "/reset", nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(op, resp); err != nil {
		return "", err
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.transportErr(op, fmt.Errorf("read body: %w", err))
	}
	return string(b), nil
}

// send issues a request whose response body is ignored. body, when non-nil,
// is JSON encoded.
func (c *Client) send(ctx context.Context, op, method, path string, body any) error {
	resp, err := c.do(ctx, op, method, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if err := c.checkStatus(op, resp); err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body any) (*http.Response, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode: %w", op, err)
		}
		rdr = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return nil, fmt.Errorf("%s: new request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID := uuid.NewString()
	req.Header.Set(RequestIDHeader, reqID)

	c.log.Debug("request", "op", op, "method", method, "path", path, "request_id", reqID)
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("request failed", "op", op, "request_id", reqID, "err", err)
		return nil, &TransportError{Op: op, Err: err}
	}
	c.log.Debug("response", "op", op, "status", resp.StatusCode, "request_id", reqID)
	return resp, nil
}

func (c *Client) checkStatus(op string, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	c.log.Error("unexpected status", "op", op, "status", resp.StatusCode,
		"request_id", resp.Request.Header.Get(RequestIDHeader))
	return &HTTPError{Op: op, StatusCode: resp.StatusCode}
}

func (c *Client) transportErr(op string, err error) error {
	c.log.Error("bad response body", "op", op, "err", err)
	return &TransportError{Op: op, Err: err}
}
