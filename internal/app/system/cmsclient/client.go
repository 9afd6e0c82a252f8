// Package cmsclient talks to the content backend that owns every document the
// dashboard edits. Responses are wrapped in a {success, data} envelope; the
// client unwraps it uniformly and turns failures into typed errors.
package cmsclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// RequestIDHeader carries a per-call correlation ID to the backend.
const RequestIDHeader = "X-Request-ID"

// DefaultTimeout bounds a single backend round trip when Config.Timeout is 0.
const DefaultTimeout = 15 * time.Second

// Config describes how to reach the backend.
type Config struct {
	BaseURL string        // e.g. https://api.example.edu/api
	Token   string        // optional bearer token
	Timeout time.Duration // per request
}

// Client is safe for concurrent use.
type Client struct {
	rc  *resty.Client
	log *zap.Logger
}

// envelope is the backend's response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// New builds a Client. The base URL must be an absolute http(s) URL.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if !urlutil.IsValidAbsHTTPURL(base) {
		return nil, fmt.Errorf("cmsclient: base URL %q must be an absolute http(s) URL", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	hc := &http.Client{}
	if cfg.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token, TokenType: "Bearer"})
		hc = oauth2.NewClient(context.Background(), src)
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(base).
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	c := &Client{rc: rc, log: logger}

	rc.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) == "" {
			r.SetHeader(RequestIDHeader, uuid.NewString())
		}
		return nil
	})
	rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		c.log.Debug("content backend call",
			zap.String("method", resp.Request.Method),
			zap.String("url", resp.Request.URL),
			zap.Int("status", resp.StatusCode()),
			zap.Duration("elapsed", resp.Time()),
			zap.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
		)
		return nil
	})

	return c, nil
}

// Path joins escaped segments into a backend path: Path("courses", id,
// "programs") == "/courses/<id>/programs".
func Path(segments ...string) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// Get decodes the envelope data of GET path into out (which may be nil).
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post sends body as JSON and decodes the envelope data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put sends body as JSON and decodes the envelope data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE path and decodes any envelope data into out.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, nil, out)
}

// Ping checks that the backend answers HTTP at all. Any HTTP status counts
// as reachable; only transport failures are reported.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.rc.R().SetContext(ctx).Get("/")
	if err != nil {
		return &TransportError{Method: http.MethodGet, Path: "/", Err: err}
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.rc.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		req.SetHeader(RequestIDHeader, id)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.log.Warn("content backend unreachable",
			zap.String("method", method), zap.String("path", path), zap.Error(err))
		return &TransportError{Method: method, Path: path, Err: err}
	}

	var env envelope
	raw := resp.Body()
	decodeErr := json.Unmarshal(raw, &env)

	if resp.IsError() {
		msg := env.message()
		if decodeErr != nil || msg == "" {
			msg = fallbackMessage(resp.StatusCode(), raw)
		}
		return &APIError{Method: method, Path: path, Status: resp.StatusCode(), Message: msg}
	}
	if len(raw) == 0 {
		// 204 and friends
		return nil
	}
	if decodeErr != nil {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode(),
			Message: "malformed response envelope: " + decodeErr.Error()}
	}
	if !env.Success {
		msg := env.message()
		if msg == "" {
			msg = "request was not successful"
		}
		return &APIError{Method: method, Path: path, Status: resp.StatusCode(), Message: msg}
	}
	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{Method: method, Path: path, Status: resp.StatusCode(),
			Message: "unexpected response data: " + err.Error()}
	}
	return nil
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Error
}

func fallbackMessage(status int, raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if s == "" || len(s) > 200 {
		return http.StatusText(status)
	}
	return s
}

/* ------------------------------ errors ------------------------------ */

// ErrNotFound matches any APIError with status 404.
var ErrNotFound = errors.New("not found")

// APIError is a non-2xx response or a {success:false} envelope.
type APIError struct {
	Method  string
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("content backend %s %s: %d %s", e.Method, e.Path, e.Status, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) match 404 responses.
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.Status == http.StatusNotFound
}

// TransportError is a failure to complete the HTTP exchange.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("content backend %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Message returns the text to show an editor for err: the backend's own
// message for API errors, the error string otherwise.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
