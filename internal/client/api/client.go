package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/dropwatch/internal/client/notify"
	"github.com/dmitrijs2005/dropwatch/internal/client/session"
	"github.com/dmitrijs2005/dropwatch/internal/common"
	"github.com/dmitrijs2005/dropwatch/internal/logging"
	"github.com/google/uuid"
)

// DefaultTimeout bounds a single request.
const DefaultTimeout = 30 * time.Second

// Session is the part of session.Session the client needs.
type Session interface {
	Token(ctx context.Context) string
	SetToken(ctx context.Context, token string)
	SetUser(ctx context.Context, user any)
	SetRole(ctx context.Context, role session.Role)
}

// Options describe a single request. A nil Body sends no body; []byte,
// json.RawMessage and string bodies are sent as is, anything else is
// encoded as JSON.
type Options struct {
	Method  string
	Body    any
	Headers map[string]string
}

// Response is a successful reply.
type Response struct {
	Status int
	Header http.Header
	// JSON is true when Data holds a decoded JSON value, false when it is
	// the body as a string.
	JSON bool
	Data any
}

// Decode converts the parsed JSON data into dst.
func (r *Response) Decode(dst any) error {
	b, err := json.Marshal(r.Data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := json.Unmarshal(b, dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
	session Session
	sink    notify.Sink
	log     logging.Logger
	newID   func() string
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithSink(s notify.Sink) Option {
	return func(c *Client) { c.sink = s }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:5000/api".
func New(baseURL string, s Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
		session: s,
		sink:    notify.Discard{},
		log:     logging.Nop(),
		newID:   func() string { return uuid.NewString() },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Timeout() time.Duration {
	return c.timeout
}

func (c *Client) Get(ctx context.Context, endpoint string) (*Response, error) {
	return c.Request(ctx, endpoint, Options{Method: http.MethodGet})
}

func (c *Client) Post(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Request(ctx, endpoint, Options{Method: http.MethodPost, Body: body})
}

func (c *Client) Put(ctx context.Context, endpoint string, body any) (*Response, error) {
	return c.Request(ctx, endpoint, Options{Method: http.MethodPut, Body: body})
}

func (c *Client) Delete(ctx context.Context, endpoint string) (*Response, error) {
	return c.Request(ctx, endpoint, Options{Method: http.MethodDelete})
}

// Request performs one call. See the package documentation for the
// contract.
func (c *Client) Request(ctx context.Context, endpoint string, opts Options) (*Response, error) {
	if opts.Method == "" {
		opts.Method = http.MethodGet
	}

	req, err := c.newRequest(ctx, endpoint, opts)
	if err != nil {
		c.fail(ctx, c.log.With("endpoint", endpoint), err)
		return nil, err
	}

	log := c.log.With("endpoint", endpoint, "method", opts.Method, "request_id", req.Header.Get(common.RequestIDHeader))

	resp, err := c.roundTrip(ctx, req)
	if err != nil {
		c.fail(ctx, log, err)
		return nil, err
	}

	log.Info(ctx, "api success", "status", resp.Status)
	return resp, nil
}

func (c *Client) newRequest(ctx context.Context, endpoint string, opts Options) (*http.Request, error) {
	body, err := encodeBody(opts.Body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, opts.Method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(common.ContentTypeHeader, common.ContentTypeJSON)
	if token := c.session.Token(ctx); token != "" {
		req.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	}
	req.Header.Set(common.RequestIDHeader, c.newID())
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func encodeBody(body any) (io.Reader, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return bytes.NewReader(b), nil
	case json.RawMessage:
		return bytes.NewReader(b), nil
	case string:
		return strings.NewReader(b), nil
	default:
		data, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		return bytes.NewReader(data), nil
	}
}

// roundTrip sends req under the client timeout with the loading indicator
// shown.
func (c *Client) roundTrip(ctx context.Context, req *http.Request) (*Response, error) {
	c.sink.ShowLoading()
	defer c.sink.HideLoading()

	tctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	req = req.WithContext(tctx)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.transportError(ctx, tctx, req, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, tctx, req, err)
	}

	out := &Response{Status: resp.StatusCode, Header: resp.Header}
	if strings.Contains(resp.Header.Get(common.ContentTypeHeader), common.ContentTypeJSON) {
		out.JSON = true
		if len(bytes.TrimSpace(raw)) > 0 {
			if err := json.Unmarshal(raw, &out.Data); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
			}
		}
	} else {
		out.Data = string(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Message: statusMessage(resp.StatusCode, out.Data), Data: out.Data}
	}
	return out, nil
}

// transportError separates our own timeout from the caller's cancellation
// and from network failures.
func (c *Client) transportError(parent, tctx context.Context, req *http.Request, err error) error {
	if perr := parent.Err(); perr != nil {
		if cause := context.Cause(parent); cause != nil && cause != perr {
			return fmt.Errorf("%s %s: %w: %v", req.Method, req.URL.Path, perr, cause)
		}
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, perr)
	}
	if errors.Is(tctx.Err(), context.DeadlineExceeded) {
		return fmt.Errorf("%s %s: %w after %s", req.Method, req.URL.Path, ErrTimeout, c.timeout)
	}
	return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
}

// fail logs err and shows it to the user. Caller cancellation, including a
// deadline set by the caller, is logged only.
func (c *Client) fail(ctx context.Context, log logging.Logger, err error) {
	switch {
	case errors.Is(err, ErrTimeout):
		log.Error(ctx, "request timeout", "error", err)
		c.sink.ShowError(TimeoutMessage)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		log.Warn(ctx, "request cancelled", "error", err)
	default:
		log.Error(ctx, "api error", "error", err)
		c.sink.ShowError(userMessage(err))
	}
}

func userMessage(err error) string {
	var se *StatusError
	if errors.As(err, &se) {
		if se.Message != "" {
			return se.Message
		}
		return GenericMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return GenericMessage
}
