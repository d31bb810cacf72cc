package medium

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"mediumstats/lib/restyutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/medium")

const defaultBaseUrl = "https://medium.com"

const graphqlPath = "/_/graphql"

// Credentials are the session cookies that authenticate every request.
// How they were obtained is not this package's concern.
type Credentials struct {
	Sid string
	Uid string
}

// Client owns the cookie-authenticated session shared by the user and
// publication stat grabbers, plus the per-article operations common to
// both. Not safe for concurrent use: the article id cache is unguarded.
type Client struct {
	http     *resty.Client
	creds    Credentials
	maxPages int

	// ids from the last listing passed through ArticleIDs, a convenience
	// cache only. fan-out operations never touch it.
	articles []string
}

type Option func(*Client)

// WithBaseUrl points the client at a different host, mostly for tests.
func WithBaseUrl(baseUrl string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseUrl)
	}
}

// WithMaxPages caps cursor-follow pagination at n pages. The default of 0
// follows cursors until the upstream stops returning them, which never
// terminates if the upstream misbehaves.
func WithMaxPages(n int) Option {
	return func(c *Client) {
		c.maxPages = n
	}
}

// WithInstrumentOutput enables request/response transcript dumps.
func WithInstrumentOutput(out restyutil.InstrumentOutput) Option {
	return func(c *Client) {
		restyutil.InstrumentClient(c.http, tracer, out)
	}
}

func NewClient(creds Credentials, opts ...Option) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseUrl)
	client.SetHeader("content-type", "application/json")
	client.SetHeader("accept", "application/json")
	client.SetCookie(&http.Cookie{Name: "sid", Value: creds.Sid})
	client.SetCookie(&http.Cookie{Name: "uid", Value: creds.Uid})
	client.SetTimeout(time.Second * 30)

	c := &Client{http: client, creds: creds}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get fetches a path relative to the base URL and returns the raw body.
// Non-2xx statuses are errors, there is no retry.
func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	req := c.http.R().SetContext(ctx)
	if params != nil {
		req.SetQueryParams(params)
	}
	res, err := req.Get(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("GET %s: %s", res.Request.URL, res.Status())
	}
	return res.Body(), nil
}

func (c *Client) post(ctx context.Context, path string, body any) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(body).
		Post(path)
	if err != nil {
		return nil, err
	}
	if res.IsError() {
		return nil, fmt.Errorf("POST %s: %s", res.Request.URL, res.Status())
	}
	return res.Body(), nil
}
