package dor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"github.com/rs/zerolog"
)

const (
	// DefaultAPIVersion is prefixed to every path when Config.APIVersion is empty.
	DefaultAPIVersion = "v1"
	// DefaultTimeout bounds each request when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "dor-services-client-go"

	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
)

// Config holds the connection settings for a dor-services-app instance.
type Config struct {
	// URL is the base URL of the service, e.g. https://dor-services.example.com
	URL string
	// Token is sent as a bearer token. It takes precedence over basic auth.
	Token    string
	Username string
	Password string
	// APIVersion defaults to DefaultAPIVersion.
	APIVersion string
	Timeout    time.Duration
	UserAgent  string
	// HTTPClient replaces the pooled client built from Timeout.
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Connection is the long-lived HTTP client shared by all resource clients.
// It is safe for concurrent use.
type Connection struct {
	baseURL    string
	token      string
	username   string
	password   string
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewConnection creates a Connection from cfg. An empty URL is not rejected
// here; every request made through the connection fails with a configuration
// error instead.
func NewConnection(cfg Config) *Connection {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = cleanhttp.DefaultPooledClient()
		httpClient.Timeout = cfg.Timeout
		if httpClient.Timeout == 0 {
			httpClient.Timeout = DefaultTimeout
		}
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Connection{
		baseURL:    strings.TrimRight(cfg.URL, "/"),
		token:      cfg.Token,
		username:   cfg.Username,
		password:   cfg.Password,
		userAgent:  userAgent,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// BaseURL returns the configured base URL or a configuration error.
func (c *Connection) BaseURL() (string, error) {
	if c == nil || c.baseURL == "" {
		return "", configurationError("url has not yet been configured")
	}
	return c.baseURL, nil
}

// request describes a single call. path is already version-prefixed and escaped.
type request struct {
	method      string
	path        string
	query       url.Values
	contentType string
	accept      string
	body        []byte
}

// response is consumed by the resource client and then discarded.
type response struct {
	StatusCode int
	Reason     string
	Header     http.Header
	Body       []byte
}

func (r *response) success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// do performs exactly one HTTP request and reads the whole body.
func (c *Connection) do(ctx context.Context, r *request) (*response, error) {
	base, err := c.BaseURL()
	if err != nil {
		return nil, err
	}

	target := base + "/" + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		body = bytes.NewReader(r.body)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.accept != "" {
		req.Header.Set("Accept", r.accept)
	}
	switch {
	case c.token != "":
		req.Header.Set("Authorization", "Bearer "+c.token)
	case c.username != "" || c.password != "":
		req.SetBasicAuth(c.username, c.password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s failed: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if data == nil {
		data = []byte{}
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("dor-services-app request")

	return &response{
		StatusCode: resp.StatusCode,
		Reason:     reasonPhrase(resp),
		Header:     resp.Header,
		Body:       data,
	}, nil
}

// reasonPhrase strips the status code from resp.Status ("404 Not Found").
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}
