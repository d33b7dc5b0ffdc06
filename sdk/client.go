package sdk

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/Fabien-GELUS/substra-mnist/assets"
	"github.com/Fabien-GELUS/substra-mnist/config"
)

const requestIDHeader = "X-Request-ID"

// DefaultBackoff is the retry policy of idempotent requests.
var DefaultBackoff = wait.Backoff{
	Duration: 200 * time.Millisecond,
	Factor:   2,
	Jitter:   0.1,
	Steps:    4,
}

// downloadSources maps a downloadable kind to the field holding its file
// address and the file name used when the server does not send one.
var downloadSources = map[assets.Kind]struct {
	field    string
	fileName string
}{
	assets.Algo:      {"content", "algo.tar.gz"},
	assets.Objective: {"metrics", "metrics.py"},
	assets.Dataset:   {"opener", "opener.py"},
}

// Client is the HTTP implementation of Interface.
type Client struct {
	baseURL    *url.URL
	profile    config.Profile
	httpClient *http.Client
	logger     hclog.Logger
	backoff    wait.Backoff
}

var _ Interface = &Client{}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request tracing.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBackoff replaces the retry policy of idempotent requests.
func WithBackoff(backoff wait.Backoff) Option {
	return func(c *Client) {
		c.backoff = backoff
	}
}

// NewClient creates a client for the node described by profile.
func NewClient(profile config.Profile, opts ...Option) (*Client, error) {
	profile = profile.WithDefaults()
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	baseURL, err := url.Parse(strings.TrimSuffix(profile.URL, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", profile.URL, err)
	}

	c := &Client{
		baseURL: baseURL,
		profile: profile,
		logger:  hclog.NewNullLogger(),
		backoff: DefaultBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		if profile.Insecure {
			transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opted in by the profile
		}
		c.httpClient = &http.Client{Transport: transport}
	}

	return c, nil
}

// List returns every asset of a kind.
func (c *Client) List(ctx context.Context, kind assets.Kind, filters ...string) ([]Asset, error) {
	query := url.Values{}
	if len(filters) > 0 {
		query.Set("search", strings.Join(filters, ","))
	}

	var result interface{}
	if err := c.getJSON(ctx, c.assetURL(kind, "", query), &result); err != nil {
		return nil, err
	}

	return flatten(result), nil
}

// Get returns one asset by key.
func (c *Client) Get(ctx context.Context, kind assets.Kind, key string) (Asset, error) {
	var asset Asset
	if err := c.getJSON(ctx, c.assetURL(kind, key, nil), &asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Describe returns the markdown description of an asset.
func (c *Client) Describe(ctx context.Context, kind assets.Kind, key string) (string, error) {
	asset, err := c.Get(ctx, kind, key)
	if err != nil {
		return "", err
	}

	address, err := storageAddress(asset, "description")
	if err != nil {
		return "", fmt.Errorf("%s %s has no description: %w", kind, key, err)
	}

	body, _, err := c.getWithRetry(ctx, address)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Download fetches the main file of an asset into dir.
func (c *Client) Download(ctx context.Context, kind assets.Kind, key, dir string) (string, error) {
	source, ok := downloadSources[kind]
	if !ok {
		return "", fmt.Errorf("%w: %s cannot be downloaded", ErrInvalidAsset, kind)
	}

	asset, err := c.Get(ctx, kind, key)
	if err != nil {
		return "", err
	}

	address, err := storageAddress(asset, source.field)
	if err != nil {
		return "", fmt.Errorf("%s %s has no %s: %w", kind, key, source.field, err)
	}

	body, header, err := c.getWithRetry(ctx, address)
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", dir, err)
	}

	target := filepath.Join(dir, fileName(header, source.fileName))
	if err := os.WriteFile(target, body, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}

	c.logger.Debug("downloaded asset file", "kind", kind, "key", key, "path", target, "bytes", len(body))
	return target, nil
}

// Leaderboard returns an objective and its ranked testtuples.
func (c *Client) Leaderboard(ctx context.Context, objectiveKey, sort string) (Asset, error) {
	if sort == "" {
		sort = SortDesc
	}
	if sort != SortAsc && sort != SortDesc {
		return nil, fmt.Errorf("invalid sort %q, expected %s or %s", sort, SortAsc, SortDesc)
	}

	endpoint := c.assetURL(assets.Objective, objectiveKey, nil)
	endpoint.Path += "leaderboard/"
	endpoint.RawQuery = url.Values{"sort": {sort}}.Encode()

	var leaderboard Asset
	if err := c.getJSON(ctx, endpoint, &leaderboard); err != nil {
		return nil, err
	}
	return leaderboard, nil
}

// AddTraintuple registers a training task.
func (c *Client) AddTraintuple(ctx context.Context, spec Asset, existOK bool) (Asset, error) {
	return c.add(ctx, assets.Traintuple, spec, existOK)
}

// AddTesttuple registers a testing task.
func (c *Client) AddTesttuple(ctx context.Context, spec Asset, existOK bool) (Asset, error) {
	return c.add(ctx, assets.Testtuple, spec, existOK)
}

func (c *Client) add(ctx context.Context, kind assets.Kind, spec Asset, existOK bool) (Asset, error) {
	payload, err := json.Marshal(spec)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", kind, err)
	}

	body, _, err := c.do(ctx, http.MethodPost, c.assetURL(kind, "", nil).String(), payload)
	if err != nil {
		var reqErr *RequestError
		if existOK && errors.As(err, &reqErr) && reqErr.StatusCode == http.StatusConflict {
			key := reqErr.Key()
			if key == "" {
				return nil, fmt.Errorf("%s already exists but the answer carries no key: %w", kind, err)
			}
			c.logger.Info("asset already exists", "kind", kind, "key", key)
			return c.Get(ctx, kind, key)
		}
		return nil, err
	}

	var created Asset
	if err := decode(body, &created); err != nil {
		return nil, err
	}
	return created, nil
}

func (c *Client) assetURL(kind assets.Kind, key string, query url.Values) *url.URL {
	p := assets.URLSegment(kind) + "/"
	if key != "" {
		p += key + "/"
	}
	u := c.baseURL.ResolveReference(&url.URL{Path: p})
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u
}

func (c *Client) getJSON(ctx context.Context, u *url.URL, dest interface{}) error {
	body, _, err := c.getWithRetry(ctx, u.String())
	if err != nil {
		return err
	}
	return decode(body, dest)
}

// getWithRetry performs a GET, retrying transport errors and 5xx answers.
func (c *Client) getWithRetry(ctx context.Context, rawURL string) ([]byte, http.Header, error) {
	var (
		body    []byte
		header  http.Header
		lastErr error
		attempt int
	)

	err := wait.ExponentialBackoffWithContext(ctx, c.backoff, func(ctx context.Context) (bool, error) {
		attempt++
		body, header, lastErr = c.do(ctx, http.MethodGet, rawURL, nil)
		if lastErr == nil {
			return true, nil
		}
		if !retriable(lastErr) {
			return false, lastErr
		}
		c.logger.Warn("request failed, retrying", "url", rawURL, "attempt", attempt, "error", lastErr)
		return false, nil
	})
	if err != nil {
		if wait.Interrupted(err) && lastErr != nil {
			return nil, nil, lastErr
		}
		return nil, nil, err
	}

	return body, header, nil
}

func (c *Client) do(ctx context.Context, method, rawURL string, payload []byte) ([]byte, http.Header, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return nil, nil, fmt.Errorf("[substra-api] error building %s request against %s: %w", method, rawURL, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json;version="+c.profile.Version)
	req.Header.Set(requestIDHeader, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.profile.Auth.IsSet() {
		req.SetBasicAuth(c.profile.Auth.User, c.profile.Auth.Password)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, &transportError{err: fmt.Errorf("[substra-api] error performing %s request against %s: %w", method, rawURL, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, &transportError{err: fmt.Errorf("[substra-api] error reading answer of %s %s: %w", method, rawURL, err)}
	}

	c.logger.Debug("request",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, &RequestError{
			Method:     method,
			URL:        rawURL,
			StatusCode: resp.StatusCode,
			Body:       string(body),
		}
	}

	return body, resp.Header, nil
}

type transportError struct {
	err error
}

func (e *transportError) Error() string { return e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

func retriable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var tErr *transportError
	if errors.As(err, &tErr) {
		return true
	}
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.StatusCode >= http.StatusInternalServerError
}

func decode(body []byte, dest interface{}) error {
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("[substra-api] error decoding answer: %w", err)
	}
	return nil
}

// flatten turns the possibly nested lists returned by list endpoints into
// one list of assets. Entries that are not mappings are dropped.
func flatten(v interface{}) []Asset {
	result := []Asset{}
	var walk func(interface{})
	walk = func(v interface{}) {
		switch value := v.(type) {
		case []interface{}:
			for _, elem := range value {
				walk(elem)
			}
		case map[string]interface{}:
			result = append(result, value)
		}
	}
	walk(v)
	return result
}

func storageAddress(asset Asset, field string) (string, error) {
	section, ok := asset[field].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("missing %q", field)
	}
	address, ok := section["storageAddress"].(string)
	if !ok || address == "" {
		return "", fmt.Errorf("missing %q", field+".storageAddress")
	}
	return address, nil
}

// fileName returns the name announced by Content-Disposition, or fallback.
func fileName(header http.Header, fallback string) string {
	if _, params, err := mime.ParseMediaType(header.Get("Content-Disposition")); err == nil {
		if name := path.Base(filepath.ToSlash(params["filename"])); name != "" && name != "." && name != "/" {
			return name
		}
	}
	return fallback
}
