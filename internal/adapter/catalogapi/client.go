package catalogapi

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogReader = (*Client)(nil)

const (
	DefaultBaseURL = "https://api.escuelajs.co/api/v1"

	productsPath   = "/products"
	categoriesPath = "/categories"
)

// Client reads the remote catalog service.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTLSConfig makes the client trust the roots of cfg.
func WithTLSConfig(cfg *tls.Config) Option {
	return func(c *Client) {
		if cfg == nil {
			return
		}
		t := http.DefaultTransport.(*http.Transport).Clone()
		t.TLSClientConfig = cfg
		c.httpClient = &http.Client{Transport: t}
	}
}

func New(base string, opts ...Option) (*Client, error) {
	const op = "catalogapi.New"

	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid base url: %w", op, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%s: unsupported scheme %q", op, u.Scheme)
	}

	c := &Client{
		baseURL:    strings.TrimRight(trimmed, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// StatusError is returned for any non-2xx response.
type StatusError struct {
	Status int
	Path   string
}

func (e StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %d", e.Path, e.Status)
}

func (c *Client) ReadProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Client.ReadProducts"

	var ps []Product
	if err := c.get(ctx, productsPath, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	domainPs := make([]domain.Product, len(ps))
	for i, p := range ps {
		domainPs[i] = p.toDomain()
	}
	return domainPs, nil
}

func (c *Client) ReadCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.ReadCategories"

	var cs []Category
	if err := c.get(ctx, categoriesPath, &cs); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	domainCs := make([]domain.Category, len(cs))
	for i, cat := range cs {
		domainCs[i] = cat.toDomain()
	}
	return domainCs, nil
}

func (c *Client) get(ctx context.Context, path string, v any) error {
	log := slog.With("op", "Client.get", "path", path)

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.baseURL+path, nil,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.Warn("failed to close response body", "err", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return StatusError{Status: resp.StatusCode, Path: path}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	log.Debug("fetched")
	return nil
}
