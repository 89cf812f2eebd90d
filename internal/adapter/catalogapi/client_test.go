package catalogapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
		goleak.IgnoreTopFunction("internal/poll.runtime_pollWait"),
	)
}

const productsJSON = `[
	{
		"id": 4,
		"title": "Handmade Fresh Table",
		"slug": "handmade-fresh-table",
		"price": 687,
		"description": "Andy shoes are designed to keeping in...",
		"category": {"id": 5, "name": "Others", "image": "https://placehold.co/600x400"},
		"images": ["https://placehold.co/600x400", "https://placehold.co/600x401"]
	},
	{
		"id": 7,
		"title": "Classic Shirt",
		"price": 19.99,
		"category": {"id": 1, "name": "Clothes"},
		"images": []
	}
]`

const categoriesJSON = `[
	{"id": 1, "name": "Clothes", "image": "https://i.imgur.com/QkIa5tT.jpeg"},
	{"id": 5, "name": "Others"}
]`

func newCatalogServer(t *testing.T, routes map[string]http.HandlerFunc) *Client {
	t.Helper()

	mux := http.NewServeMux()
	for path, h := range routes {
		mux.HandleFunc(path, h)
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := New(srv.URL+"/api/v1/", WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func jsonBody(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}
}

func TestClientReadProducts(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c := newCatalogServer(t, map[string]http.HandlerFunc{
			"GET /api/v1/products": jsonBody(productsJSON),
		})

		ps, err := c.ReadProducts(context.Background())
		require.NoError(t, err)
		require.Len(t, ps, 2)

		assert.Equal(t, domain.Product{
			ID:       4,
			Title:    "Handmade Fresh Table",
			Price:    687,
			Images:   []string{"https://placehold.co/600x400", "https://placehold.co/600x401"},
			Category: domain.Category{ID: 5, Name: "Others"},
		}, ps[0])
		assert.Equal(t, 19.99, ps[1].Price)
		assert.Empty(t, ps[1].Images)
		assert.Equal(t, "", ps[1].FirstImage())
	})

	t.Run("MalformedJSON", func(t *testing.T) {
		c := newCatalogServer(t, map[string]http.HandlerFunc{
			"GET /api/v1/products": jsonBody(`{"id": 1`),
		})

		ps, err := c.ReadProducts(context.Background())
		require.Error(t, err)
		assert.Nil(t, ps)
	})

	t.Run("WrongShape", func(t *testing.T) {
		c := newCatalogServer(t, map[string]http.HandlerFunc{
			"GET /api/v1/products": jsonBody(`{"message": "not a list"}`),
		})

		_, err := c.ReadProducts(context.Background())
		require.Error(t, err)
	})

	t.Run("ServerError", func(t *testing.T) {
		c := newCatalogServer(t, map[string]http.HandlerFunc{
			"GET /api/v1/products": func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		})

		_, err := c.ReadProducts(context.Background())
		var statusErr StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
		assert.Equal(t, "/products", statusErr.Path)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		c := newCatalogServer(t, map[string]http.HandlerFunc{
			"GET /api/v1/products": jsonBody(productsJSON),
		})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := c.ReadProducts(ctx)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestClientReadCategories(t *testing.T) {
	c := newCatalogServer(t, map[string]http.HandlerFunc{
		"GET /api/v1/categories": jsonBody(categoriesJSON),
	})

	cs, err := c.ReadCategories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.Category{
		{ID: 1, Name: "Clothes"},
		{ID: 5, Name: "Others"},
	}, cs)
}

func TestNew(t *testing.T) {
	c, err := New("")
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.baseURL)

	c, err = New("http://catalog.local/api/v1/")
	require.NoError(t, err)
	assert.Equal(t, "http://catalog.local/api/v1", c.baseURL)

	_, err = New("ftp://catalog.local")
	assert.Error(t, err)

	_, err = New("://bad")
	assert.Error(t, err)
}
