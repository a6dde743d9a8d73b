package turso

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConfiguratorService/internal/domain"
	"github.com/m04kA/SMC-ConfiguratorService/pkg/logger"
)

const productsResponse = `{
  "results": [
    {"type": "ok", "response": {"type": "execute", "result": {
      "cols": [{"name": "id"}, {"name": "sku"}, {"name": "name"}, {"name": "category"}, {"name": "price"},
               {"name": "labor_hours"}, {"name": "stars"}, {"name": "shooting"}, {"name": "color"}, {"name": "colors"}],
      "rows": [
        [{"type": "text", "value": "7"}, {"type": "text", "value": "STR-1200"}, {"type": "text", "value": "Starlight 1200"},
         {"type": "text", "value": "starlight"}, {"type": "float", "value": 9500.5}, {"type": "integer", "value": "8"},
         {"type": "integer", "value": "1200"}, {"type": "integer", "value": "0"}, {"type": "null"},
         {"type": "text", "value": "[\"white\",\"blue\"]"}]
      ]
    }}},
    {"type": "ok", "response": {"type": "close"}}
  ]
}`

func TestClient_ListProducts(t *testing.T) {
	var got pipelineRequest
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v2/pipeline", r.URL.Path)
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(productsResponse))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret", time.Second, logger.NewNop())

	products, err := client.ListProducts(context.Background(), domain.ProductFilter{Category: "starlight", Search: "Star"})
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", auth)
	require.Len(t, got.Requests, 2)
	assert.Equal(t, "execute", got.Requests[0].Type)
	assert.Equal(t, "close", got.Requests[1].Type)
	assert.Equal(t,
		"SELECT * FROM products WHERE category = ? AND (LOWER(name) LIKE ? OR LOWER(sku) LIKE ?) ORDER BY category, name",
		got.Requests[0].Stmt.SQL)
	assert.Equal(t, []argument{
		{Type: "text", Value: "starlight"},
		{Type: "text", Value: "%star%"},
		{Type: "text", Value: "%star%"},
	}, got.Requests[0].Stmt.Args)

	require.Len(t, products, 1)
	p := products[0]
	assert.Equal(t, "7", p.ID)
	assert.Equal(t, domain.CategoryStarlight, p.Category)
	assert.Equal(t, 9500.5, p.Price)
	assert.Equal(t, 8.0, p.LaborHours)
	assert.Equal(t, "MAD", p.Currency)
	require.NotNil(t, p.Stars)
	assert.Equal(t, 1200, *p.Stars)
	require.NotNil(t, p.Shooting)
	assert.False(t, *p.Shooting)
	assert.Nil(t, p.Color)
	assert.Equal(t, []string{"white", "blue"}, p.Colors)
}

func TestClient_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("bad token"))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "wrong", time.Second, logger.NewNop())

	_, err := client.Execute(context.Background(), "SELECT 1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
	assert.Contains(t, err.Error(), "401 - bad token")
}

func TestClient_StatementError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results":[{"type":"error","error":{"message":"no such table: products"}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "t", time.Second, logger.NewNop())

	_, err := client.Execute(context.Background(), "SELECT * FROM products")
	assert.ErrorIs(t, err, ErrStatement)
	assert.Contains(t, err.Error(), "no such table")
}

func TestClient_NotConfigured(t *testing.T) {
	client := NewClient("", "", time.Second, logger.NewNop())

	_, err := client.ListProducts(context.Background(), domain.ProductFilter{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestHTTPURL(t *testing.T) {
	assert.Equal(t, "https://shop-db.turso.io", httpURL("libsql://shop-db.turso.io"))
	assert.Equal(t, "https://already.example", httpURL("https://already.example"))
}

func TestBuildProductsQuery_NoFilter(t *testing.T) {
	query, args, err := buildProductsQuery(domain.ProductFilter{})
	require.NoError(t, err)

	assert.Equal(t, "SELECT * FROM products ORDER BY category, name", query)
	assert.Empty(t, args)
}
