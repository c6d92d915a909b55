package wikijs_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/davidbz/policybot/internal/reference/wikijs"
)

type capturedRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, req capturedRequest)) *wikijs.Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/graphql", r.URL.Path)
		assert.Equal(t, "Bearer wiki-key", r.Header.Get("Authorization"))

		var req capturedRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		w.Header().Set("Content-Type", "application/json")
		handler(w, req)
	}))
	t.Cleanup(server.Close)

	return wikijs.NewClient(&wikijs.Config{URL: server.URL + "/", APIKey: "wiki-key", Timeout: 5})
}

func TestClient_ListPages(t *testing.T) {
	t.Run("should filter by tags", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
			assert.Contains(t, req.Query, "list(tags: $tags)")
			assert.Equal(t, []any{"policy-priority", "policy"}, req.Variables["tags"])
			_, _ = w.Write([]byte(`{"data":{"pages":{"list":[
				{"id":7,"path":"policy/housing","title":"Housing","tags":["policy"]},
				{"id":9,"path":"policy/transit","title":"Transit","tags":["policy","region:North"]}
			]}}}`))
		})

		pages, err := client.ListPages(context.Background(), []string{"policy-priority", "policy"})

		require.NoError(t, err)
		require.Len(t, pages, 2)
		require.Equal(t, 9, pages[1].ID)
		require.Equal(t, []string{"policy", "region:North"}, pages[1].Tags)
	})

	t.Run("should send no tag variable when listing every page", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
			assert.NotContains(t, req.Variables, "tags")
			_, _ = w.Write([]byte(`{"data":{"pages":{"list":[]}}}`))
		})

		pages, err := client.ListPages(context.Background(), nil)

		require.NoError(t, err)
		require.Empty(t, pages)
	})
}

func TestClient_Page(t *testing.T) {
	t.Run("should decode content and tags", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
			assert.EqualValues(t, 7, req.Variables["id"])
			_, _ = w.Write([]byte(`{"data":{"pages":{"single":{
				"id":7,"path":"policy/housing","title":"Housing",
				"content":"## Overview\nBuild more.","tags":[{"tag":"policy"},{"tag":"region:North"}]
			}}}}`))
		})

		page, err := client.Page(context.Background(), 7)

		require.NoError(t, err)
		require.Equal(t, "Housing", page.Title)
		require.Equal(t, "## Overview\nBuild more.", page.Content)
		require.Equal(t, []string{"policy", "region:North"}, page.TagNames())
	})

	t.Run("should report a missing page", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			_, _ = w.Write([]byte(`{"data":{"pages":{"single":null}}}`))
		})

		_, err := client.Page(context.Background(), 404)

		require.ErrorIs(t, err, wikijs.ErrPageNotFound)
	})

	t.Run("should surface graphql errors", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			_, _ = w.Write([]byte(`{"errors":[{"message":"Forbidden"}]}`))
		})

		_, err := client.Page(context.Background(), 1)

		require.ErrorContains(t, err, "Forbidden")
	})

	t.Run("should surface non-200 responses", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, _ capturedRequest) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.Page(context.Background(), 1)

		require.ErrorContains(t, err, "status 502")
	})
}

func TestClient_Search(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, req capturedRequest) {
		assert.Equal(t, "rent", req.Variables["query"])
		_, _ = w.Write([]byte(`{"data":{"pages":{"search":{"results":[
			{"id":"7","title":"Housing","path":"policy/housing","description":"Rent and zoning"}
		]}}}}`))
	})

	results, err := client.Search(context.Background(), "rent")

	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "7", results[0].ID)
}

func TestClient_Configured(t *testing.T) {
	require.False(t, wikijs.NewClient(&wikijs.Config{URL: "http://wiki"}).Configured())
	require.True(t, wikijs.NewClient(&wikijs.Config{URL: "http://wiki", APIKey: "k"}).Configured())
}
