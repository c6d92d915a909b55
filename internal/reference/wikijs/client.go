// Package wikijs is a minimal Wiki.js GraphQL client for policy pages.
package wikijs

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/machinebox/graphql"
)

const maxErrorBodySize = 4096

const listPagesQuery = `query ($tags: [String!]) {
  pages {
    list(tags: $tags) { id path title description tags updatedAt }
  }
}`

const singlePageQuery = `query ($id: Int!) {
  pages {
    single(id: $id) { id path title description content tags { tag } updatedAt }
  }
}`

const searchPagesQuery = `query ($query: String!) {
  pages {
    search(query: $query) { results { id title path description } }
  }
}`

// ErrPageNotFound is returned when the wiki has no page with the given id.
var ErrPageNotFound = errors.New("wiki page not found")

// PageSummary is one entry of a page listing.
type PageSummary struct {
	ID          int      `json:"id"`
	Path        string   `json:"path"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	UpdatedAt   string   `json:"updatedAt"`
}

// Page is a full page with markdown content.
type Page struct {
	ID          int       `json:"id"`
	Path        string    `json:"path"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Tags        []PageTag `json:"tags"`
	UpdatedAt   string    `json:"updatedAt"`
}

// PageTag is a tag attached to a page.
type PageTag struct {
	Tag string `json:"tag"`
}

// TagNames returns the plain tag names of the page.
func (p *Page) TagNames() []string {
	names := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		names = append(names, t.Tag)
	}
	return names
}

// SearchResult is one hit of a wiki search.
type SearchResult struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// bearerTransport authenticates every call and turns non-2xx replies into errors,
// which the GraphQL client would otherwise try to decode.
type bearerTransport struct {
	apiKey string
	base   http.RoundTripper
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+t.apiKey)

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, fmt.Errorf("wiki.js returned status %d: %s", resp.StatusCode, string(body))
	}

	return resp, nil
}

// Client talks to the Wiki.js GraphQL endpoint.
type Client struct {
	gql    *graphql.Client
	apiKey string
}

// NewClient creates a new Wiki.js client.
func NewClient(config *Config) *Client {
	httpClient := &http.Client{
		Timeout: time.Duration(config.Timeout) * time.Second,
		Transport: &bearerTransport{
			apiKey: config.APIKey,
			base:   http.DefaultTransport,
		},
	}

	return &Client{
		gql:    graphql.NewClient(strings.TrimRight(config.URL, "/")+"/graphql", graphql.WithHTTPClient(httpClient)),
		apiKey: config.APIKey,
	}
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// ListPages lists pages carrying any of the given tags.
func (c *Client) ListPages(ctx context.Context, tags []string) ([]PageSummary, error) {
	req := graphql.NewRequest(listPagesQuery)
	if len(tags) > 0 {
		req.Var("tags", tags)
	}

	var data struct {
		Pages struct {
			List []PageSummary `json:"list"`
		} `json:"pages"`
	}
	if err := c.run(ctx, req, &data); err != nil {
		return nil, err
	}

	return data.Pages.List, nil
}

// Page fetches a single page with its content.
func (c *Client) Page(ctx context.Context, id int) (*Page, error) {
	req := graphql.NewRequest(singlePageQuery)
	req.Var("id", id)

	var data struct {
		Pages struct {
			Single *Page `json:"single"`
		} `json:"pages"`
	}
	if err := c.run(ctx, req, &data); err != nil {
		return nil, err
	}

	if data.Pages.Single == nil {
		return nil, fmt.Errorf("%w: id=%d", ErrPageNotFound, id)
	}

	return data.Pages.Single, nil
}

// Search runs a wiki full-text search.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	req := graphql.NewRequest(searchPagesQuery)
	req.Var("query", query)

	var data struct {
		Pages struct {
			Search struct {
				Results []SearchResult `json:"results"`
			} `json:"search"`
		} `json:"pages"`
	}
	if err := c.run(ctx, req, &data); err != nil {
		return nil, err
	}

	return data.Pages.Search.Results, nil
}

func (c *Client) run(ctx context.Context, req *graphql.Request, out any) error {
	if err := c.gql.Run(ctx, req, out); err != nil {
		return fmt.Errorf("wiki.js query: %w", err)
	}
	return nil
}
