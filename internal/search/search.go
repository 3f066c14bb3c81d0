// Package search wraps the optional web-search capability used to
// enrich post generation with current context. Search is best-effort:
// every provider failure collapses to "no results" and never aborts a
// pipeline run.
package search

import (
	"context"
	"fmt"
	"log"
	"strings"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"
)

// Context is the immutable result of one search lookup.
type Context struct {
	Found bool   `json:"found"`
	Text  string `json:"text"`
}

// Provider is the search capability consumed by the pipeline.
type Provider interface {
	Search(ctx context.Context, query string) Context
}

// defaultMaxResults bounds how many snippets are folded into the
// context block.
const defaultMaxResults = 3

// GoogleProvider performs lookups through the Google Custom Search API.
type GoogleProvider struct {
	svc        *customsearch.Service
	cx         string
	maxResults int
}

// NewGoogleProvider creates a provider bound to a Custom Search engine.
func NewGoogleProvider(ctx context.Context, apiKey, cx string) (*GoogleProvider, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &GoogleProvider{
		svc:        svc,
		cx:         cx,
		maxResults: defaultMaxResults,
	}, nil
}

// Search returns a formatted context block for the query. Errors and
// empty result sets both yield Context{Found: false}; degraded search
// lowers quality, not availability.
func (p *GoogleProvider) Search(ctx context.Context, query string) Context {
	resp, err := p.svc.Cse.List().Context(ctx).Cx(p.cx).Q(query).Num(int64(p.maxResults)).Do()
	if err != nil {
		log.Printf("[search] lookup failed for %q: %v", query, err)
		return Context{}
	}
	if len(resp.Items) == 0 {
		return Context{}
	}

	titles := make([]string, 0, len(resp.Items))
	snippets := make([]string, 0, len(resp.Items))
	for _, item := range resp.Items {
		titles = append(titles, item.Title)
		snippets = append(snippets, item.Snippet)
	}
	return Context{Found: true, Text: formatResults(titles, snippets)}
}

// Disabled is the provider used when no search credentials are
// configured. It always reports no results.
type Disabled struct{}

// Search returns an empty context.
func (Disabled) Search(context.Context, string) Context { return Context{} }

// formatResults renders search hits as numbered "Title: Snippet" lines.
func formatResults(titles, snippets []string) string {
	var sb strings.Builder
	for i := range titles {
		if i > 0 {
			sb.WriteString("\n")
		}
		title := titles[i]
		if title == "" {
			title = "No title"
		}
		snippet := ""
		if i < len(snippets) {
			snippet = snippets[i]
		}
		if snippet == "" {
			snippet = "No description"
		}
		fmt.Fprintf(&sb, "%d. %s: %s", i+1, title, snippet)
	}
	return sb.String()
}
