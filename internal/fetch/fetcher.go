// Package fetch retrieves entries from a single feed descriptor and maps
// them to the raw item shape consumed by ingestion.
//
// Fetching one descriptor is fully independent of every other descriptor:
// errors here never affect sibling fetches. Concurrency and fault isolation
// across descriptors live in the ingest package.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/abelbrown/vantage/internal/feeds"
)

// maxEntriesPerSource bounds how many of the most recent entries are taken
// from one successful fetch.
const maxEntriesPerSource = 15

// RawItem is one unprocessed feed entry plus the geographic tags of its
// originating descriptor. Discarded after normalization.
type RawItem struct {
	Title        string
	Summary      string
	Link         string
	Image        string
	PublishedRaw string
	Published    *time.Time // parsed candidate, nil if the feed gave none
	Descriptor   feeds.Descriptor
}

// Fetcher retrieves raw items from feed descriptors.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given HTTP client timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves up to maxEntriesPerSource raw items from one descriptor.
// Respects context cancellation. Entries without a title are dropped here;
// all other validation happens in ingest.
func (f *Fetcher) Fetch(ctx context.Context, d feeds.Descriptor) ([]RawItem, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.Endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Vantage/1.0 (https://github.com/abelbrown/vantage)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	parser := gofeed.NewParser()
	feed, err := parser.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := feed.Items
	if len(entries) > maxEntriesPerSource {
		entries = entries[:maxEntriesPerSource]
	}

	items := make([]RawItem, 0, len(entries))
	for _, entry := range entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}
		items = append(items, convertEntry(entry, title, d))
	}

	return items, nil
}

func convertEntry(entry *gofeed.Item, title string, d feeds.Descriptor) RawItem {
	// Get summary - prefer Description, fallback to Content snippet
	summary := strings.TrimSpace(entry.Description)
	if summary == "" && entry.Content != "" {
		summary = truncate(strings.TrimSpace(entry.Content), 500)
	}

	var published *time.Time
	if entry.PublishedParsed != nil {
		published = entry.PublishedParsed
	} else if entry.UpdatedParsed != nil {
		published = entry.UpdatedParsed
	}

	return RawItem{
		Title:        title,
		Summary:      summary,
		Link:         entry.Link,
		Image:        extractImage(entry),
		PublishedRaw: entry.Published,
		Published:    published,
		Descriptor:   d,
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
