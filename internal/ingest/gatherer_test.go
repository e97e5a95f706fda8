package ingest

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/fetch"
)

// mockFetcher implements the fetcher interface for testing.
type mockFetcher struct {
	items map[string][]fetch.RawItem // keyed by source name
	errs  map[string]error
}

func (m *mockFetcher) Fetch(_ context.Context, d feeds.Descriptor) ([]fetch.RawItem, error) {
	if err := m.errs[d.SourceName]; err != nil {
		return nil, err
	}
	return m.items[d.SourceName], nil
}

func ts(t time.Time) *time.Time { return &t }

func rawItem(title string, d feeds.Descriptor, published time.Time) fetch.RawItem {
	return fetch.RawItem{
		Title:      title,
		Summary:    "sanctions pressure mounts", // clears the relevance threshold
		Published:  ts(published),
		Descriptor: d,
	}
}

func TestGatherFaultIsolation(t *testing.T) {
	now := time.Now()
	good := feeds.Descriptor{SourceName: "Good", Scope: feeds.ScopeInternational}
	bad := feeds.Descriptor{SourceName: "Bad", Scope: feeds.ScopeInternational}
	alsoGood := feeds.Descriptor{SourceName: "AlsoGood", Scope: feeds.ScopeInternational}

	mock := &mockFetcher{
		items: map[string][]fetch.RawItem{
			"Good":     {rawItem("embargo hits oil exports", good, now.Add(-time.Hour))},
			"AlsoGood": {rawItem("tariff round announced on chips", alsoGood, now.Add(-2*time.Hour))},
		},
		errs: map[string]error{"Bad": errors.New("connection refused")},
	}

	g := NewGathererWithFetcher(mock, []feeds.Descriptor{good, bad, alsoGood})
	corpus := g.Gather(context.Background())

	if len(corpus) != 2 {
		t.Fatalf("got %d items, want 2: a failing source must not reduce others", len(corpus))
	}
	for _, item := range corpus {
		if item.Source == "Bad" {
			t.Errorf("unexpected item from failing source")
		}
	}
}

func TestNormalizeTimestampWindow(t *testing.T) {
	now := time.Now().UTC()
	d := feeds.Descriptor{SourceName: "Wire", Scope: feeds.ScopeInternational}

	tests := []struct {
		name      string
		published time.Time
		accept    bool
	}{
		{"fresh", now.Add(-time.Hour), true},
		{"slight clock skew", now.Add(30 * time.Minute), true},
		{"too far future", now.Add(2 * time.Hour), false},
		{"edge of window", now.Add(-6 * 24 * time.Hour), true},
		{"stale", now.Add(-8 * 24 * time.Hour), false},
	}

	for _, tt := range tests {
		raw := rawItem("item "+tt.name, d, tt.published)
		_, ok := normalizeTimestamp(raw, now)
		if ok != tt.accept {
			t.Errorf("%s: accepted=%v, want %v", tt.name, ok, tt.accept)
		}
	}
}

func TestNormalizeTimestampUnparsable(t *testing.T) {
	raw := fetch.RawItem{Title: "x", PublishedRaw: "not a date"}
	if _, ok := normalizeTimestamp(raw, time.Now()); ok {
		t.Error("unparsable timestamp should be rejected")
	}
}

func TestNormalizeTimestampRawFallback(t *testing.T) {
	now := time.Now().UTC()
	raw := fetch.RawItem{
		Title:        "x",
		PublishedRaw: now.Add(-time.Hour).Format(time.RFC1123Z),
	}
	if _, ok := normalizeTimestamp(raw, now); !ok {
		t.Error("RFC1123Z raw timestamp should parse")
	}
}

func TestDedupByTitlePrefix(t *testing.T) {
	now := time.Now()
	a := feeds.Descriptor{SourceName: "A", Scope: feeds.ScopeInternational}
	b := feeds.Descriptor{SourceName: "B", Scope: feeds.ScopeInternational}

	longTitle := "sanctions package targets shipping insurers across multiple jurisdictions"
	mock := &mockFetcher{
		items: map[string][]fetch.RawItem{
			"A": {rawItem(longTitle, a, now.Add(-time.Hour))},
			// Same 50-char prefix, different tail
			"B": {rawItem(longTitle+" again", b, now.Add(-2*time.Hour))},
		},
	}

	g := NewGathererWithFetcher(mock, []feeds.Descriptor{a, b})
	corpus := g.Gather(context.Background())

	if len(corpus) != 1 {
		t.Fatalf("got %d items, want 1 after prefix dedup", len(corpus))
	}
	// Descriptor declaration order makes A the first occurrence
	if corpus[0].Source != "A" {
		t.Errorf("first occurrence should win, got source %q", corpus[0].Source)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	now := time.Now()
	d := feeds.Descriptor{SourceName: "Wire", Scope: feeds.ScopeInternational}

	var raws []fetch.RawItem
	for i := 0; i < 5; i++ {
		raws = append(raws, rawItem(fmt.Sprintf("embargo update %d on oil exports", i), d, now.Add(-time.Duration(i)*time.Hour)))
	}
	results := [][]fetch.RawItem{raws}

	g := NewGathererWithFetcher(&mockFetcher{}, []feeds.Descriptor{d})
	first := g.normalize(results)
	second := g.normalize(results)

	if len(first) != len(second) {
		t.Fatalf("normalize not idempotent: %d then %d items", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("item %d: id %q then %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestCorpusOrderedByTimeDescending(t *testing.T) {
	now := time.Now()
	d := feeds.Descriptor{SourceName: "Wire", Scope: feeds.ScopeInternational}

	mock := &mockFetcher{
		items: map[string][]fetch.RawItem{
			"Wire": {
				rawItem("old embargo story", d, now.Add(-5*time.Hour)),
				rawItem("fresh embargo story", d, now.Add(-time.Hour)),
				rawItem("middle embargo story", d, now.Add(-3*time.Hour)),
			},
		},
	}

	g := NewGathererWithFetcher(mock, []feeds.Descriptor{d})
	corpus := g.Gather(context.Background())

	if len(corpus) != 3 {
		t.Fatalf("got %d items, want 3", len(corpus))
	}
	for i := 1; i < len(corpus); i++ {
		if corpus[i].PublishedAt.After(corpus[i-1].PublishedAt) {
			t.Errorf("corpus not sorted descending at index %d", i)
		}
	}
}

func TestLocalItemsBypassThreshold(t *testing.T) {
	now := time.Now()
	local := feeds.Descriptor{SourceName: "Metro", Scope: feeds.ScopeLocal, Cities: []string{"singapore"}}

	mock := &mockFetcher{
		items: map[string][]fetch.RawItem{
			"Metro": {{
				Title:      "new bus routes downtown",
				Summary:    "schedule changes",
				Published:  ts(now.Add(-time.Hour)),
				Descriptor: local,
			}},
		},
	}

	g := NewGathererWithFetcher(mock, []feeds.Descriptor{local})
	corpus := g.Gather(context.Background())

	if len(corpus) != 1 {
		t.Fatalf("local item should bypass the relevance threshold, got %d items", len(corpus))
	}
	if corpus[0].RelevanceScore >= 1 {
		t.Errorf("test premise broken: local item unexpectedly scored %v", corpus[0].RelevanceScore)
	}
}
