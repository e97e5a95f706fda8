// Package ingest fans out over the feed descriptor table, normalizes the raw
// entries each fetch returns, and produces the deduplicated, scored,
// time-ordered corpus for one cycle.
//
// Each descriptor is fetched independently with its own timeout; a failing
// descriptor is logged and contributes an empty result, never aborting or
// delaying siblings. Results are only written into the per-descriptor slot
// after that fetch fully resolves, then flattened in descriptor declaration
// order so deduplication is deterministic across runs.
package ingest

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/fetch"
	"github.com/abelbrown/vantage/internal/logging"
	"github.com/abelbrown/vantage/internal/score"
)

const (
	// fetchTimeout bounds each individual descriptor fetch.
	fetchTimeout = 10 * time.Second

	// maxConcurrentFetches limits parallel fetch operations.
	maxConcurrentFetches = 5

	// maxCorpusSize caps the final per-cycle corpus.
	maxCorpusSize = 1000

	// stalenessWindow rejects items older than this.
	stalenessWindow = 7 * 24 * time.Hour

	// clockSkewTolerance accepts items dated slightly in the future.
	clockSkewTolerance = time.Hour

	// dedupPrefixLen is the case-folded title prefix used as the dedup key.
	dedupPrefixLen = 50
)

// fetcher interface for dependency injection (testing).
type fetcher interface {
	Fetch(ctx context.Context, d feeds.Descriptor) ([]fetch.RawItem, error)
}

// Gatherer runs one full ingestion pass over the descriptor table.
type Gatherer struct {
	fetcher     fetcher
	descriptors []feeds.Descriptor
	limiter     *rate.Limiter
	now         func() time.Time
}

// NewGatherer creates a Gatherer with the real fetcher.
func NewGatherer(f *fetch.Fetcher, descriptors []feeds.Descriptor) *Gatherer {
	return NewGathererWithFetcher(f, descriptors)
}

// NewGathererWithFetcher allows injecting a custom fetcher (for testing).
func NewGathererWithFetcher(f fetcher, descriptors []feeds.Descriptor) *Gatherer {
	// Copy to ensure the table stays immutable from the caller's side
	ds := make([]feeds.Descriptor, len(descriptors))
	copy(ds, descriptors)

	return &Gatherer{
		fetcher:     f,
		descriptors: ds,
		// Courtesy pacing for fetch starts, not a correctness requirement
		limiter: rate.NewLimiter(rate.Every(100*time.Millisecond), maxConcurrentFetches),
		now:     time.Now,
	}
}

// Gather fetches every descriptor concurrently and returns the normalized,
// deduplicated, scored corpus sorted by publish time descending.
func (g *Gatherer) Gather(ctx context.Context) []feeds.NewsItem {
	results := make([][]fetch.RawItem, len(g.descriptors))

	var eg errgroup.Group
	eg.SetLimit(maxConcurrentFetches)

	for i, d := range g.descriptors {
		i, d := i, d
		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if err := g.limiter.Wait(ctx); err != nil {
				return nil
			}

			fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
			defer cancel()

			items, err := g.fetcher.Fetch(fetchCtx, d)
			if err != nil {
				logging.Warn("feed fetch failed", "source", d.SourceName, "error", err)
				return nil // never fail the group - errors isolated per source
			}
			results[i] = items
			return nil
		})
	}

	_ = eg.Wait()

	return g.normalize(results)
}

// normalize validates timestamps, deduplicates by title prefix, scores each
// survivor, applies the scope threshold, and orders the corpus.
func (g *Gatherer) normalize(results [][]fetch.RawItem) []feeds.NewsItem {
	now := g.now()
	seen := make(map[string]bool)
	novelty := &score.NoveltyTracker{}
	corpus := make([]feeds.NewsItem, 0, 256)

	for _, raws := range results {
		for _, raw := range raws {
			published, ok := normalizeTimestamp(raw, now)
			if !ok {
				logging.Debug("item dropped: bad timestamp", "title", raw.Title)
				continue
			}

			key := dedupKey(raw.Title)
			if seen[key] {
				logging.Debug("item dropped: duplicate title prefix", "title", raw.Title)
				continue
			}
			seen[key] = true

			item := feeds.NewsItem{
				ID:          itemID(raw.Title, published),
				Title:       raw.Title,
				Summary:     raw.Summary,
				Source:      raw.Descriptor.SourceName,
				Category:    raw.Descriptor.Category,
				Link:        raw.Link,
				Image:       raw.Image,
				PublishedAt: published,
				Scope:       raw.Descriptor.Scope,
				Region:      raw.Descriptor.Region,
				Cities:      raw.Descriptor.Cities,
			}
			score.Annotate(&item, novelty)

			if !score.Include(item) {
				continue
			}
			novelty.Accept(item.Title)
			corpus = append(corpus, item)
		}
	}

	sortByPublishedDesc(corpus)
	if len(corpus) > maxCorpusSize {
		corpus = corpus[:maxCorpusSize]
	}
	return corpus
}

// rawTimestampLayouts are tried when the feed parser left the publish time
// unparsed.
var rawTimestampLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// normalizeTimestamp parses and validates the publish-time candidate.
// Rejects unparsable timestamps, anything more than an hour in the future,
// and anything past the staleness window. Accepted values are normalized to
// UTC.
func normalizeTimestamp(raw fetch.RawItem, now time.Time) (time.Time, bool) {
	var ts time.Time
	if raw.Published != nil {
		ts = *raw.Published
	} else {
		parsed := false
		for _, layout := range rawTimestampLayouts {
			if t, err := time.Parse(layout, strings.TrimSpace(raw.PublishedRaw)); err == nil {
				ts = t
				parsed = true
				break
			}
		}
		if !parsed {
			return time.Time{}, false
		}
	}

	ts = ts.UTC()
	if ts.After(now.Add(clockSkewTolerance)) {
		return time.Time{}, false
	}
	if ts.Before(now.Add(-stalenessWindow)) {
		return time.Time{}, false
	}
	return ts, true
}

// dedupKey is the case-folded 50-character title prefix. Order-sensitive,
// single-pass: it does not catch paraphrased duplicates beyond a shared
// prefix.
func dedupKey(title string) string {
	folded := strings.ToLower(strings.TrimSpace(title))
	if len(folded) > dedupPrefixLen {
		folded = folded[:dedupPrefixLen]
	}
	return folded
}
