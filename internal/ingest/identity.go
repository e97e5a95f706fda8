package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/abelbrown/vantage/internal/feeds"
)

// itemID derives the content+time addressed item ID: a short hash of the
// title plus the normalized timestamp. Deterministic, so re-running
// normalization on the same raw corpus reproduces the same IDs.
func itemID(title string, published time.Time) string {
	sum := sha256.Sum256([]byte(title + "|" + published.Format(time.RFC3339)))
	return hex.EncodeToString(sum[:])[:12]
}

// sortByPublishedDesc orders most recent first. Stable so items sharing a
// timestamp keep descriptor declaration order.
func sortByPublishedDesc(items []feeds.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
}
