// Package score computes a bounded relevance score for normalized items,
// detects referenced regions, and derives the market exposure, transmission
// channel, and signal-strength classification attached to each item.
//
// Everything here is a deterministic function of the item text plus the
// static tables in tables.go: re-scoring the same text always yields the
// same result.
package score

import (
	"fmt"
	"strings"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/match"
)

// MaxRelevance is the score ceiling.
const MaxRelevance = 10.0

// MinRelevance is the inclusion threshold for international and regional
// items. Local items bypass it.
const MinRelevance = 1.0

// Relevance sums tier weights for every matching keyword and clamps to the
// ceiling. Linear, order-independent, idempotent.
func Relevance(folded string) float64 {
	total := 0.0
	for _, tier := range relevanceTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(folded, kw) {
				total += tier.weight
			}
		}
	}
	if total > MaxRelevance {
		return MaxRelevance
	}
	return total
}

// Regions returns the canonical region keys detected in the text, in alias
// table declaration order, deduplicated. The explicit keyword map is merged
// after the alias scan.
func Regions(folded string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, ra := range regionAliases {
		for _, alias := range ra.aliases {
			if match.ContainsWord(folded, alias) {
				if !seen[ra.key] {
					seen[ra.key] = true
					result = append(result, ra.key)
				}
				break
			}
		}
	}

	for _, rk := range regionKeywords {
		if strings.Contains(folded, rk.keyword) && !seen[rk.key] {
			seen[rk.key] = true
			result = append(result, rk.key)
		}
	}

	return result
}

// ExposedMarkets maps detected regions through the instrument table and
// returns the deduplicated union, preserving region order.
func ExposedMarkets(regions []string) []string {
	seen := make(map[string]bool)
	var result []string
	for _, r := range regions {
		for _, m := range regionMarkets[r] {
			if !seen[m] {
				seen[m] = true
				result = append(result, m)
			}
		}
	}
	return result
}

// TransmissionChannel selects the first matching causal chain, or the
// generic fallback.
func TransmissionChannel(folded string) string {
	return match.FirstMatch(folded, transmissionChannels, genericChannel)
}

// Strength classifies the story's maturity. Pattern sets are checked in
// priority order confirmed → building → early; first match wins.
func Strength(folded string) feeds.SignalStrength {
	if match.ContainsAny(folded, confirmedPatterns) {
		return feeds.StrengthConfirmed
	}
	if match.ContainsAny(folded, buildingPatterns) {
		return feeds.StrengthBuilding
	}
	if match.ContainsAny(folded, earlyPatterns) {
		return feeds.StrengthEarly
	}
	return feeds.StrengthBuilding
}

// WhyItMatters composes the short rationale string from the derived fields.
func WhyItMatters(relevance float64, regions, markets []string) string {
	switch {
	case len(markets) > 0:
		return fmt.Sprintf("Touches %s with direct exposure for %s",
			strings.Join(regions, ", "), strings.Join(markets, ", "))
	case relevance >= 5:
		return "High keyword relevance without a mapped regional exposure"
	default:
		return "Background development; monitor for escalation"
	}
}

// NoveltyTracker flags items as novel unless their title shares more than
// 60% of its length-≥5 tokens with any already-accepted title in the same
// cycle. O(n²) pairwise across the growing accepted list; acceptable at the
// 1000-item corpus cap.
type NoveltyTracker struct {
	accepted [][]string
}

// Novel reports whether the title is novel relative to titles recorded so
// far. It does not record; call Accept once the item makes the corpus.
func (t *NoveltyTracker) Novel(title string) bool {
	tokens := match.Tokens(match.Fold(title), 5)
	if len(tokens) == 0 {
		return true
	}
	for _, prev := range t.accepted {
		if overlapRatio(tokens, prev) > 0.6 {
			return false
		}
	}
	return true
}

// Accept records an accepted title for subsequent novelty checks.
func (t *NoveltyTracker) Accept(title string) {
	t.accepted = append(t.accepted, match.Tokens(match.Fold(title), 5))
}

// overlapRatio is the fraction of tokens present in prev.
func overlapRatio(tokens, prev []string) float64 {
	if len(tokens) == 0 || len(prev) == 0 {
		return 0
	}
	set := make(map[string]bool, len(prev))
	for _, p := range prev {
		set[p] = true
	}
	shared := 0
	for _, tok := range tokens {
		if set[tok] {
			shared++
		}
	}
	return float64(shared) / float64(len(tokens))
}

// Annotate fills every scoring-derived field of the item in place.
func Annotate(n *feeds.NewsItem, novelty *NoveltyTracker) {
	folded := match.Fold(n.Text())

	n.RelevanceScore = Relevance(folded)
	n.Regions = Regions(folded)
	n.ExposedMarkets = ExposedMarkets(n.Regions)
	n.TransmissionChannel = TransmissionChannel(folded)
	n.SignalStrength = Strength(folded)
	n.WhyItMatters = WhyItMatters(n.RelevanceScore, n.Regions, n.ExposedMarkets)
	n.IsNovel = novelty.Novel(n.Title)
}

// Include applies the scope threshold: international and regional items need
// the minimum relevance, local items are included by geographic targeting.
func Include(n feeds.NewsItem) bool {
	if n.Scope == feeds.ScopeLocal {
		return true
	}
	return n.RelevanceScore >= MinRelevance
}
