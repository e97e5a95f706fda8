// Package scenario reweights the fixed scenario registry against the
// current corpus: trigger match density shifts probability between a
// scenario's paths, and the leading path is selected per scenario.
//
// Single-pass, no iteration or convergence loop; runs once per cycle and
// fully replaces prior scenario state.
package scenario

import (
	"math"
	"strings"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/match"
	"github.com/abelbrown/vantage/internal/signals"
)

const (
	// matchingWindow is how many of the most recent corpus items feed the
	// trigger scan.
	matchingWindow = 50

	// adjustmentPool is the probability mass (percentage points)
	// distributed across paths proportionally to trigger match share.
	adjustmentPool = 30.0

	// clampFloor and clampCeil bound each path's pre-normalization
	// probability.
	clampFloor = 5.0
	clampCeil  = 80.0

	// maxRelatedNews caps the related-news projection per scenario.
	maxRelatedNews = 5
)

// NewsRef is the minimal projection of a corpus item attached to a
// scenario.
type NewsRef struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Source string `json:"source"`
}

// Result is one scenario after reweighting.
type Result struct {
	Scenario
	LeadingPathID string    `json:"leadingPathId"`
	RelatedNews   []NewsRef `json:"relatedNews"`
	ActiveSignals []string  `json:"activeSignals"`
}

// Evaluate reweights every scenario independently against the corpus and
// the current signal set.
func Evaluate(registry []Scenario, corpus []feeds.NewsItem, active []signals.Signal) []Result {
	window := corpus
	if len(window) > matchingWindow {
		window = window[:matchingWindow]
	}

	var b strings.Builder
	for _, item := range window {
		b.WriteString(item.Text())
		b.WriteByte(' ')
	}
	folded := match.Fold(b.String())

	results := make([]Result, 0, len(registry))
	for _, s := range registry {
		results = append(results, evaluateOne(s, folded, corpus, active))
	}
	return results
}

func evaluateOne(s Scenario, folded string, corpus []feeds.NewsItem, active []signals.Signal) Result {
	// Copy paths so the registry itself stays immutable
	paths := make([]Path, len(s.Paths))
	copy(paths, s.Paths)

	matches := make([]int, len(paths))
	total := 0
	for i, p := range paths {
		matches[i] = match.CountDistinct(folded, foldAll(p.Triggers))
		total += matches[i]
	}

	if total == 0 {
		for i := range paths {
			paths[i].CurrentProbability = paths[i].BaseProbability
		}
	} else {
		reweight(paths, matches, total)
	}

	out := s
	out.Paths = paths

	return Result{
		Scenario:      out,
		LeadingPathID: leadingPath(paths),
		RelatedNews:   relatedNews(paths, corpus),
		ActiveSignals: activeSignals(s, active),
	}
}

// reweight distributes the adjustment pool proportionally to match share,
// clamps each path, then rescales the scenario so probabilities sum to 100
// (nearest-integer rounding; drift of at most paths-1 is acceptable).
func reweight(paths []Path, matches []int, total int) {
	clamped := make([]float64, len(paths))
	sum := 0.0
	for i, p := range paths {
		adjustment := float64(matches[i]) / float64(total) * adjustmentPool
		v := float64(p.BaseProbability) + adjustment
		if v < clampFloor {
			v = clampFloor
		}
		if v > clampCeil {
			v = clampCeil
		}
		clamped[i] = v
		sum += v
	}
	for i := range paths {
		paths[i].CurrentProbability = int(math.Round(clamped[i] / sum * 100))
	}
}

// leadingPath returns the id of the path with maximal current probability,
// ties broken by declaration order.
func leadingPath(paths []Path) string {
	best := 0
	for i := 1; i < len(paths); i++ {
		if paths[i].CurrentProbability > paths[best].CurrentProbability {
			best = i
		}
	}
	return paths[best].ID
}

// relatedNews collects up to maxRelatedNews corpus items (full corpus, not
// the recency window) whose text matches any path's trigger set.
func relatedNews(paths []Path, corpus []feeds.NewsItem) []NewsRef {
	var triggers []string
	for _, p := range paths {
		triggers = append(triggers, foldAll(p.Triggers)...)
	}

	var refs []NewsRef
	for _, item := range corpus {
		if !match.ContainsAny(match.Fold(item.Text()), triggers) {
			continue
		}
		refs = append(refs, NewsRef{ID: item.ID, Title: item.Title, Source: item.Source})
		if len(refs) == maxRelatedNews {
			break
		}
	}
	return refs
}

// activeSignals returns ids of signals overlapping the scenario: the signal
// id or name contains the theme (case-insensitive, either direction), or
// one of its affected regions appears in a path's trigger set.
func activeSignals(s Scenario, active []signals.Signal) []string {
	theme := strings.ToLower(s.Theme)

	var triggers []string
	for _, p := range s.Paths {
		triggers = append(triggers, foldAll(p.Triggers)...)
	}

	var out []string
	for _, sig := range active {
		id := strings.ToLower(sig.ID)
		name := strings.ToLower(sig.Name)
		if strings.Contains(id, theme) || strings.Contains(name, theme) ||
			strings.Contains(theme, id) || strings.Contains(theme, name) {
			out = append(out, sig.ID)
			continue
		}
		if regionOverlap(sig.AffectedRegions, triggers) {
			out = append(out, sig.ID)
		}
	}
	return out
}

func regionOverlap(regions, triggers []string) bool {
	for _, r := range regions {
		// Region keys use underscores; triggers are plain phrases
		plain := strings.ReplaceAll(strings.ToLower(r), "_", " ")
		for _, t := range triggers {
			if strings.Contains(t, plain) || strings.Contains(plain, t) {
				return true
			}
		}
	}
	return false
}

func foldAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}
