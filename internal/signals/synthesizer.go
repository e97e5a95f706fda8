// Package signals matches the scored corpus against the fixed template
// registry and produces the ranked list of currently active signals.
package signals

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/match"
)

// Direction of a signal's development.
type Direction string

const (
	DirectionIncreasing Direction = "increasing"
	DirectionDecreasing Direction = "decreasing"
	DirectionNeutral    Direction = "neutral"
)

// Signal is one active, scored indicator derived from template matches.
// Recomputed fully each cycle.
type Signal struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Strength        int       `json:"strength"`
	Direction       Direction `json:"direction"`
	Confidence      int       `json:"confidence"`
	AffectedMarkets []string  `json:"affectedMarkets"`
	AffectedRegions []string  `json:"affectedRegions"`
	RelatedNewsIDs  []string  `json:"relatedNewsIds"`
	NewsCount       int       `json:"newsCount"`
	RecentNewsCount int       `json:"recentNewsCount"`
	StrengthLabel   string    `json:"strengthLabel"`
}

const (
	// noiseFloor suppresses templates whose computed strength is too weak
	// to be meaningful. Not an error, just silence.
	noiseFloor = 20

	// recentWindow defines "recent" matches relative to the cycle's
	// reference time.
	recentWindow = time.Hour

	// maxRepresentatives caps the items carried into downstream fields.
	maxRepresentatives = 5
)

// intensifyPatterns and easePatterns drive direction detection. Both sets
// are always scanned, in this declared order; the last class with a match
// wins, so an easing match overrides an intensify match.
var (
	intensifyPatterns = []string{
		"escalat", "intensif", "surge", "worsen", "expand", "deepen",
		"mounting", "growing threat",
	}
	easePatterns = []string{
		"ceasefire", "de-escalat", "ease", "truce", "resolve", "calm",
		"agreement reached", "tensions cool",
	}
)

// Synthesize recomputes the active signal list from the corpus. Output is
// sorted by strength descending.
func Synthesize(templates []Template, corpus []feeds.NewsItem, now time.Time) []Signal {
	out := make([]Signal, 0, len(templates))

	for _, t := range templates {
		if sig, ok := synthesizeOne(t, corpus, now); ok {
			out = append(out, sig)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Strength > out[j].Strength
	})
	return out
}

func synthesizeOne(t Template, corpus []feeds.NewsItem, now time.Time) (Signal, bool) {
	keywords := foldAll(t.Keywords)

	var matched []feeds.NewsItem
	var relevanceSum float64
	recent := 0
	for _, item := range corpus {
		folded := match.Fold(item.Text())
		if !match.ContainsAny(folded, keywords) {
			continue
		}
		matched = append(matched, item)
		relevanceSum += item.RelevanceScore
		if now.Sub(item.PublishedAt) <= recentWindow {
			recent++
		}
	}

	if len(matched) == 0 {
		return Signal{}, false
	}

	avgRelevance := relevanceSum / float64(len(matched))
	strength := computeStrength(len(matched), avgRelevance, recent)
	if strength < noiseFloor {
		return Signal{}, false
	}

	reps := matched
	if len(reps) > maxRepresentatives {
		reps = reps[:maxRepresentatives]
	}

	return Signal{
		ID:              t.ID,
		Name:            t.Name,
		Description:     t.Description,
		Strength:        strength,
		Direction:       scanDirection(matched),
		Confidence:      confidence(strength),
		AffectedMarkets: t.AffectedMarkets,
		AffectedRegions: regionUnion(reps),
		RelatedNewsIDs:  idsOf(reps),
		NewsCount:       len(matched),
		RecentNewsCount: recent,
		StrengthLabel:   strengthLabel(strength),
	}, true
}

// computeStrength implements
// clamp(matchCount×15, 0, 60) + avgRelevance×5 + recentCount×10,
// rounded and clamped to [0,100].
func computeStrength(matches int, avgRelevance float64, recent int) int {
	base := float64(matches * 15)
	if base > 60 {
		base = 60
	}
	raw := base + avgRelevance*5 + float64(recent*10)
	s := int(math.Round(raw))
	if s > 100 {
		s = 100
	}
	if s < 0 {
		s = 0
	}
	return s
}

// scanDirection scans the combined matched-item text against the intensify
// patterns and then the easing patterns. Both classes are always checked;
// the last class that matched wins, so easing language overrides intensify
// language when both appear. No match at all yields neutral.
func scanDirection(matched []feeds.NewsItem) Direction {
	var b strings.Builder
	for _, item := range matched {
		b.WriteString(item.Text())
		b.WriteByte(' ')
	}
	folded := match.Fold(b.String())

	dir := DirectionNeutral
	if match.ContainsAny(folded, intensifyPatterns) {
		dir = DirectionIncreasing
	}
	if match.ContainsAny(folded, easePatterns) {
		dir = DirectionDecreasing
	}
	return dir
}

// confidence derives from strength: min(strength+10, 95).
func confidence(strength int) int {
	c := strength + 10
	if c > 95 {
		c = 95
	}
	return c
}

func strengthLabel(strength int) string {
	switch {
	case strength >= 70:
		return "strong"
	case strength >= 40:
		return "moderate"
	default:
		return "emerging"
	}
}

// ShouldAlert reports whether the transition from the previous cycle's
// signal (nil if it did not exist) to the current one warrants an alert.
// Pure function; the caller holds whatever history it wants to diff.
func ShouldAlert(prev *Signal, cur Signal) bool {
	if prev == nil {
		return cur.Strength >= 50
	}
	if cur.Strength-prev.Strength >= 15 {
		return true
	}
	return cur.Direction == DirectionIncreasing && prev.Direction != DirectionIncreasing
}

func foldAll(keywords []string) []string {
	out := make([]string, len(keywords))
	for i, kw := range keywords {
		out[i] = strings.ToLower(kw)
	}
	return out
}

func regionUnion(items []feeds.NewsItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		for _, r := range item.Regions {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

func idsOf(items []feeds.NewsItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
