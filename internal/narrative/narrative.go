// Package narrative buckets the corpus into named themes and composes the
// cycle's situation summary from the top themes, active signals, and
// scenario state.
package narrative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/match"
	"github.com/abelbrown/vantage/internal/signals"
)

// Theme is one clustering predicate: an item matches when every AllOf
// keyword is present and, if AnyOf is non-empty, at least one of those too.
type Theme struct {
	ID    string
	Name  string
	AllOf []string
	AnyOf []string
}

// Themes is the fixed, ordered predicate list. An item lands in the first
// matching theme only; the catch-all "other" bucket collects the rest.
var Themes = []Theme{
	{ID: "conflict", Name: "Conflict Escalation", AnyOf: []string{"war", "invasion", "airstrike", "missile", "offensive", "troops", "shelling"}},
	{ID: "energy", Name: "Energy & Commodities", AnyOf: []string{"oil", "gas", "opec", "pipeline", "crude", "refinery", "lng", "wheat", "copper"}},
	{ID: "trade", Name: "Trade & Tariffs", AnyOf: []string{"tariff", "export controls", "trade war", "import ban", "sanctions", "embargo"}},
	{ID: "monetary", Name: "Central Banks & Rates", AnyOf: []string{"rate hike", "rate cut", "central bank", "fed", "ecb", "inflation"}},
	{ID: "diplomacy", Name: "Diplomacy & De-escalation", AnyOf: []string{"ceasefire", "peace talks", "summit", "truce", "negotiate", "treaty"}},
	{ID: "technology", Name: "Technology & Chips", AnyOf: []string{"semiconductor", "chip", "foundry", "cyberattack", "ai "}},
	{ID: "politics", Name: "Elections & Politics", AnyOf: []string{"election", "coup", "protest", "parliament", "impeach"}},
}

// OtherThemeID labels the catch-all bucket.
const OtherThemeID = "other"

// KeyDevelopment is one distilled top-theme entry in the report.
type KeyDevelopment struct {
	Theme     string  `json:"theme"`
	Headline  string  `json:"headline"`
	ItemCount int     `json:"itemCount"`
	Source    string  `json:"source"`
	Relevance float64 `json:"relevance"`
}

// Summary is the synthesized situation report.
type Summary struct {
	KeyDevelopments []KeyDevelopment `json:"keyDevelopments"`
	Narrative       string           `json:"narrative"`
	Confidence      string           `json:"confidence"`
	Uncertainty     string           `json:"uncertainty"`
}

// Cluster places each item into the first theme whose predicate matches,
// or the catch-all bucket. Placement is mutually exclusive; no item appears
// in two buckets.
func Cluster(corpus []feeds.NewsItem) map[string][]feeds.NewsItem {
	buckets := make(map[string][]feeds.NewsItem)
	for _, item := range corpus {
		id := themeFor(match.Fold(item.Text()))
		buckets[id] = append(buckets[id], item)
	}
	return buckets
}

func themeFor(folded string) string {
	for _, t := range Themes {
		if matchesTheme(folded, t) {
			return t.ID
		}
	}
	return OtherThemeID
}

func matchesTheme(folded string, t Theme) bool {
	for _, kw := range t.AllOf {
		if !strings.Contains(folded, kw) {
			return false
		}
	}
	if len(t.AnyOf) == 0 {
		return len(t.AllOf) > 0
	}
	return match.ContainsAny(folded, t.AnyOf)
}

// lowInformationNarrative is used when no theme matched any item.
const lowInformationNarrative = "Information flow is light; no dominant geopolitical theme is visible in the current cycle."

// Summarize ranks themes by item count and composes the report. Confidence
// and uncertainty derive from the corpus's confirmed/early classification
// counts.
func Summarize(corpus []feeds.NewsItem, active []signals.Signal) Summary {
	buckets := Cluster(corpus)

	type ranked struct {
		theme Theme
		items []feeds.NewsItem
	}
	var order []ranked
	for _, t := range Themes {
		if items := buckets[t.ID]; len(items) > 0 {
			order = append(order, ranked{t, items})
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return len(order[i].items) > len(order[j].items)
	})

	s := Summary{
		Confidence:  confidenceLabel(corpus),
		Uncertainty: uncertaintyLabel(corpus),
	}

	if len(order) == 0 {
		s.Narrative = lowInformationNarrative
		s.KeyDevelopments = []KeyDevelopment{}
		return s
	}

	top := order
	if len(top) > 3 {
		top = top[:3]
	}
	for _, r := range top {
		first := r.items[0]
		s.KeyDevelopments = append(s.KeyDevelopments, KeyDevelopment{
			Theme:     r.theme.Name,
			Headline:  first.Title,
			ItemCount: len(r.items),
			Source:    first.Source,
			Relevance: first.RelevanceScore,
		})
	}

	var secondary []string
	for _, r := range order[1:] {
		secondary = append(secondary, r.theme.Name)
		if len(secondary) == 2 {
			break
		}
	}

	s.Narrative = composeNarrative(order[0].theme, len(order[0].items), active, secondary)
	return s
}

func composeNarrative(lead Theme, leadCount int, active []signals.Signal, secondary []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s dominates the cycle with %d items.", lead.Name, leadCount)

	var strong []string
	for _, sig := range active {
		if sig.Strength >= 50 {
			strong = append(strong, sig.Name)
		}
	}
	if len(strong) > 0 {
		fmt.Fprintf(&b, " Active signals: %s.", strings.Join(strong, ", "))
	}

	if len(secondary) > 0 {
		fmt.Fprintf(&b, " Also developing: %s.", strings.Join(secondary, " and "))
	}
	return b.String()
}

// confidenceLabel: more confirmed than early classifications across the
// corpus reads as moderate-high confidence.
func confidenceLabel(corpus []feeds.NewsItem) string {
	confirmed, early := strengthCounts(corpus)
	if confirmed > early {
		return "moderate-high"
	}
	return "moderate"
}

// uncertaintyLabel: more than 10 early-classified items reads as elevated.
func uncertaintyLabel(corpus []feeds.NewsItem) string {
	_, early := strengthCounts(corpus)
	if early > 10 {
		return "elevated"
	}
	return "normal"
}

func strengthCounts(corpus []feeds.NewsItem) (confirmed, early int) {
	for _, item := range corpus {
		switch item.SignalStrength {
		case feeds.StrengthConfirmed:
			confirmed++
		case feeds.StrengthEarly:
			early++
		}
	}
	return confirmed, early
}
