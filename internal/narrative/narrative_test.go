package narrative

import (
	"strings"
	"testing"

	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/signals"
)

func item(title string) feeds.NewsItem {
	return feeds.NewsItem{Title: title, Source: "Test Wire", RelevanceScore: 5}
}

func TestClusterMutuallyExclusive(t *testing.T) {
	// Matches both "conflict" (war) and "trade" (tariff); must land only in
	// the first declared theme.
	corpus := []feeds.NewsItem{item("Trade war fears as new tariff package lands")}
	buckets := Cluster(corpus)

	total := 0
	for _, items := range buckets {
		total += len(items)
	}
	if total != 1 {
		t.Fatalf("item placed %d times, want 1", total)
	}
	if len(buckets["conflict"]) != 1 {
		t.Errorf("item should land in first matching theme, buckets = %v", keys(buckets))
	}
}

func TestClusterCatchAll(t *testing.T) {
	buckets := Cluster([]feeds.NewsItem{item("Local bakery unveils seasonal menu")})
	if len(buckets[OtherThemeID]) != 1 {
		t.Errorf("non-matching item should land in %q, buckets = %v", OtherThemeID, keys(buckets))
	}
}

func TestSummarizeRanksByCount(t *testing.T) {
	corpus := []feeds.NewsItem{
		item("Missile strikes reported near the border"),
		item("Troops mass along contested frontier"),
		item("OPEC weighs oil output cut"),
	}
	s := Summarize(corpus, nil)

	if len(s.KeyDevelopments) != 2 {
		t.Fatalf("key developments = %d, want 2", len(s.KeyDevelopments))
	}
	if s.KeyDevelopments[0].Theme != "Conflict Escalation" {
		t.Errorf("top theme = %q, want Conflict Escalation", s.KeyDevelopments[0].Theme)
	}
	if s.KeyDevelopments[0].ItemCount != 2 {
		t.Errorf("top theme item count = %d, want 2", s.KeyDevelopments[0].ItemCount)
	}
	if s.KeyDevelopments[0].Headline != "Missile strikes reported near the border" {
		t.Errorf("headline should be first item of top bucket, got %q", s.KeyDevelopments[0].Headline)
	}
	if !strings.Contains(s.Narrative, "Conflict Escalation dominates") {
		t.Errorf("narrative missing lead theme: %q", s.Narrative)
	}
	if !strings.Contains(s.Narrative, "Energy & Commodities") {
		t.Errorf("narrative missing secondary theme: %q", s.Narrative)
	}
}

func TestSummarizeCapsKeyDevelopmentsAtThree(t *testing.T) {
	corpus := []feeds.NewsItem{
		item("War widens"),
		item("Oil surges"),
		item("Tariff announced"),
		item("Fed signals rate cut"),
	}
	s := Summarize(corpus, nil)
	if len(s.KeyDevelopments) != 3 {
		t.Errorf("key developments = %d, want 3", len(s.KeyDevelopments))
	}
}

func TestSummarizeEmptyCorpus(t *testing.T) {
	s := Summarize(nil, nil)
	if s.Narrative != lowInformationNarrative {
		t.Errorf("narrative = %q, want low-information fallback", s.Narrative)
	}
	if s.KeyDevelopments == nil || len(s.KeyDevelopments) != 0 {
		t.Error("key developments should be empty, non-nil")
	}
	if s.Confidence != "moderate" || s.Uncertainty != "normal" {
		t.Errorf("labels = %q/%q, want moderate/normal", s.Confidence, s.Uncertainty)
	}
}

func TestSummarizeIncludesStrongSignals(t *testing.T) {
	corpus := []feeds.NewsItem{item("Pipeline sabotage suspected")}
	active := []signals.Signal{
		{Name: "Energy Supply Shock", Strength: 72},
		{Name: "Background Noise", Strength: 30},
	}
	s := Summarize(corpus, active)
	if !strings.Contains(s.Narrative, "Energy Supply Shock") {
		t.Errorf("narrative should name strong signals: %q", s.Narrative)
	}
	if strings.Contains(s.Narrative, "Background Noise") {
		t.Errorf("narrative should omit sub-50 signals: %q", s.Narrative)
	}
}

func TestConfidenceAndUncertaintyLabels(t *testing.T) {
	confirmed := feeds.NewsItem{SignalStrength: feeds.StrengthConfirmed}
	early := feeds.NewsItem{SignalStrength: feeds.StrengthEarly}

	if got := confidenceLabel([]feeds.NewsItem{confirmed, confirmed, early}); got != "moderate-high" {
		t.Errorf("confidence = %q, want moderate-high", got)
	}
	if got := confidenceLabel([]feeds.NewsItem{confirmed, early}); got != "moderate" {
		t.Errorf("equal counts: confidence = %q, want moderate", got)
	}

	many := make([]feeds.NewsItem, 11)
	for i := range many {
		many[i] = early
	}
	if got := uncertaintyLabel(many); got != "elevated" {
		t.Errorf("uncertainty = %q, want elevated", got)
	}
	if got := uncertaintyLabel(many[:10]); got != "normal" {
		t.Errorf("exactly 10 early: uncertainty = %q, want normal", got)
	}
}

func keys(m map[string][]feeds.NewsItem) []string {
	var out []string
	for k := range m {
		out = append(out, k)
	}
	return out
}
