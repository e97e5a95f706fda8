// Package pipeline orchestrates one full refresh cycle (gather, score,
// synthesize signals, reweight scenarios, summarize) and retains the last
// complete cycle's result for readers.
//
// Readers never see a half-computed state: Refresh assembles the whole
// report off to the side and swaps it in atomically. If a cycle produces
// nothing (total upstream failure), the previous report keeps serving.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/abelbrown/vantage/internal/cache"
	"github.com/abelbrown/vantage/internal/feeds"
	"github.com/abelbrown/vantage/internal/logging"
	"github.com/abelbrown/vantage/internal/narrative"
	"github.com/abelbrown/vantage/internal/scenario"
	"github.com/abelbrown/vantage/internal/signals"
)

// Gatherer produces the cycle corpus. Satisfied by *ingest.Gatherer;
// an interface here so tests can inject fixed corpora.
type Gatherer interface {
	Gather(ctx context.Context) []feeds.NewsItem
}

// Report is one complete, internally consistent cycle result.
type Report struct {
	ID          string            `json:"id"`
	GeneratedAt time.Time         `json:"generatedAt"`
	Items       []feeds.NewsItem  `json:"items"`
	Signals     []signals.Signal  `json:"signals"`
	Scenarios   []scenario.Result `json:"scenarios"`
	Summary     narrative.Summary `json:"summary"`
}

// Pipeline owns the registries and the current cycle state.
type Pipeline struct {
	gatherer  Gatherer
	templates []signals.Template
	scenarios []scenario.Scenario
	cache     *cache.Cache
	cacheTTL  time.Duration
	now       func() time.Time

	mu          sync.RWMutex
	report      *Report
	prevSignals map[string]signals.Signal
	alerts      []signals.Signal
}

// New validates both registries and returns a ready pipeline. Registry
// defects are fatal here, before any cycle runs.
func New(g Gatherer, templates []signals.Template, scens []scenario.Scenario, c *cache.Cache, cacheTTL time.Duration) (*Pipeline, error) {
	if err := signals.ValidateRegistry(templates); err != nil {
		return nil, fmt.Errorf("signal registry: %w", err)
	}
	if err := scenario.ValidateRegistry(scens); err != nil {
		return nil, fmt.Errorf("scenario registry: %w", err)
	}
	return &Pipeline{
		gatherer:    g,
		templates:   templates,
		scenarios:   scens,
		cache:       c,
		cacheTTL:    cacheTTL,
		now:         time.Now,
		prevSignals: make(map[string]signals.Signal),
	}, nil
}

// Refresh runs one full cycle and swaps in the new report. When the cycle
// yields an empty corpus and a previous report exists, the previous report
// is kept and an error is returned.
func (p *Pipeline) Refresh(ctx context.Context) error {
	start := p.now()
	corpus := p.gatherer.Gather(ctx)
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.RLock()
	hadReport := p.report != nil
	p.mu.RUnlock()

	if len(corpus) == 0 && hadReport {
		logging.Warn("refresh produced empty corpus, keeping previous report")
		return fmt.Errorf("empty corpus, previous report retained")
	}

	sigs := signals.Synthesize(p.templates, corpus, start)
	scens := scenario.Evaluate(p.scenarios, corpus, sigs)
	summary := narrative.Summarize(corpus, sigs)

	report := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: start,
		Items:       corpus,
		Signals:     sigs,
		Scenarios:   scens,
		Summary:     summary,
	}

	p.mu.Lock()
	p.alerts = p.diffAlerts(sigs)
	p.prevSignals = indexSignals(sigs)
	p.report = report
	p.mu.Unlock()

	logging.Info("cycle complete",
		"items", len(corpus),
		"signals", len(sigs),
		"alerts", len(p.alerts),
		"elapsed", p.now().Sub(start))
	return nil
}

// diffAlerts applies the alerting transition against the previous cycle's
// signals. Caller holds the write lock.
func (p *Pipeline) diffAlerts(sigs []signals.Signal) []signals.Signal {
	var alerts []signals.Signal
	for _, s := range sigs {
		var prev *signals.Signal
		if old, ok := p.prevSignals[s.ID]; ok {
			prev = &old
		}
		if signals.ShouldAlert(prev, s) {
			alerts = append(alerts, s)
		}
	}
	return alerts
}

func indexSignals(sigs []signals.Signal) map[string]signals.Signal {
	m := make(map[string]signals.Signal, len(sigs))
	for _, s := range sigs {
		m[s.ID] = s
	}
	return m
}

// Report returns the last complete cycle result, nil before the first
// successful cycle.
func (p *Pipeline) Report() *Report {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.report
}

// Alerts returns the signals whose transition this cycle warranted an
// alert.
func (p *Pipeline) Alerts() []signals.Signal {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]signals.Signal, len(p.alerts))
	copy(out, p.alerts)
	return out
}

// NewsForCity returns the location-filtered view: international items
// unconditionally, regional items whose region matches the city's mapped
// region, and local items whose declared cities include the given city
// (case-insensitive). An empty city returns the full corpus. Served
// through the TTL cache; concurrent misses coalesce.
func (p *Pipeline) NewsForCity(city string) []feeds.NewsItem {
	report := p.Report()
	if report == nil {
		return nil
	}
	if city == "" {
		return report.Items
	}

	key := "news:city:" + strings.ToLower(city)
	v, err := p.cache.GetOrPopulate(key, p.cacheTTL, func() (interface{}, error) {
		return filterByCity(report.Items, city), nil
	})
	if err != nil {
		return nil
	}
	return v.([]feeds.NewsItem)
}

func filterByCity(items []feeds.NewsItem, city string) []feeds.NewsItem {
	lower := strings.ToLower(city)
	region := feeds.CityRegions[lower]

	var out []feeds.NewsItem
	for _, item := range items {
		switch item.Scope {
		case feeds.ScopeInternational:
			out = append(out, item)
		case feeds.ScopeRegional:
			if region != "" && item.Region == region {
				out = append(out, item)
			}
		case feeds.ScopeLocal:
			for _, c := range item.Cities {
				if strings.EqualFold(c, city) {
					out = append(out, item)
					break
				}
			}
		}
	}
	return out
}
