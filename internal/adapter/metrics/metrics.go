// Package metrics exposes Prometheus collectors for problem resolution.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

const namespace = "tutor"

// Resolver counts cache lookups and scrape outcomes.
type Resolver struct {
	cacheLookups   *prometheus.CounterVec
	scrapeOutcomes *prometheus.CounterVec
}

var _ ports.ResolverMetrics = (*Resolver)(nil)

// NewResolver registers the resolver collectors on reg.
func NewResolver(reg prometheus.Registerer) (*Resolver, error) {
	m := &Resolver{
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "problem_cache",
			Name:      "lookups_total",
			Help:      "Problem cache lookups by result.",
		}, []string{"result"}),
		scrapeOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "scraper",
			Name:      "fetches_total",
			Help:      "Upstream problem fetches by platform and outcome.",
		}, []string{"platform", "outcome"}),
	}

	for _, c := range []prometheus.Collector{m.cacheLookups, m.scrapeOutcomes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// CacheLookup records a cache hit or miss.
func (m *Resolver) CacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.WithLabelValues(result).Inc()
}

// ScrapeOutcome records the result of one upstream fetch.
func (m *Resolver) ScrapeOutcome(platform model.Platform, outcome string) {
	m.scrapeOutcomes.WithLabelValues(platform.Key(), outcome).Inc()
}
