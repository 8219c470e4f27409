package usecase

import (
	"context"
	"errors"
	"fmt"

	"dsa-tutor/internal/domain/identifier"
	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// ProblemResolver maps raw identifiers to problem data through the platform scrapers,
// memoizing successful fetches.
//
// The cache is keyed by the raw identifier, so "two-sum" and
// "https://leetcode.com/problems/two-sum/" are cached separately.
type ProblemResolver struct {
	scrapers map[model.Platform]ports.ProblemScraper
	cache    ports.ProblemCache
	metrics  ports.ResolverMetrics
	logger   ports.Logger
}

var _ ports.ProblemResolver = (*ProblemResolver)(nil)

// NewProblemResolver constructs a resolver owning cache. metrics and logger may be nil.
func NewProblemResolver(
	cache ports.ProblemCache,
	metrics ports.ResolverMetrics,
	logger ports.Logger,
	scrapers []ports.ProblemScraper,
) *ProblemResolver {
	byPlatform := make(map[model.Platform]ports.ProblemScraper, len(scrapers))
	for _, s := range scrapers {
		if s != nil {
			byPlatform[s.Platform()] = s
		}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &ProblemResolver{
		scrapers: byPlatform,
		cache:    cache,
		metrics:  metrics,
		logger:   logger,
	}
}

// GetProblemData returns the problem for raw. It fails with model.ErrUnsupportedPlatform when raw
// matches no platform and with model.ErrNoDataFound when the platform had nothing usable.
// Failures are never cached and never retried.
func (r *ProblemResolver) GetProblemData(ctx context.Context, raw string) (model.Problem, error) {
	if problem, ok := r.cache.Get(raw); ok {
		r.metrics.CacheLookup(true)
		return problem, nil
	}
	r.metrics.CacheLookup(false)

	resolved, ok := identifier.Resolve(raw)
	if !ok {
		return model.Problem{}, model.ErrUnsupportedPlatform
	}

	scraper, ok := r.scrapers[resolved.Platform]
	if !ok {
		return model.Problem{}, model.ErrUnsupportedPlatform
	}

	problem, err := scraper.Fetch(ctx, resolved.CanonicalID)
	if err != nil {
		outcome := ports.OutcomeScrapeFailure
		if errors.Is(err, model.ErrProblemNotFound) {
			outcome = ports.OutcomeNotFound
		}
		r.metrics.ScrapeOutcome(resolved.Platform, outcome)
		r.warn(ctx, "problem fetch failed",
			"identifier", raw,
			"platform", resolved.Platform.Key(),
			"canonical_id", resolved.CanonicalID,
			"outcome", outcome,
			"error", err)
		return model.Problem{}, fmt.Errorf("%w for %s on %s: %w", model.ErrNoDataFound, raw, resolved.Platform.Key(), err)
	}

	r.metrics.ScrapeOutcome(resolved.Platform, ports.OutcomeOK)
	r.cache.Add(raw, problem)
	return problem, nil
}

// Prime stores an already fetched problem under raw.
func (r *ProblemResolver) Prime(raw string, problem model.Problem) {
	r.cache.Add(raw, problem)
}

func (r *ProblemResolver) warn(ctx context.Context, msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(ctx, msg, args...)
	}
}

type noopMetrics struct{}

func (noopMetrics) CacheLookup(bool)                     {}
func (noopMetrics) ScrapeOutcome(model.Platform, string) {}
