package ports

import "dsa-tutor/internal/domain/model"

// Scrape outcomes recorded by ResolverMetrics.
const (
	OutcomeOK            = "ok"
	OutcomeNotFound      = "not_found"
	OutcomeScrapeFailure = "scrape_failure"
)

// ResolverMetrics records problem resolution activity.
type ResolverMetrics interface {
	CacheLookup(hit bool)
	ScrapeOutcome(platform model.Platform, outcome string)
}
