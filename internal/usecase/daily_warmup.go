package usecase

import (
	"context"
	"fmt"
	"time"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// ProblemPrimer accepts already fetched problems into the resolver cache.
type ProblemPrimer interface {
	Prime(raw string, problem model.Problem)
}

// DailyWarmup fetches the LeetCode problem of the day and primes the resolver cache with it,
// so the most requested problem of the day is served without an upstream call.
type DailyWarmup struct {
	daily  ports.DailyProblemProvider
	primer ProblemPrimer
	logger ports.Logger
}

// NewDailyWarmup constructs a DailyWarmup use case.
func NewDailyWarmup(daily ports.DailyProblemProvider, primer ProblemPrimer, logger ports.Logger) *DailyWarmup {
	return &DailyWarmup{
		daily:  daily,
		primer: primer,
		logger: logger,
	}
}

// Today returns the daily challenge and primes the cache under its slug and problem URL.
func (d *DailyWarmup) Today(ctx context.Context) (string, model.Problem, error) {
	slug, problem, err := d.daily.GetDailyChallenge(ctx)
	if err != nil {
		return "", model.Problem{}, fmt.Errorf("%w for daily challenge: %w", model.ErrNoDataFound, err)
	}

	d.primer.Prime(slug, problem)
	d.primer.Prime(fmt.Sprintf("https://leetcode.com/problems/%s/", slug), problem)
	return slug, problem, nil
}

// Run executes one warm-up; it is the scheduled job.
func (d *DailyWarmup) Run(ctx context.Context) error {
	start := time.Now()
	d.logger.Info(ctx, "starting daily warm-up")

	slug, _, err := d.Today(ctx)
	if err != nil {
		d.logger.Error(ctx, "failed to fetch daily challenge", "error", err)
		return err
	}

	d.logger.Info(ctx, "daily warm-up completed", "slug", slug, "duration", time.Since(start))
	return nil
}
