package ports

import (
	"context"

	"dsa-tutor/internal/domain/model"
)

// ProblemScraper fetches a problem from one platform by its canonical id.
//
// Implementations return model.ErrProblemNotFound when the platform has no such problem and a
// *model.ScrapeError for every other failure. No other error kinds are returned.
type ProblemScraper interface {
	Platform() model.Platform
	Fetch(ctx context.Context, canonicalID string) (model.Problem, error)
}

// DailyProblemProvider returns the platform's problem of the day and the identifier it is known by.
type DailyProblemProvider interface {
	GetDailyChallenge(ctx context.Context) (identifier string, problem model.Problem, err error)
}

// ProblemResolver turns any supported raw identifier into problem data.
type ProblemResolver interface {
	GetProblemData(ctx context.Context, raw string) (model.Problem, error)
}

// ProblemCache memoizes successfully resolved problems keyed by raw identifier.
type ProblemCache interface {
	Get(key string) (model.Problem, bool)
	Add(key string, problem model.Problem)
}
