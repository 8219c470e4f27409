package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-tutor/internal/adapter/cache"
	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

type fakeDaily struct {
	slug    string
	problem model.Problem
	err     error
	calls   int
}

func (f *fakeDaily) GetDailyChallenge(context.Context) (string, model.Problem, error) {
	f.calls++
	return f.slug, f.problem, f.err
}

func TestDailyWarmup_PrimesResolver(t *testing.T) {
	lc := newFakeScraper(model.PlatformLeetCode)
	c, err := cache.NewProblemLRU(10)
	require.NoError(t, err)
	resolver := NewProblemResolver(c, nil, nil, []ports.ProblemScraper{lc})

	daily := &fakeDaily{slug: "lru-cache", problem: model.Problem{Title: "LRU Cache", Platform: "LeetCode"}}
	warmup := NewDailyWarmup(daily, resolver, nopLogger{})

	require.NoError(t, warmup.Run(context.Background()))

	for _, raw := range []string{"lru-cache", "https://leetcode.com/problems/lru-cache/"} {
		p, err := resolver.GetProblemData(context.Background(), raw)
		require.NoError(t, err)
		assert.Equal(t, "LRU Cache", p.Title)
	}
	assert.Zero(t, lc.totalCalls())
}

func TestDailyWarmup_Failure(t *testing.T) {
	daily := &fakeDaily{err: errors.New("upstream down")}
	warmup := NewDailyWarmup(daily, NewProblemResolver(mustCache(t), nil, nil, nil), nopLogger{})

	err := warmup.Run(context.Background())
	assert.ErrorIs(t, err, model.ErrNoDataFound)
	assert.Equal(t, 1, daily.calls)
}

func mustCache(t *testing.T) *cache.ProblemLRU {
	t.Helper()
	c, err := cache.NewProblemLRU(10)
	require.NoError(t, err)
	return c
}
