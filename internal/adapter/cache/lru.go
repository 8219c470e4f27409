package cache

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"dsa-tutor/internal/domain/model"
	"dsa-tutor/internal/domain/ports"
)

// DefaultSize is the number of problems kept when no size is configured.
const DefaultSize = 100

// ProblemLRU is a fixed-size, least-recently-used problem cache safe for concurrent use.
type ProblemLRU struct {
	entries *lru.Cache[string, model.Problem]
}

var _ ports.ProblemCache = (*ProblemLRU)(nil)

// NewProblemLRU builds a cache holding at most size problems.
func NewProblemLRU(size int) (*ProblemLRU, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, model.Problem](size)
	if err != nil {
		return nil, fmt.Errorf("create lru cache: %w", err)
	}
	return &ProblemLRU{entries: entries}, nil
}

// Get returns the cached problem and marks it most recently used.
func (c *ProblemLRU) Get(key string) (model.Problem, bool) {
	problem, ok := c.entries.Get(key)
	if !ok {
		return model.Problem{}, false
	}
	return detach(problem), true
}

// Add stores problem under key, evicting the least recently used entry when full.
func (c *ProblemLRU) Add(key string, problem model.Problem) {
	c.entries.Add(key, detach(problem))
}

// Len reports how many problems are cached.
func (c *ProblemLRU) Len() int {
	return c.entries.Len()
}

// detach copies the slice fields so callers never share backing arrays with a cached entry.
func detach(p model.Problem) model.Problem {
	p.Tags = slices.Clone(p.Tags)
	p.Hints = slices.Clone(p.Hints)
	return p
}
