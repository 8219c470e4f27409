package cache

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dsa-tutor/internal/domain/model"
)

func TestProblemLRU_EntriesDoNotShareSlices(t *testing.T) {
	c, err := NewProblemLRU(2)
	require.NoError(t, err)

	stored := model.Problem{Tags: []string{"Array"}, Hints: []string{"Use a map"}}
	c.Add("two-sum", stored)
	stored.Tags[0] = "changed by producer"

	first, ok := c.Get("two-sum")
	require.True(t, ok)
	first.Tags[0] = "MUTATED"
	first.Hints[0] = "MUTATED"

	second, ok := c.Get("two-sum")
	require.True(t, ok)
	assert.Equal(t, []string{"Array"}, second.Tags)
	assert.Equal(t, []string{"Use a map"}, second.Hints)

	c.Add("no-hints", model.Problem{Tags: []string{"Codeforces"}})
	got, ok := c.Get("no-hints")
	require.True(t, ok)
	assert.Nil(t, got.Hints)
}

func TestProblemLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c, err := NewProblemLRU(2)
	require.NoError(t, err)

	c.Add("a", model.Problem{Title: "A"})
	c.Add("b", model.Problem{Title: "B"})

	// Touch "a" so "b" becomes the eviction candidate.
	got, ok := c.Get("a")
	require.True(t, ok)
	assert.Equal(t, "A", got.Title)

	c.Add("c", model.Problem{Title: "C"})

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestProblemLRU_DefaultSize(t *testing.T) {
	c, err := NewProblemLRU(0)
	require.NoError(t, err)

	for i := 0; i < DefaultSize+1; i++ {
		c.Add(fmt.Sprintf("p-%d", i), model.Problem{})
	}
	assert.Equal(t, DefaultSize, c.Len())
	_, ok := c.Get("p-0")
	assert.False(t, ok)
}
