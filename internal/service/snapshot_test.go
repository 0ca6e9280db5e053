package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	candidates, err := Snapshot()
	require.NoError(t, err)
	require.NotEmpty(t, candidates)

	assert.True(t, sort.SliceIsSorted(candidates, func(i, j int) bool {
		return candidates[i].Code < candidates[j].Code
	}))

	codes := make(map[string]bool)
	for _, c := range candidates {
		assert.NotEmpty(t, c.Code)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.DarsName)
		assert.False(t, codes[c.Code], "duplicate code %s", c.Code)
		codes[c.Code] = true
	}
}
