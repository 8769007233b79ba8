package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_ShowsRecentEntries(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ViewCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Recent Browsing History (last 50 entries)")
	assert.Contains(t, output, "Funny Cats")
	assert.Contains(t, output, "https://github.com/golang/go")
	assert.Contains(t, output, "Total entries in database: 5")
}

func TestView_NewestFirst(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ViewCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	// "Funny Cats" is the most recent seed entry and must precede the oldest.
	assert.Less(t, strings.Index(output, "Funny Cats"), strings.Index(output, "sql package"))
}

func TestView_LimitFromPositionalArg(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ViewCommand{globals: &GlobalFlags{}}
	cmd.Args.Limit = 2

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Funny Cats")
	assert.Contains(t, output, "More Cats")
	assert.NotContains(t, output, "Hacker News")
	assert.Contains(t, output, "Total entries in database: 5")
}

func TestView_EmptyStore(t *testing.T) {
	store := setupTestStore(t)

	cmd := &ViewCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Total entries in database: 0")
}

func TestView_JSONOutput(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ViewCommand{globals: &GlobalFlags{JSON: true}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, `"count": 5`)
	assert.Contains(t, output, `"total": 5`)
	assert.Contains(t, output, `"entries"`)
	assert.Contains(t, output, `"https://www.youtube.com/watch?v=abc"`)
}
