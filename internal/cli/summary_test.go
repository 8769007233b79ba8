package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummary_OverallStats(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &SummaryCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Overall Browsing Summary")
	assert.Contains(t, output, "Total History Entries: 5")
	assert.Contains(t, output, "Unique URLs:           5")
	assert.Contains(t, output, "Date Range:")
	assert.Contains(t, output, "Browser Usage:")
	assert.Contains(t, output, "Chrome: 2 entries (40.0%)")
	assert.Contains(t, output, "Top 10 All-Time Websites:")
	assert.Contains(t, output, "www.youtube.com - 2 visits")
	assert.Contains(t, output, "Most Active Day:")
}

func TestSummary_EmptyStore(t *testing.T) {
	store := setupTestStore(t)

	cmd := &SummaryCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "Total History Entries: 0")
	assert.NotContains(t, output, "Date Range:")
	assert.NotContains(t, output, "Browser Usage:")
}

func TestSummary_JSONOutput(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &SummaryCommand{globals: &GlobalFlags{JSON: true}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, `"total_entries": 5`)
	assert.Contains(t, output, `"unique_urls": 5`)
	assert.Contains(t, output, `"by_browser"`)
	assert.Contains(t, output, `"top_domains"`)
}
