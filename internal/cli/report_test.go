package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport_TodayRollup(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ReportCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	// seedVisits goes through SaveVisits, so the daily rollup is dated today.
	assert.Contains(t, output, "Daily Browsing Report")
	assert.Contains(t, output, "Top Sites Visited Today:")
	assert.Contains(t, output, "www.youtube.com - 2 visits [Chrome]")
	assert.Contains(t, output, "Browser Usage Today:")
	assert.Contains(t, output, "Chrome: 2 visits")
	assert.Contains(t, output, "Firefox: 2 visits")
	assert.Contains(t, output, "Brave: 1 visits")
}

func TestReport_EmptyStore(t *testing.T) {
	store := setupTestStore(t)

	cmd := &ReportCommand{globals: &GlobalFlags{}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, "No browsing activity recorded today")
}

func TestReport_JSONOutput(t *testing.T) {
	store := setupTestStore(t)
	seedVisits(t, store)

	cmd := &ReportCommand{globals: &GlobalFlags{JSON: true}}

	output := captureOutput(t, func() {
		require.NoError(t, cmd.executeWithStore(store))
	})

	assert.Contains(t, output, `"date"`)
	assert.Contains(t, output, `"top_sites"`)
	assert.Contains(t, output, `"by_browser"`)
	assert.Contains(t, output, `"www.youtube.com"`)
}
