package handlers

import (
	"testing"

	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteMonitoringStopStartRoundTrip(t *testing.T) {
	monitors := []models.Monitor{
		{Monitoring: true, Status: types.StatusUp},
		{Monitoring: true, Status: types.StatusDown},
		{Monitoring: false, Status: types.StatusPaused}, // stopped at monitor scope
	}

	applySiteStop(monitors)

	for i := range monitors {
		assert.Equal(t, types.StatusPaused, monitors[i].Status)
	}

	// Site-wide stop must not flip each monitor's own flag.
	assert.True(t, monitors[0].Monitoring)
	assert.True(t, monitors[1].Monitoring)
	assert.False(t, monitors[2].Monitoring)

	resumed := applySiteStart(monitors)

	require.Equal(t, []int{0, 1}, resumed)
	assert.Equal(t, types.StatusPending, monitors[0].Status)
	assert.Equal(t, types.StatusPending, monitors[1].Status)
	assert.Equal(t, types.StatusPaused, monitors[2].Status)
}

func TestApplySiteStartEmpty(t *testing.T) {
	assert.Empty(t, applySiteStart(nil))
}
