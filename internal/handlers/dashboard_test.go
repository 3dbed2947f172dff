package handlers

import (
	"testing"
	"time"

	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDashboard(t *testing.T) {
	t.Run("single site with one up monitor", func(t *testing.T) {
		sites := []models.Site{
			{
				Identifier: "prod",
				Name:       "Production",
				Monitoring: true,
				Monitors:   []models.Monitor{{Status: types.StatusUp}},
			},
		}

		response := aggregateDashboard(sites)

		assert.Equal(t, int64(1), response.TotalSites)
		assert.Equal(t, int64(1), response.TotalMonitors)
		assert.Equal(t, int64(1), response.MonitorsUp)
		assert.Zero(t, response.MonitorsDown)
		assert.Equal(t, 100, response.UptimePercentage)
	})

	t.Run("mixed fleet", func(t *testing.T) {
		sites := []models.Site{
			{
				Identifier: "prod",
				Monitoring: true,
				Monitors: []models.Monitor{
					{Status: types.StatusUp},
					{Status: types.StatusUp},
					{Status: types.StatusDown},
				},
			},
			{
				Identifier: "staging",
				Monitoring: false,
				Monitors: []models.Monitor{
					{Status: types.StatusPaused},
					{Status: types.StatusPending},
				},
			},
		}

		response := aggregateDashboard(sites)

		assert.Equal(t, int64(2), response.TotalSites)
		assert.Equal(t, int64(5), response.TotalMonitors)
		assert.Equal(t, int64(2), response.MonitorsUp)
		assert.Equal(t, int64(1), response.MonitorsDown)
		assert.Equal(t, 67, response.UptimePercentage)

		require.Len(t, response.Sites, 2)
		assert.Equal(t, int64(3), response.Sites[0].MonitorsTotal)
		assert.Equal(t, int64(1), response.Sites[0].MonitorsDown)
		assert.Equal(t, int64(2), response.Sites[1].MonitorsTotal)
		assert.Zero(t, response.Sites[1].MonitorsDown)
	})

	t.Run("no sites", func(t *testing.T) {
		response := aggregateDashboard(nil)

		assert.Zero(t, response.TotalSites)
		assert.Zero(t, response.TotalMonitors)
		assert.Zero(t, response.UptimePercentage)
		assert.Empty(t, response.Sites)
	})
}

func TestSiteDashboardOverview(t *testing.T) {
	started := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	resolved := started.Add(5 * time.Minute)

	site := models.Site{
		Identifier: "prod",
		Name:       "Production",
		Monitoring: true,
		Monitors: []models.Monitor{
			{Status: types.StatusUp},
			{Status: types.StatusDown},
			{Status: types.StatusPaused},
			{Status: types.StatusPending},
		},
	}

	incidents := []models.Incident{
		{
			Monitor:    models.Monitor{UUID: "mon-1"},
			Title:      "Monitor mon-1 is down",
			Status:     "resolved",
			StartedAt:  &started,
			ResolvedAt: &resolved,
		},
		{
			Monitor:   models.Monitor{UUID: "mon-2"},
			Title:     "Monitor mon-2 is down",
			Status:    "open",
			StartedAt: &resolved,
		},
	}

	response := siteDashboardOverview(site, 95, 5, incidents)

	assert.Equal(t, "prod", response.Site.Identifier)
	assert.Equal(t, MonitorsSummary{Total: 4, Up: 1, Down: 1, Pending: 1, Paused: 1}, response.MonitorsSummary)
	assert.InDelta(t, 95.0, response.UptimePercentage, 0.001)

	// MTTR covers resolved incidents only.
	assert.Equal(t, (5 * time.Minute).Seconds(), response.MTTRSeconds)

	require.Len(t, response.RecentIncidents, 2)
	assert.Equal(t, "mon-1", response.RecentIncidents[0].MonitorID)
	assert.Equal(t, started, response.RecentIncidents[0].StartedAt)
	assert.Equal(t, "open", response.RecentIncidents[1].Status)
	assert.Nil(t, response.RecentIncidents[1].ResolvedAt)
}

func TestSiteDashboardOverviewNoChecks(t *testing.T) {
	site := models.Site{Identifier: "fresh", Monitors: []models.Monitor{{Status: types.StatusPending}}}

	response := siteDashboardOverview(site, 0, 0, nil)

	assert.Zero(t, response.UptimePercentage)
	assert.Zero(t, response.MTTRSeconds)
	assert.Empty(t, response.RecentIncidents)
}
