package analytics

import (
	"testing"
	"time"

	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestUptimePercent(t *testing.T) {
	tests := []struct {
		name string
		up   int
		down int
		want int
	}{
		{"no checks reports zero", 0, 0, 0},
		{"all up", 10, 0, 100},
		{"all down", 0, 10, 0},
		{"95 of 100", 95, 5, 95},
		{"rounds up", 2, 1, 67},
		{"rounds half away from zero", 1, 7, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UptimePercent(tt.up, tt.down))
		})
	}
}

func TestUptimeRatio(t *testing.T) {
	assert.Zero(t, UptimeRatio(0, 0))
	assert.InDelta(t, 66.666, UptimeRatio(2, 1), 0.001)
	assert.Equal(t, 100.0, UptimeRatio(5, 0))
}

func TestPercentile(t *testing.T) {
	values := []int{120, 30, 250, 90, 60, 45, 300, 75, 180, 15}

	assert.Equal(t, 75, Percentile(values, 50))
	assert.Equal(t, 300, Percentile(values, 95))
	assert.Equal(t, 300, Percentile(values, 99))
	assert.Equal(t, 15, Percentile(values, 0))
	assert.Equal(t, 300, Percentile(values, 100))
	assert.Equal(t, 0, Percentile(nil, 50))

	// Input order must be preserved.
	assert.Equal(t, []int{120, 30, 250, 90, 60, 45, 300, 75, 180, 15}, values)
}

func TestSummarizeHistory(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		summary := SummarizeHistory(nil)

		assert.Zero(t, summary.TotalChecks)
		assert.Zero(t, summary.UptimePercentage)
		assert.Zero(t, summary.MinResponseTime)
	})

	t.Run("mixed history", func(t *testing.T) {
		checks := []models.MonitorCheck{
			{Status: "up", ResponseTime: 100},
			{Status: "up", ResponseTime: 200},
			{Status: "up", ResponseTime: 300},
			{Status: "down", ResponseTime: 0},
		}

		summary := SummarizeHistory(checks)

		assert.Equal(t, 4, summary.TotalChecks)
		assert.Equal(t, 3, summary.UpChecks)
		assert.Equal(t, 1, summary.DownChecks)
		assert.Equal(t, 75.0, summary.UptimePercentage)
		assert.Equal(t, 150.0, summary.AvgResponseTime)
		assert.Equal(t, 0, summary.MinResponseTime)
		assert.Equal(t, 300, summary.MaxResponseTime)
		assert.Equal(t, 100, summary.P50ResponseTime)
	})
}

func TestMeanTimeToRecovery(t *testing.T) {
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	at := func(offset time.Duration) *time.Time {
		ts := base.Add(offset)
		return &ts
	}

	t.Run("no resolved incidents", func(t *testing.T) {
		incidents := []models.Incident{
			{StartedAt: at(0)},
			{},
		}

		assert.Zero(t, MeanTimeToRecovery(incidents))
	})

	t.Run("averages resolved incidents only", func(t *testing.T) {
		incidents := []models.Incident{
			{StartedAt: at(0), ResolvedAt: at(10 * time.Minute)},
			{StartedAt: at(time.Hour), ResolvedAt: at(time.Hour + 30*time.Minute)},
			{StartedAt: at(2 * time.Hour)}, // still open, excluded
		}

		assert.Equal(t, 20*time.Minute, MeanTimeToRecovery(incidents))
	})
}
