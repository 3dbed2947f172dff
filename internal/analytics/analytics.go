// Package analytics computes uptime and latency aggregates from monitor
// history. The pure functions here operate on in-memory slices so they
// are testable without a database; queries.go holds the gorm-backed
// window aggregates.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// UptimePercent returns the uptime percentage rounded to the nearest
// integer. A total of zero checks reports 0 rather than NaN.
func UptimePercent(upCount, downCount int) int {
	total := upCount + downCount

	if total == 0 {
		return 0
	}

	return int(math.Round(float64(upCount) / float64(total) * 100))
}

// UptimeRatio is the unrounded uptime percentage for the same counts.
func UptimeRatio(upCount, downCount int) float64 {
	total := upCount + downCount

	if total == 0 {
		return 0
	}

	return float64(upCount) / float64(total) * 100
}

// HistorySummary aggregates a monitor's check history.
type HistorySummary struct {
	TotalChecks      int     `json:"total_checks"`
	UpChecks         int     `json:"up_checks"`
	DownChecks       int     `json:"down_checks"`
	UptimePercentage float64 `json:"uptime_percentage"`
	AvgResponseTime  float64 `json:"avg_response_time"`
	MinResponseTime  int     `json:"min_response_time"`
	MaxResponseTime  int     `json:"max_response_time"`
	P50ResponseTime  int     `json:"p50_response_time"`
	P95ResponseTime  int     `json:"p95_response_time"`
	P99ResponseTime  int     `json:"p99_response_time"`
}

// SummarizeHistory computes the aggregate view of a check history slice.
func SummarizeHistory(checks []models.MonitorCheck) HistorySummary {
	var summary HistorySummary

	summary.TotalChecks = len(checks)

	if len(checks) == 0 {
		return summary
	}

	responseTimes := make([]int, 0, len(checks))
	var totalResponse int64

	summary.MinResponseTime = math.MaxInt

	for _, check := range checks {
		if check.Status == types.StatusUp {
			summary.UpChecks++
		} else {
			summary.DownChecks++
		}

		responseTimes = append(responseTimes, check.ResponseTime)
		totalResponse += int64(check.ResponseTime)

		if check.ResponseTime < summary.MinResponseTime {
			summary.MinResponseTime = check.ResponseTime
		}

		if check.ResponseTime > summary.MaxResponseTime {
			summary.MaxResponseTime = check.ResponseTime
		}
	}

	summary.UptimePercentage = UptimeRatio(summary.UpChecks, summary.DownChecks)
	summary.AvgResponseTime = float64(totalResponse) / float64(len(checks))
	summary.P50ResponseTime = Percentile(responseTimes, 50)
	summary.P95ResponseTime = Percentile(responseTimes, 95)
	summary.P99ResponseTime = Percentile(responseTimes, 99)

	return summary
}

// Percentile returns the nearest-rank percentile of the given response
// times. The input slice is not modified.
func Percentile(values []int, p float64) int {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	if p <= 0 {
		return sorted[0]
	}

	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := int(math.Ceil(p / 100 * float64(len(sorted))))

	if rank < 1 {
		rank = 1
	}

	return sorted[rank-1]
}

// MeanTimeToRecovery averages the durations of resolved incidents.
// Unresolved incidents are excluded; zero resolved incidents yield zero.
func MeanTimeToRecovery(incidents []models.Incident) time.Duration {
	var total time.Duration
	var resolved int

	for i := range incidents {
		if incidents[i].ResolvedAt == nil || incidents[i].StartedAt == nil {
			continue
		}

		total += incidents[i].Duration()
		resolved++
	}

	if resolved == 0 {
		return 0
	}

	return total / time.Duration(resolved)
}
