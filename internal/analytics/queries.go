package analytics

import (
	"database/sql"
	"time"

	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// DefaultWindow is the lookback used by the dashboard aggregates.
const DefaultWindow = 24 * time.Hour

// UptimeForMonitor computes a monitor's uptime percentage over the
// window. No checks in the window counts as fully up, matching the
// dashboard's treatment of freshly created monitors.
func UptimeForMonitor(monitorID uint, window time.Duration) float64 {
	var total, up int64
	since := time.Now().Add(-window)

	db.DB.Model(&models.MonitorCheck{}).
		Where("monitor_id = ? AND checked_at > ?", monitorID, since).
		Count(&total)

	db.DB.Model(&models.MonitorCheck{}).
		Where("monitor_id = ? AND status = ? AND checked_at > ?", monitorID, types.StatusUp, since).
		Count(&up)

	if total == 0 {
		return 100.0
	}

	return float64(up) / float64(total) * 100
}

// AvgResponseTimeForMonitor averages successful response times over the
// window, in milliseconds.
func AvgResponseTimeForMonitor(monitorID uint, window time.Duration) float64 {
	var avg sql.NullFloat64
	since := time.Now().Add(-window)

	db.DB.Model(&models.MonitorCheck{}).
		Select("AVG(response_time)").
		Where("monitor_id = ? AND status = ? AND checked_at > ?", monitorID, types.StatusUp, since).
		Scan(&avg)

	if avg.Valid {
		return avg.Float64
	}

	return 0
}

// CheckCountsForMonitor returns up/down check counts over the window.
func CheckCountsForMonitor(monitorID uint, window time.Duration) (up, down int64) {
	since := time.Now().Add(-window)

	db.DB.Model(&models.MonitorCheck{}).
		Where("monitor_id = ? AND status = ? AND checked_at > ?", monitorID, types.StatusUp, since).
		Count(&up)

	db.DB.Model(&models.MonitorCheck{}).
		Where("monitor_id = ? AND status = ? AND checked_at > ?", monitorID, types.StatusDown, since).
		Count(&down)

	return up, down
}

// RecentIncidentsForSite lists a site's incidents from the last seven
// days, newest first.
func RecentIncidentsForSite(siteID uint, limit int) []models.Incident {
	var incidents []models.Incident

	db.DB.Joins("JOIN monitors ON monitors.id = incidents.monitor_id").
		Where("monitors.site_id = ? AND incidents.created_at > ?", siteID, time.Now().Add(-7*24*time.Hour)).
		Order("incidents.created_at DESC").
		Limit(limit).
		Preload("Monitor").
		Find(&incidents)

	return incidents
}
