package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/analytics"
	"github.com/sitewatch-dev/sitewatch/internal/errstore"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/sitewatch-dev/sitewatch/internal/utils"
)

// DashboardResponse aggregates the fleet-wide numbers shown on the
// landing view.
type DashboardResponse struct {
	TotalSites       int64            `json:"total_sites"`
	TotalMonitors    int64            `json:"total_monitors"`
	MonitorsUp       int64            `json:"monitors_up"`
	MonitorsDown     int64            `json:"monitors_down"`
	UptimePercentage int              `json:"uptime_percentage"`
	ActiveIncidents  int64            `json:"active_incidents"`
	Sites            []SiteDownCounts `json:"sites"`
}

// SiteDownCounts is the per-site row on the global dashboard.
type SiteDownCounts struct {
	Identifier    string `json:"identifier"`
	Name          string `json:"name"`
	Monitoring    bool   `json:"monitoring"`
	MonitorsTotal int64  `json:"monitors_total"`
	MonitorsDown  int64  `json:"monitors_down"`
}

// aggregateDashboard folds the user's sites into the fleet totals.
// ActiveIncidents needs the DB and is filled in by the handler.
func aggregateDashboard(sites []models.Site) DashboardResponse {
	response := DashboardResponse{Sites: []SiteDownCounts{}}
	response.TotalSites = int64(len(sites))

	for _, site := range sites {
		row := SiteDownCounts{
			Identifier: site.Identifier,
			Name:       site.Name,
			Monitoring: site.Monitoring,
		}

		for _, monitor := range site.Monitors {
			response.TotalMonitors++
			row.MonitorsTotal++

			switch monitor.Status {
			case types.StatusUp:
				response.MonitorsUp++
			case types.StatusDown:
				response.MonitorsDown++
				row.MonitorsDown++
			}
		}

		response.Sites = append(response.Sites, row)
	}

	response.UptimePercentage = analytics.UptimePercent(int(response.MonitorsUp), int(response.MonitorsDown))

	return response
}

// GetDashboard returns fleet-wide totals for the authenticated user.
func GetDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var sites []models.Site

	if err := db.DB.Where("owner_id = ?", userID).Preload("Monitors").Find(&sites).Error; err != nil {
		errstore.Default.SetError(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
		return
	}

	response := aggregateDashboard(sites)

	siteIDs := make([]uint, 0, len(sites))

	for _, site := range sites {
		siteIDs = append(siteIDs, site.ID)
	}

	if len(siteIDs) > 0 {
		db.DB.Model(&models.Incident{}).
			Joins("JOIN monitors ON monitors.id = incidents.monitor_id").
			Where("monitors.site_id IN ? AND incidents.resolved_at IS NULL", siteIDs).
			Count(&response.ActiveIncidents)
	}

	ctx.JSON(http.StatusOK, response)
}
