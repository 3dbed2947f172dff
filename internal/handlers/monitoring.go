package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/errstore"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/scheduler"
	"github.com/sitewatch-dev/sitewatch/internal/types"
)

// applySiteStop marks every monitor paused in memory. Each monitor's
// own monitoring flag is left untouched, so a later site-wide start
// restores exactly the set that was running.
func applySiteStop(monitors []models.Monitor) {
	for i := range monitors {
		monitors[i].Status = types.StatusPaused
	}
}

// applySiteStart resets the individually-enabled monitors to pending
// and returns their indices; monitors stopped at monitor scope stay
// paused.
func applySiteStart(monitors []models.Monitor) []int {
	resumed := make([]int, 0, len(monitors))

	for i := range monitors {
		if !monitors[i].Monitoring {
			continue
		}

		monitors[i].Status = types.StatusPending
		resumed = append(resumed, i)
	}

	return resumed
}

// StartSiteMonitoring resumes checks for every monitor of a site that
// is still individually enabled.
func StartSiteMonitoring(ctx *gin.Context) {
	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	site.Monitoring = true

	if err := db.DB.Save(&site).Error; err != nil {
		errstore.Default.SetStoreError("sites", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start monitoring"})
		return
	}

	for _, i := range applySiteStart(site.Monitors) {
		monitor := &site.Monitors[i]

		if err := db.DB.Model(monitor).Updates(map[string]interface{}{"status": types.StatusPending}).Error; err != nil {
			errstore.Default.SetStoreError("monitoring", err.Error())
			continue
		}

		scheduler.AddMonitor(*monitor)
	}

	ctx.JSON(http.StatusOK, siteResponse(site))
}

// StopSiteMonitoring pauses checks for every monitor of a site.
func StopSiteMonitoring(ctx *gin.Context) {
	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	site.Monitoring = false

	if err := db.DB.Save(&site).Error; err != nil {
		errstore.Default.SetStoreError("sites", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to stop monitoring"})
		return
	}

	applySiteStop(site.Monitors)

	for i := range site.Monitors {
		monitor := &site.Monitors[i]

		scheduler.RemoveMonitor(monitor.ID)

		if err := db.DB.Model(monitor).Updates(map[string]interface{}{"status": types.StatusPaused}).Error; err != nil {
			errstore.Default.SetStoreError("monitoring", err.Error())
		}
	}

	ctx.JSON(http.StatusOK, siteResponse(site))
}

// StartMonitorMonitoring resumes checks for a single monitor.
func StartMonitorMonitoring(ctx *gin.Context) {
	site, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	monitor.Monitoring = true
	monitor.Status = types.StatusPending

	if err := db.DB.Save(&monitor).Error; err != nil {
		errstore.Default.SetStoreError("monitoring", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start monitoring"})
		return
	}

	if site.Monitoring {
		scheduler.AddMonitor(monitor)
	}

	ctx.JSON(http.StatusOK, monitorResponse(monitor))
}

// StopMonitorMonitoring pauses checks for a single monitor.
func StopMonitorMonitoring(ctx *gin.Context) {
	_, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	pauseMonitor(&monitor)

	ctx.JSON(http.StatusOK, monitorResponse(monitor))
}

// CheckMonitorNow triggers an immediate out-of-band check. The probe
// runs in the background; the in-flight state is observable through the
// operation-loading flags. The check is recorded to history; a stopped
// monitor keeps its paused status.
func CheckMonitorNow(ctx *gin.Context) {
	_, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	operation := "check-now:" + monitor.UUID

	if errstore.Default.GetOperationLoading(operation) {
		ctx.JSON(http.StatusAccepted, gin.H{"message": "Check already in progress"})
		return
	}

	errstore.Default.SetOperationLoading(operation, true)

	go func() {
		defer errstore.Default.SetOperationLoading(operation, false)
		scheduler.CheckNow(monitor)
	}()

	ctx.JSON(http.StatusAccepted, gin.H{"message": "Check triggered", "monitor_id": monitor.UUID})
}

// pauseMonitor stops a monitor at monitor scope: its own flag flips off
// and the status goes paused.
func pauseMonitor(monitor *models.Monitor) {
	scheduler.RemoveMonitor(monitor.ID)

	monitor.Monitoring = false
	monitor.Status = types.StatusPaused

	if err := db.DB.Model(monitor).Updates(map[string]interface{}{
		"monitoring": false,
		"status":     types.StatusPaused,
	}).Error; err != nil {
		errstore.Default.SetStoreError("monitoring", err.Error())
	}
}
