package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/analytics"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/monitortypes"
	"github.com/sitewatch-dev/sitewatch/internal/scheduler"
	"github.com/sitewatch-dev/sitewatch/internal/settings"
	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/sitewatch-dev/sitewatch/internal/utils"
	"gorm.io/gorm"
)

type MonitorRequest struct {
	ID            string                 `json:"id"` // client-generated UUID; assigned when empty
	Type          string                 `json:"type" binding:"required"`
	CheckInterval int                    `json:"check_interval"`
	Timeout       int                    `json:"timeout"`
	RetryAttempts int                    `json:"retry_attempts"`
	Monitoring    *bool                  `json:"monitoring"`
	Config        map[string]interface{} `json:"config" binding:"required"`
}

type MonitorResponse struct {
	ID            string                 `json:"id"`
	Type          string                 `json:"type"`
	Status        string                 `json:"status"`
	Monitoring    bool                   `json:"monitoring"`
	CheckInterval int                    `json:"check_interval"`
	Timeout       int                    `json:"timeout"`
	RetryAttempts int                    `json:"retry_attempts"`
	ResponseTime  int                    `json:"response_time"`
	Config        map[string]interface{} `json:"config"`
	TitleSuffix   string                 `json:"title_suffix"`
}

type MonitorCheckSummary struct {
	ID           uint      `json:"id"`
	Status       string    `json:"status"`
	ResponseTime int       `json:"response_time"`
	Details      string    `json:"details"`
	CheckedAt    time.Time `json:"checked_at"`
}

type MonitorSummary struct {
	MonitorResponse

	LastCheck       *MonitorCheckSummary      `json:"last_check"`
	Uptime          float64                   `json:"uptime_percentage"`
	AvgResponseTime float64                   `json:"avg_response_time"`
	History         *analytics.HistorySummary `json:"history_summary,omitempty"`
}

type SiteDashboardResponse struct {
	Site             SiteSummary       `json:"site"`
	MonitorsSummary  MonitorsSummary   `json:"monitors_summary"`
	UptimePercentage float64           `json:"uptime_percentage"`
	MTTRSeconds      float64           `json:"mttr_seconds"`
	Monitors         []MonitorSummary  `json:"monitors"`
	RecentIncidents  []IncidentSummary `json:"recent_incidents"`
}

type SiteSummary struct {
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
	Monitoring bool   `json:"monitoring"`
}

type MonitorsSummary struct {
	Total   int `json:"total"`
	Up      int `json:"up"`
	Down    int `json:"down"`
	Pending int `json:"pending"`
	Paused  int `json:"paused"`
}

type IncidentSummary struct {
	ID         uint       `json:"id"`
	MonitorID  string     `json:"monitor_id"`
	Title      string     `json:"title"`
	Details    string     `json:"details"`
	Status     string     `json:"status"`
	StartedAt  time.Time  `json:"started_at"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

func monitorResponse(monitor models.Monitor) MonitorResponse {
	var config map[string]interface{}

	if err := json.Unmarshal(monitor.Config, &config); err != nil {
		config = make(map[string]interface{})
	}

	return MonitorResponse{
		ID:            monitor.UUID,
		Type:          monitor.Type,
		Status:        monitor.Status,
		Monitoring:    monitor.Monitoring,
		CheckInterval: monitor.CheckInterval,
		Timeout:       monitor.Timeout,
		RetryAttempts: monitor.RetryAttempts,
		ResponseTime:  monitor.ResponseTime,
		Config:        config,
		TitleSuffix:   monitortypes.FormatMonitorTitleSuffix(monitor.Type, json.RawMessage(monitor.Config)),
	}
}

// buildMonitor validates a monitor request and assembles the model.
// Validation failures come back as user-facing messages, never errors.
func buildMonitor(req MonitorRequest) (models.Monitor, []string) {
	if !types.ValidMonitorType(req.Type) {
		return models.Monitor{}, []string{"Unknown monitor type: " + req.Type}
	}

	bag := make(map[string]interface{}, len(req.Config)+3)

	for key, value := range req.Config {
		bag[key] = value
	}

	if req.CheckInterval != 0 {
		bag["check_interval"] = req.CheckInterval
	}

	if req.Timeout != 0 {
		bag["timeout"] = req.Timeout
	}

	if req.RetryAttempts != 0 {
		bag["retry_attempts"] = req.RetryAttempts
	}

	result := monitortypes.ValidateMonitorFormData(req.Type, bag)

	if !result.Success {
		return models.Monitor{}, result.Errors
	}

	config := req.Config

	// DNS hosts arrive as anything from bare domains to full URLs.
	if req.Type == types.MonitorTypeDNS {
		if host, ok := config["host"].(string); ok {
			clean, err := utils.ExtractRawDomain(host)

			if err != nil {
				return models.Monitor{}, []string{"Invalid host: " + err.Error()}
			}

			config["host"] = clean
		}
	}

	configJSON, err := json.Marshal(config)

	if err != nil {
		return models.Monitor{}, []string{"Invalid config format"}
	}

	defaults, settingsErr := settings.Load()

	if settingsErr != nil {
		defaults = models.DefaultSettings()
	}

	monitorID := req.ID

	if monitorID == "" {
		monitorID = uuid.NewString()
	}

	monitoring := true

	if req.Monitoring != nil {
		monitoring = *req.Monitoring
	}

	monitor := models.Monitor{
		UUID:          monitorID,
		Type:          req.Type,
		Status:        types.StatusPending,
		Monitoring:    monitoring,
		CheckInterval: req.CheckInterval,
		Timeout:       req.Timeout,
		RetryAttempts: req.RetryAttempts,
		Config:        configJSON,
	}

	if monitor.CheckInterval <= 0 {
		monitor.CheckInterval = defaults.CheckIntervalSeconds
	}

	if monitor.Timeout <= 0 {
		monitor.Timeout = defaults.TimeoutSeconds
	}

	if monitor.RetryAttempts <= 0 {
		monitor.RetryAttempts = defaults.RetryAttempts
	}

	return monitor, nil
}

// findOwnedMonitor loads a monitor by its client-visible ID within an
// owned site, answering the request itself on failure.
func findOwnedMonitor(ctx *gin.Context) (models.Site, models.Monitor, bool) {
	var monitor models.Monitor

	site, ok := findOwnedSite(ctx, false)

	if !ok {
		return site, monitor, false
	}

	monitorID, err := utils.GetMonitorUUID(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return site, monitor, false
	}

	if err := db.DB.Where("site_id = ? AND uuid = ?", site.ID, monitorID).First(&monitor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Monitor not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve monitor"})
		}
		return site, monitor, false
	}

	return site, monitor, true
}

func CreateMonitor(ctx *gin.Context) {
	var req MonitorRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, ok := findOwnedSite(ctx, false)

	if !ok {
		return
	}

	monitor, errs := buildMonitor(req)

	if len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	monitor.SiteID = site.ID

	if err := db.DB.Create(&monitor).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create monitor"})
		return
	}

	if site.Monitoring && monitor.Monitoring {
		scheduler.AddMonitor(monitor)
	}

	ctx.JSON(http.StatusCreated, monitorResponse(monitor))
}

func UpdateMonitor(ctx *gin.Context) {
	var req MonitorRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	site, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	req.ID = monitor.UUID

	updated, errs := buildMonitor(req)

	if len(errs) > 0 {
		ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	monitor.Type = updated.Type
	monitor.Monitoring = updated.Monitoring
	monitor.CheckInterval = updated.CheckInterval
	monitor.Timeout = updated.Timeout
	monitor.RetryAttempts = updated.RetryAttempts
	monitor.Config = updated.Config

	if err := db.DB.Save(&monitor).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update monitor"})
		return
	}

	if site.Monitoring && monitor.Monitoring {
		scheduler.UpdateMonitor(monitor)
	} else {
		scheduler.RemoveMonitor(monitor.ID)
	}

	ctx.JSON(http.StatusOK, monitorResponse(monitor))
}

func DeleteMonitor(ctx *gin.Context) {
	_, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	if err := db.DB.Delete(&monitor).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete monitor"})
		return
	}

	scheduler.RemoveMonitor(monitor.ID)

	ctx.Status(http.StatusNoContent)
}

func GetMonitorChecks(ctx *gin.Context) {
	_, monitor, ok := findOwnedMonitor(ctx)

	if !ok {
		return
	}

	limit := 50

	if raw := ctx.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	var checks []models.MonitorCheck

	if err := db.DB.Where("monitor_id = ?", monitor.ID).
		Order("checked_at DESC").
		Limit(limit).
		Find(&checks).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get checks"})
		return
	}

	summaries := make([]MonitorCheckSummary, 0, len(checks))

	for _, check := range checks {
		summaries = append(summaries, MonitorCheckSummary{
			ID:           check.ID,
			Status:       check.Status,
			ResponseTime: check.ResponseTime,
			Details:      monitortypes.FormatMonitorDetail(monitor.Type, check.Details),
			CheckedAt:    check.CheckedAt,
		})
	}

	ctx.JSON(http.StatusOK, summaries)
}

func buildMonitorSummary(monitor models.Monitor) MonitorSummary {
	summary := MonitorSummary{
		MonitorResponse: monitorResponse(monitor),
		Uptime:          analytics.UptimeForMonitor(monitor.ID, analytics.DefaultWindow),
		AvgResponseTime: analytics.AvgResponseTimeForMonitor(monitor.ID, analytics.DefaultWindow),
	}

	var lastCheck models.MonitorCheck

	err := db.DB.Where("monitor_id = ?", monitor.ID).
		Order("checked_at DESC").
		First(&lastCheck).Error

	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("Error fetching last check for monitor %d: %v", monitor.ID, err)
		}
		return summary
	}

	summary.LastCheck = &MonitorCheckSummary{
		ID:           lastCheck.ID,
		Status:       lastCheck.Status,
		ResponseTime: lastCheck.ResponseTime,
		Details:      monitortypes.FormatMonitorDetail(monitor.Type, lastCheck.Details),
		CheckedAt:    lastCheck.CheckedAt,
	}

	var recent []models.MonitorCheck

	err = db.DB.Where("monitor_id = ?", monitor.ID).
		Order("checked_at DESC").
		Limit(settings.HistoryLimit()).
		Find(&recent).Error

	if err == nil && len(recent) > 0 {
		history := analytics.SummarizeHistory(recent)
		summary.History = &history
	}

	return summary
}

// siteDashboardOverview assembles the DB-independent dashboard pieces
// from pre-fetched rows: status counts, windowed uptime from check
// counts, recovery time, and incident summaries.
func siteDashboardOverview(site models.Site, upChecks, downChecks int64, incidents []models.Incident) SiteDashboardResponse {
	var counts MonitorsSummary

	for _, monitor := range site.Monitors {
		counts.Total++

		switch monitor.Status {
		case types.StatusUp:
			counts.Up++
		case types.StatusDown:
			counts.Down++
		case types.StatusPaused:
			counts.Paused++
		default:
			counts.Pending++
		}
	}

	incidentSummaries := make([]IncidentSummary, 0, len(incidents))

	for _, incident := range incidents {
		startedAt := time.Time{}

		if incident.StartedAt != nil {
			startedAt = *incident.StartedAt
		}

		incidentSummaries = append(incidentSummaries, IncidentSummary{
			ID:         incident.ID,
			MonitorID:  incident.Monitor.UUID,
			Title:      incident.Title,
			Details:    incident.Description,
			Status:     incident.Status,
			StartedAt:  startedAt,
			ResolvedAt: incident.ResolvedAt,
		})
	}

	return SiteDashboardResponse{
		Site: SiteSummary{
			Identifier: site.Identifier,
			Name:       site.Name,
			Monitoring: site.Monitoring,
		},
		MonitorsSummary:  counts,
		UptimePercentage: analytics.UptimeRatio(int(upChecks), int(downChecks)),
		MTTRSeconds:      analytics.MeanTimeToRecovery(incidents).Seconds(),
		RecentIncidents:  incidentSummaries,
	}
}

func GetSiteDashboard(ctx *gin.Context) {
	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	var upChecks, downChecks int64
	monitorSummaries := make([]MonitorSummary, 0, len(site.Monitors))

	for _, monitor := range site.Monitors {
		monitorSummaries = append(monitorSummaries, buildMonitorSummary(monitor))

		up, down := analytics.CheckCountsForMonitor(monitor.ID, analytics.DefaultWindow)
		upChecks += up
		downChecks += down
	}

	incidents := analytics.RecentIncidentsForSite(site.ID, 10)

	response := siteDashboardOverview(site, upChecks, downChecks, incidents)
	response.Monitors = monitorSummaries

	ctx.JSON(http.StatusOK, response)
}
