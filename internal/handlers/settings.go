package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/internal/errstore"
	"github.com/sitewatch-dev/sitewatch/internal/settings"
)

type updateSettingsRequest struct {
	HistoryLimit         int     `json:"history_limit" binding:"required,min=1"`
	CheckIntervalSeconds int     `json:"check_interval_seconds" binding:"required,min=10"`
	TimeoutSeconds       int     `json:"timeout_seconds" binding:"required,min=1"`
	RetryAttempts        int     `json:"retry_attempts" binding:"min=0"`
	SLATargetPercentage  float64 `json:"sla_target_percentage" binding:"required,min=0,max=100"`
}

// GetSettings returns the current application settings.
func GetSettings(ctx *gin.Context) {
	saved, err := settings.Load()

	if err != nil {
		errstore.Default.SetStoreError("settings", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	errstore.Default.ClearStoreError("settings")
	ctx.JSON(http.StatusOK, saved)
}

// UpdateSettings replaces the application settings.
func UpdateSettings(ctx *gin.Context) {
	var req updateSettingsRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid settings: " + err.Error()})
		return
	}

	saved, err := settings.Load()

	if err != nil {
		errstore.Default.SetStoreError("settings", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load settings"})
		return
	}

	saved.HistoryLimit = req.HistoryLimit
	saved.CheckIntervalSeconds = req.CheckIntervalSeconds
	saved.TimeoutSeconds = req.TimeoutSeconds
	saved.RetryAttempts = req.RetryAttempts
	saved.SLATargetPercentage = req.SLATargetPercentage

	updated, err := settings.Save(saved)

	if err != nil {
		errstore.Default.SetStoreError("settings", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}

	errstore.Default.ClearStoreError("settings")
	ctx.JSON(http.StatusOK, updated)
}

// ResetSettings restores the default settings.
func ResetSettings(ctx *gin.Context) {
	restored, err := settings.Reset()

	if err != nil {
		errstore.Default.SetStoreError("settings", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset settings"})
		return
	}

	errstore.Default.ClearStoreError("settings")
	ctx.JSON(http.StatusOK, restored)
}

// GetHistoryLimit returns the number of checks retained per monitor.
func GetHistoryLimit(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"history_limit": settings.HistoryLimit()})
}

type updateHistoryLimitRequest struct {
	HistoryLimit int `json:"history_limit" binding:"required,min=1"`
}

// UpdateHistoryLimit changes only the per-monitor history retention.
func UpdateHistoryLimit(ctx *gin.Context) {
	var req updateHistoryLimitRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid history limit"})
		return
	}

	updated, err := settings.UpdateHistoryLimit(req.HistoryLimit)

	if err != nil {
		errstore.Default.SetStoreError("settings", err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update history limit"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"history_limit": updated.HistoryLimit})
}
