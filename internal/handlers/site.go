package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sitewatch-dev/sitewatch/db"
	"github.com/sitewatch-dev/sitewatch/internal/models"
	"github.com/sitewatch-dev/sitewatch/internal/scheduler"
	"github.com/sitewatch-dev/sitewatch/internal/types"
	"github.com/sitewatch-dev/sitewatch/internal/utils"
	"gorm.io/gorm"
)

type CreateSiteRequest struct {
	Identifier     string           `json:"identifier"`
	Name           string           `json:"name" binding:"required"`
	Monitoring     *bool            `json:"monitoring"`
	DiscordWebhook string           `json:"discord_webhook"`
	SlackWebhook   string           `json:"slack_webhook"`
	Monitors       []MonitorRequest `json:"monitors"`
}

type UpdateSiteRequest struct {
	Name           *string `json:"name"`
	Monitoring     *bool   `json:"monitoring"`
	DiscordWebhook *string `json:"discord_webhook"`
	SlackWebhook   *string `json:"slack_webhook"`
}

type SiteResponse struct {
	Identifier     string            `json:"identifier"`
	Name           string            `json:"name"`
	Monitoring     bool              `json:"monitoring"`
	DiscordWebhook string            `json:"discord_webhook,omitempty"`
	SlackWebhook   string            `json:"slack_webhook,omitempty"`
	Monitors       []MonitorResponse `json:"monitors"`
}

func siteResponse(site models.Site) SiteResponse {
	monitors := make([]MonitorResponse, 0, len(site.Monitors))

	for _, monitor := range site.Monitors {
		monitors = append(monitors, monitorResponse(monitor))
	}

	return SiteResponse{
		Identifier:     site.Identifier,
		Name:           site.Name,
		Monitoring:     site.Monitoring,
		DiscordWebhook: site.DiscordWebhook,
		SlackWebhook:   site.SlackWebhook,
		Monitors:       monitors,
	}
}

// findOwnedSite loads a site by identifier scoped to the current user,
// answering the request itself when the site cannot be served.
func findOwnedSite(ctx *gin.Context, preloadMonitors bool) (models.Site, bool) {
	var site models.Site

	identifier, err := utils.GetSiteIdentifier(ctx)

	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return site, false
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return site, false
	}

	query := db.DB.Where("identifier = ? AND owner_id = ?", identifier, userID)

	if preloadMonitors {
		query = query.Preload("Monitors")
	}

	if err := query.First(&site).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Site not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve site"})
		}
		return site, false
	}

	return site, true
}

func CreateSite(ctx *gin.Context) {
	var body CreateSiteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	identifier := body.Identifier

	if identifier == "" {
		identifier = uuid.NewString()
	}

	monitoring := true

	if body.Monitoring != nil {
		monitoring = *body.Monitoring
	}

	site := models.Site{
		Identifier:     identifier,
		Name:           body.Name,
		Monitoring:     monitoring,
		OwnerID:        userID,
		DiscordWebhook: body.DiscordWebhook,
		SlackWebhook:   body.SlackWebhook,
	}

	// Build monitors up front so a validation failure leaves nothing behind.
	monitors := make([]models.Monitor, 0, len(body.Monitors))

	for _, monitorReq := range body.Monitors {
		monitor, errs := buildMonitor(monitorReq)

		if len(errs) > 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"errors": errs})
			return
		}

		monitors = append(monitors, monitor)
	}

	site.Monitors = monitors

	if err := db.DB.Create(&site).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create site"})
		return
	}

	if site.Monitoring {
		for _, monitor := range site.Monitors {
			if monitor.Monitoring {
				scheduler.AddMonitor(monitor)
			}
		}
	}

	ctx.JSON(http.StatusCreated, siteResponse(site))
}

func ListSites(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var sites []models.Site

	if err := db.DB.Where("owner_id = ?", userID).Preload("Monitors").Find(&sites).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve sites"})
		return
	}

	response := make([]SiteResponse, 0, len(sites))

	for _, site := range sites {
		response = append(response, siteResponse(site))
	}

	ctx.JSON(http.StatusOK, response)
}

func GetSite(ctx *gin.Context) {
	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	ctx.JSON(http.StatusOK, siteResponse(site))
}

func UpdateSite(ctx *gin.Context) {
	var body UpdateSiteRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	monitoringChanged := false

	if body.Name != nil {
		site.Name = *body.Name
	}

	if body.DiscordWebhook != nil {
		site.DiscordWebhook = *body.DiscordWebhook
	}

	if body.SlackWebhook != nil {
		site.SlackWebhook = *body.SlackWebhook
	}

	if body.Monitoring != nil && *body.Monitoring != site.Monitoring {
		site.Monitoring = *body.Monitoring
		monitoringChanged = true
	}

	if err := db.DB.Save(&site).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update site"})
		return
	}

	if monitoringChanged {
		if site.Monitoring {
			for _, i := range applySiteStart(site.Monitors) {
				monitor := &site.Monitors[i]

				if err := db.DB.Model(monitor).Updates(map[string]interface{}{"status": types.StatusPending}).Error; err != nil {
					continue
				}

				scheduler.AddMonitor(*monitor)
			}
		} else {
			applySiteStop(site.Monitors)

			for i := range site.Monitors {
				monitor := &site.Monitors[i]

				scheduler.RemoveMonitor(monitor.ID)
				db.DB.Model(monitor).Updates(map[string]interface{}{"status": types.StatusPaused})
			}
		}
	}

	ctx.JSON(http.StatusOK, siteResponse(site))
}

func DeleteSite(ctx *gin.Context) {
	site, ok := findOwnedSite(ctx, true)

	if !ok {
		return
	}

	for _, monitor := range site.Monitors {
		scheduler.RemoveMonitor(monitor.ID)
	}

	if err := db.DB.Delete(&site).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete site"})
		return
	}

	ctx.Status(http.StatusNoContent)
}
