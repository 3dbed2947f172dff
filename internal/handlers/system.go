package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/internal/errstore"
	"github.com/sitewatch-dev/sitewatch/internal/scheduler"
)

// GetSystemErrors exposes the error store snapshot alongside the
// scheduler status so operators can see what is failing and whether
// checks are still running.
func GetSystemErrors(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"errors":    errstore.Default.Snapshot(),
		"scheduler": scheduler.GetStatus(),
	})
}

// ClearSystemErrors wipes every recorded error. Loading flags are left
// alone so in-flight operations still report correctly.
func ClearSystemErrors(ctx *gin.Context) {
	errstore.Default.ClearAllErrors()
	ctx.JSON(http.StatusOK, gin.H{"message": "Errors cleared"})
}
