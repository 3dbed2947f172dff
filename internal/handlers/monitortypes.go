package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sitewatch-dev/sitewatch/internal/monitortypes"
)

// ListMonitorTypes returns the field schemas for every supported
// monitor type, keyed by type name.
func ListMonitorTypes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"monitor_types": monitortypes.GetMonitorTypes()})
}

// GetMonitorType returns the field schema for a single monitor type.
func GetMonitorType(ctx *gin.Context) {
	config, ok := monitortypes.GetMonitorType(ctx.Param("type"))

	if !ok {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Unknown monitor type"})
		return
	}

	ctx.JSON(http.StatusOK, config)
}

type validateMonitorRequest struct {
	Type string                 `json:"type" binding:"required"`
	Data map[string]interface{} `json:"data"`
}

// ValidateMonitorData validates a form-data bag against a monitor
// type's field schema without persisting anything.
func ValidateMonitorData(ctx *gin.Context) {
	var req validateMonitorRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx.JSON(http.StatusOK, monitortypes.ValidateMonitorFormData(req.Type, req.Data))
}

type formatDetailRequest struct {
	Type   string `json:"type" binding:"required"`
	Detail string `json:"detail"`
}

// FormatMonitorDetail renders a raw check detail string with its
// type-specific prefix.
func FormatMonitorDetail(ctx *gin.Context) {
	var req formatDetailRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"formatted": monitortypes.FormatMonitorDetail(req.Type, req.Detail)})
}

type formatTitleSuffixRequest struct {
	Type   string          `json:"type" binding:"required"`
	Config json.RawMessage `json:"config"`
}

// FormatMonitorTitleSuffix renders the parenthesised target summary
// shown next to a monitor's name.
func FormatMonitorTitleSuffix(ctx *gin.Context) {
	var req formatTitleSuffixRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"suffix": monitortypes.FormatMonitorTitleSuffix(req.Type, req.Config)})
}
