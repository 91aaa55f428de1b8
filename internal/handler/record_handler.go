package handler

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/campus-security-backend-go/internal/analytics"
	"github.com/jengzang/campus-security-backend-go/internal/models"
	"github.com/jengzang/campus-security-backend-go/internal/service"
	"github.com/jengzang/campus-security-backend-go/pkg/response"
)

// RecordHandler handles HTTP requests for the activity record collection
type RecordHandler struct {
	recordService *service.RecordService
}

// NewRecordHandler creates a new record handler
func NewRecordHandler(recordService *service.RecordService) *RecordHandler {
	return &RecordHandler{
		recordService: recordService,
	}
}

// LoadSample handles POST /api/v1/records/sample
func (h *RecordHandler) LoadSample(c *gin.Context) {
	var req struct {
		Count int `json:"count"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	loaded, err := h.recordService.LoadSample(req.Count)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"loaded": loaded})
}

// Ingest handles POST /api/v1/records
func (h *RecordHandler) Ingest(c *gin.Context) {
	var req struct {
		Records []models.ActivityRecord `json:"records"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	loaded, err := h.recordService.Ingest(req.Records)
	if err != nil {
		// Contract violations reject the whole batch
		response.Unprocessable(c, err.Error())
		return
	}

	response.Success(c, gin.H{"loaded": loaded})
}

// List handles GET /api/v1/records
func (h *RecordHandler) List(c *gin.Context) {
	var filter models.RecordFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.recordService.Query(filter)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, result)
}

// Summary handles GET /api/v1/records/summary
func (h *RecordHandler) Summary(c *gin.Context) {
	response.Success(c, h.recordService.Summary())
}

// Alerts handles GET /api/v1/records/alerts
func (h *RecordHandler) Alerts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", strconv.Itoa(analytics.DefaultAlertLimit))
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		response.BadRequest(c, fmt.Sprintf("Invalid limit parameter: %q", limitStr))
		return
	}

	response.Success(c, h.recordService.Alerts(limit))
}

// Export handles GET /api/v1/records/export
func (h *RecordHandler) Export(c *gin.Context) {
	var buf bytes.Buffer
	if _, err := h.recordService.ExportCSV(&buf); err != nil {
		if errors.Is(err, service.ErrNoData) {
			response.NotFound(c, "No data available. Load or analyze data first.")
			return
		}
		response.InternalError(c, err.Error())
		return
	}

	filename := analytics.ExportFilename(time.Now())
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", buf.Bytes())
}

// EntityInfo handles GET /api/v1/records/entities/:entityId
func (h *RecordHandler) EntityInfo(c *gin.Context) {
	info, err := h.recordService.EntityInfo(c.Param("entityId"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoData):
			response.NotFound(c, "No data loaded")
		case errors.Is(err, service.ErrEntityNotFound):
			response.NotFound(c, "Entity not found")
		default:
			response.BadRequest(c, err.Error())
		}
		return
	}

	response.Success(c, info)
}
