package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fleetops/internal/models"
	"fleetops/internal/store"
)

type ReportController struct {
	store store.Store
}

func NewReportController(s store.Store) *ReportController {
	return &ReportController{store: s}
}

type reportInput struct {
	Type    string         `json:"type" binding:"required"`
	Content map[string]any `json:"content" binding:"required"`
}

type reportResponse struct {
	ID        uint            `json:"id"`
	Type      string          `json:"type"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

func toReportResponse(r *models.Report) reportResponse {
	return reportResponse{
		ID:        r.ID,
		Type:      r.Type,
		Content:   json.RawMessage(r.Content),
		CreatedAt: r.CreatedAt,
	}
}

// Create stores the report content as JSON. Content is parsed strictly as
// data on the way out, never evaluated.
func (rc *ReportController) Create(c *gin.Context) {
	var input reportInput
	if !bindJSON(c, &input) {
		return
	}

	content, err := json.Marshal(input.Content)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid content format"})
		return
	}

	report := models.Report{Type: input.Type, Content: string(content)}
	if err := rc.store.Reports().Create(&report); err != nil {
		storageError(c, "creating the report", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Report created successfully", "report_id": report.ID})
}

func (rc *ReportController) List(c *gin.Context) {
	reports, err := rc.store.Reports().List()
	if err != nil {
		storageError(c, "fetching reports", err)
		return
	}

	out := make([]reportResponse, 0, len(reports))
	for i := range reports {
		out = append(out, toReportResponse(&reports[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Usage returns the most recent usage report.
func (rc *ReportController) Usage(c *gin.Context) {
	report, err := rc.store.Reports().First(store.Where("type", "usage"), store.NewestFirst())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No usage report available"})
			return
		}
		storageError(c, "fetching the usage report", err)
		return
	}

	c.JSON(http.StatusOK, toReportResponse(report))
}
