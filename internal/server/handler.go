package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wattlab/wattboard/internal/chart"
	"github.com/wattlab/wattboard/internal/dataset"
	"github.com/wattlab/wattboard/internal/report"
	"github.com/wattlab/wattboard/pkg/models"
)

// handler serves the read-only JSON API
type handler struct {
	ds        *models.Dataset
	downloads *exportDownloadStore
}

func newHandler(ds *models.Dataset) *handler {
	return &handler{
		ds:        ds,
		downloads: newExportDownloadStore(),
	}
}

// RegisterRoutes registers the API routes
func (h *handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.GET("/dataset", h.GetDataset)
	router.GET("/summary", h.GetSummary)
	router.GET("/chart", h.GetChart)

	router.POST("/export", h.CreateExport)
	router.GET("/export/:id", h.DownloadExport)
}

// GetStatus reports what the server is holding
// GET /api/status
func (h *handler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"building": h.ds.Building,
		"year":     h.ds.Year,
		"months":   len(h.ds.Months),
		"tips":     len(h.ds.Tips),
	})
}

// GetDataset returns the full dataset as one JSON document
// GET /api/dataset
func (h *handler) GetDataset(c *gin.Context) {
	c.JSON(http.StatusOK, h.ds)
}

// GetSummary returns the derived annual summary
// GET /api/summary
func (h *handler) GetSummary(c *gin.Context) {
	c.JSON(http.StatusOK, dataset.Summarize(h.ds.Months))
}

// GetChart returns the combo-chart spec
// GET /api/chart
func (h *handler) GetChart(c *gin.Context) {
	c.JSON(http.StatusOK, chart.Build(h.ds.Months))
}

// CreateExport writes the annual xlsx report to a temp file and returns a
// one-time download id
// POST /api/export
func (h *handler) CreateExport(c *gin.Context) {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("wattboard-%s.xlsx", uuid.NewString()))
	if err := report.Write(path, h.ds); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := h.downloads.put(path)
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DownloadExport streams a previously generated report and removes it
// GET /api/export/:id
func (h *handler) DownloadExport(c *gin.Context) {
	path, ok := h.downloads.take(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "export not found"})
		return
	}
	defer os.Remove(path)

	c.FileAttachment(path, fmt.Sprintf("wattboard-%d.xlsx", h.ds.Year))
}
