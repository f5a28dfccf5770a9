package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sumashijiru045-dot/pos-app/internal/application/service"
	"github.com/sumashijiru045-dot/pos-app/internal/presentation/http/dto/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams the sales ledger workbook
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// Download encodes the ledger and streams it as an xlsx attachment
func (h *ExportHandler) Download(c *gin.Context) {
	data, err := h.exportService.WriteWorkbook()
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+h.exportService.Filename()+`"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

// Tables returns the three report tables as JSON, for on-screen summaries
func (h *ExportHandler) Tables(c *gin.Context) {
	response.OK(c, "Export tables built successfully", h.exportService.BuildTables())
}
