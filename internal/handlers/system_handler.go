package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"store-profit-api/internal/services"
)

// maxInvoiceSize caps uploaded invoice files at 5 MB
const maxInvoiceSize = 5 << 20

// SystemHandler handles the store connection lifecycle and demo mode
type SystemHandler struct {
	connectorService services.ConnectorService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(connectorService services.ConnectorService) *SystemHandler {
	return &SystemHandler{connectorService: connectorService}
}

type demoModeRequest struct {
	Enabled bool `json:"enabled"`
}

// @Summary Enable or disable demo mode
// @Tags system
// @Accept json
// @Produce json
// @Param request body demoModeRequest true "Demo mode flag"
// @Success 200 {object} services.ConnectionStatus
// @Failure 400 {object} ErrorResponse
// @Router /system/demo [post]
func (h *SystemHandler) SetDemoMode(c *gin.Context) {
	var req demoModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Message: err.Error()})
		return
	}

	if err := h.connectorService.SetDemoMode(c.Request.Context(), req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to set demo mode", Message: err.Error()})
		return
	}

	status, err := h.connectorService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read connection status", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Connect the external store and import its catalog and orders
// @Tags system
// @Produce json
// @Success 200 {object} services.ConnectionStatus
// @Failure 500 {object} ErrorResponse
// @Router /system/connect [post]
func (h *SystemHandler) Connect(c *gin.Context) {
	status, err := h.connectorService.Connect(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to connect store", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Disconnect the external store
// @Tags system
// @Produce json
// @Success 200 {object} services.ConnectionStatus
// @Failure 500 {object} ErrorResponse
// @Router /system/disconnect [post]
func (h *SystemHandler) Disconnect(c *gin.Context) {
	status, err := h.connectorService.Disconnect(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to disconnect store", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Refresh the last-sync timestamp of the connected store
// @Tags system
// @Produce json
// @Success 200 {object} services.ConnectionStatus
// @Failure 500 {object} ErrorResponse
// @Router /system/sync [post]
func (h *SystemHandler) Sync(c *gin.Context) {
	status, err := h.connectorService.Sync(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sync store", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Report the store connection status
// @Tags system
// @Produce json
// @Success 200 {object} services.ConnectionStatus
// @Router /system/status [get]
func (h *SystemHandler) Status(c *gin.Context) {
	status, err := h.connectorService.Status(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to read connection status", Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, status)
}

// @Summary Upload a platform invoice file
// @Description Archives the invoice and records a placeholder fixed cost awaiting review
// @Tags system
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Invoice file"
// @Success 201 {object} models.FixedCost
// @Failure 400 {object} ErrorResponse
// @Router /system/invoices [post]
func (h *SystemHandler) UploadInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing invoice file", Message: err.Error()})
		return
	}
	if fileHeader.Size > maxInvoiceSize {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invoice file too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read invoice file", Message: err.Error()})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(io.LimitReader(file, maxInvoiceSize))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read invoice file", Message: err.Error()})
		return
	}

	fixedCost, err := h.connectorService.UploadInvoice(c.Request.Context(), fileHeader.Filename, contents)
	if err != nil {
		if isValidationError(err) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid invoice file", Message: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to store invoice", Message: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, fixedCost)
}
