package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/qrtclosure/qrt_closure_app/internal/core/domain"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/qrtclosure/qrt_closure_app/internal/middleware"
	"github.com/qrtclosure/qrt_closure_app/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// registerHandler handles HTTP requests for the itemized invoice register.
type registerHandler struct {
	registerService portssvc.RegisterService
	posthogClient   *utils.PosthogClientWrapper
}

// registerItemizedRegisterRoutes registers the register view, export, preview and toggle routes.
func registerItemizedRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.RegisterService, posthogClient *utils.PosthogClientWrapper) {
	h := &registerHandler{registerService: registerService, posthogClient: posthogClient}

	rg.GET("/documents/:document_id/register", h.getRegister)
	rg.GET("/documents/:document_id/register/export", h.exportRegister)

	register := rg.Group("/register")
	{
		register.POST("/preview", h.previewRegister)
		register.POST("/toggle", h.toggleExpanded)
	}
}

// getRegister godoc
// @Summary Itemized invoice register of a document
// @Description Groups the document's lines into invoices with one column per item description.
// @Description mode=capped clips the columns to the largest invoice's item count; mode=complete keeps all.
// @Tags register
// @Produce  json
// @Param   document_id path string true "Document ID"
// @Param   mode query string false "Column mode" Enums(capped, complete)
// @Param   expanded query []string false "Invoice numbers shown with per-line detail" collectionFormat(multi)
// @Success 200 {object} dto.ItemizedRegisterResponse
// @Failure 400 {object} map[string]string "Invalid parameters or non-numeric amount"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id}/register [get]
func (h *registerHandler) getRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")

	var query dto.RegisterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Failed to bind query for GetRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	params := dto.RegisterParams{Mode: domain.ColumnMode(query.Mode), Expanded: query.Expanded}
	register, err := h.registerService.DocumentRegister(c.Request.Context(), documentID, userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build register")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemizedRegisterResponse(register, query.Expanded))
}

// exportRegister godoc
// @Summary Export the itemized register
// @Description Renders the register as an XLSX workbook with a register sheet and a per-line details sheet
// @Tags register
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   document_id path string true "Document ID"
// @Param   mode query string false "Column mode" Enums(capped, complete)
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Invalid parameters or non-numeric amount"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id}/register/export [get]
func (h *registerHandler) exportRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")

	var query dto.RegisterQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	out, err := h.registerService.ExportDocumentRegister(c.Request.Context(), documentID, userID, dto.RegisterParams{Mode: domain.ColumnMode(query.Mode)})
	if err != nil {
		respondWithError(c, logger, err, "Failed to export register")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "register_exported", map[string]any{
		"document_id": documentID,
		"bytes":       len(out),
	})
	c.Header("Content-Disposition", `attachment; filename="register-`+documentID+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, out)
}

// previewRegister godoc
// @Summary Preview a register for inline lines
// @Description Builds the itemized register from lines in the request body without storing them
// @Tags register
// @Accept  json
// @Produce  json
// @Param   request body dto.PreviewRegisterRequest true "Lines and view options"
// @Success 200 {object} dto.ItemizedRegisterResponse
// @Failure 400 {object} map[string]string "Invalid input or non-numeric amount"
// @Security BearerAuth
// @Router /register/preview [post]
func (h *registerHandler) previewRegister(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PreviewRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewRegister", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	params := dto.RegisterParams{Mode: domain.ColumnMode(req.Mode), Expanded: req.Expanded}
	register, err := h.registerService.PreviewRegister(c.Request.Context(), req.DocumentName, dto.ToDomainTransactionLines(req.Lines), params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build register preview")
		return
	}

	c.JSON(http.StatusOK, dto.ToItemizedRegisterResponse(register, req.Expanded))
}

// toggleExpanded godoc
// @Summary Toggle an invoice's expanded state
// @Description Returns the expanded set with invoiceNumber added if absent or removed if present
// @Tags register
// @Accept  json
// @Produce  json
// @Param   request body dto.ToggleRequest true "Current set and invoice to flip"
// @Success 200 {object} dto.ToggleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Security BearerAuth
// @Router /register/toggle [post]
func (h *registerHandler) toggleExpanded(c *gin.Context) {
	var req dto.ToggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToggleResponse{Expanded: h.registerService.ToggleExpanded(req.Expanded, req.InvoiceNumber)})
}
