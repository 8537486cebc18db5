package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/qrtclosure/qrt_closure_app/internal/core/ports/services"
	"github.com/qrtclosure/qrt_closure_app/internal/dto"
	"github.com/qrtclosure/qrt_closure_app/internal/middleware"
)

// documentHandler handles HTTP requests related to uploaded documents and their lines.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
	maxUploadBytes  int64
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade, maxUploadBytes int64) *documentHandler {
	return &documentHandler{
		documentService: ds,
		maxUploadBytes:  maxUploadBytes,
	}
}

// registerDocumentRoutes registers routes related to documents.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade, maxUploadBytes int64) {
	h := newDocumentHandler(documentService, maxUploadBytes)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.createDocument)
		documents.GET("", h.listDocuments)
		documents.GET("/:document_id", h.getDocument)
		documents.POST("/:document_id/lines", h.addLines)
		documents.POST("/:document_id/lines/import", h.importLines)
	}
}

// createDocument godoc
// @Summary Register a document
// @Description Creates an empty document that extracted transaction lines are attached to
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.CreateDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) createDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDocument", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	document, err := h.documentService.CreateDocument(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create document")
		return
	}

	c.JSON(http.StatusCreated, dto.ToDocumentResponse(document))
}

// listDocuments godoc
// @Summary List documents
// @Description Lists the caller's documents, newest first, with cursor pagination
// @Tags documents
// @Produce  json
// @Param   limit query int false "Page size (1-100, default 20)"
// @Param   nextToken query string false "Cursor returned by the previous page"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDocumentsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListDocuments", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	resp, err := h.documentService.ListDocuments(c.Request.Context(), userID, params)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list documents")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDocument godoc
// @Summary Get a document
// @Tags documents
// @Produce  json
// @Param   document_id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Document not found"
// @Security BearerAuth
// @Router /documents/{document_id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	document, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve document")
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(document))
}

// addLines godoc
// @Summary Append extracted lines
// @Description Appends transaction lines, as produced by the extraction pipeline, to a document
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document_id path string true "Document ID"
// @Param   lines body dto.AddLinesRequest true "Lines to append"
// @Success 201 {object} dto.ImportLinesResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Line ID already stored"
// @Security BearerAuth
// @Router /documents/{document_id}/lines [post]
func (h *documentHandler) addLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")

	var req dto.AddLinesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	n, err := h.documentService.AddLines(c.Request.Context(), documentID, dto.ToDomainTransactionLines(req.Lines), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add lines")
		return
	}

	c.JSON(http.StatusCreated, dto.ImportLinesResponse{DocumentID: documentID, Imported: n})
}

// importLines godoc
// @Summary Import a sales register workbook
// @Description Reads transaction lines from an XLSX upload and appends them to a document
// @Tags documents
// @Accept  multipart/form-data
// @Produce  json
// @Param   document_id path string true "Document ID"
// @Param   file formData file true "XLSX workbook"
// @Param   sheet formData string false "Sheet name (defaults to the first sheet)"
// @Success 201 {object} dto.ImportLinesResponse
// @Failure 400 {object} map[string]string "Unreadable workbook or invalid rows"
// @Failure 403 {object} map[string]string "Not the owner"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 413 {object} map[string]string "Upload too large"
// @Security BearerAuth
// @Router /documents/{document_id}/lines/import [post]
func (h *documentHandler) importLines(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("document_id")

	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	fileHeader, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Upload exceeds the size limit"})
			return
		}
		logger.Warn("Missing workbook in ImportLines", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Multipart field 'file' is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondWithError(c, logger, err, "Failed to read upload")
		return
	}
	defer file.Close()

	logger.Info("Importing workbook",
		slog.String("document_id", documentID),
		slog.String("filename", fileHeader.Filename),
		slog.Int64("size", fileHeader.Size))

	n, err := h.documentService.ImportLines(c.Request.Context(), documentID, file, c.PostForm("sheet"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to import workbook")
		return
	}

	c.JSON(http.StatusCreated, dto.ImportLinesResponse{DocumentID: documentID, Imported: n})
}
