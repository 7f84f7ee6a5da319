package handlers

import (
	"net/http"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// DocumentHandler serves the schemaless collections (categories, transactions).
type DocumentHandler struct {
	documentService services.DocumentService
}

func NewDocumentHandler(documentService services.DocumentService) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	docs, statusCode, err := h.documentService.List(c.Request.Context())
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), docs)
}

func (h *DocumentHandler) BulkInsert(c *gin.Context) {
	docs, ok := bindDocuments(c)
	if !ok {
		return
	}

	response, statusCode, err := h.documentService.InsertMany(c.Request.Context(), docs)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), response)
}

func (h *DocumentHandler) ReplaceAll(c *gin.Context) {
	docs, ok := bindDocuments(c)
	if !ok {
		return
	}

	statusCode, err := h.documentService.ReplaceAll(c.Request.Context(), docs)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

// bindDocuments decodes a JSON array of objects. A body that is not an array
// fails like a store write, with a 500.
func bindDocuments(c *gin.Context) ([]bson.M, bool) {
	var docs []bson.M
	if err := c.ShouldBindJSON(&docs); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return nil, false
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, true
}
