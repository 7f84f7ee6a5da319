package routes

import (
	"fmt"

	"fintrack/internal/apis/handlers"
	"fintrack/internal/di"

	"github.com/gin-gonic/gin"
)

func SetupDocumentRoutes(api *gin.RouterGroup) error {
	categoryHandler, transactionHandler, err := di.GetDocumentHandlers()
	if err != nil {
		return fmt.Errorf("failed to get document handlers: %w", err)
	}

	RegisterDocumentRoutes(api.Group("/categories"), categoryHandler)
	RegisterDocumentRoutes(api.Group("/transactions"), transactionHandler)
	return nil
}

func RegisterDocumentRoutes(group *gin.RouterGroup, h *handlers.DocumentHandler) {
	group.GET("", h.List)
	group.POST("", h.BulkInsert)
	group.PUT("", h.ReplaceAll)
}
