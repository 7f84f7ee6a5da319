package middlewares

import (
	"net/http"

	"fintrack/internal/apis/dtos"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CustomRecoveryMiddleware logs the panic with its stack and answers with the
// standard error envelope.
func CustomRecoveryMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return ginzap.CustomRecoveryWithZap(logger, true, func(c *gin.Context, recovered interface{}) {
		errorMsg := "Internal server error"
		c.AbortWithStatusJSON(http.StatusInternalServerError, dtos.Response{
			Success: false,
			Error:   &errorMsg,
		})
	})
}
