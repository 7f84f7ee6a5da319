package handlers

import (
	"fintrack/internal/apis/dtos"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, statusCode int, err error) {
	c.JSON(statusCode, dtos.ErrorResponse(err))
}
