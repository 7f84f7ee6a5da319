package handlers

import (
	"fintrack/internal/apis/dtos"
	"fintrack/internal/constants"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

type DatabaseHandler struct {
	databaseService services.DatabaseService
}

func NewDatabaseHandler(databaseService services.DatabaseService) *DatabaseHandler {
	return &DatabaseHandler{
		databaseService: databaseService,
	}
}

func (h *DatabaseHandler) TestConnection(c *gin.Context) {
	statusCode, err := h.databaseService.TestConnection(c.Request.Context())
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Message: constants.MsgConnectionFailed,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Message: constants.MsgConnectionSuccessful,
	})
}

func (h *DatabaseHandler) InitDatabase(c *gin.Context) {
	statusCode, err := h.databaseService.InitDatabase(c.Request.Context())
	if err != nil {
		errorMsg := err.Error()
		c.JSON(int(statusCode), dtos.Response{
			Success: false,
			Message: constants.MsgDatabaseInitFailed,
			Error:   &errorMsg,
		})
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Message: constants.MsgDatabaseInitialized,
	})
}
