package handlers

import (
	"net/http"

	"fintrack/internal/apis/dtos"
	"fintrack/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

func (h *UserHandler) List(c *gin.Context) {
	users, statusCode, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), users)
}

func (h *UserHandler) BulkInsert(c *gin.Context) {
	docs, ok := bindDocuments(c)
	if !ok {
		return
	}

	response, statusCode, err := h.userService.InsertMany(c.Request.Context(), docs)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), response)
}

func (h *UserHandler) ReplaceAll(c *gin.Context) {
	docs, ok := bindDocuments(c)
	if !ok {
		return
	}

	statusCode, err := h.userService.ReplaceAll(c.Request.Context(), docs)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dtos.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	response, statusCode, err := h.userService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), response)
}

func (h *UserHandler) Delete(c *gin.Context) {
	statusCode, err := h.userService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	user, statusCode, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, int(statusCode), err)
		return
	}

	c.JSON(int(statusCode), dtos.Response{
		Success: true,
		Data:    user,
	})
}
