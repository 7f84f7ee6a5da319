package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"fintrack/internal/apis/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newDatabaseRouter(svc *MockDatabaseService) *gin.Engine {
	h := handlers.NewDatabaseHandler(svc)
	router := gin.New()
	router.GET("/api/test-connection", h.TestConnection)
	router.GET("/api/init-database", h.InitDatabase)
	return router
}

func TestDatabaseHandlerTestConnection(t *testing.T) {
	svc := new(MockDatabaseService)
	svc.On("TestConnection", mock.Anything).Return(uint(http.StatusOK), nil).Once()
	svc.On("TestConnection", mock.Anything).Return(uint(http.StatusInternalServerError), errors.New("server selection error")).Once()
	router := newDatabaseRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/test-connection", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"MongoDB connection successful"}`, w.Body.String())

	w = performRequest(router, http.MethodGet, "/api/test-connection", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "server selection error", body["error"])
	assert.NotEmpty(t, body["message"])
}

func TestDatabaseHandlerInitDatabase(t *testing.T) {
	svc := new(MockDatabaseService)
	svc.On("InitDatabase", mock.Anything).Return(uint(http.StatusOK), nil).Once()
	svc.On("InitDatabase", mock.Anything).Return(uint(http.StatusInternalServerError), errors.New("not authorized")).Once()
	router := newDatabaseRouter(svc)

	w := performRequest(router, http.MethodGet, "/api/init-database", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"message":"Database initialized successfully"}`, w.Body.String())

	w = performRequest(router, http.MethodGet, "/api/init-database", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "not authorized", body["error"])
}
