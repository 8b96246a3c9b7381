package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crestview/estates-api/internal/pagination"
)

// envelope is the uniform response wrapper for every endpoint.
type envelope struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// listPayload wraps a page of items with its navigation state.
type listPayload struct {
	Data       interface{}     `json:"data"`
	Pagination pagination.Page `json:"pagination"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data})
}

func respondMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, envelope{Success: true, Data: data, Message: message})
}

func respondList(c *gin.Context, items interface{}, page pagination.Page) {
	c.JSON(http.StatusOK, envelope{
		Success: true,
		Data:    listPayload{Data: items, Pagination: page},
	})
}
