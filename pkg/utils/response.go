package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination describes the page window of a list response
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Pages int   `json:"pages"`
}

// SuccessResponse sends a standard success JSON response
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// CreatedResponse sends a success response for a newly created resource
func CreatedResponse(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    data,
	})
}

// PaginatedResponse sends a list response with count and pagination metadata
func PaginatedResponse(c *gin.Context, data interface{}, count int, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"count":      count,
		"pagination": pagination,
		"data":       data,
	})
}

// ErrorResponse sends a standard error JSON response
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"success": false,
		"error":   message,
	})
}

// ValidationErrorResponse sends a multi-field validation failure response
func ValidationErrorResponse(c *gin.Context, errs interface{}) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"errors":  errs,
	})
}
