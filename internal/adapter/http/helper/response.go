package helper

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taskapp/internal/adapter/http/validation"
	"taskapp/internal/core/model/response"
)

func SendError(c *gin.Context, statusCode int, code string, errors []response.ValidationError) {
	c.JSON(statusCode, response.ErrorResponse{
		Error: response.ResponseError{
			Code:   code,
			Errors: errors,
		},
	})
}

func SendValidationError(c *gin.Context, err error) {
	SendError(c, http.StatusBadRequest, "VALIDATION_ERROR", validation.FormatValidationErrors(err))
}

func SendBadRequest(c *gin.Context, field, message string) {
	SendError(c, http.StatusBadRequest, "BAD_REQUEST", []response.ValidationError{
		{Field: field, Message: message},
	})
}

func SendUnauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": message})
}

func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"error": message})
}

func SendInternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
