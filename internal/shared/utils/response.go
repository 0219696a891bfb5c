package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/travelease/callcenter/internal/shared/errors"
)

// ErrorBody is the only error shape the API emits.
type ErrorBody struct {
	Error string `json:"error"`
}

// SuccessResponse writes data as the response body without an envelope.
func SuccessResponse(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// OKResponse sends data with status 200.
func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse sends data with status 201.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// ErrorResponse sends an error body with the given status code.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Error: message})
}

// ErrorResponseWithError maps err onto a status code. Errors that are not
// AppErrors never leak their text to the client.
func ErrorResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		c.JSON(appErr.Code, ErrorBody{Error: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: errors.GenericServerMessage})
}
