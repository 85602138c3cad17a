package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"campsite/errors"
	"campsite/utils"
)

// ErrorBody is the error shape of every endpoint: {"error": "<message>"}.
type ErrorBody struct {
	Error string `json:"error"`
}

// Success writes data with 200.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes data with 201.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes an empty 204.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error writes message with the given status.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// HandleError maps a service error to the response body. AppErrors keep
// their status and message, anything else becomes a generic 500.
func HandleError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		if appErr.Status == http.StatusInternalServerError && appErr.Err != nil {
			utils.LogError("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, appErr.Err)
		}
		Error(c, appErr.Status, appErr.Message)
		return
	}

	utils.LogError("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	Error(c, http.StatusInternalServerError, "Internal Server Error")
}

// Unauthorized writes a 401 with the standard German message.
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "Authentifizierung erforderlich.")
}

// NotFound writes a 404 with the given message.
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// BadRequest writes a 400 with the given message.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}
