package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wbonfim/DeliveryApp/pkg/apperr"
)

// Envelope: success replies carry {message, data}, failures carry {message}.

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, gin.H{"message": message, "data": data})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "data": data})
}

func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"message": message})
}

func Unauthorized(c *gin.Context, message string) {
	c.JSON(http.StatusUnauthorized, gin.H{"message": message})
}

func Forbidden(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"message": message})
}

func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"message": message})
}

// Error maps an application error to its status and user-facing message.
// Internal causes are never leaked to the client.
func Error(c *gin.Context, err error) {
	appErr := apperr.From(err)
	_ = c.Error(err)
	c.JSON(appErr.Status(), gin.H{"message": appErr.Message})
}
