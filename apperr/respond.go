package apperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Respond writes the HTTP translation of err and ends the request.
// Validation and business-rule failures are client errors with a message,
// not-found is body-less, anything else is a 500.
func Respond(c *gin.Context, err error) {
	switch KindOf(err) {
	case KindValidation, KindBusinessRule:
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case KindNotFound:
		c.Status(http.StatusNotFound)
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
