package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/models"
	"github.com/teamtrack-simple/services"
)

// respondError maps service sentinel errors onto the HTTP status taxonomy.
// Anything unmapped is a 500 with a generic message; the detail stays in the
// server log.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, services.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, services.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, services.ErrInvalid):
		status = http.StatusBadRequest
		message = err.Error()
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// respondBadRequest reports a body/binding validation failure
func respondBadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Invalid request body",
		"error":   err.Error(),
	})
}

// currentUser reads the identity placed on the context by AuthMiddleware
func currentUser(c *gin.Context) (userID, email string, userType models.UserType) {
	if v, ok := c.Get("userId"); ok {
		userID, _ = v.(string)
	}
	if v, ok := c.Get("email"); ok {
		email, _ = v.(string)
	}
	if v, ok := c.Get("userType"); ok {
		t, _ := v.(string)
		userType = models.UserType(t)
	}
	return userID, email, userType
}
