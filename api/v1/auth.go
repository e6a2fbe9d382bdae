package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teamtrack-simple/dto"
	"github.com/teamtrack-simple/services"
)

// Register handles user registration
func Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	user, err := services.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles user and admin authentication
func Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	authResponse, err := services.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Authentication failed",
		})
		return
	}

	// Set token as HttpOnly cookie (expires in 24 hours)
	c.SetCookie(
		"access_token",     // name
		authResponse.Token, // value
		86400,              // max age (24 hours in seconds)
		"/",                // path
		"",                 // domain
		true,               // secure (HTTPS only)
		true,               // httpOnly (not accessible via JS)
	)

	// Also return token in response body for clients that prefer Bearer auth
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    authResponse,
	})
}

// Logout clears the auth cookie
func Logout(c *gin.Context) {
	c.SetCookie(
		"access_token", // name
		"",             // value (empty)
		-1,             // max age (expired)
		"/",            // path
		"",             // domain
		true,           // secure (HTTPS only)
		true,           // httpOnly (not accessible via JS)
	)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the currently authenticated user's profile
func GetCurrentUser(c *gin.Context) {
	userID, _, _ := currentUser(c)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "User not authenticated",
		})
		return
	}

	user, err := services.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve user profile",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
