package api

import (
	"crypto/subtle" // Constant-time credential comparison
	"net/http"      // HTTP status codes

	"loyalty_service/internal/config" // Application configuration
	"loyalty_service/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
)

// Request struct for token minting
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required"`     // Client id must be provided
	ClientSecret string `json:"client_secret" binding:"required"` // Client secret must be provided
}

// Response struct for authentication
type AuthResponse struct {
	Token string `json:"token"` // JWT token
}

// TokenHandler mints a bearer token for the configured service
// credentials. There is no user registry; the only principal is the
// API client pair from the environment.
func TokenHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req TokenRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Compare both credentials in constant time
		idOK := subtle.ConstantTimeCompare([]byte(req.ClientID), []byte(cfg.APIClientID)) == 1
		secretOK := subtle.ConstantTimeCompare([]byte(req.ClientSecret), []byte(cfg.APIClientSecret)) == 1
		if !idOK || !secretOK {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(req.ClientID, cfg.JWTSecret)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, AuthResponse{Token: token})
	}
}
