// README: Liveness endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const rootMessage = "AI-Powered Travel Agent API is running"

// Root handles GET /.
func Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": rootMessage})
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
