// README: Base handler utilities (JSON helpers, error body, model call deadline).
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Detail: msg})
}

// writeFailure reports a service error as 500 with the endpoint's prefix.
func writeFailure(c *gin.Context, prefix string, err error) {
	_ = c.Error(err)
	writeError(c, http.StatusInternalServerError, fmt.Sprintf("%s: %v", prefix, err))
}

// callContext bounds a model call by the request context and timeout.
// A zero timeout leaves only the request context in charge.
func callContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
