// README: Weather handler.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelagent/internal/modules/weather"
)

const weatherFailure = "Error fetching weather"

type WeatherHandler struct {
	weather *weather.Service
	timeout time.Duration
}

func NewWeatherHandler(svc *weather.Service, timeout time.Duration) *WeatherHandler {
	return &WeatherHandler{weather: svc, timeout: timeout}
}

// Get handles POST /api/weather.
func (h *WeatherHandler) Get(c *gin.Context) {
	var req weather.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusUnprocessableEntity, "invalid json: "+err.Error())
		return
	}
	if req.Destination == nil {
		writeError(c, http.StatusUnprocessableEntity, "destination is required")
		return
	}

	ctx, cancel := callContext(c, h.timeout)
	defer cancel()

	res, err := h.weather.GetWeather(ctx, *req.Destination)
	if err != nil {
		writeFailure(c, weatherFailure, err)
		return
	}
	writeJSON(c, http.StatusOK, res.Raw)
}
