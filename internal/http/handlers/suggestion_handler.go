// README: Destination suggestion handlers (by location and by image).
package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"travelagent/internal/modules/suggestion"
)

const (
	locationFailure = "Error generating suggestions"
	imageFailure    = "Error processing image"

	// uploadOverhead leaves room for multipart headers and the preferences field.
	uploadOverhead = 1 << 20
)

type SuggestionHandler struct {
	suggestion *suggestion.Service
	timeout    time.Duration
	maxUpload  int64
}

func NewSuggestionHandler(svc *suggestion.Service, timeout time.Duration, maxUpload int64) *SuggestionHandler {
	return &SuggestionHandler{suggestion: svc, timeout: timeout, maxUpload: maxUpload}
}

// ByLocation handles POST /api/suggest-by-location.
func (h *SuggestionHandler) ByLocation(c *gin.Context) {
	var req suggestion.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusUnprocessableEntity, "invalid json: "+err.Error())
		return
	}
	if req.Location == nil {
		writeError(c, http.StatusUnprocessableEntity, "location is required")
		return
	}

	ctx, cancel := callContext(c, h.timeout)
	defer cancel()

	res, err := h.suggestion.SuggestByLocation(ctx, *req.Location, req.Preferences)
	if err != nil {
		writeFailure(c, locationFailure, err)
		return
	}
	writeJSON(c, http.StatusOK, suggestion.Response{Destinations: res.Raw})
}

// ByImage handles POST /api/suggest-by-image. Preferences come from the
// "preferences" form field or, failing that, the query string.
func (h *SuggestionHandler) ByImage(c *gin.Context) {
	if h.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUpload+uploadOverhead)
	}
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		writeError(c, http.StatusUnprocessableEntity, "file is required")
		return
	}
	if h.maxUpload > 0 && fh.Size > h.maxUpload {
		writeError(c, http.StatusRequestEntityTooLarge, "file too large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeFailure(c, imageFailure, err)
		return
	}
	data, err := io.ReadAll(f)
	_ = f.Close()
	if err != nil {
		writeFailure(c, imageFailure, err)
		return
	}

	raw, ok := c.GetPostForm("preferences")
	if !ok {
		raw = c.Query("preferences")
	}

	ctx, cancel := callContext(c, h.timeout)
	defer cancel()

	res, err := h.suggestion.SuggestByImage(ctx, data, suggestion.ParsePreferences(raw))
	if err != nil {
		writeFailure(c, imageFailure, err)
		return
	}
	writeJSON(c, http.StatusOK, suggestion.Response{Destinations: res.Raw})
}
