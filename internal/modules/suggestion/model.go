package suggestion

import (
	"encoding/json"
	"errors"
)

// ErrImageDecode is returned when uploaded bytes are not a readable image.
var ErrImageDecode = errors.New("cannot decode image")

// DestinationCount is how many suggestions every prompt asks for.
const DestinationCount = 5

// BudgetLevel is the cost bracket the model assigns to a destination.
type BudgetLevel string

const (
	BudgetLow      BudgetLevel = "Budget"
	BudgetModerate BudgetLevel = "Moderate"
	BudgetLuxury   BudgetLevel = "Luxury"
)

func (b BudgetLevel) valid() bool {
	switch b {
	case BudgetLow, BudgetModerate, BudgetLuxury:
		return true
	}
	return false
}

// Destination is one suggestion as produced by the model.
type Destination struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	BestTime    string      `json:"best_time"`
	Attractions []string    `json:"attractions"`
	BudgetLevel BudgetLevel `json:"budget_level"`
}

// LocationRequest is the payload of POST /api/suggest-by-location.
// Location is nil when the field is absent.
type LocationRequest struct {
	Location    *string  `json:"location"`
	Preferences []string `json:"preferences"`
}

// Suggestions is one model answer. Raw is the answer exactly as decoded;
// Destinations is its typed view and is nil when Raw does not fit the shape.
type Suggestions struct {
	Raw          json.RawMessage
	Destinations []Destination
}

// Response wraps suggestions for both suggestion endpoints.
type Response struct {
	Destinations json.RawMessage `json:"destinations"`
}
