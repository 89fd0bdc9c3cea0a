package weather

import "encoding/json"

// Unit is the temperature scale of a report.
type Unit string

const (
	Celsius    Unit = "celsius"
	Fahrenheit Unit = "fahrenheit"
)

// Conditions is the fixed set the random generator draws from.
var Conditions = []string{
	"Clear Sky", "Partly Cloudy", "Cloudy", "Light Rain",
	"Sunny", "Overcast", "Scattered Clouds", "Mostly Sunny",
	"Foggy", "Windy", "Drizzle", "Fair",
}

// Request is the payload of POST /api/weather.
// Destination is nil when the field is absent.
type Request struct {
	Destination *string `json:"destination"`
}

// Data is one weather observation, simulated or as reported by the model.
type Data struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	Unit        Unit    `json:"unit"`
	Condition   string  `json:"condition"`
	Humidity    string  `json:"humidity"`
	WindSpeed   string  `json:"wind_speed"`
}

// Report is the shape the model is instructed to answer with.
type Report struct {
	WeatherData Data   `json:"weather_data"`
	Description string `json:"description"`
}

// Result is one model answer. Raw is the answer exactly as decoded; Report is
// its typed view and is nil when Raw does not fit the Report shape.
type Result struct {
	Raw    json.RawMessage
	Report *Report
}
