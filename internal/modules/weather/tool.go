package weather

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"travelagent/internal/ai"
)

// ToolName is the name the model sees for the weather tool.
const ToolName = "get_weather"

// ParseUnit maps free text to a Unit. Only "fahrenheit" (any case) selects
// Fahrenheit; everything else, including empty, is Celsius.
func ParseUnit(s string) Unit {
	if strings.EqualFold(strings.TrimSpace(s), string(Fahrenheit)) {
		return Fahrenheit
	}
	return Celsius
}

// RandomWeather returns simulated weather for location. There is no data
// source behind it and results are not reproducible.
func RandomWeather(location string, unit Unit) Data {
	d := Data{
		Location:  location,
		Unit:      unit,
		Condition: Conditions[rand.Intn(len(Conditions))],
		Humidity:  fmt.Sprintf("%d%%", between(40, 80)),
	}
	if unit == Fahrenheit {
		d.Temperature = float64(between(59, 86))
		d.WindSpeed = fmt.Sprintf("%d mph", between(3, 15))
	} else {
		d.Unit = Celsius
		d.Temperature = float64(between(15, 30))
		d.WindSpeed = fmt.Sprintf("%d km/h", between(5, 25))
	}
	return d
}

// between returns a uniform integer in [lo, hi].
func between(lo, hi int) int {
	return lo + rand.Intn(hi-lo+1)
}

// NewTool describes RandomWeather as a callable the model may request.
func NewTool() ai.Tool {
	return ai.Tool{
		Name:        ToolName,
		Description: "Get simulated current weather data for a location.",
		Params: []ai.ToolParam{
			{Name: "location", Type: "string", Description: "City or destination name", Required: true},
			{
				Name:        "unit",
				Type:        "string",
				Description: "Temperature unit",
				Enum:        []string{string(Celsius), string(Fahrenheit)},
			},
		},
		Handler: handleTool,
	}
}

func handleTool(_ context.Context, args map[string]any) (map[string]any, error) {
	location, _ := args["location"].(string)
	if strings.TrimSpace(location) == "" {
		return nil, fmt.Errorf("location is required")
	}
	unit, _ := args["unit"].(string)
	d := RandomWeather(location, ParseUnit(unit))
	return map[string]any{
		"location":    d.Location,
		"temperature": d.Temperature,
		"unit":        string(d.Unit),
		"condition":   d.Condition,
		"humidity":    d.Humidity,
		"wind_speed":  d.WindSpeed,
	}, nil
}
