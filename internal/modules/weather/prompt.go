package weather

import "fmt"

// buildPrompt asks the model to call the weather tool and answer with a Report.
// Nothing forces the model to use the tool; it may invent plausible values.
func buildPrompt(destination string) string {
	return fmt.Sprintf(`Get the current weather for %s and return the information in the following JSON structure. Use the %s function to fetch the data, then format your response as valid JSON.

Your response must be ONLY a JSON object with this exact structure (no additional text, no markdown):

{
  "weather_data": {
    "location": "City Name",
    "temperature": 25,
    "unit": "celsius",
    "condition": "Clear Sky",
    "humidity": "65%%",
    "wind_speed": "15 km/h"
  },
  "description": "A natural language description of the weather, including advice for travelers. For example: 'The weather in [city] is currently [condition] with a comfortable temperature of [X]°C. It's a great day for outdoor activities with [humidity] humidity and light winds at [speed].'"
}

Make sure the temperature is a number (not a string), and provide helpful travel advice in the description based on the weather conditions.`, destination, ToolName)
}
