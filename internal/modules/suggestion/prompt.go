package suggestion

import (
	"fmt"
	"strings"
)

const destinationFormat = `For each destination, provide:
1. Name of the destination
2. %s
3. Best time to visit
4. Main attractions (list 3)
5. Estimated budget level (Budget/Moderate/Luxury)

Format your response as a JSON array with this structure:
[
  {
    "name": "Destination Name",
    "description": "Brief description",
    "best_time": "Best time to visit",
    "attractions": ["Attraction 1", "Attraction 2", "Attraction 3"],
    "budget_level": "Budget/Moderate/Luxury"
  }
]

Only return the JSON array, no additional text.`

// CleanPreferences trims every tag and drops empty ones.
func CleanPreferences(prefs []string) []string {
	out := make([]string, 0, len(prefs))
	for _, p := range prefs {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParsePreferences splits the comma separated form value used by the image endpoint.
func ParsePreferences(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return CleanPreferences(strings.Split(raw, ","))
}

func preferencesClause(prefs []string) string {
	if len(prefs) == 0 {
		return ""
	}
	return "\nUser preferences: " + strings.Join(prefs, ", ")
}

func buildLocationPrompt(location string, prefs []string) string {
	return fmt.Sprintf("You are a travel expert. Generate %d travel destination suggestions near or related to %s.\n%s\n\n",
		DestinationCount, location, preferencesClause(prefs)) +
		fmt.Sprintf(destinationFormat, "Brief description (2-3 sentences)")
}

func buildImagePrompt(prefs []string) string {
	return fmt.Sprintf("Analyze this landmark or travel image and suggest %d similar travel destinations with comparable features, architecture, or atmosphere.\n%s\n\n",
		DestinationCount, preferencesClause(prefs)) +
		fmt.Sprintf(destinationFormat, "Brief description explaining similarity to the image (2-3 sentences)")
}
