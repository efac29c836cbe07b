// Package guide models the travel-guide content: city activities loaded
// from markdown, plus the packing-list and weather data the dialogs show.
package guide

import "fmt"

// Activity is one guide entry (a sight, walk, museum, restaurant...).
type Activity struct {
	ID       string // filename-derived slug, unique within the guide
	Category string // parent directory of the source file
	Title    string
	Summary  string
	Markdown string // full source, rendered on demand
	Path     string
}

// Guide is the loaded content for one city.
type Guide struct {
	City       string
	Activities []Activity
}

// Activity returns the activity with the given ID.
func (g *Guide) Activity(id string) (Activity, bool) {
	for _, a := range g.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return Activity{}, false
}

// PackingItem is one row of the packing checklist.
type PackingItem struct {
	Label  string
	Packed bool
}

// DefaultPackingList returns the starter checklist for a trip.
func DefaultPackingList() []PackingItem {
	return []PackingItem{
		{Label: "Passport / ID"},
		{Label: "Rail & transit passes"},
		{Label: "Power adapter"},
		{Label: "Walking shoes"},
		{Label: "Rain jacket"},
		{Label: "Reusable water bottle"},
		{Label: "Day pack"},
		{Label: "Phone charger"},
		{Label: "Swimwear"},
		{Label: "Offline maps"},
	}
}

// ForecastDay is one day of the weather outlook.
type ForecastDay struct {
	Day     string
	Summary string
	High    int // °C
	Low     int
}

// Forecast returns the weather outlook for the city. There is no live
// weather source here; the data is a seasonal placeholder the weather
// dialog renders until a provider is wired in.
func Forecast(city string) []ForecastDay {
	return []ForecastDay{
		{Day: "Today", Summary: "Partly cloudy", High: 22, Low: 13},
		{Day: "Tomorrow", Summary: "Sunny spells", High: 24, Low: 14},
		{Day: "Wednesday", Summary: "Light showers", High: 19, Low: 12},
		{Day: "Thursday", Summary: "Clear", High: 23, Low: 13},
		{Day: "Friday", Summary: "Breezy, sunny", High: 21, Low: 11},
	}
}

// AssistantReply produces the trip assistant's answer for a prompt. Like
// Forecast this is a local stand-in for the chat proxy.
func AssistantReply(city, prompt string) string {
	if prompt == "" {
		return fmt.Sprintf("Ask me anything about %s — opening hours, day trips, where to eat.", city)
	}
	return fmt.Sprintf(
		"For %q in %s: start early to beat the crowds, buy tickets online where you can, and check the guide's practical notes for transit tips.",
		prompt, city,
	)
}
