package tui

import (
	"fmt"
	"strings"

	"github.com/mvelders/baedeker/internal/core/styles"
	"github.com/mvelders/baedeker/internal/guide"
)

// WeatherDialog shows the multi-day outlook for the guide's city.
type WeatherDialog struct {
	dialogState
	city string
	days []guide.ForecastDay
}

func NewWeatherDialog() *WeatherDialog {
	return &WeatherDialog{}
}

// SetForecast replaces the outlook contents.
func (d *WeatherDialog) SetForecast(city string, days []guide.ForecastDay) {
	d.city = city
	d.days = days
}

func (d *WeatherDialog) View(width, _ int) string {
	var b strings.Builder
	if d.busy {
		b.WriteString(styles.DialogBusyStyle.Render("Fetching forecast..."))
	}
	for i, day := range d.days {
		high := styles.WeatherHighStyle.Render(fmt.Sprintf("%2d°", day.High))
		low := styles.WeatherLowStyle.Render(fmt.Sprintf("%2d°", day.Low))
		b.WriteString(fmt.Sprintf("%-10s %s/%s  %s", day.Day, high, low, day.Summary))
		if i < len(d.days)-1 {
			b.WriteString("\n")
		}
	}
	title := "Weather"
	if d.city != "" {
		title = "Weather · " + d.city
	}
	return renderDialog(styles.IconWeather, title, b.String(), "esc close", width)
}
