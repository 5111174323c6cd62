package util

import (
	"fmt"
	"log"
	"os"

	"openhours-server/models"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const WEEKLY_HOURS_CHART_FILE = "weekly_hours.html"

// PlotWeeklyHours generates an HTML file rendering a bar chart of how many
// hours the business is open on each day of the week.
func PlotWeeklyHours(name string, week models.WeekSchedule) {
	days := week.Days()

	labels := make([]string, 0, len(days))
	values := make([]opts.BarData, 0, len(days))
	for _, d := range days {
		labels = append(labels, d.Day.Code())
		values = append(values, opts.BarData{Value: openHoursForDay(d)})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Weekly Open Hours",
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: name,
		}),
	)

	bar.SetXAxis(labels).AddSeries("Open hours", values)

	// Create an HTML file to render the chart.
	f, err := os.Create(WEEKLY_HOURS_CHART_FILE)
	if err != nil {
		log.Fatalf("Failed to create HTML file: %v", err)
	}
	defer f.Close()

	// Render the chart into the HTML file.
	if err := bar.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}

	fmt.Println("Weekly hours chart generated: " + WEEKLY_HOURS_CHART_FILE)
}

// openHoursForDay totals a day's open time in hours. An overnight shift
// contributes its full span to the day that owns it.
func openHoursForDay(d models.DaySchedule) float64 {
	totalSeconds := 0
	for _, s := range d.Shifts {
		if s.Overnight() {
			totalSeconds += models.SECONDS_PER_DAY - s.Start.DaySeconds() + s.End.DaySeconds()
			continue
		}
		totalSeconds += s.End.DaySeconds() - s.Start.DaySeconds()
	}
	return float64(totalSeconds) / 3600.0
}
