package util

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// weeklyBookings is the static demo series backing the admin dashboard
// chart, consistent with the 186 bookings/month headline metric.
var weeklyBookings = map[string]int{
	"Sunday":    31,
	"Monday":    22,
	"Tuesday":   19,
	"Wednesday": 24,
	"Thursday":  35,
	"Friday":    29,
	"Saturday":  26,
}

var weekdayOrder = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// RenderWeeklyBookingsChart writes an HTML bar chart of bookings per weekday.
func RenderWeeklyBookingsChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Bookings per Weekday",
			Width:     "800px",
			Height:    "400px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Bookings per Weekday",
			Subtitle: "Amman sports venues, current month",
		}),
	)

	data := make([]opts.BarData, 0, len(weekdayOrder))
	for _, day := range weekdayOrder {
		data = append(data, opts.BarData{Value: weeklyBookings[day]})
	}

	bar.SetXAxis(weekdayOrder).AddSeries("Bookings", data)

	return bar.Render(w)
}
