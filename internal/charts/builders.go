package charts

import (
	"fmt"

	"bikedash/internal/pipeline"
)

// Series colors matching the dashboard palette.
const (
	tripsColor = "#00E5FF"
	tempColor  = "#FFA726"
)

// DailyTrend builds the dual-axis line chart of daily trips vs temperature.
// Trips plot against the primary axis, temperature dashed on the secondary.
func DailyTrend(rows []pipeline.Row) Spec {
	x := make([]string, len(rows))
	trips := make([]float64, len(rows))
	temps := make([]float64, len(rows))

	for i, row := range rows {
		x[i] = row.Day.Format("2006-01-02")
		trips[i] = row.Value(pipeline.MeasureTrips)
		temps[i] = row.Value(pipeline.MeasureAvgTemp)
	}

	return Spec{
		Title:          "Daily Bike Trips vs. Temperature in NYC",
		XTitle:         "Date",
		YTitle:         "Number of Trips",
		SecondaryTitle: "Temperature (°C)",
		HasSecondary:   true,
		CommaTicks:     true,
		Theme:          DarkTheme(),
		Series: []Series{
			{Name: "Daily Bike Trips", Kind: LineSeries, X: x, Y: trips, Color: tripsColor},
			{Name: "Average Temperature (°C)", Kind: LineSeries, X: x, Y: temps, Color: tempColor, Dashed: true, Secondary: true},
		},
	}
}

// StationRanking builds the horizontal ranked bar chart of top start
// stations. Rows are expected in ascending trip order (largest at top);
// color intensity scales with the measure.
func StationRanking(rows []pipeline.Row) Spec {
	x := make([]string, len(rows))
	trips := make([]float64, len(rows))

	for i, row := range rows {
		x[i] = row.StationName
		trips[i] = row.Value(pipeline.MeasureTrips)
	}

	theme := DarkTheme()
	theme.Height = rankedBarHeight
	// widened to fit long station names
	theme.MarginLeft = 260
	theme.MarginRight = 60

	return Spec{
		Title:      fmt.Sprintf("Top %d Most Popular Start Stations", len(rows)),
		XTitle:     "Number of Trips",
		YTitle:     "Start Station",
		Horizontal: true,
		ColorScale: blues,
		CommaTicks: true,
		Theme:      theme,
		Series: []Series{
			{Name: "Trips", Kind: BarSeries, X: x, Y: trips},
		},
	}
}

// SeasonalDemand builds the dual-axis seasonal chart: trip bars on the
// primary axis, a temperature line with markers on the secondary, with the
// categorical x-axis already in fixed calendar order.
func SeasonalDemand(rows []pipeline.Row) Spec {
	x := make([]string, len(rows))
	trips := make([]float64, len(rows))
	temps := make([]float64, len(rows))

	for i, row := range rows {
		x[i] = string(row.Season)
		trips[i] = row.Value(pipeline.MeasureTrips)
		temps[i] = row.Value(pipeline.MeasureAvgTemp)
	}

	return Spec{
		Title:          "Seasonal CitiBike Demand vs Temperature",
		XTitle:         "Season",
		YTitle:         "Total Trips",
		SecondaryTitle: "Average Temperature (°C)",
		HasSecondary:   true,
		CommaTicks:     true,
		Theme:          DarkTheme(),
		Series: []Series{
			{Name: "Total Trips", Kind: BarSeries, X: x, Y: trips, Color: tripsColor},
			{Name: "Average Temperature (°C)", Kind: LineSeries, X: x, Y: temps, Color: tempColor, Markers: true, Secondary: true},
		},
	}
}
