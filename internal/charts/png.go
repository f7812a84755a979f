package charts

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"bikedash/internal/pipeline"
)

// RenderDailyPNG renders the daily trips vs temperature chart as a static
// PNG for download or embedding outside the dashboard.
func RenderDailyPNG(rows []pipeline.Row, w io.Writer) error {
	if len(rows) == 0 {
		return fmt.Errorf("no rows to chart")
	}

	tripX := make([]time.Time, 0, len(rows))
	tripY := make([]float64, 0, len(rows))
	tempX := make([]time.Time, 0, len(rows))
	tempY := make([]float64, 0, len(rows))

	for _, row := range rows {
		tripX = append(tripX, row.Day)
		tripY = append(tripY, row.Value(pipeline.MeasureTrips))

		// go-chart cannot draw gaps, so undefined temperatures are skipped
		if temp := row.Value(pipeline.MeasureAvgTemp); !math.IsNaN(temp) {
			tempX = append(tempX, row.Day)
			tempY = append(tempY, temp)
		}
	}

	graph := chart.Chart{
		Title: "Daily Bike Trips vs Temperature",
		TitleStyle: chart.Style{
			FontSize:  16,
			FontColor: drawing.ColorBlack,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   70,
				Right:  70,
				Bottom: 60,
			},
		},
		Height: 400,
		Width:  900,
		XAxis: chart.XAxis{
			Name: "Date",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 9,
			},
			ValueFormatter: chart.TimeDateValueFormatter,
		},
		YAxis: chart.YAxis{
			Name: "Trips",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
		YAxisSecondary: chart.YAxis{
			Name: "Temperature (°C)",
			NameStyle: chart.Style{
				FontSize: 12,
			},
			Style: chart.Style{
				FontSize: 10,
			},
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name: "Daily Bike Trips",
				Style: chart.Style{
					StrokeColor: drawing.Color{R: 0, G: 229, B: 255, A: 255},
					StrokeWidth: 2,
				},
				XValues: tripX,
				YValues: tripY,
			},
		},
	}

	if len(tempX) > 0 {
		graph.Series = append(graph.Series, chart.TimeSeries{
			Name:  "Average Temperature (°C)",
			YAxis: chart.YAxisSecondary,
			Style: chart.Style{
				StrokeColor:     drawing.Color{R: 255, G: 167, B: 38, A: 255},
				StrokeWidth:     2,
				StrokeDashArray: []float64{5, 5},
			},
			XValues: tempX,
			YValues: tempY,
		})
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("failed to render daily chart: %w", err)
	}

	return nil
}
