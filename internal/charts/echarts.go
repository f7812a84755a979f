package charts

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"math"
	"strconv"
	"strings"

	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// EChartsCDN is the script the page shell loads once for all chart snippets
const EChartsCDN = "https://cdn.jsdelivr.net/npm/echarts@5.4.3/dist/echarts.min.js"

// commaFormatter renders axis ticks with thousands grouping
const commaFormatter = "function (value) { return value.toLocaleString('en-US'); }"

// RenderHTML renders a chart spec to an embeddable HTML snippet.
// The page shell is expected to load the ECharts script once.
func RenderHTML(spec Spec) (template.HTML, error) {
	var buf bytes.Buffer
	var err error

	switch {
	case spec.Horizontal:
		err = renderRankedBar(spec, &buf)
	case hasBars(spec):
		err = renderBarLine(spec, &buf)
	default:
		err = renderLines(spec, &buf)
	}
	if err != nil {
		return "", fmt.Errorf("failed to render chart %q: %w", spec.Title, err)
	}

	return template.HTML(buf.String()), nil
}

// renderLines renders a spec whose series are all lines (the daily trend)
func renderLines(spec Spec, buf *bytes.Buffer) error {
	line := echarts.NewLine()
	line.SetGlobalOptions(globalOptions(spec)...)
	if spec.HasSecondary {
		line.ExtendYAxis(secondaryAxis(spec))
	}

	if len(spec.Series) > 0 {
		line.SetXAxis(spec.Series[0].X)
	}

	for _, s := range spec.Series {
		line.AddSeries(s.Name, lineData(s.Y), lineSeriesOptions(s)...)
	}

	return renderSnippet(line, buf)
}

// renderBarLine renders mixed bar and line series on a shared category axis
// (the seasonal chart), lines overlapped onto the bar chart
func renderBarLine(spec Spec, buf *bytes.Buffer) error {
	bar := echarts.NewBar()
	bar.SetGlobalOptions(globalOptions(spec)...)
	if spec.HasSecondary {
		bar.ExtendYAxis(secondaryAxis(spec))
	}

	var categories []string
	for _, s := range spec.Series {
		if s.Kind == BarSeries {
			categories = s.X
			break
		}
	}
	bar.SetXAxis(categories)

	line := echarts.NewLine()
	line.SetXAxis(categories)

	for _, s := range spec.Series {
		switch s.Kind {
		case BarSeries:
			bar.AddSeries(s.Name, barData(s.Y), barSeriesOptions(s)...)
		case LineSeries:
			line.AddSeries(s.Name, lineData(s.Y), lineSeriesOptions(s)...)
		}
	}

	bar.Overlap(line)
	return renderSnippet(bar, buf)
}

// renderRankedBar renders the horizontal single-series ranked bar with a
// continuous color scale over the measure
func renderRankedBar(spec Spec, buf *bytes.Buffer) error {
	bar := echarts.NewBar()

	globals := globalOptions(spec)
	if len(spec.ColorScale) > 0 && len(spec.Series) > 0 {
		min, max := valueBounds(spec.Series[0].Y)
		globals = append(globals, echarts.WithVisualMapOpts(opts.VisualMap{
			Min:     float32(min),
			Max:     float32(max),
			InRange: &opts.VisualMapInRange{Color: spec.ColorScale},
		}))
	}
	bar.SetGlobalOptions(globals...)

	for _, s := range spec.Series {
		bar.SetXAxis(s.X)
		bar.AddSeries(s.Name, barData(s.Y), barSeriesOptions(s)...)
	}

	bar.XYReversal()
	return renderSnippet(bar, buf)
}

// renderSnippet renders the chart's standalone page and keeps only the body
// content (container div plus init script). The page shell loads the ECharts
// script once for all snippets, so the document wrapper and its script tag
// must not be repeated per chart.
func renderSnippet(chart interface{ Render(w io.Writer) error }, buf *bytes.Buffer) error {
	var page bytes.Buffer
	if err := chart.Render(&page); err != nil {
		return err
	}
	buf.WriteString(extractBody(page.String()))
	return nil
}

// extractBody returns the content between the body tags, or the whole
// document unchanged when the markers are absent
func extractBody(page string) string {
	start := strings.Index(page, "<body>")
	end := strings.LastIndex(page, "</body>")
	if start == -1 || end == -1 || end < start {
		return page
	}
	return strings.TrimSpace(page[start+len("<body>") : end])
}

// globalOptions applies the shared dark theme plus the spec's titles and axes
func globalOptions(spec Spec) []echarts.GlobalOpts {
	theme := spec.Theme

	yLabel := &opts.AxisLabel{Show: true, Color: theme.FontColor}
	if spec.CommaTicks && !spec.Horizontal {
		yLabel.Formatter = opts.FuncOpts(commaFormatter)
	}
	xLabel := &opts.AxisLabel{Show: true, Color: theme.FontColor}
	if spec.CommaTicks && spec.Horizontal {
		xLabel.Formatter = opts.FuncOpts(commaFormatter)
	}

	return []echarts.GlobalOpts{
		echarts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: theme.Background,
			Width:           "100%",
			Height:          strconv.Itoa(theme.Height) + "px",
		}),
		echarts.WithTitleOpts(opts.Title{
			Title: spec.Title,
			Left:  "center",
			TitleStyle: &opts.TextStyle{
				Color:    theme.FontColor,
				FontSize: 20,
			},
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:    true,
			Trigger: "axis",
		}),
		echarts.WithLegendOpts(opts.Legend{
			Show: true,
			Top:  "30",
		}),
		echarts.WithGridOpts(opts.Grid{
			Left:   strconv.Itoa(theme.MarginLeft),
			Right:  strconv.Itoa(theme.MarginRight),
			Top:    strconv.Itoa(theme.MarginTop),
			Bottom: strconv.Itoa(theme.MarginBottom),
		}),
		echarts.WithXAxisOpts(opts.XAxis{
			Name:      spec.XTitle,
			AxisLabel: xLabel,
			SplitLine: &opts.SplitLine{
				Show:      false,
				LineStyle: &opts.LineStyle{Color: theme.GridColor},
			},
		}),
		echarts.WithYAxisOpts(opts.YAxis{
			Name:      spec.YTitle,
			AxisLabel: yLabel,
			SplitLine: &opts.SplitLine{
				Show:      true,
				LineStyle: &opts.LineStyle{Color: theme.GridColor},
			},
		}),
	}
}

// secondaryAxis builds the secondary y-axis with its own title, no grid lines
func secondaryAxis(spec Spec) opts.YAxis {
	return opts.YAxis{
		Name:      spec.SecondaryTitle,
		AxisLabel: &opts.AxisLabel{Show: true, Color: spec.Theme.FontColor},
		SplitLine: &opts.SplitLine{Show: false},
	}
}

func lineSeriesOptions(s Series) []echarts.SeriesOpts {
	lineOpts := opts.LineChart{ShowSymbol: s.Markers}
	if s.Secondary {
		lineOpts.YAxisIndex = 1
	}

	style := opts.LineStyle{Color: s.Color, Width: 2}
	if s.Dashed {
		style.Type = "dashed"
	}

	return []echarts.SeriesOpts{
		echarts.WithLineChartOpts(lineOpts),
		echarts.WithLineStyleOpts(style),
		echarts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
	}
}

func barSeriesOptions(s Series) []echarts.SeriesOpts {
	barOpts := opts.BarChart{}
	if s.Secondary {
		barOpts.YAxisIndex = 1
	}

	seriesOpts := []echarts.SeriesOpts{echarts.WithBarChartOpts(barOpts)}
	if s.Color != "" {
		seriesOpts = append(seriesOpts, echarts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color, Opacity: 0.9}))
	}
	return seriesOpts
}

// lineData converts y-values to chart points; NaN becomes a gap
func lineData(ys []float64) []opts.LineData {
	data := make([]opts.LineData, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) {
			data[i] = opts.LineData{Value: "-"}
		} else {
			data[i] = opts.LineData{Value: y}
		}
	}
	return data
}

// barData converts y-values to bar points; NaN becomes a gap
func barData(ys []float64) []opts.BarData {
	data := make([]opts.BarData, len(ys))
	for i, y := range ys {
		if math.IsNaN(y) {
			data[i] = opts.BarData{Value: "-"}
		} else {
			data[i] = opts.BarData{Value: y}
		}
	}
	return data
}

func hasBars(spec Spec) bool {
	for _, s := range spec.Series {
		if s.Kind == BarSeries {
			return true
		}
	}
	return false
}

func valueBounds(ys []float64) (float64, float64) {
	min, max := math.Inf(1), math.Inf(-1)
	for _, y := range ys {
		if math.IsNaN(y) {
			continue
		}
		if y < min {
			min = y
		}
		if y > max {
			max = y
		}
	}
	if math.IsInf(min, 1) {
		return 0, 0
	}
	return min, max
}

// FormatMetric formats a measure for the metric cards; undefined values
// display as an em dash
func FormatMetric(v float64) string {
	if math.IsNaN(v) {
		return "—"
	}
	return groupThousands(int64(math.Round(v)))
}

// groupThousands renders n with comma grouping
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
