package dashboard

import (
	"errors"
	"fmt"
	"html/template"
	"strings"

	"bikedash/internal/charts"
	"bikedash/internal/dataset"
	"bikedash/internal/maps"
	"bikedash/internal/pipeline"
)

// Page is one rendered dashboard page, ready to be placed into the shell.
type Page struct {
	Title string
	Body  template.HTML
}

const noDataNotice = `<div class="notice">No data in the selected date range.</div>`

// introPage renders the overview metrics over the filtered records.
func (d *Dashboard) introPage(records []dataset.TripRecord) (Page, error) {
	rows, err := pipeline.Aggregate(records, pipeline.TotalsSpec())
	if err != nil {
		return Page{}, fmt.Errorf("failed to compute overview metrics: %w", err)
	}
	totals := rows[0]

	var b strings.Builder
	b.WriteString(string(markdownToHTML(introMarkdown)))
	b.WriteString(`<div class="metric-cards">`)
	writeMetricCard(&b, "Rows in sample (filtered)", charts.FormatMetric(float64(len(records))))
	writeMetricCard(&b, "Trips (sum)", charts.FormatMetric(totals.Value(pipeline.MeasureTrips)))
	writeMetricCard(&b, "Unique start stations", charts.FormatMetric(totals.Value(pipeline.MeasureStations)))
	b.WriteString(`</div>`)
	b.WriteString(`<p class="caption">Data source: reduced daily sample for fast dashboard performance.</p>`)
	b.WriteString(`<div class="notice">Tip: Adjust the date range in the sidebar to see how patterns shift over time.</div>`)

	return Page{Title: "NYC CitiBike Dashboard 🚲🗽", Body: template.HTML(b.String())}, nil
}

// dailyPage renders the dual-axis daily trips vs temperature chart.
func (d *Dashboard) dailyPage(records []dataset.TripRecord) (Page, error) {
	title := "Daily Bike Trips vs Temperature"
	if len(records) == 0 {
		return Page{Title: title, Body: template.HTML(noDataNotice)}, nil
	}

	rows, err := pipeline.Aggregate(records, pipeline.DailySpec())
	if err != nil {
		return Page{}, fmt.Errorf("failed to aggregate daily series: %w", err)
	}

	chart, err := charts.RenderHTML(charts.DailyTrend(rows))
	if err != nil {
		return Page{}, err
	}

	var b strings.Builder
	b.WriteString(string(chart))
	b.WriteString(`<p class="caption"><a href="/charts/daily.png">Download as PNG</a></p>`)
	b.WriteString(string(markdownToHTML(dailyInterpretation)))

	return Page{Title: title, Body: template.HTML(b.String())}, nil
}

// stationsPage renders the ranked top start stations bar chart with the
// top-N selector.
func (d *Dashboard) stationsPage(records []dataset.TripRecord, state State) (Page, error) {
	title := "Top Start Stations"

	var b strings.Builder
	writeTopNSelector(&b, state)

	if len(records) == 0 {
		b.WriteString(noDataNotice)
		return Page{Title: title, Body: template.HTML(b.String())}, nil
	}

	rows, err := pipeline.Aggregate(records, pipeline.StationSpec())
	if err != nil {
		return Page{}, fmt.Errorf("failed to aggregate stations: %w", err)
	}
	top := pipeline.TopStations(rows, state.TopN, pipeline.MeasureTrips)

	chart, err := charts.RenderHTML(charts.StationRanking(top))
	if err != nil {
		return Page{}, err
	}

	b.WriteString(string(chart))
	b.WriteString(string(markdownToHTML(stationsInterpretation)))

	return Page{Title: title, Body: template.HTML(b.String())}, nil
}

// mapPage embeds the chosen pre-rendered map. Resolution failures render as
// inline errors so navigation to other pages is unaffected.
func (d *Dashboard) mapPage(state State) Page {
	title := "Interactive Map"

	listing, err := d.maps.List()
	if err != nil {
		if errors.Is(err, maps.ErrNoMapsFound) {
			return Page{Title: title, Body: errorBlock("No map files found. Add an exported map HTML to the maps directory.")}
		}
		return Page{Title: title, Body: errorBlock("Map listing failed: " + err.Error())}
	}

	chosen := state.MapFile
	if chosen == "" {
		chosen = d.maps.Default(listing)
	}

	var b strings.Builder
	writeMapSelector(&b, listing, chosen, state)

	content, err := d.maps.Resolve(chosen)
	if err != nil {
		d.log.Warn("Map resolution failed", map[string]interface{}{"map": chosen, "error": err.Error()})
		b.WriteString(string(errorBlock(fmt.Sprintf("Map file not found: %s", chosen))))
		return Page{Title: title, Body: template.HTML(b.String())}
	}

	b.WriteString(`<iframe class="map-frame" srcdoc="`)
	b.WriteString(template.HTMLEscapeString(content))
	b.WriteString(`" height="740"></iframe>`)
	b.WriteString(string(markdownToHTML(mapInterpretation)))

	return Page{Title: title, Body: template.HTML(b.String())}
}

// seasonalPage renders the seasonal demand vs temperature chart.
func (d *Dashboard) seasonalPage(records []dataset.TripRecord) (Page, error) {
	title := "Extra Insight: Seasonal Demand"
	if len(records) == 0 {
		return Page{Title: title, Body: template.HTML(noDataNotice)}, nil
	}

	rows, err := pipeline.Aggregate(records, pipeline.SeasonalSpec())
	if err != nil {
		return Page{}, fmt.Errorf("failed to aggregate seasons: %w", err)
	}

	chart, err := charts.RenderHTML(charts.SeasonalDemand(rows))
	if err != nil {
		return Page{}, err
	}

	var b strings.Builder
	b.WriteString(string(chart))
	b.WriteString(string(markdownToHTML(seasonalInterpretation)))

	return Page{Title: title, Body: template.HTML(b.String())}, nil
}

// recommendationsPage renders the static recommendations markdown.
func (d *Dashboard) recommendationsPage() Page {
	return Page{Title: "Recommendations", Body: markdownToHTML(recommendationsMarkdown)}
}

func writeMetricCard(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, `<div class="card"><div class="metric">%s</div><div>%s</div></div>`,
		template.HTMLEscapeString(value), template.HTMLEscapeString(label))
}

func errorBlock(msg string) template.HTML {
	return template.HTML(`<div class="error">` + template.HTMLEscapeString(msg) + `</div>`)
}

// writeTopNSelector renders the in-page top-N form, preserving the rest of
// the widget state as hidden inputs.
func writeTopNSelector(b *strings.Builder, state State) {
	b.WriteString(`<form class="controls" method="get" action="/dashboard">`)
	writeStateInputs(b, state, "top")
	b.WriteString(`<label for="top">Top N stations</label><select id="top" name="top" onchange="this.form.submit()">`)
	for _, n := range TopNOptions() {
		selected := ""
		if n == state.TopN {
			selected = ` selected`
		}
		fmt.Fprintf(b, `<option value="%d"%s>%d</option>`, n, selected, n)
	}
	b.WriteString(`</select><noscript><button type="submit">Apply</button></noscript></form>`)
}

// writeMapSelector renders the in-page map chooser.
func writeMapSelector(b *strings.Builder, listing []string, chosen string, state State) {
	b.WriteString(`<form class="controls" method="get" action="/dashboard">`)
	writeStateInputs(b, state, "map")
	b.WriteString(`<label for="map">Choose map</label><select id="map" name="map" onchange="this.form.submit()">`)
	for _, name := range listing {
		selected := ""
		if name == chosen {
			selected = ` selected`
		}
		fmt.Fprintf(b, `<option value="%s"%s>%s</option>`,
			template.HTMLEscapeString(name), selected, template.HTMLEscapeString(name))
	}
	b.WriteString(`</select><noscript><button type="submit">Apply</button></noscript></form>`)
}

// writeStateInputs emits the widget state as hidden inputs, skipping the
// field the surrounding form itself edits.
func writeStateInputs(b *strings.Builder, state State, skip string) {
	fields := map[string]string{
		"page":  state.Page,
		"start": state.Range.Start.Format("2006-01-02"),
		"end":   state.Range.End.Format("2006-01-02"),
		"top":   fmt.Sprintf("%d", state.TopN),
		"map":   state.MapFile,
	}
	for _, key := range []string{"page", "start", "end", "top", "map"} {
		if key == skip || fields[key] == "" {
			continue
		}
		fmt.Fprintf(b, `<input type="hidden" name="%s" value="%s">`, key, template.HTMLEscapeString(fields[key]))
	}
}
